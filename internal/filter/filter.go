// Package filter applies physical selection cuts to the particle stream.
// Each cut is optional and independent; the active cuts are ANDed into a
// single predicate evaluated before event assembly, so multiplicities and
// flows downstream always describe the filtered population.
package filter

import (
	"errors"
	"fmt"
	"math"

	"ebe-flow/internal/domain"
	"ebe-flow/internal/pdg"
)

// Preset names.
const (
	PresetNone = "none"
	// PresetAtlas expands to ATLAS-like cuts: charged particles with
	// pT >= 0.5 GeV and |eta| <= 2.5.
	PresetAtlas = "atlas"
)

// ErrConflictingCuts is returned when an ID allow-list is combined with the
// charged-only cut; the two select species in incompatible ways.
var ErrConflictingCuts = errors.New("ids and charged cuts are mutually exclusive")

// Config declares the selection cuts. Range bounds are pointers so that an
// absent cut is distinguishable from a cut at zero.
type Config struct {
	IDs     []int    `yaml:"ids"`
	Charged bool     `yaml:"charged"`
	PTMin   *float64 `yaml:"pt_min"`
	PTMax   *float64 `yaml:"pt_max"`
	EtaMin  *float64 `yaml:"eta_min"`
	EtaMax  *float64 `yaml:"eta_max"`
}

// Predicate reports whether a particle passes the cuts. Predicates never
// fail: a particle either passes or is dropped silently.
type Predicate func(domain.Particle) bool

// ExpandPreset merges the named preset under c. Cuts already set in c win
// over the preset's values.
func ExpandPreset(c Config, preset string) (Config, error) {
	switch preset {
	case "", PresetNone:
		return c, nil
	case PresetAtlas:
		out := c
		out.Charged = true
		if out.PTMin == nil {
			ptmin := 0.5
			out.PTMin = &ptmin
		}
		if out.EtaMax == nil {
			etamax := 2.5
			out.EtaMax = &etamax
		}
		return out, nil
	default:
		return Config{}, fmt.Errorf("unknown filter preset %q", preset)
	}
}

// Build compiles the active cuts into one ANDed predicate. A config with no
// active cuts returns nil, meaning "keep everything".
func (c Config) Build() (Predicate, error) {
	if len(c.IDs) > 0 && c.Charged {
		return nil, ErrConflictingCuts
	}
	if c.PTMin != nil && c.PTMax != nil && *c.PTMin > *c.PTMax {
		return nil, fmt.Errorf("pT range [%g, %g] is empty", *c.PTMin, *c.PTMax)
	}
	if c.EtaMin != nil && c.EtaMax != nil && *c.EtaMin > *c.EtaMax {
		return nil, fmt.Errorf("|eta| range [%g, %g] is empty", *c.EtaMin, *c.EtaMax)
	}

	var preds []Predicate

	if len(c.IDs) > 0 {
		set := make(map[int]bool, len(c.IDs))
		for _, id := range c.IDs {
			set[id] = true
		}
		preds = append(preds, func(p domain.Particle) bool { return set[p.ID] })
	}
	if c.Charged {
		preds = append(preds, func(p domain.Particle) bool { return pdg.Charged(p.ID) })
	}
	if c.PTMin != nil {
		min := *c.PTMin
		preds = append(preds, func(p domain.Particle) bool { return p.PT >= min })
	}
	if c.PTMax != nil {
		max := *c.PTMax
		preds = append(preds, func(p domain.Particle) bool { return p.PT <= max })
	}
	if c.EtaMin != nil {
		min := *c.EtaMin
		preds = append(preds, func(p domain.Particle) bool { return math.Abs(p.Eta) >= min })
	}
	if c.EtaMax != nil {
		max := *c.EtaMax
		preds = append(preds, func(p domain.Particle) bool { return math.Abs(p.Eta) <= max })
	}

	switch len(preds) {
	case 0:
		return nil, nil
	case 1:
		return preds[0], nil
	}
	return func(p domain.Particle) bool {
		for _, keep := range preds {
			if !keep(p) {
				return false
			}
		}
		return true
	}, nil
}
