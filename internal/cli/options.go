// Package cli holds the flag surface shared by the commands: input
// format selection, particle cuts and the optional YAML config file.
// Precedence is flags over file over built-in defaults; a flag counts
// only when set explicitly, so flag defaults never mask file values.
package cli

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"ebe-flow/internal/config"
	"ebe-flow/internal/filter"
	"ebe-flow/internal/ingest"
)

// Options holds the flags every command accepts.
type Options struct {
	Format  string
	IDs     string
	Charged bool
	PTMin   float64
	PTMax   float64
	EtaMin  float64
	EtaMax  float64
	Atlas   bool
	Config  string
}

// short-to-canonical flag spelling
var canonical = map[string]string{
	"f": "format",
	"i": "ids",
	"c": "charged",
	"p": "ptmin",
	"q": "ptmax",
	"g": "etamin",
	"e": "etamax",
}

// Register declares the shared flags on fs, each under a short and a
// long name.
func (o *Options) Register(fs *flag.FlagSet) {
	fs.StringVar(&o.Format, "f", "", "input format: auto, std or urqmd")
	fs.StringVar(&o.Format, "format", "", "input format: auto, std or urqmd")
	fs.StringVar(&o.IDs, "i", "", "comma-separated Monte Carlo IDs to keep")
	fs.StringVar(&o.IDs, "ids", "", "comma-separated Monte Carlo IDs to keep")
	fs.BoolVar(&o.Charged, "c", false, "keep charged particles only")
	fs.BoolVar(&o.Charged, "charged", false, "keep charged particles only")
	fs.Float64Var(&o.PTMin, "p", 0, "minimum transverse momentum (GeV)")
	fs.Float64Var(&o.PTMin, "ptmin", 0, "minimum transverse momentum (GeV)")
	fs.Float64Var(&o.PTMax, "q", 0, "maximum transverse momentum (GeV)")
	fs.Float64Var(&o.PTMax, "ptmax", 0, "maximum transverse momentum (GeV)")
	fs.Float64Var(&o.EtaMin, "g", 0, "minimum |pseudorapidity|")
	fs.Float64Var(&o.EtaMin, "etamin", 0, "minimum |pseudorapidity|")
	fs.Float64Var(&o.EtaMax, "e", 0, "maximum |pseudorapidity|")
	fs.Float64Var(&o.EtaMax, "etamax", 0, "maximum |pseudorapidity|")
	fs.BoolVar(&o.Atlas, "atlas", false, "apply the ATLAS acceptance preset")
	fs.StringVar(&o.Config, "config", "", "YAML config file")
}

// explicitlySet returns the canonical names of the flags given on the
// command line.
func explicitlySet(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		name := f.Name
		if c, ok := canonical[name]; ok {
			name = c
		}
		set[name] = true
	})
	return set
}

// ParseIDs parses a comma-separated Monte Carlo ID list.
func ParseIDs(s string) ([]int, error) {
	var ids []int
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		id, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("invalid particle ID %q", tok)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("empty particle ID list")
	}
	return ids, nil
}

// Resolve merges the parsed flags over the config file and compiles the
// result: the input format and the particle predicate (nil when no cuts
// apply). fs must already be parsed.
func (o *Options) Resolve(fs *flag.FlagSet) (config.Analysis, ingest.Format, filter.Predicate, error) {
	cfg := config.Default()
	if o.Config != "" {
		var err error
		if cfg, err = config.Load(o.Config); err != nil {
			return cfg, ingest.FormatAuto, nil, err
		}
	}

	set := explicitlySet(fs)
	if set["format"] {
		cfg.Format = o.Format
	}
	if set["ids"] {
		ids, err := ParseIDs(o.IDs)
		if err != nil {
			return cfg, ingest.FormatAuto, nil, err
		}
		cfg.Filter.IDs = ids
	}
	if set["charged"] {
		cfg.Filter.Charged = o.Charged
	}
	if set["ptmin"] {
		v := o.PTMin
		cfg.Filter.PTMin = &v
	}
	if set["ptmax"] {
		v := o.PTMax
		cfg.Filter.PTMax = &v
	}
	if set["etamin"] {
		v := o.EtaMin
		cfg.Filter.EtaMin = &v
	}
	if set["etamax"] {
		v := o.EtaMax
		cfg.Filter.EtaMax = &v
	}
	if o.Atlas {
		cfg.Preset = filter.PresetAtlas
	}

	if cfg.Preset != "" {
		expanded, err := filter.ExpandPreset(cfg.Filter, cfg.Preset)
		if err != nil {
			return cfg, ingest.FormatAuto, nil, err
		}
		cfg.Filter = expanded
	}

	format, err := ingest.ParseFormat(cfg.Format)
	if err != nil {
		return cfg, ingest.FormatAuto, nil, err
	}
	keep, err := cfg.Filter.Build()
	if err != nil {
		return cfg, format, nil, err
	}
	return cfg, format, keep, nil
}
