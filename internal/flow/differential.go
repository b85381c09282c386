package flow

import (
	"fmt"

	"ebe-flow/internal/domain"
)

// DefaultPTWidth is the default width of differential-flow pT bins in GeV.
const DefaultPTWidth = 0.1

// Differential accumulates pT-binned average flow across events. Particles
// from every event are grouped into fixed-width pT bins and each bin keeps
// its own multiplicity-weighted average, so events can be folded in one at
// a time with bounded memory.
type Differential struct {
	vnmin, vnmax int
	width        float64
	bins         []*Accumulator
}

// NewDifferential returns an empty differential accumulator for harmonics
// [vnmin, vnmax] with the given pT bin width.
func NewDifferential(vnmin, vnmax int, width float64) (*Differential, error) {
	if err := validateRange(vnmin, vnmax); err != nil {
		return nil, err
	}
	if width <= 0 {
		return nil, fmt.Errorf("invalid pT bin width %g: want > 0", width)
	}
	return &Differential{vnmin: vnmin, vnmax: vnmax, width: width}, nil
}

// AddEvent buckets the event's particles by pT and folds each bucket into
// its bin's running average.
func (d *Differential) AddEvent(ev domain.Event) {
	buckets := make(map[int]domain.Event)
	for _, p := range ev {
		idx := int(p.PT / d.width)
		buckets[idx] = append(buckets[idx], p)
	}
	for idx, sub := range buckets {
		d.grow(idx)
		d.bins[idx].AddEvent(sub)
	}
}

func (d *Differential) grow(idx int) {
	for len(d.bins) <= idx {
		acc, _ := NewAccumulator(d.vnmin, d.vnmax) // range validated in NewDifferential
		d.bins = append(d.bins, acc)
	}
}

// Bin is the average flow of one pT bin; PTMid is the bin's center.
type Bin struct {
	PTMid float64
	Flows *Result
}

// Bins returns the populated bins in ascending pT order.
func (d *Differential) Bins() []Bin {
	out := make([]Bin, 0, len(d.bins))
	for i, acc := range d.bins {
		out = append(out, Bin{
			PTMid: (2*float64(i) + 1) / 2 * d.width,
			Flows: acc.Result(),
		})
	}
	return out
}
