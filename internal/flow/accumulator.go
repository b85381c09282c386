package flow

import (
	"math"

	"ebe-flow/internal/domain"
)

// Accumulator builds the multiplicity-weighted average flow of many events,
// one event at a time, without retaining the events themselves.
type Accumulator struct {
	vnmin, vnmax int
	mult         int
	qx, qy       []float64
}

// NewAccumulator returns an empty accumulator for harmonics [vnmin, vnmax].
func NewAccumulator(vnmin, vnmax int) (*Accumulator, error) {
	if err := validateRange(vnmin, vnmax); err != nil {
		return nil, err
	}
	n := vnmax - vnmin + 1
	return &Accumulator{
		vnmin: vnmin,
		vnmax: vnmax,
		qx:    make([]float64, n),
		qy:    make([]float64, n),
	}, nil
}

// AddEvent folds one event into the running average. Splitting a particle
// set across several AddEvent calls gives the same result as one call, so
// empty events contribute nothing and are ignored.
func (a *Accumulator) AddEvent(ev domain.Event) {
	m := len(ev)
	if m == 0 {
		return
	}
	total := a.mult + m

	for k, n := 0, a.vnmin; n <= a.vnmax; k, n = k+1, n+1 {
		var cx, cy float64
		for _, p := range ev {
			sin, cos := math.Sincos(float64(n) * p.Phi)
			cx += cos
			cy += sin
		}
		a.qx[k] = (float64(a.mult)*a.qx[k] + cx) / float64(total)
		a.qy[k] = (float64(a.mult)*a.qy[k] + cy) / float64(total)
	}
	a.mult = total
}

// Result returns the current average as a Result. An accumulator that saw
// no particles reports zero vectors.
func (a *Accumulator) Result() *Result {
	res := newResult(a.vnmin, a.vnmax)
	res.Multiplicity = a.mult
	copy(res.qx, a.qx)
	copy(res.qy, a.qy)
	return res
}
