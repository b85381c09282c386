// Package flow computes azimuthal anisotropy coefficients with the
// single-particle event-plane method: for each harmonic n,
//
//	Qx_n = mean cos(n*phi),  Qy_n = mean sin(n*phi)
//
// over the particles of an event, uncorrected for event-plane resolution.
// The engine is stateless across events; each result depends only on the
// event it was computed from.
package flow

import (
	"fmt"
	"math"

	"ebe-flow/internal/domain"
)

// Default harmonic range.
const (
	DefaultVnMin = 2
	DefaultVnMax = 6
)

// Result holds the flow vectors of one computation for the harmonics
// [VnMin, VnMax].
type Result struct {
	VnMin, VnMax int
	Multiplicity int
	qx, qy       []float64
}

func validateRange(vnmin, vnmax int) error {
	if vnmin < 1 || vnmax < vnmin {
		return fmt.Errorf("invalid harmonic range [%d, %d]: want 1 <= min <= max", vnmin, vnmax)
	}
	return nil
}

func newResult(vnmin, vnmax int) *Result {
	n := vnmax - vnmin + 1
	return &Result{
		VnMin: vnmin,
		VnMax: vnmax,
		qx:    make([]float64, n),
		qy:    make([]float64, n),
	}
}

// ForEvent computes the flow vectors of a single event. Flow is undefined
// for fewer than two particles; such events yield all-zero vectors rather
// than a division by zero or a spurious unit vector.
func ForEvent(ev domain.Event, vnmin, vnmax int) (*Result, error) {
	if err := validateRange(vnmin, vnmax); err != nil {
		return nil, err
	}
	res := newResult(vnmin, vnmax)
	res.Multiplicity = len(ev)
	if len(ev) < 2 {
		return res, nil
	}

	m := float64(len(ev))
	for k, n := 0, vnmin; n <= vnmax; k, n = k+1, n+1 {
		var cx, cy float64
		for _, p := range ev {
			sin, cos := math.Sincos(float64(n) * p.Phi)
			cx += cos
			cy += sin
		}
		res.qx[k] = cx / m
		res.qy[k] = cy / m
	}
	return res, nil
}

// Vectors returns the (Qx_n, Qy_n) pairs in ascending harmonic order.
func (r *Result) Vectors() [][2]float64 {
	out := make([][2]float64, len(r.qx))
	for i := range r.qx {
		out[i] = [2]float64{r.qx[i], r.qy[i]}
	}
	return out
}

// Magnitudes returns v_n = sqrt(Qx_n^2 + Qy_n^2) in ascending harmonic order.
func (r *Result) Magnitudes() []float64 {
	out := make([]float64, len(r.qx))
	for i := range r.qx {
		out[i] = math.Hypot(r.qx[i], r.qy[i])
	}
	return out
}

// Angles returns Psi_n = atan2(Qy_n, Qx_n) in ascending harmonic order.
func (r *Result) Angles() []float64 {
	out := make([]float64, len(r.qx))
	for i := range r.qx {
		out[i] = math.Atan2(r.qy[i], r.qx[i])
	}
	return out
}
