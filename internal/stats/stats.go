// Package stats computes descriptive statistics over particle and event
// quantities (pT spectra, multiplicities, flow magnitudes).
package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary is the descriptive summary of one sample.
type Summary struct {
	N      int
	Mean   float64
	Stddev float64
	RMS    float64
	Min    float64
	Max    float64
	Median float64
}

// Describe summarizes a sample. An empty sample yields the zero Summary.
func Describe(xs []float64) Summary {
	n := len(xs)
	if n == 0 {
		return Summary{}
	}

	sorted := make([]float64, n)
	copy(sorted, xs)
	sort.Float64s(sorted)

	return Summary{
		N:      n,
		Mean:   stat.Mean(xs, nil),
		Stddev: sampleStddev(xs),
		RMS:    RMS(xs),
		Min:    sorted[0],
		Max:    sorted[n-1],
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
	}
}

// sample stddev is undefined for fewer than two values; report 0 instead
// of the NaN gonum would return
func sampleStddev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	return stat.StdDev(xs, nil)
}

// RMS returns the quadratic mean sqrt(mean(x^2)) of a sample.
func RMS(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x * x
	}
	return math.Sqrt(sum / float64(len(xs)))
}

// HistogramBin is one bin of a fixed-width histogram.
type HistogramBin struct {
	Mid   float64
	Count int
}

// Histogram buckets a sample into fixed-width bins anchored at zero and
// returns the populated range in ascending order. Negative values and a
// non-positive width yield no bins.
func Histogram(xs []float64, width float64) []HistogramBin {
	if width <= 0 {
		return nil
	}
	counts := make(map[int]int)
	hi := -1
	for _, x := range xs {
		if x < 0 {
			continue
		}
		idx := int(x / width)
		counts[idx]++
		if idx > hi {
			hi = idx
		}
	}
	if hi < 0 {
		return nil
	}
	out := make([]HistogramBin, hi+1)
	for i := range out {
		out[i] = HistogramBin{
			Mid:   (2*float64(i) + 1) / 2 * width,
			Count: counts[i],
		}
	}
	return out
}
