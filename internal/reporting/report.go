// Package reporting renders flow results and statistics as plain text
// lines and CSV.
package reporting

import (
	"fmt"
	"strings"

	"ebe-flow/internal/flow"
	"ebe-flow/internal/stats"
)

// Mode selects what RenderFlowLine prints per harmonic.
type Mode int

const (
	// ModeMagnitude prints v_n per harmonic.
	ModeMagnitude Mode = iota
	// ModeVector prints the Qx_n Qy_n pair per harmonic.
	ModeVector
)

// RenderFlowLine renders one result as a single space-separated line,
// harmonics in ascending order, without a trailing newline. Values use
// %g so that output lines parse back to the same float64s.
func RenderFlowLine(res *flow.Result, mode Mode) string {
	var sb strings.Builder
	if mode == ModeVector {
		for i, v := range res.Vectors() {
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%g %g", v[0], v[1])
		}
		return sb.String()
	}
	for i, v := range res.Magnitudes() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%g", v)
	}
	return sb.String()
}

// RenderDifferential renders pT-binned flow, one line per bin: the bin
// center followed by the harmonics per the mode.
func RenderDifferential(bins []flow.Bin, mode Mode) string {
	var sb strings.Builder
	for _, b := range bins {
		fmt.Fprintf(&sb, "%g %s\n", b.PTMid, RenderFlowLine(b.Flows, mode))
	}
	return sb.String()
}

// RenderSummary renders a sample summary as a labeled block.
func RenderSummary(label string, s stats.Summary) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: n=%d mean=%g stddev=%g rms=%g min=%g max=%g median=%g\n",
		label, s.N, s.Mean, s.Stddev, s.RMS, s.Min, s.Max, s.Median)
	return sb.String()
}
