package reporting

import (
	"fmt"
	"io"

	"ebe-flow/internal/flow"
)

// CSVWriter streams per-event flow results as CSV, one row per
// (event, harmonic) pair.
type CSVWriter struct {
	w      io.Writer
	wrote  bool
	events int
}

// NewCSVWriter returns a writer that emits rows to w. The header is
// written lazily before the first row.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: w}
}

// WriteEvent appends one row per harmonic of the result. Events are
// numbered from 1 in the order written.
func (c *CSVWriter) WriteEvent(res *flow.Result) error {
	if !c.wrote {
		if _, err := fmt.Fprintln(c.w, "event,n,qx,qy,vn,psi_n"); err != nil {
			return err
		}
		c.wrote = true
	}
	c.events++

	vecs := res.Vectors()
	mags := res.Magnitudes()
	angs := res.Angles()
	for i := range vecs {
		_, err := fmt.Fprintf(c.w, "%d,%d,%g,%g,%g,%g\n",
			c.events, res.VnMin+i, vecs[i][0], vecs[i][1], mags[i], angs[i])
		if err != nil {
			return err
		}
	}
	return nil
}
