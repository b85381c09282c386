package ingest

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"ebe-flow/internal/domain"
)

// StdReader parses the standard format: one particle per line as
// "ID pT phi eta", with a blank line marking an event boundary.
type StdReader struct {
	sc   *bufio.Scanner
	name string
	line int
}

// NewStdReader returns a reader over r. name is used in error messages and
// may be empty for unnamed streams.
func NewStdReader(r io.Reader, name string) *StdReader {
	return &StdReader{sc: bufio.NewScanner(r), name: name}
}

// Read returns the next particle or boundary. A blank (or whitespace-only)
// line is a boundary, never a particle. A non-blank line with other than 4
// numeric fields fails with ErrFormat.
func (r *StdReader) Read() (domain.Particle, bool, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return domain.Particle{}, false, fmt.Errorf("%s:%d: %w", r.name, r.line, err)
		}
		return domain.Particle{}, false, io.EOF
	}
	r.line++

	fields := strings.Fields(r.sc.Text())
	if len(fields) == 0 {
		return domain.Particle{}, true, nil
	}
	if len(fields) != 4 {
		return domain.Particle{}, false, fmt.Errorf("%s:%d: expected 4 fields, got %d: %w",
			r.name, r.line, len(fields), ErrFormat)
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return domain.Particle{}, false, fmt.Errorf("%s:%d: bad particle ID %q: %w",
			r.name, r.line, fields[0], ErrFormat)
	}

	var v [3]float64
	for i, f := range fields[1:] {
		v[i], err = strconv.ParseFloat(f, 64)
		if err != nil {
			return domain.Particle{}, false, fmt.Errorf("%s:%d: bad numeric field %q: %w",
				r.name, r.line, f, ErrFormat)
		}
	}

	return domain.Particle{ID: id, PT: v[0], Phi: v[1], Eta: v[2]}, false, nil
}
