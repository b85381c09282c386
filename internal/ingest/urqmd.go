package ingest

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"ebe-flow/internal/domain"
)

// particleLineLength is the data width of a UrQMD particle line, excluding
// the line terminator (435 bytes on disk including CR LF).
const particleLineLength = 433

// Absolute column spans of the fields this parser extracts, half-open.
// The layout is a versioned external contract and must match byte for byte.
const (
	pxLo, pxHi     = 121, 144
	pyLo, pyHi     = 145, 168
	pzLo, pzHi     = 169, 192
	itypLo, itypHi = 218, 221
	isoLo, isoHi   = 222, 224
)

// URQMDReader parses UrQMD event blocks. Each block is a header region
// whose final line declares the particle count as "<count> <timestep>",
// followed by exactly that many fixed-column particle lines.
//
// The reader buffers one raw block at a time so a truncated block is
// rejected before any of its particles is emitted; no more than one block
// is ever held in memory.
type URQMDReader struct {
	sc      *bufio.Scanner
	name    string
	line    int
	block   []string // raw particle lines of the current block
	lines   []int    // their line numbers, for error reporting
	idx     int
	started bool
}

// NewURQMDReader returns a reader over r. name is used in error messages.
func NewURQMDReader(r io.Reader, name string) *URQMDReader {
	return &URQMDReader{sc: bufio.NewScanner(r), name: name}
}

// Read returns the next particle, or sep=true between event blocks.
func (r *URQMDReader) Read() (domain.Particle, bool, error) {
	for r.idx >= len(r.block) {
		count, err := r.scanCount()
		if err != nil {
			return domain.Particle{}, false, err
		}
		if err := r.bufferBlock(count); err != nil {
			return domain.Particle{}, false, err
		}
		r.idx = 0
		if r.started {
			// one boundary per block transition, regardless of
			// how many header lines separate the blocks
			return domain.Particle{}, true, nil
		}
		r.started = true
	}

	raw, lineno := r.block[r.idx], r.lines[r.idx]
	r.idx++

	p, err := r.parseParticle(raw)
	if err != nil {
		return domain.Particle{}, false, fmt.Errorf("%s:%d: %w", r.name, lineno, err)
	}
	return p, false, nil
}

// scanCount consumes header lines until it finds the particle-count line
// (exactly two integer tokens). io.EOF here is a normal end of input.
func (r *URQMDReader) scanCount() (int, error) {
	for r.sc.Scan() {
		r.line++
		s := strings.TrimRight(r.sc.Text(), "\r")

		if len(s) == particleLineLength {
			return 0, fmt.Errorf("%s:%d: particle line outside an event block: %w",
				r.name, r.line, ErrFormat)
		}

		fields := strings.Fields(s)
		if len(fields) != 2 {
			continue // ordinary header line
		}
		count, err1 := strconv.Atoi(fields[0])
		_, err2 := strconv.Atoi(fields[1])
		if err1 != nil || err2 != nil {
			continue
		}
		if count < 0 {
			return 0, fmt.Errorf("%s:%d: negative particle count %d: %w",
				r.name, r.line, count, ErrFormat)
		}
		return count, nil
	}
	if err := r.sc.Err(); err != nil {
		return 0, fmt.Errorf("%s:%d: %w", r.name, r.line, err)
	}
	return 0, io.EOF
}

// bufferBlock reads exactly count raw particle lines. Anything short of
// that, EOF included, truncates the block and nothing from it is emitted.
func (r *URQMDReader) bufferBlock(count int) error {
	r.block = r.block[:0]
	r.lines = r.lines[:0]
	for i := 0; i < count; i++ {
		if !r.sc.Scan() {
			if err := r.sc.Err(); err != nil {
				return fmt.Errorf("%s:%d: %w", r.name, r.line, err)
			}
			return fmt.Errorf("%s:%d: header declared %d particles, stream ended after %d: %w",
				r.name, r.line, count, i, ErrTruncated)
		}
		r.line++
		s := strings.TrimRight(r.sc.Text(), "\r")
		if len(s) != particleLineLength {
			return fmt.Errorf("%s:%d: header declared %d particles, block ended after %d: %w",
				r.name, r.line, count, i, ErrTruncated)
		}
		r.block = append(r.block, s)
		r.lines = append(r.lines, r.line)
	}
	return nil
}

// parseParticle extracts the momentum and species columns of one particle
// line and derives the standard (ID, pT, phi, eta) quantities.
func (r *URQMDReader) parseParticle(line string) (domain.Particle, error) {
	px, err := ffloat(line[pxLo:pxHi])
	if err != nil {
		return domain.Particle{}, fmt.Errorf("bad px %q: %w", strings.TrimSpace(line[pxLo:pxHi]), ErrFormat)
	}
	py, err := ffloat(line[pyLo:pyHi])
	if err != nil {
		return domain.Particle{}, fmt.Errorf("bad py %q: %w", strings.TrimSpace(line[pyLo:pyHi]), ErrFormat)
	}
	pz, err := ffloat(line[pzLo:pzHi])
	if err != nil {
		return domain.Particle{}, fmt.Errorf("bad pz %q: %w", strings.TrimSpace(line[pzLo:pzHi]), ErrFormat)
	}
	ityp, err := strconv.Atoi(strings.TrimSpace(line[itypLo:itypHi]))
	if err != nil {
		return domain.Particle{}, fmt.Errorf("bad ityp %q: %w", strings.TrimSpace(line[itypLo:itypHi]), ErrFormat)
	}
	iso, err := strconv.Atoi(strings.TrimSpace(line[isoLo:isoHi]))
	if err != nil {
		return domain.Particle{}, fmt.Errorf("bad 2*I3 %q: %w", strings.TrimSpace(line[isoLo:isoHi]), ErrFormat)
	}

	mcid, ok := monteCarloID(ityp, iso)
	if !ok {
		return domain.Particle{}, fmt.Errorf("ityp %d, 2*I3 %d: %w", ityp, iso, ErrUnknownSpecies)
	}

	pmag := math.Sqrt(px*px + py*py + pz*pz)

	return domain.Particle{
		ID:  mcid,
		PT:  math.Hypot(px, py),
		Phi: math.Atan2(py, px),
		// atanh(pz/|p|); for |pz| == |p| this is ±Inf, which is passed
		// through and fails any finite |eta| cut downstream
		Eta: 0.5 * math.Log((pmag+pz)/(pmag-pz)),
	}, nil
}

// ffloat parses a Fortran double, which spells the exponent with 'D'.
func ffloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, "Dd"); i >= 0 {
		s = s[:i] + "E" + s[i+1:]
	}
	return strconv.ParseFloat(s, 64)
}
