// Package pipeline assembles the event stream a command consumes: it
// opens the named inputs, detects each one's format, decompresses,
// parses, filters and segments them into events, counting everything
// it touches.
package pipeline

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"ebe-flow/internal/domain"
	"ebe-flow/internal/filter"
	"ebe-flow/internal/ingest"
	"ebe-flow/internal/observability"
)

// gzipSuffix marks compressed inputs by name.
const gzipSuffix = ".gz"

// OpenSource opens one named input for reading. An empty name or "-"
// means stdin; a name ending in .gz is transparently decompressed.
// Format detection uses the name with the .gz suffix stripped, so
// "run7.f13.gz" still detects as UrQMD.
func OpenSource(name string) (io.ReadCloser, error) {
	if name == "" || name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	if !strings.HasSuffix(name, gzipSuffix) {
		return f, nil
	}
	zr, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("open input %s: %w", name, err)
	}
	return &gzipSource{zr: zr, f: f}, nil
}

type gzipSource struct {
	zr *gzip.Reader
	f  *os.File
}

func (g *gzipSource) Read(p []byte) (int, error) { return g.zr.Read(p) }

func (g *gzipSource) Close() error {
	zerr := g.zr.Close()
	ferr := g.f.Close()
	if zerr != nil {
		return zerr
	}
	return ferr
}

// Stream is a filtered event stream over one or more inputs.
type Stream struct {
	events  *ingest.EventReader
	closers []io.Closer
}

// Open builds the event stream for the named inputs. An empty name list
// reads stdin. The format override applies to every input; under auto
// each input detects its own format from its name. keep may be nil.
func Open(names []string, override ingest.Format, keep filter.Predicate) (*Stream, error) {
	if len(names) == 0 {
		names = []string{"-"}
	}

	s := &Stream{}
	var srcs []ingest.ParticleReader
	for _, name := range names {
		rc, err := OpenSource(name)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.closers = append(s.closers, rc)

		format := ingest.DetectFormat(strings.TrimSuffix(name, gzipSuffix), override)
		observability.RecordFileOpened(format.String())

		var pr ingest.ParticleReader
		switch format {
		case ingest.FormatURQMD:
			pr = ingest.NewURQMDReader(rc, name)
		default:
			pr = ingest.NewStdReader(rc, name)
		}
		srcs = append(srcs, &countingReader{src: pr, format: format.String()})
	}

	s.events = ingest.NewEventReader(countingKeep(keep), srcs...)
	return s, nil
}

// Next returns the next non-empty event, or io.EOF when every input is
// exhausted.
func (s *Stream) Next() (domain.Event, error) {
	ev, err := s.events.Next()
	if err == nil {
		observability.RecordEventAssembled()
	}
	return ev, err
}

// Close releases every opened input.
func (s *Stream) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// countingReader counts parsed particles and parse errors per format.
type countingReader struct {
	src    ingest.ParticleReader
	format string
}

func (c *countingReader) Read() (domain.Particle, bool, error) {
	p, sep, err := c.src.Read()
	switch {
	case err == nil && !sep:
		observability.RecordParticleParsed(c.format)
	case err != nil && err != io.EOF:
		observability.RecordParseError(c.format, errorKind(err))
	}
	return p, sep, err
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, ingest.ErrTruncated):
		return "truncated"
	case errors.Is(err, ingest.ErrUnknownSpecies):
		return "unknown_species"
	case errors.Is(err, ingest.ErrFormat):
		return "format"
	default:
		return "other"
	}
}

// countingKeep counts the particles a predicate drops.
func countingKeep(keep filter.Predicate) func(domain.Particle) bool {
	if keep == nil {
		return nil
	}
	return func(p domain.Particle) bool {
		ok := keep(p)
		if !ok {
			observability.RecordParticleCut()
		}
		return ok
	}
}
