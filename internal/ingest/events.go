package ingest

import (
	"io"

	"ebe-flow/internal/domain"
)

// EventReader assembles a filtered particle stream into events. It is a
// lazy, finite, non-restartable sequence: each call to Next produces the
// next event in stream order and nothing beyond it is read ahead.
//
// Multiple sources are concatenated in argument order. The end of a source
// always closes its trailing event; particles never merge across sources.
type EventReader struct {
	srcs []ParticleReader
	keep func(domain.Particle) bool
	cur  int
}

// NewEventReader returns an event stream over srcs. keep is the compiled
// selection predicate; nil keeps every particle.
func NewEventReader(keep func(domain.Particle) bool, srcs ...ParticleReader) *EventReader {
	return &EventReader{srcs: srcs, keep: keep}
}

// Next returns the next non-empty event, or io.EOF after the last one.
// Consecutive boundaries and events whose particles were all filtered out
// produce no empty events. Any parse error aborts the stream.
func (r *EventReader) Next() (domain.Event, error) {
	var ev domain.Event
	for r.cur < len(r.srcs) {
		p, sep, err := r.srcs[r.cur].Read()
		if err == io.EOF {
			r.cur++
			if len(ev) > 0 {
				return ev, nil
			}
			continue
		}
		if err != nil {
			return nil, err
		}
		if sep {
			if len(ev) > 0 {
				return ev, nil
			}
			continue
		}
		if r.keep == nil || r.keep(p) {
			ev = append(ev, p)
		}
	}
	return nil, io.EOF
}
