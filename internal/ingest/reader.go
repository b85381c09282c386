// Package ingest reads particle streams from the supported on-disk event
// encodings and assembles them into events. Parsing is pull-based and
// single-pass: nothing upstream of the current event (or, for UrQMD, the
// current event block) is held in memory.
package ingest

import "ebe-flow/internal/domain"

// A ParticleReader yields the particles of one source in stream order.
//
// Read returns sep=true (with a zero Particle) at an event boundary inside
// the source, and io.EOF once the source is exhausted. The end of a source
// is an implicit boundary; EventReader takes care of it, so implementations
// do not emit a trailing separator.
type ParticleReader interface {
	Read() (p domain.Particle, sep bool, err error)
}
