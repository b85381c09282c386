package domain

// Event is one simulated collision: the particles it emitted, in read order.
// Events are consumed exactly once and never retained collectively; the
// pipeline holds at most one Event in memory at a time.
type Event []Particle

// Multiplicity is the particle count of the event.
func (e Event) Multiplicity() int {
	return len(e)
}
