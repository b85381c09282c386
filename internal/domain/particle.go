package domain

import "fmt"

// Particle is one emitted particle in standard (ID, pT, phi, eta) form.
// It is a plain value: two particles with equal fields are the same particle.
type Particle struct {
	ID  int     // Monte Carlo particle ID
	PT  float64 // transverse momentum in GeV
	Phi float64 // azimuthal angle in radians, [-pi, pi)
	Eta float64 // pseudorapidity
}

// String renders the particle as a standard-format line: "ID pT phi eta".
// %g keeps enough digits for an exact parse round trip.
func (p Particle) String() string {
	return fmt.Sprintf("%d %g %g %g", p.ID, p.PT, p.Phi, p.Eta)
}
