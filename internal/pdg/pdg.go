// Package pdg provides electric-charge information for Monte Carlo particle
// IDs. Charges are derived from the PDG numbering scheme itself, so the
// package needs no particle table, no I/O, and no state: lookups are O(1)
// pure functions, which keeps per-particle filtering side-effect free.
package pdg

// quarkThreeCharge returns three times the charge of quark flavor q
// (1=d, 2=u, 3=s, 4=c, 5=b, 6=t). Down-type flavors are odd digits.
func quarkThreeCharge(q int) int {
	if q%2 == 0 {
		return 2
	}
	return -1
}

// ThreeCharge returns three times the electric charge of the species id.
// Hadron charges follow from the quark-content digits of the Monte Carlo
// numbering scheme; charged leptons are handled explicitly. Unrecognized
// IDs report zero charge.
func ThreeCharge(id int) int {
	a := id
	sign := 1
	if a < 0 {
		a = -a
		sign = -1
	}

	if a < 100 {
		switch a {
		case 11, 13, 15: // e, mu, tau
			return sign * -3
		default: // neutrinos, gauge bosons (gamma = 22), ...
			return 0
		}
	}

	nq3 := (a / 10) % 10
	nq2 := (a / 100) % 10
	nq1 := (a / 1000) % 10

	if nq1 != 0 {
		// baryon: sum of the three quark charges
		return sign * (quarkThreeCharge(nq1) + quarkThreeCharge(nq2) + quarkThreeCharge(nq3))
	}
	if nq2 != 0 {
		// meson: neutral when both quark digits are the same type,
		// otherwise the positive-ID state carries charge +1
		if quarkThreeCharge(nq2) == quarkThreeCharge(nq3) {
			return 0
		}
		return sign * 3
	}
	return 0
}

// Charged reports whether the species id carries non-zero electric charge.
func Charged(id int) bool {
	return ThreeCharge(id) != 0
}
