package reactor

// InletGhost computes the virtual node upstream of the first interior node
// from the Robin (mixed) inlet condition balancing advective and diffusive
// flux against the feed:
//
//	C0 = (aux1*C1 + Cf) / (1 + aux1),  aux1 = D/(vz*h)
//
// With d == 0 this collapses exactly to cf (pure advective inflow).
func InletGhost(c1, cf, d, vz, h float64) float64 {
	aux1 := d / (vz * h)
	return (aux1*c1 + cf) / (1 + aux1)
}

// OutletGhost computes the virtual node downstream of the last interior
// node from the zero-gradient outlet condition.
func OutletGhost(cn float64) float64 {
	return cn
}
