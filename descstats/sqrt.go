// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package descstats

import "math"

// Sqrt returns the square root of x computed by Newton's method.
//
// Special cases are:
//
//	Sqrt(±0) = ±0
//	Sqrt(+Inf) = +Inf
//	Sqrt(x < 0) = NaN
//	Sqrt(NaN) = NaN
func Sqrt(x float64) float64 {
	switch {
	case x == 0 || math.IsNaN(x) || math.IsInf(x, 1):
		return x
	case x < 0:
		return math.NaN()
	}

	// Start from a guess with roughly half the binary exponent of x, so the
	// iteration converges in a handful of steps over the whole range.
	frac, exp := math.Frexp(x)
	z := math.Ldexp(frac, exp/2)
	if exp%2 != 0 {
		z *= 1.5
	}

	// From any positive start the iterates decrease monotonically toward the
	// root after the first step, so stop as soon as they fail to decrease.
	const maxIter = 100
	z = (z + x/z) / 2
	for i := 0; i < maxIter; i++ {
		next := (z + x/z) / 2
		if next >= z {
			break
		}
		z = next
	}

	// The iteration may stop one unit in the last place above the root.
	if lo := math.Nextafter(z, 0); lo*lo >= x {
		z = lo
	}
	return z
}
