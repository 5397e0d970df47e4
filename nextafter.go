package strictmath

import (
	"math"
)

// NextAfter32 returns the float32 value adjacent to x in the direction of y:
// the representable binary32 value nearest to x that lies strictly between x
// and y, or y itself if x and y are already adjacent or equal.
//
// Floating-point magnitudes are not evenly spaced, so no fixed numeric delta
// works across the whole range. Binary32 bit patterns, however, are monotonic
// in magnitude for values of one sign, so a single bit step always lands on
// the adjacent representable value, including across exponent boundaries and
// across the subnormal/normal boundary. The two zero patterns are the one
// exception: neither is bit-adjacent to the smallest subnormal, hence the
// explicit zero case.
//
// Edge-case policies:
//   - If either argument is NaN, the result is NaN.
//   - If x equals y (including +0 and -0, which compare equal), y is
//     returned unchanged.
//   - If x is infinite, the result steps toward y like any other value,
//     yielding ±MaxFloat32 when moving toward zero; the bit walk never
//     steps past infinity into NaN space.
func NextAfter32(x, y float32) float32 {
	switch {
	case isNaN32(x) || isNaN32(y):
		return float32(math.NaN())
	case x == y:
		return y
	}

	hx := int32(math.Float32bits(x))
	hy := int32(math.Float32bits(y))

	if hx&0x7FFFFFFF == 0 {
		// x is a zero of either sign: step to the smallest subnormal,
		// taking the sign from y.
		return math.Float32frombits(uint32(hy)&float32SignMask | float32MinSubnormalBits)
	}

	// The signed bit-pattern comparisons below decide whether the magnitude
	// of x must grow or shrink. For positive x the patterns order like the
	// values; for negative x a larger magnitude means a larger signed
	// pattern, and any non-negative y lies toward zero.
	if hx > 0 {
		if hx > hy {
			hx-- // x > y: step down toward zero
		} else {
			hx++ // x < y: step up away from zero
		}
	} else {
		if hy >= 0 || hx > hy {
			hx-- // x < y: magnitude shrinks
		} else {
			hx++ // x > y: magnitude grows
		}
	}
	return math.Float32frombits(uint32(hx))
}
