// Package strictmath tolerance-based verification for floating-point comparisons
package strictmath

import (
	"math"
)

// ToleranceConfig defines tolerance parameters for floating-point comparison
type ToleranceConfig struct {
	// AbsTol is the absolute tolerance for values near zero
	AbsTol float64

	// RelTol is the relative tolerance as a fraction of the larger value
	RelTol float64

	// ULPTol is the maximum allowed difference in ULPs (Units in Last Place)
	ULPTol int

	// CheckNaN determines if NaN values should be considered equal
	CheckNaN bool

	// CheckInf determines if Inf values should be considered equal
	CheckInf bool
}

// DefaultTolerance returns the default tolerance configuration
func DefaultTolerance() ToleranceConfig {
	return ToleranceConfig{
		AbsTol:   1e-7,
		RelTol:   1e-5,
		ULPTol:   4,
		CheckNaN: true,
		CheckInf: true,
	}
}

// StrictTolerance returns a strict tolerance configuration for high precision
func StrictTolerance() ToleranceConfig {
	return ToleranceConfig{
		AbsTol:   1e-12,
		RelTol:   1e-10,
		ULPTol:   1,
		CheckNaN: true,
		CheckInf: true,
	}
}

// ExactTolerance returns a configuration that accepts only bit-identical
// results, apart from NaN and Inf equivalence. Delegated functions are pure
// pass-throughs and are verified at this level.
func ExactTolerance() ToleranceConfig {
	return ToleranceConfig{
		AbsTol:   0,
		RelTol:   0,
		ULPTol:   0,
		CheckNaN: true,
		CheckInf: true,
	}
}

// Float32NearEqual checks if two float32 values are equal within tolerance.
// The ULP check is performed in binary32 units.
func Float32NearEqual(a, b float32, tol ToleranceConfig) bool {
	return nearEqual(float64(a), float64(b), tol, Float32ULPDiff(a, b))
}

// Float64NearEqual checks if two float64 values are equal within tolerance
func Float64NearEqual(a, b float64, tol ToleranceConfig) bool {
	return nearEqual(a, b, tol, Float64ULPDiff(a, b))
}

func nearEqual(a, b float64, tol ToleranceConfig, ulpDiff int64) bool {
	if tol.CheckNaN && math.IsNaN(a) && math.IsNaN(b) {
		return true
	}

	if tol.CheckInf {
		if math.IsInf(a, 1) && math.IsInf(b, 1) {
			return true
		}
		if math.IsInf(a, -1) && math.IsInf(b, -1) {
			return true
		}
	}

	// Exact equality handles ±0.
	if a == b {
		return true
	}

	// Any remaining infinity is a mismatch: the absolute and relative checks
	// below would otherwise accept opposite-sign infinities via Inf <= Inf.
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}

	diff := math.Abs(a - b)

	if diff <= tol.AbsTol {
		return true
	}

	larger := math.Max(math.Abs(a), math.Abs(b))
	if diff <= larger*tol.RelTol {
		return true
	}

	if tol.ULPTol > 0 && ulpDiff <= int64(tol.ULPTol) {
		return true
	}

	return false
}

// Float32ULPDiff computes the difference in ULPs between two float32 values.
// Values of different sign are reported as maximally distant.
func Float32ULPDiff(a, b float32) int64 {
	aBits := math.Float32bits(a)
	bBits := math.Float32bits(b)

	if (aBits^bBits)&float32SignMask != 0 {
		return math.MaxInt64
	}

	if aBits > bBits {
		return int64(aBits - bBits)
	}
	return int64(bBits - aBits)
}

// Float64ULPDiff computes the difference in ULPs between two float64 values.
// Values of different sign are reported as maximally distant.
func Float64ULPDiff(a, b float64) int64 {
	aBits := math.Float64bits(a)
	bBits := math.Float64bits(b)

	if (aBits^bBits)&(1<<63) != 0 {
		return math.MaxInt64
	}

	var diff uint64
	if aBits > bBits {
		diff = aBits - bBits
	} else {
		diff = bBits - aBits
	}
	if diff > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(diff)
}
