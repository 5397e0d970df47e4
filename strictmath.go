package strictmath

import (
	"math"
)

// Trigonometric functions. All angles are in radians.

// Sin returns the sine of x.
func Sin(x float64) float64 { return math.Sin(x) }

// Cos returns the cosine of x.
func Cos(x float64) float64 { return math.Cos(x) }

// Tan returns the tangent of x.
func Tan(x float64) float64 { return math.Tan(x) }

// Asin returns the arcsine of x, in the range [-π/2, π/2].
func Asin(x float64) float64 { return math.Asin(x) }

// Acos returns the arccosine of x, in the range [0, π].
func Acos(x float64) float64 { return math.Acos(x) }

// Atan returns the arctangent of x, in the range [-π/2, π/2].
func Atan(x float64) float64 { return math.Atan(x) }

// Atan2 returns the angle of the point (x, y) in the range [-π, π], using
// the signs of both arguments to determine the quadrant.
func Atan2(y, x float64) float64 { return math.Atan2(y, x) }

// Exponential and logarithmic functions.

// Exp returns e raised to the power x.
func Exp(x float64) float64 { return math.Exp(x) }

// Expm1 returns e**x - 1, accurate for x near zero where Exp(x)-1 would
// cancel.
func Expm1(x float64) float64 { return math.Expm1(x) }

// Log returns the natural logarithm of x.
func Log(x float64) float64 { return math.Log(x) }

// Log10 returns the base-10 logarithm of x.
func Log10(x float64) float64 { return math.Log10(x) }

// Log1p returns the natural logarithm of 1+x, accurate for x near zero.
func Log1p(x float64) float64 { return math.Log1p(x) }

// Power and root functions.

// Sqrt returns the square root of x.
func Sqrt(x float64) float64 { return math.Sqrt(x) }

// Cbrt returns the cube root of x.
func Cbrt(x float64) float64 { return math.Cbrt(x) }

// Pow returns x raised to the power y.
func Pow(x, y float64) float64 { return math.Pow(x, y) }

// Hypot returns Sqrt(x*x + y*y) without undue overflow or underflow.
func Hypot(x, y float64) float64 { return math.Hypot(x, y) }

// Hyperbolic functions.

// Sinh returns the hyperbolic sine of x.
func Sinh(x float64) float64 { return math.Sinh(x) }

// Cosh returns the hyperbolic cosine of x.
func Cosh(x float64) float64 { return math.Cosh(x) }

// Tanh returns the hyperbolic tangent of x.
func Tanh(x float64) float64 { return math.Tanh(x) }

// Rounding and remainder functions.

// Floor returns the largest integer value not greater than x.
func Floor(x float64) float64 { return math.Floor(x) }

// Ceil returns the smallest integer value not less than x.
func Ceil(x float64) float64 { return math.Ceil(x) }

// Rint rounds x to the nearest integer value, rounding halfway cases to the
// even integer. This is IEEE-754 roundTiesToEven, not the round-half-up
// behavior of math.Round.
func Rint(x float64) float64 { return math.RoundToEven(x) }

// IEEERemainder returns the IEEE-754 floating-point remainder of x/y. The
// result has magnitude at most y/2; it differs from Mod in that the quotient
// is rounded to the nearest integer rather than truncated.
func IEEERemainder(x, y float64) float64 { return math.Remainder(x, y) }

// NextAfter returns the float64 value adjacent to x in the direction of y.
// See NextAfter32 for the binary32 equivalent and its edge-case policies.
func NextAfter(x, y float64) float64 { return math.Nextafter(x, y) }
