package strictmath

// High-precision mathematical constants, carried to more digits than float64
// can hold so the compiler rounds them correctly.
const (
	E      = 2.7182818284590452354 // e
	Pi     = 3.1415926535897932385 // π
	Sqrt2  = 1.4142135623730950488 // √2
	Ln2    = 0.6931471805599453094 // ln(2)
	Ln10   = 2.3025850929940456840 // ln(10)
	Log2E  = 1.4426950408889634074 // log₂(e)
	Log10E = 0.4342944819032518277 // log₁₀(e)
)

// Test tolerance levels for different precision requirements
const (
	TestToleranceStrict  = 1e-12 // For delegated double-precision results
	TestToleranceNormal  = 1e-9  // For standard tests
	TestToleranceRelaxed = 1e-6  // For accumulated or mixed-precision results
)
