package strictmath

// Binary32 layout constants (1 sign bit, 8 exponent bits, 23 mantissa bits)
const (
	float32SignMask     = 0x80000000
	float32ExponentMask = 0x7F800000
	float32MantissaMask = 0x007FFFFF
	float32ExponentBias = 127
	float32MantissaBits = 23
	float32ExponentBits = 8
)

// Named bit patterns used by the next-representable walk and its tests
const (
	// Smallest positive subnormal: one ULP above zero.
	float32MinSubnormalBits = 0x00000001

	// Largest positive subnormal: exponent field zero, mantissa all ones.
	float32MaxSubnormalBits = 0x007FFFFF

	// Smallest positive normal: exponent field one, mantissa zero.
	float32MinNormalBits = 0x00800000

	// Largest finite value, one bit step below infinity.
	float32MaxFiniteBits = 0x7F7FFFFF

	float32InfBits = 0x7F800000
)

func isNaN32(f float32) bool {
	// IEEE-754: NaN is the only value that compares unequal to itself.
	return f != f
}
