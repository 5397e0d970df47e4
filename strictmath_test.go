package strictmath

import (
	"math"
	"math/rand"
	"testing"
)

// TestDelegationBitExact verifies every delegated function is a pure
// pass-through to the platform math library: results must be bit-identical,
// not merely close.
func TestDelegationBitExact(t *testing.T) {
	unary := []struct {
		name string
		ours func(float64) float64
		std  func(float64) float64
	}{
		{"Sin", Sin, math.Sin},
		{"Cos", Cos, math.Cos},
		{"Tan", Tan, math.Tan},
		{"Asin", Asin, math.Asin},
		{"Acos", Acos, math.Acos},
		{"Atan", Atan, math.Atan},
		{"Exp", Exp, math.Exp},
		{"Expm1", Expm1, math.Expm1},
		{"Log", Log, math.Log},
		{"Log10", Log10, math.Log10},
		{"Log1p", Log1p, math.Log1p},
		{"Sqrt", Sqrt, math.Sqrt},
		{"Cbrt", Cbrt, math.Cbrt},
		{"Sinh", Sinh, math.Sinh},
		{"Cosh", Cosh, math.Cosh},
		{"Tanh", Tanh, math.Tanh},
		{"Floor", Floor, math.Floor},
		{"Ceil", Ceil, math.Ceil},
		{"Rint", Rint, math.RoundToEven},
	}

	binary := []struct {
		name string
		ours func(float64, float64) float64
		std  func(float64, float64) float64
	}{
		{"Atan2", Atan2, math.Atan2},
		{"Pow", Pow, math.Pow},
		{"Hypot", Hypot, math.Hypot},
		{"IEEERemainder", IEEERemainder, math.Remainder},
		{"NextAfter", NextAfter, math.Nextafter},
	}

	rng := rand.New(rand.NewSource(2))
	for _, tt := range unary {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 1000; i++ {
				x := (rng.Float64() - 0.5) * 200
				got, want := tt.ours(x), tt.std(x)
				if math.Float64bits(got) != math.Float64bits(want) {
					t.Fatalf("%s(%v) = %v, want %v", tt.name, x, got, want)
				}
			}
		})
	}
	for _, tt := range binary {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 1000; i++ {
				x := (rng.Float64() - 0.5) * 200
				y := (rng.Float64() - 0.5) * 200
				got, want := tt.ours(x, y), tt.std(x, y)
				if math.Float64bits(got) != math.Float64bits(want) {
					t.Fatalf("%s(%v, %v) = %v, want %v", tt.name, x, y, got, want)
				}
			}
		})
	}
}

func TestKnownValues(t *testing.T) {
	tol := StrictTolerance()

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"Sin(Pi/2)", Sin(Pi / 2), 1},
		{"Cos(0)", Cos(0), 1},
		{"Tan(Pi/4)", Tan(Pi / 4), 1},
		{"Atan2(1,1)", Atan2(1, 1), Pi / 4},
		{"Exp(0)", Exp(0), 1},
		{"Exp(1)", Exp(1), E},
		{"Log(E)", Log(E), 1},
		{"Log10(1000)", Log10(1000), 3},
		{"Expm1(0)", Expm1(0), 0},
		{"Log1p(0)", Log1p(0), 0},
		{"Sqrt(4)", Sqrt(4), 2},
		{"Cbrt(27)", Cbrt(27), 3},
		{"Pow(2,10)", Pow(2, 10), 1024},
		{"Hypot(3,4)", Hypot(3, 4), 5},
		{"Sinh(0)", Sinh(0), 0},
		{"Cosh(0)", Cosh(0), 1},
		{"Tanh(0)", Tanh(0), 0},
		{"Floor(1.9)", Floor(1.9), 1},
		{"Ceil(1.1)", Ceil(1.1), 2},
	}

	for _, tt := range tests {
		if !Float64NearEqual(tt.got, tt.want, tol) {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestRintHalfToEven(t *testing.T) {
	tests := []struct {
		x    float64
		want float64
	}{
		{0.5, 0},
		{1.5, 2},
		{2.5, 2},
		{3.5, 4},
		{-0.5, math.Copysign(0, -1)},
		{-1.5, -2},
		{-2.5, -2},
		{2.4, 2},
		{2.6, 3},
	}

	for _, tt := range tests {
		got := Rint(tt.x)
		if math.Float64bits(got) != math.Float64bits(tt.want) {
			t.Errorf("Rint(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestIEEERemainder(t *testing.T) {
	tests := []struct {
		x, y float64
		want float64
	}{
		// The quotient rounds to the nearest integer, so the result can be
		// negative for positive operands.
		{5, 3, -1},
		{6, 3, 0},
		{-5, 3, 1},
		{5.5, 2, -0.5},
		{7, 4, -1},
	}

	for _, tt := range tests {
		got := IEEERemainder(tt.x, tt.y)
		if got != tt.want {
			t.Errorf("IEEERemainder(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestSpecialValues(t *testing.T) {
	if !math.IsNaN(Sqrt(-1)) {
		t.Error("Sqrt(-1) should be NaN")
	}
	if !math.IsInf(Log(0), -1) {
		t.Error("Log(0) should be -Inf")
	}
	if !math.IsInf(Exp(math.Inf(1)), 1) {
		t.Error("Exp(+Inf) should be +Inf")
	}
	if got := Pow(-1, math.Inf(1)); got != 1 {
		t.Errorf("Pow(-1, +Inf) = %v, want 1", got)
	}
	if got := Pow(math.NaN(), 0); got != 1 {
		t.Errorf("Pow(NaN, 0) = %v, want 1", got)
	}
	if !math.IsNaN(IEEERemainder(1, 0)) {
		t.Error("IEEERemainder(1, 0) should be NaN")
	}
}

func TestConstants(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"E", E, math.E},
		{"Pi", Pi, math.Pi},
		{"Sqrt2", Sqrt2, math.Sqrt2},
		{"Ln2", Ln2, math.Ln2},
		{"Ln10", Ln10, math.Ln10},
		{"Log2E", Log2E, math.Log2E},
		{"Log10E", Log10E, math.Log10E},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v (stdlib)", tt.name, tt.got, tt.want)
		}
	}
}
