package bind

import (
	"github.com/strictfp/strictmath"
)

// StrictMath returns a registry populated with the full strict-math native
// method table. The names and descriptors are the stable symbols an
// embedding runtime binds against.
func StrictMath() (*Registry, error) {
	r := NewRegistry()
	err := r.RegisterAll(
		NewBinary("IEEEremainder", strictmath.IEEERemainder),
		NewUnary("acos", strictmath.Acos),
		NewUnary("asin", strictmath.Asin),
		NewUnary("atan", strictmath.Atan),
		NewBinary("atan2", strictmath.Atan2),
		NewUnary("cbrt", strictmath.Cbrt),
		NewUnary("ceil", strictmath.Ceil),
		NewUnary("cos", strictmath.Cos),
		NewUnary("cosh", strictmath.Cosh),
		NewUnary("exp", strictmath.Exp),
		NewUnary("expm1", strictmath.Expm1),
		NewUnary("floor", strictmath.Floor),
		NewBinary("hypot", strictmath.Hypot),
		NewUnary("log", strictmath.Log),
		NewUnary("log10", strictmath.Log10),
		NewUnary("log1p", strictmath.Log1p),
		NewBinary("nextafter", strictmath.NextAfter),
		NewBinary32("nextafterf", strictmath.NextAfter32),
		NewBinary("pow", strictmath.Pow),
		NewUnary("rint", strictmath.Rint),
		NewUnary("sin", strictmath.Sin),
		NewUnary("sinh", strictmath.Sinh),
		NewUnary("sqrt", strictmath.Sqrt),
		NewUnary("tan", strictmath.Tan),
		NewUnary("tanh", strictmath.Tanh),
	)
	if err != nil {
		return nil, err
	}
	return r, nil
}
