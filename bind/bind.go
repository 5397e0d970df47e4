// Package bind exposes the strictmath function set to embedding runtimes
// under stable symbolic names.
//
// A Registry is the Go rendition of a native-method table: each entry pairs
// a symbolic name with a JNI-style type descriptor ((D)D for a unary
// double-precision function, (DD)D for a binary one, (FF)F for a binary
// single-precision one) and the Go function implementing it. Arguments and
// results cross the boundary as float64 scalars; (FF)F entries convert
// through float32 on both sides so the callee observes binary32 values.
//
// A populated Registry is read-only and safe for concurrent use.
package bind

import (
	"github.com/hashicorp/go-multierror"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Signature descriptors for the supported function shapes.
const (
	SigUnaryDouble   = "(D)D"
	SigBinaryDouble  = "(DD)D"
	SigBinaryFloat32 = "(FF)F"
)

// Func is a single bound operation: a named, pure, total scalar function.
// Invoke never blocks and never fails for any argument values; the only
// error it can return is an arity mismatch.
type Func interface {
	// Name returns the stable symbolic name of the function.
	Name() string

	// Signature returns the JNI-style type descriptor.
	Signature() string

	// Invoke applies the function to args.
	Invoke(args []float64) (float64, error)
}

// Unary binds a one-argument double-precision function.
type Unary struct {
	name string
	fn   func(float64) float64
}

// NewUnary creates a (D)D binding.
func NewUnary(name string, fn func(float64) float64) Unary {
	return Unary{name: name, fn: fn}
}

func (u Unary) Name() string      { return u.name }
func (u Unary) Signature() string { return SigUnaryDouble }

func (u Unary) Invoke(args []float64) (float64, error) {
	if len(args) != 1 {
		return 0, NewArityError(u.name, 1, len(args))
	}
	return u.fn(args[0]), nil
}

// Binary binds a two-argument double-precision function.
type Binary struct {
	name string
	fn   func(float64, float64) float64
}

// NewBinary creates a (DD)D binding.
func NewBinary(name string, fn func(float64, float64) float64) Binary {
	return Binary{name: name, fn: fn}
}

func (b Binary) Name() string      { return b.name }
func (b Binary) Signature() string { return SigBinaryDouble }

func (b Binary) Invoke(args []float64) (float64, error) {
	if len(args) != 2 {
		return 0, NewArityError(b.name, 2, len(args))
	}
	return b.fn(args[0], args[1]), nil
}

// Binary32 binds a two-argument single-precision function. Arguments are
// narrowed to float32 before the call and the binary32 result is widened
// back; the widening is exact, so the caller can recover the precise
// binary32 bit pattern.
type Binary32 struct {
	name string
	fn   func(float32, float32) float32
}

// NewBinary32 creates an (FF)F binding.
func NewBinary32(name string, fn func(float32, float32) float32) Binary32 {
	return Binary32{name: name, fn: fn}
}

func (b Binary32) Name() string      { return b.name }
func (b Binary32) Signature() string { return SigBinaryFloat32 }

func (b Binary32) Invoke(args []float64) (float64, error) {
	if len(args) != 2 {
		return 0, NewArityError(b.name, 2, len(args))
	}
	return float64(b.fn(float32(args[0]), float32(args[1]))), nil
}

// Registry maps symbolic names to bound functions.
type Registry struct {
	funcs map[string]Func
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		funcs: make(map[string]Func),
	}
}

// Register adds a function to the registry. Registering a name twice or a
// function with an unsupported descriptor is an error.
func (r *Registry) Register(f Func) error {
	name := f.Name()
	switch f.Signature() {
	case SigUnaryDouble, SigBinaryDouble, SigBinaryFloat32:
	default:
		return NewSignatureError(name, f.Signature())
	}
	if _, exists := r.funcs[name]; exists {
		return NewDuplicateError(name)
	}
	r.funcs[name] = f
	return nil
}

// RegisterAll registers every function, collecting all failures rather than
// stopping at the first.
func (r *Registry) RegisterAll(fs ...Func) error {
	var errs *multierror.Error
	for _, f := range fs {
		if err := r.Register(f); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs.ErrorOrNil()
}

// Get returns the function registered under name.
func (r *Registry) Get(name string) (Func, bool) {
	f, exists := r.funcs[name]
	return f, exists
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := maps.Keys(r.funcs)
	slices.Sort(names)
	return names
}

// Len returns the number of registered functions.
func (r *Registry) Len() int {
	return len(r.funcs)
}

// Call looks up name and invokes it with args.
func (r *Registry) Call(name string, args ...float64) (float64, error) {
	f, exists := r.funcs[name]
	if !exists {
		return 0, NewNotRegisteredError(name)
	}
	return f.Invoke(args)
}
