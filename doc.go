// Package strictmath exposes the fixed set of IEEE-754 double-precision
// elementary functions required by strict-math runtime bindings, together
// with the next-representable-value routines for binary32 and binary64.
//
// The elementary functions delegate to Go's math package, which implements
// IEEE-754 semantics with round-to-nearest-even. Results are therefore
// reproducible across platforms; there is no global rounding-mode or
// precision configuration.
//
// The one piece of numerical machinery implemented here rather than
// delegated is NextAfter32, which steps a binary32 value to its adjacent
// representable neighbor by walking the raw bit pattern.
//
// Embedding runtimes consume the function set through the bind subpackage,
// which maps the stable symbolic names (sin, atan2, nextafterf, ...) onto
// these functions.
package strictmath
