//go:build !debug

// Package assert provides precondition checks that compile away unless the
// debug build tag is set. The sample kernels are total over their
// documented input domain; violating a precondition in a release build is
// undefined behavior rather than a reported error.
package assert

// Assert is a no-op in release builds.
func Assert(bool) {}
