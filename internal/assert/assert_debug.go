//go:build debug

package assert

import "runtime/debug"

// Assert panics with a stack trace when the condition does not hold.
func Assert(condition bool) {
	if !condition {
		panic("assertion failed:\n" + string(debug.Stack()))
	}
}
