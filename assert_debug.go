//go:build vectordebug

package vector

import "fmt"

// debugAssertions reports whether contract assertions are compiled in.
const debugAssertions = true

// assertf panics with a formatted message if cond is false.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("vector: "+format, args...))
	}
}
