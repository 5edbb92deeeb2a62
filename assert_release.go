//go:build !vectordebug

package vector

// debugAssertions reports whether contract assertions are compiled in.
const debugAssertions = false

// assertf is compiled out; build with -tags vectordebug to enable it.
func assertf(bool, string, ...any) {}
