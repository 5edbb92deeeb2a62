package vector

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Equal reports whether a and b have the same length and equal elements.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.Slice(), b.Slice())
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T any](a, b *Vector[T], eq func(x, y T) bool) bool {
	return slices.EqualFunc(a.Slice(), b.Slice(), eq)
}

// Less reports whether a orders lexicographically before b. The first
// differing element decides; a proper prefix orders first.
func Less[T constraints.Ordered](a, b *Vector[T]) bool {
	return LessFunc(a, b, func(x, y T) bool { return x < y })
}

// LessFunc is like Less but orders elements with less, which must be a
// strict weak ordering.
func LessFunc[T any](a, b *Vector[T], less func(x, y T) bool) bool {
	x, y := a.Slice(), b.Slice()
	for i := 0; i < len(x) && i < len(y); i++ {
		if less(x[i], y[i]) {
			return true
		}
		if less(y[i], x[i]) {
			return false
		}
	}
	return len(x) < len(y)
}

// NotEqual reports whether a and b differ.
func NotEqual[T comparable](a, b *Vector[T]) bool {
	return !Equal(a, b)
}

// LessOrEqual reports whether a orders before or equal to b.
func LessOrEqual[T constraints.Ordered](a, b *Vector[T]) bool {
	return !Less(b, a)
}

// Greater reports whether a orders after b.
func Greater[T constraints.Ordered](a, b *Vector[T]) bool {
	return Less(b, a)
}

// GreaterOrEqual reports whether a orders after or equal to b.
func GreaterOrEqual[T constraints.Ordered](a, b *Vector[T]) bool {
	return !Less(a, b)
}
