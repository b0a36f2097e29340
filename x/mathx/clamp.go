// x/mathx/clamp.go

package mathx

import "golang.org/x/exp/constraints"

// Min returns the smaller of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if b < a {
		return b
	}
	return a
}

// Max returns the larger of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if b > a {
		return b
	}
	return a
}

// Clamp pins v into the range spanned by lo and hi, in either order.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	return Max(Min(lo, hi), Min(v, Max(lo, hi)))
}
