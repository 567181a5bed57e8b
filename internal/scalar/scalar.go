// Package scalar provides the per-scalar-type capabilities consumed by the
// fixed-dimension algebra and the network engine.
package scalar

import "math"

// Integer is a constraint for every built-in integer kind.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is a constraint for the built-in floating-point kinds.
type Float interface {
	~float32 | ~float64
}

// Number is a constraint for scalars that support the arithmetic the
// vector and matrix types need (add, sub, mul, div, and a summable product).
type Number interface {
	Integer | Float
}

// Zero returns the additive identity of T.
func Zero[T Number]() T {
	var zero T
	return zero
}

// One returns the multiplicative identity of T.
func One[T Number]() T {
	return 1
}

// Two returns 1 + 1 in T.
func Two[T Number]() T {
	return 2
}

// Square returns x * x.
func Square[T Number](x T) T {
	return x * x
}

// Abs returns the absolute value of x.
// Unsigned values are returned unchanged.
func Abs[T Number](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Sqrt returns the square root of x computed in float64 precision.
// For integer kinds the result is truncated toward zero.
func Sqrt[T Number](x T) T {
	return T(math.Sqrt(float64(x)))
}

// Rem returns the remainder of a / b.
//
// Integer kinds follow Go's truncated division (the sign follows a).
// Float kinds use math.Mod, which has the same sign convention.
func Rem[T Number](a, b T) T {
	if IsFloat[T]() {
		return T(math.Mod(float64(a), float64(b)))
	}
	return a - (a/b)*b
}

// IsFloat reports whether T is a floating-point kind.
func IsFloat[T Number]() bool {
	var one T = 1
	return one/2 != 0
}

// Equal reports whether a and b are equal within tolerance eps.
func Equal[T Number](a, b, eps T) bool {
	if a > b {
		return a-b <= eps
	}
	return b-a <= eps
}
