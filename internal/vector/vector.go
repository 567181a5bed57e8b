// Package vector implements fixed-dimension numeric vectors.
package vector

import (
	"fmt"
	"strings"

	"github.com/born-ml/fixedmath/internal/scalar"
)

// Vector is an ordered tuple of D.Len() components of scalar type T.
//
// Vectors behave as values. Every method that changes a vector installs a
// fresh backing array, so a copy made by plain assignment never observes
// updates made through the original. The zero value is the zero vector.
//
// Example:
//
//	a := vector.New3(2, 3, 99)
//	b := vector.New3(6, -1, 2)
//	c := a.Add(b)  // (8, 2, 101)
type Vector[T scalar.Number, D Dim] struct {
	components []T
}

// New creates a vector from exactly D.Len() components.
// It panics if the count is wrong; use FromSlice for untrusted input.
func New[T scalar.Number, D Dim](components ...T) Vector[T, D] {
	n := Len[D]()
	if len(components) != n {
		panic(fmt.Sprintf("vector.New: expected %d components, got %d", n, len(components)))
	}
	c := make([]T, n)
	copy(c, components)
	return Vector[T, D]{components: c}
}

// FromSlice creates a vector from a slice, which is copied.
func FromSlice[T scalar.Number, D Dim](components []T) (Vector[T, D], error) {
	if n := Len[D](); len(components) != n {
		return Vector[T, D]{}, fmt.Errorf("%w: expected %d, got %d", ErrDimensionMismatch, n, len(components))
	}
	return New[T, D](components...), nil
}

// New1 creates a one-component vector.
func New1[T scalar.Number](x T) Vector[T, D1] {
	return Vector[T, D1]{components: []T{x}}
}

// New2 creates a two-component vector.
func New2[T scalar.Number](x, y T) Vector[T, D2] {
	return Vector[T, D2]{components: []T{x, y}}
}

// New3 creates a three-component vector.
func New3[T scalar.Number](x, y, z T) Vector[T, D3] {
	return Vector[T, D3]{components: []T{x, y, z}}
}

// New4 creates a four-component vector.
func New4[T scalar.Number](x, y, z, w T) Vector[T, D4] {
	return Vector[T, D4]{components: []T{x, y, z, w}}
}

// Splat creates a vector with every component set to value.
func Splat[T scalar.Number, D Dim](value T) Vector[T, D] {
	c := make([]T, Len[D]())
	for i := range c {
		c[i] = value
	}
	return Vector[T, D]{components: c}
}

// Zero returns the vector with all components zero.
func Zero[T scalar.Number, D Dim]() Vector[T, D] {
	return Vector[T, D]{components: make([]T, Len[D]())}
}

// One returns the vector with all components one.
func One[T scalar.Number, D Dim]() Vector[T, D] {
	return Splat[T, D](scalar.One[T]())
}

// Two returns the vector with all components two.
func Two[T scalar.Number, D Dim]() Vector[T, D] {
	return Splat[T, D](scalar.Two[T]())
}

// data returns the backing slice, materializing zeros for the zero value.
// Callers must not write to the result.
func (v Vector[T, D]) data() []T {
	if v.components == nil {
		return make([]T, Len[D]())
	}
	return v.components
}

// Len returns the number of components.
func (v Vector[T, D]) Len() int {
	return Len[D]()
}

// At returns component i. It panics if i is out of range.
func (v Vector[T, D]) At(i int) T {
	return v.data()[i]
}

// Component returns component i, or ErrNoComponentWithGivenIndex.
func (v Vector[T, D]) Component(i int) (T, error) {
	if i < 0 || i >= v.Len() {
		var zero T
		return zero, fmt.Errorf("%w: %d (length %d)", ErrNoComponentWithGivenIndex, i, v.Len())
	}
	return v.data()[i], nil
}

// Set replaces component i. It panics if i is out of range.
func (v *Vector[T, D]) Set(i int, value T) {
	c := v.Components()
	c[i] = value
	v.components = c
}

// Components returns a copy of the components.
func (v Vector[T, D]) Components() []T {
	c := make([]T, v.Len())
	copy(c, v.data())
	return c
}

// Clone returns an independent copy of v.
func (v Vector[T, D]) Clone() Vector[T, D] {
	return Vector[T, D]{components: v.Components()}
}

// Length2 returns the sum of the squared components.
// It fails with ErrZeroComponents for a zero-dimensional vector.
func (v Vector[T, D]) Length2() (T, error) {
	c := v.data()
	if len(c) == 0 {
		var zero T
		return zero, ErrZeroComponents
	}
	sum := c[0] * c[0]
	for _, x := range c[1:] {
		sum += x * x
	}
	return sum, nil
}

// Length returns the Euclidean length.
func (v Vector[T, D]) Length() (T, error) {
	l2, err := v.Length2()
	if err != nil {
		var zero T
		return zero, err
	}
	return scalar.Sqrt(l2), nil
}

// Normalized returns v divided by its length.
// A vector whose length is exactly zero fails with ErrZeroLength.
func (v Vector[T, D]) Normalized() (Vector[T, D], error) {
	length, err := v.Length()
	if err != nil {
		return Vector[T, D]{}, err
	}
	if length == 0 {
		return Vector[T, D]{}, ErrZeroLength
	}
	return v.DivScalar(length), nil
}

// Dot returns the sum of the pairwise products of v and o.
func (v Vector[T, D]) Dot(o Vector[T, D]) T {
	a, b := v.data(), o.data()
	var sum T
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// Equal reports whether every component of v equals the matching component of o.
func (v Vector[T, D]) Equal(o Vector[T, D]) bool {
	a, b := v.data(), o.data()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ApproxEqual reports whether every component differs by at most eps.
func (v Vector[T, D]) ApproxEqual(o Vector[T, D], eps T) bool {
	a, b := v.data(), o.data()
	for i := range a {
		if !scalar.Equal(a[i], b[i], eps) {
			return false
		}
	}
	return true
}

// String formats v as "(c0, c1, ...)".
func (v Vector[T, D]) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, x := range v.data() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", x)
	}
	sb.WriteByte(')')
	return sb.String()
}

// Convert maps every component of v to T2 with a numeric conversion.
//
// Example:
//
//	v64 := vector.Convert[float64](vector.New3[float32](1, 2, 3))
func Convert[T2, T scalar.Number, D Dim](v Vector[T, D]) Vector[T2, D] {
	src := v.data()
	dst := make([]T2, len(src))
	for i, x := range src {
		dst[i] = T2(x)
	}
	return Vector[T2, D]{components: dst}
}
