package vector

import (
	"fmt"

	"github.com/born-ml/fixedmath/internal/scalar"
)

// maxNamed is the largest dimension with x, y, z, w accessors.
const maxNamed = 4

// named checks that component i can be reached through a named accessor.
func (v Vector[T, D]) named(i int, name string) {
	n := v.Len()
	if n > maxNamed || i >= n {
		panic(fmt.Sprintf("vector: accessor %s is not defined for a %d-component vector", name, n))
	}
}

// X returns component 0.
func (v Vector[T, D]) X() T {
	v.named(0, "x")
	return v.data()[0]
}

// Y returns component 1.
func (v Vector[T, D]) Y() T {
	v.named(1, "y")
	return v.data()[1]
}

// Z returns component 2.
func (v Vector[T, D]) Z() T {
	v.named(2, "z")
	return v.data()[2]
}

// W returns component 3.
func (v Vector[T, D]) W() T {
	v.named(3, "w")
	return v.data()[3]
}

// SetX replaces component 0.
func (v *Vector[T, D]) SetX(x T) {
	v.named(0, "x")
	v.Set(0, x)
}

// SetY replaces component 1.
func (v *Vector[T, D]) SetY(y T) {
	v.named(1, "y")
	v.Set(1, y)
}

// SetZ replaces component 2.
func (v *Vector[T, D]) SetZ(z T) {
	v.named(2, "z")
	v.Set(2, z)
}

// SetW replaces component 3.
func (v *Vector[T, D]) SetW(w T) {
	v.named(3, "w")
	v.Set(3, w)
}

// XY returns (x, y).
func (v Vector[T, D]) XY() Vector[T, D2] {
	v.named(1, "xy")
	c := v.data()
	return New2(c[0], c[1])
}

// YZ returns (y, z).
func (v Vector[T, D]) YZ() Vector[T, D2] {
	v.named(2, "yz")
	c := v.data()
	return New2(c[1], c[2])
}

// ZW returns (z, w).
func (v Vector[T, D]) ZW() Vector[T, D2] {
	v.named(3, "zw")
	c := v.data()
	return New2(c[2], c[3])
}

// XYZ returns (x, y, z).
func (v Vector[T, D]) XYZ() Vector[T, D3] {
	v.named(2, "xyz")
	c := v.data()
	return New3(c[0], c[1], c[2])
}

// YZW returns (y, z, w).
func (v Vector[T, D]) YZW() Vector[T, D3] {
	v.named(3, "yzw")
	c := v.data()
	return New3(c[1], c[2], c[3])
}

// Cross returns the right-handed cross product a × b.
func Cross[T scalar.Number](a, b Vector[T, D3]) Vector[T, D3] {
	x, y := a.data(), b.data()
	return New3(
		x[1]*y[2]-x[2]*y[1],
		x[2]*y[0]-x[0]*y[2],
		x[0]*y[1]-x[1]*y[0],
	)
}
