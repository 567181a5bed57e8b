// Package quaternion implements float32 rotation quaternions on top of
// vector.Vector.
package quaternion

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/born-ml/fixedmath/internal/vector"
)

// epsilon is the squared-length threshold below which a quaternion is
// treated as zero.
const epsilon = 1e-5

// Quaternion is a rotation (x, y, z, w) with w the real part.
// The zero value has zero length; use Identity for the no-op rotation.
type Quaternion struct {
	v vector.Vector[float32, vector.D4]
}

// New creates a quaternion from its four components.
func New(x, y, z, w float32) Quaternion {
	return Quaternion{v: vector.New4(x, y, z, w)}
}

// Identity returns the rotation that leaves every vector unchanged.
func Identity() Quaternion {
	return New(0, 0, 0, 1)
}

// FromVec creates a quaternion from an imaginary part and a real part.
func FromVec(xyz vector.Vector[float32, vector.D3], w float32) Quaternion {
	return New(xyz.X(), xyz.Y(), xyz.Z(), w)
}

// FromVec4 creates a quaternion from an (x, y, z, w) vector.
func FromVec4(xyzw vector.Vector[float32, vector.D4]) Quaternion {
	return Quaternion{v: xyzw}
}

// FromAxisAngle returns the unit quaternion rotating by radians around axis.
// The axis is normalized first and must not have zero length.
//
// Example:
//
//	q, err := quaternion.FromAxisAngle(vector.New3[float32](0, 1, 0), math32.Pi/2)
func FromAxisAngle(axis vector.Vector[float32, vector.D3], radians float32) (Quaternion, error) {
	n, err := axis.Normalized()
	if err != nil {
		return Quaternion{}, fmt.Errorf("quaternion: axis: %w", err)
	}
	half := radians * 0.5
	return FromVec(n.MulScalar(math32.Sin(half)), math32.Cos(half)).Normalized()
}

// X returns the first imaginary component.
func (q Quaternion) X() float32 { return q.v.X() }

// Y returns the second imaginary component.
func (q Quaternion) Y() float32 { return q.v.Y() }

// Z returns the third imaginary component.
func (q Quaternion) Z() float32 { return q.v.Z() }

// W returns the real component.
func (q Quaternion) W() float32 { return q.v.W() }

// XYZ returns the imaginary part.
func (q Quaternion) XYZ() vector.Vector[float32, vector.D3] { return q.v.XYZ() }

// XYZW returns all four components.
func (q Quaternion) XYZW() vector.Vector[float32, vector.D4] { return q.v.Clone() }

// SetX replaces the first imaginary component.
func (q *Quaternion) SetX(x float32) { q.v.SetX(x) }

// SetY replaces the second imaginary component.
func (q *Quaternion) SetY(y float32) { q.v.SetY(y) }

// SetZ replaces the third imaginary component.
func (q *Quaternion) SetZ(z float32) { q.v.SetZ(z) }

// SetW replaces the real component.
func (q *Quaternion) SetW(w float32) { q.v.SetW(w) }

// SetXYZ replaces the imaginary part.
func (q *Quaternion) SetXYZ(xyz vector.Vector[float32, vector.D3]) {
	*q = FromVec(xyz, q.W())
}

// LengthSquared returns x² + y² + z² + w².
func (q Quaternion) LengthSquared() float32 {
	xyz := q.XYZ()
	return q.W()*q.W() + xyz.Dot(xyz)
}

// Length returns the Euclidean length.
func (q Quaternion) Length() float32 {
	return math32.Sqrt(q.LengthSquared())
}

// Normalized returns q scaled to unit length.
func (q Quaternion) Normalized() (Quaternion, error) {
	l2 := q.LengthSquared()
	if l2 < epsilon {
		return Quaternion{}, ErrZeroLength
	}
	l := math32.Sqrt(l2)
	return FromVec(q.XYZ().DivScalar(l), q.W()/l), nil
}

// Inverted returns the multiplicative inverse, the conjugate divided by the
// squared length. A quaternion too short to invert is returned unchanged.
// The receiver is never modified.
func (q Quaternion) Inverted() Quaternion {
	l2 := q.LengthSquared()
	if math32.Abs(l2) <= epsilon {
		return q
	}
	inv := 1 / l2
	return FromVec(q.XYZ().MulScalar(-inv), q.W()*inv)
}

// Conjugate returns (-x, -y, -z, w).
func (q Quaternion) Conjugate() Quaternion {
	return FromVec(q.XYZ().Neg(), q.W())
}

// AxisAngle returns the rotation axis and angle in radians.
//
// A quaternion with w > 1 is normalized first. When the rotation is
// (numerically) the identity the axis is undefined and ((1, 0, 0), 0) is
// returned.
func (q Quaternion) AxisAngle() (vector.Vector[float32, vector.D3], float32) {
	n := q
	if q.W() > 1 {
		if nq, err := q.Normalized(); err == nil {
			n = nq
		}
	}
	angle := 2 * math32.Acos(n.W())
	den := math32.Sqrt(1 - n.W()*n.W())
	if den > epsilon {
		return n.XYZ().DivScalar(den), angle
	}
	return vector.New3[float32](1, 0, 0), 0
}

// Mul returns the Hamilton product q·o, the rotation o followed by q.
func (q Quaternion) Mul(o Quaternion) Quaternion {
	a, b := q.XYZ(), o.XYZ()
	cross := vector.Cross(a, b)
	return New(
		q.X()*o.W()+o.X()*q.W()+cross.X(),
		q.Y()*o.W()+o.Y()*q.W()+cross.Y(),
		q.Z()*o.W()+o.Z()*q.W()+cross.Z(),
		q.W()*o.W()-a.Dot(b),
	)
}

// Rotate applies the rotation q to v, computing q·(v, 0)·q⁻¹.
func (q Quaternion) Rotate(v vector.Vector[float32, vector.D3]) vector.Vector[float32, vector.D3] {
	return q.Mul(FromVec(v, 0)).Mul(q.Inverted()).XYZ()
}

// Add returns q + o component-wise.
func (q Quaternion) Add(o Quaternion) Quaternion { return FromVec4(q.v.Add(o.v)) }

// Sub returns q - o component-wise.
func (q Quaternion) Sub(o Quaternion) Quaternion { return FromVec4(q.v.Sub(o.v)) }

// Div returns the component-wise quotient q / o.
func (q Quaternion) Div(o Quaternion) Quaternion { return FromVec4(q.v.Div(o.v)) }

// Rem returns the component-wise remainder q % o.
func (q Quaternion) Rem(o Quaternion) Quaternion { return FromVec4(q.v.Rem(o.v)) }

// AddScalar adds s to every component.
func (q Quaternion) AddScalar(s float32) Quaternion { return FromVec4(q.v.AddScalar(s)) }

// SubScalar subtracts s from every component.
func (q Quaternion) SubScalar(s float32) Quaternion { return FromVec4(q.v.SubScalar(s)) }

// MulScalar scales every component by s.
func (q Quaternion) MulScalar(s float32) Quaternion { return FromVec4(q.v.MulScalar(s)) }

// DivScalar divides every component by s.
func (q Quaternion) DivScalar(s float32) Quaternion { return FromVec4(q.v.DivScalar(s)) }

// RemScalar replaces every component by its remainder mod s.
func (q Quaternion) RemScalar(s float32) Quaternion { return FromVec4(q.v.RemScalar(s)) }

// Neg returns -q.
func (q Quaternion) Neg() Quaternion { return FromVec4(q.v.Neg()) }

// Equal reports whether all four components are equal.
func (q Quaternion) Equal(o Quaternion) bool { return q.v.Equal(o.v) }

// ApproxEqual reports whether every component differs by at most eps.
func (q Quaternion) ApproxEqual(o Quaternion, eps float32) bool { return q.v.ApproxEqual(o.v, eps) }

// String formats q as "(x, y, z, w)".
func (q Quaternion) String() string { return q.v.String() }
