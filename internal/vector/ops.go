package vector

import "github.com/born-ml/fixedmath/internal/scalar"

// Component-wise arithmetic. Each operation has a vector form, a broadcast
// scalar form and in-place (compound assignment) forms of both.

// Add returns v + o.
func (v Vector[T, D]) Add(o Vector[T, D]) Vector[T, D] {
	a, b := v.data(), o.data()
	out := make([]T, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return Vector[T, D]{components: out}
}

// Sub returns v - o.
func (v Vector[T, D]) Sub(o Vector[T, D]) Vector[T, D] {
	a, b := v.data(), o.data()
	out := make([]T, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return Vector[T, D]{components: out}
}

// Mul returns the component-wise product v * o.
func (v Vector[T, D]) Mul(o Vector[T, D]) Vector[T, D] {
	a, b := v.data(), o.data()
	out := make([]T, len(a))
	for i := range a {
		out[i] = a[i] * b[i]
	}
	return Vector[T, D]{components: out}
}

// Div returns the component-wise quotient v / o.
// Integer division by a zero component panics.
func (v Vector[T, D]) Div(o Vector[T, D]) Vector[T, D] {
	a, b := v.data(), o.data()
	out := make([]T, len(a))
	for i := range a {
		out[i] = a[i] / b[i]
	}
	return Vector[T, D]{components: out}
}

// Rem returns the component-wise remainder v % o.
func (v Vector[T, D]) Rem(o Vector[T, D]) Vector[T, D] {
	a, b := v.data(), o.data()
	out := make([]T, len(a))
	for i := range a {
		out[i] = scalar.Rem(a[i], b[i])
	}
	return Vector[T, D]{components: out}
}

// AddScalar returns v with s added to every component.
func (v Vector[T, D]) AddScalar(s T) Vector[T, D] {
	a := v.data()
	out := make([]T, len(a))
	for i := range a {
		out[i] = a[i] + s
	}
	return Vector[T, D]{components: out}
}

// SubScalar returns v with s subtracted from every component.
func (v Vector[T, D]) SubScalar(s T) Vector[T, D] {
	a := v.data()
	out := make([]T, len(a))
	for i := range a {
		out[i] = a[i] - s
	}
	return Vector[T, D]{components: out}
}

// MulScalar returns v scaled by s.
func (v Vector[T, D]) MulScalar(s T) Vector[T, D] {
	a := v.data()
	out := make([]T, len(a))
	for i := range a {
		out[i] = a[i] * s
	}
	return Vector[T, D]{components: out}
}

// DivScalar returns v with every component divided by s.
func (v Vector[T, D]) DivScalar(s T) Vector[T, D] {
	a := v.data()
	out := make([]T, len(a))
	for i := range a {
		out[i] = a[i] / s
	}
	return Vector[T, D]{components: out}
}

// RemScalar returns v with every component replaced by its remainder mod s.
func (v Vector[T, D]) RemScalar(s T) Vector[T, D] {
	a := v.data()
	out := make([]T, len(a))
	for i := range a {
		out[i] = scalar.Rem(a[i], s)
	}
	return Vector[T, D]{components: out}
}

// Neg returns -v.
func (v Vector[T, D]) Neg() Vector[T, D] {
	a := v.data()
	out := make([]T, len(a))
	for i := range a {
		out[i] = -a[i]
	}
	return Vector[T, D]{components: out}
}

// AddAssign sets v to v + o.
func (v *Vector[T, D]) AddAssign(o Vector[T, D]) { *v = v.Add(o) }

// SubAssign sets v to v - o.
func (v *Vector[T, D]) SubAssign(o Vector[T, D]) { *v = v.Sub(o) }

// MulAssign sets v to v * o.
func (v *Vector[T, D]) MulAssign(o Vector[T, D]) { *v = v.Mul(o) }

// DivAssign sets v to v / o.
func (v *Vector[T, D]) DivAssign(o Vector[T, D]) { *v = v.Div(o) }

// RemAssign sets v to v % o.
func (v *Vector[T, D]) RemAssign(o Vector[T, D]) { *v = v.Rem(o) }

// AddScalarAssign adds s to every component of v.
func (v *Vector[T, D]) AddScalarAssign(s T) { *v = v.AddScalar(s) }

// SubScalarAssign subtracts s from every component of v.
func (v *Vector[T, D]) SubScalarAssign(s T) { *v = v.SubScalar(s) }

// MulScalarAssign scales v by s.
func (v *Vector[T, D]) MulScalarAssign(s T) { *v = v.MulScalar(s) }

// DivScalarAssign divides every component of v by s.
func (v *Vector[T, D]) DivScalarAssign(s T) { *v = v.DivScalar(s) }

// RemScalarAssign replaces every component of v by its remainder mod s.
func (v *Vector[T, D]) RemScalarAssign(s T) { *v = v.RemScalar(s) }
