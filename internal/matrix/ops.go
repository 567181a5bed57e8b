package matrix

import (
	"fmt"

	"github.com/born-ml/fixedmath/internal/scalar"
	"github.com/born-ml/fixedmath/internal/vector"
)

// zip applies op to each pair of matching columns.
func zip[T scalar.Number, C, R vector.Dim](a, b Matrix[T, C, R],
	op func(x, y vector.Vector[T, R]) vector.Vector[T, R],
) Matrix[T, C, R] {
	x, y := a.data(), b.data()
	out := make([]vector.Vector[T, R], len(x))
	for i := range x {
		out[i] = op(x[i], y[i])
	}
	return Matrix[T, C, R]{columns: out}
}

// Add returns the component-wise sum m + o.
func (m Matrix[T, C, R]) Add(o Matrix[T, C, R]) Matrix[T, C, R] {
	return zip(m, o, vector.Vector[T, R].Add)
}

// Sub returns the component-wise difference m - o.
func (m Matrix[T, C, R]) Sub(o Matrix[T, C, R]) Matrix[T, C, R] {
	return zip(m, o, vector.Vector[T, R].Sub)
}

// Div returns the component-wise quotient m / o.
func (m Matrix[T, C, R]) Div(o Matrix[T, C, R]) Matrix[T, C, R] {
	return zip(m, o, vector.Vector[T, R].Div)
}

// Rem returns the component-wise remainder m % o.
func (m Matrix[T, C, R]) Rem(o Matrix[T, C, R]) Matrix[T, C, R] {
	return zip(m, o, vector.Vector[T, R].Rem)
}

// AddAssign sets m to m + o.
func (m *Matrix[T, C, R]) AddAssign(o Matrix[T, C, R]) { *m = m.Add(o) }

// SubAssign sets m to m - o.
func (m *Matrix[T, C, R]) SubAssign(o Matrix[T, C, R]) { *m = m.Sub(o) }

// DivAssign sets m to m / o.
func (m *Matrix[T, C, R]) DivAssign(o Matrix[T, C, R]) { *m = m.Div(o) }

// RemAssign sets m to m % o.
func (m *Matrix[T, C, R]) RemAssign(o Matrix[T, C, R]) { *m = m.Rem(o) }

// Mul multiplies m by o.
//
// Column r, component c of the result is m.Column(r) · o.Row(c). For square
// matrices this means m.Mul(o) applies m first and o second: the composed
// transform maps a point p to o(m(p)). It panics if R > C, where column r of
// m does not exist.
//
// Example:
//
//	// Translate by (1, 2, 3), then scale by 2 and translate by (1, 0, 1).
//	m := a.Mul(b) // m.Position() == (3, 4, 7)
func (m Matrix[T, C, R]) Mul(o Matrix[T, R, C]) Matrix[T, R, C] {
	cols, rows := vector.Len[C](), vector.Len[R]()
	if rows > cols {
		panic(fmt.Sprintf("matrix.Mul: %d rows exceed %d columns", rows, cols))
	}

	a := m.data()
	orows := make([]vector.Vector[T, R], cols)
	for c := range orows {
		orows[c] = o.Row(c)
	}

	out := make([]vector.Vector[T, C], rows)
	for r := range out {
		column := make([]T, cols)
		for c := range column {
			column[c] = a[r].Dot(orows[c])
		}
		out[r] = vector.New[T, C](column...)
	}
	return Matrix[T, R, C]{columns: out}
}

// MulAssign sets m to m.Mul(o). Only square matrices can be updated in place.
func MulAssign[T scalar.Number, D vector.Dim](m *Matrix[T, D, D], o Matrix[T, D, D]) {
	*m = m.Mul(o)
}
