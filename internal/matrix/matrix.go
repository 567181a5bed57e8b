// Package matrix implements fixed-size, column-major matrices on top of
// package vector, together with the homogeneous 3D transform constructors
// used for cameras and scene graphs.
package matrix

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/born-ml/fixedmath/internal/scalar"
	"github.com/born-ml/fixedmath/internal/vector"
)

// Matrix is a grid of C columns, each a vector of R components.
//
// Like vector.Vector, a Matrix behaves as a value: methods that change it
// install a fresh column slice, and the zero value is the zero matrix.
//
// Example:
//
//	m := matrix.Identity[float32, vector.D4, vector.D4]()
//	_ = m.SetPosition(vector.New3[float32](1, 2, 3))
type Matrix[T scalar.Number, C, R vector.Dim] struct {
	columns []vector.Vector[T, R]
}

// New creates a matrix from exactly C columns.
// It panics if the count is wrong.
func New[T scalar.Number, C, R vector.Dim](columns ...vector.Vector[T, R]) Matrix[T, C, R] {
	n := vector.Len[C]()
	if len(columns) != n {
		panic(fmt.Sprintf("matrix.New: expected %d columns, got %d", n, len(columns)))
	}
	c := make([]vector.Vector[T, R], n)
	copy(c, columns)
	return Matrix[T, C, R]{columns: c}
}

// FromArrays creates a matrix from C column slices of R values each.
func FromArrays[T scalar.Number, C, R vector.Dim](columns [][]T) (Matrix[T, C, R], error) {
	n := vector.Len[C]()
	if len(columns) != n {
		return Matrix[T, C, R]{}, fmt.Errorf("%w: expected %d columns, got %d",
			vector.ErrDimensionMismatch, n, len(columns))
	}
	out := make([]vector.Vector[T, R], n)
	for i, col := range columns {
		v, err := vector.FromSlice[T, R](col)
		if err != nil {
			return Matrix[T, C, R]{}, fmt.Errorf("column %d: %w", i, err)
		}
		out[i] = v
	}
	return Matrix[T, C, R]{columns: out}, nil
}

// FromSmallerArrays embeds a smaller column-major grid into the top-left
// corner of an identity matrix. Every column must have the same length.
//
// Example:
//
//	// 3×3 rotation block lifted into a 4×4 transform.
//	m, err := matrix.FromSmallerArrays[float32, vector.D4, vector.D4](rot3)
func FromSmallerArrays[T scalar.Number, C, R vector.Dim](columns [][]T) (Matrix[T, C, R], error) {
	rows, cols := vector.Len[R](), vector.Len[C]()

	small := 0
	if len(columns) > 0 {
		small = len(columns[0])
	}
	for i, col := range columns {
		if len(col) != small {
			return Matrix[T, C, R]{}, fmt.Errorf("%w: column %d has %d rows, column 0 has %d",
				vector.ErrDimensionMismatch, i, len(col), small)
		}
	}
	if small > rows {
		return Matrix[T, C, R]{}, fmt.Errorf("%w: need %d, have %d", ErrTooFewRows, small, rows)
	}
	if len(columns) > cols {
		return Matrix[T, C, R]{}, fmt.Errorf("%w: need %d, have %d", ErrTooFewColumns, len(columns), cols)
	}

	m := Identity[T, C, R]()
	for c, col := range columns {
		column := m.columns[c].Components()
		copy(column, col)
		m.columns[c] = vector.New[T, R](column...)
	}
	return m, nil
}

// Identity returns the matrix with ones on the main diagonal.
// Non-square shapes get ones wherever row index equals column index.
func Identity[T scalar.Number, C, R vector.Dim]() Matrix[T, C, R] {
	cols, rows := vector.Len[C](), vector.Len[R]()
	out := make([]vector.Vector[T, R], cols)
	for c := range out {
		v := vector.Zero[T, R]()
		if c < rows {
			v.Set(c, scalar.One[T]())
		}
		out[c] = v
	}
	return Matrix[T, C, R]{columns: out}
}

// NewPosition returns an identity matrix translated to position.
func NewPosition[T scalar.Number, C, R vector.Dim](position vector.Vector[T, vector.D3]) (Matrix[T, C, R], error) {
	m := Identity[T, C, R]()
	if err := m.SetPosition(position); err != nil {
		return Matrix[T, C, R]{}, err
	}
	return m, nil
}

// NewScale returns an identity matrix scaled by scale.
func NewScale[T scalar.Number, C, R vector.Dim](scale vector.Vector[T, vector.D3]) (Matrix[T, C, R], error) {
	m := Identity[T, C, R]()
	if err := m.SetScale(scale); err != nil {
		return Matrix[T, C, R]{}, err
	}
	return m, nil
}

// NewPositionScale returns an identity matrix translated to position and
// scaled by scale.
func NewPositionScale[T scalar.Number, C, R vector.Dim](position, scale vector.Vector[T, vector.D3]) (Matrix[T, C, R], error) {
	m := Identity[T, C, R]()
	if err := m.SetPosition(position); err != nil {
		return Matrix[T, C, R]{}, err
	}
	if err := m.SetScale(scale); err != nil {
		return Matrix[T, C, R]{}, err
	}
	return m, nil
}

// data returns the column slice, materializing zero columns for the zero value.
// Callers must not write to the result.
func (m Matrix[T, C, R]) data() []vector.Vector[T, R] {
	if m.columns == nil {
		return make([]vector.Vector[T, R], vector.Len[C]())
	}
	return m.columns
}

// RowLength returns the number of components in a row (C).
func (m Matrix[T, C, R]) RowLength() int { return vector.Len[C]() }

// RowCount returns the number of rows (R).
func (m Matrix[T, C, R]) RowCount() int { return vector.Len[R]() }

// ColumnLength returns the number of components in a column (R).
func (m Matrix[T, C, R]) ColumnLength() int { return vector.Len[R]() }

// ColumnCount returns the number of columns (C).
func (m Matrix[T, C, R]) ColumnCount() int { return vector.Len[C]() }

// Column returns column i. It panics if i is out of range.
func (m Matrix[T, C, R]) Column(i int) vector.Vector[T, R] {
	return m.data()[i]
}

// SetColumn replaces column i. It panics if i is out of range.
func (m *Matrix[T, C, R]) SetColumn(i int, v vector.Vector[T, R]) {
	cols := m.cloneColumns()
	cols[i] = v
	m.columns = cols
}

// At returns the component at the given column and row.
func (m Matrix[T, C, R]) At(column, row int) T {
	return m.data()[column].At(row)
}

// Set replaces the component at the given column and row.
func (m *Matrix[T, C, R]) Set(column, row int, value T) {
	cols := m.cloneColumns()
	cols[column].Set(row, value)
	m.columns = cols
}

// Row gathers component i of every column into a new vector.
func (m Matrix[T, C, R]) Row(i int) vector.Vector[T, C] {
	cols := m.data()
	out := make([]T, len(cols))
	for c, col := range cols {
		out[c] = col.At(i)
	}
	return vector.New[T, C](out...)
}

// Columns returns a copy of the columns.
func (m Matrix[T, C, R]) Columns() []vector.Vector[T, R] {
	return m.cloneColumns()
}

func (m Matrix[T, C, R]) cloneColumns() []vector.Vector[T, R] {
	cols := make([]vector.Vector[T, R], vector.Len[C]())
	copy(cols, m.data())
	return cols
}

// Transposed returns the matrix with rows and columns swapped.
// Only square matrices can be transposed; the returned error wraps
// ErrNotSquare together with ErrTooFewRows or ErrTooFewColumns.
func (m Matrix[T, C, R]) Transposed() (Matrix[T, C, R], error) {
	cols, rows := vector.Len[C](), vector.Len[R]()
	if rows < cols {
		return Matrix[T, C, R]{}, fmt.Errorf("%w: %w (%d×%d)", ErrNotSquare, ErrTooFewRows, cols, rows)
	}
	if cols < rows {
		return Matrix[T, C, R]{}, fmt.Errorf("%w: %w (%d×%d)", ErrNotSquare, ErrTooFewColumns, cols, rows)
	}

	src := m.data()
	out := make([]vector.Vector[T, R], cols)
	for c := range out {
		column := make([]T, rows)
		for r := range column {
			column[r] = src[r].At(c)
		}
		out[c] = vector.New[T, R](column...)
	}
	return Matrix[T, C, R]{columns: out}, nil
}

// Equal reports whether every column of m equals the matching column of o.
func (m Matrix[T, C, R]) Equal(o Matrix[T, C, R]) bool {
	a, b := m.data(), o.data()
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// ApproxEqual reports whether every component differs by at most eps.
func (m Matrix[T, C, R]) ApproxEqual(o Matrix[T, C, R], eps T) bool {
	a, b := m.data(), o.data()
	for i := range a {
		if !a[i].ApproxEqual(b[i], eps) {
			return false
		}
	}
	return true
}

// Hash returns a structural hash of the columns.
func (m Matrix[T, C, R]) Hash() uint64 {
	d := xxhash.New()
	for _, col := range m.data() {
		vector.WriteHash(d, col)
	}
	return d.Sum64()
}

// String formats m as a bracketed list of columns.
func (m Matrix[T, C, R]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, col := range m.data() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(col.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// Convert maps every component of m to T2 with a numeric conversion.
func Convert[T2, T scalar.Number, C, R vector.Dim](m Matrix[T, C, R]) Matrix[T2, C, R] {
	src := m.data()
	out := make([]vector.Vector[T2, R], len(src))
	for i, col := range src {
		out[i] = vector.Convert[T2](col)
	}
	return Matrix[T2, C, R]{columns: out}
}
