package matrix

import (
	"fmt"

	"github.com/born-ml/fixedmath/internal/vector"
)

// Transform helpers read and write the affine parts of a homogeneous matrix:
// the basis axes in columns 0..2 and the position in the last column.

func (m Matrix[T, C, R]) needRows() error {
	if rows := vector.Len[R](); rows < 3 {
		return fmt.Errorf("%w: need 3, have %d", ErrTooFewRows, rows)
	}
	return nil
}

func (m Matrix[T, C, R]) needAxes() error {
	if err := m.needRows(); err != nil {
		return err
	}
	if cols := vector.Len[C](); cols < 3 {
		return fmt.Errorf("%w: need 3, have %d", ErrTooFewColumns, cols)
	}
	return nil
}

// head returns the first three components of column i.
func (m Matrix[T, C, R]) head(i int) vector.Vector[T, vector.D3] {
	col := m.data()[i]
	return vector.New3(col.At(0), col.At(1), col.At(2))
}

// setHead replaces the first three components of column i.
func (m *Matrix[T, C, R]) setHead(i int, v vector.Vector[T, vector.D3]) {
	cols := m.cloneColumns()
	col := cols[i]
	col.Set(0, v.X())
	col.Set(1, v.Y())
	col.Set(2, v.Z())
	cols[i] = col
	m.columns = cols
}

// Position returns the first three components of the last column.
func (m Matrix[T, C, R]) Position() (vector.Vector[T, vector.D3], error) {
	if err := m.needRows(); err != nil {
		return vector.Vector[T, vector.D3]{}, err
	}
	return m.head(vector.Len[C]() - 1), nil
}

// SetPosition replaces the first three components of the last column.
func (m *Matrix[T, C, R]) SetPosition(position vector.Vector[T, vector.D3]) error {
	if err := m.needRows(); err != nil {
		return err
	}
	m.setHead(vector.Len[C]()-1, position)
	return nil
}

// Scale returns the lengths of the axis columns 0..2.
func (m Matrix[T, C, R]) Scale() (vector.Vector[T, vector.D3], error) {
	if err := m.needAxes(); err != nil {
		return vector.Vector[T, vector.D3]{}, err
	}
	var out [3]T
	for i := range out {
		l, err := m.data()[i].Length()
		if err != nil {
			return vector.Vector[T, vector.D3]{}, fmt.Errorf("axis %d: %w", i, err)
		}
		out[i] = l
	}
	return vector.New3(out[0], out[1], out[2]), nil
}

// SetScale normalizes each axis column and multiplies it by the matching
// component of scale. Any shear between the axes is lost.
func (m *Matrix[T, C, R]) SetScale(scale vector.Vector[T, vector.D3]) error {
	if err := m.needAxes(); err != nil {
		return err
	}
	cols := m.cloneColumns()
	for i := 0; i < 3; i++ {
		n, err := cols[i].Normalized()
		if err != nil {
			return fmt.Errorf("axis %d: %w", i, err)
		}
		cols[i] = n.MulScalar(scale.At(i))
	}
	m.columns = cols
	return nil
}

// X returns the x basis axis (column 0).
func (m Matrix[T, C, R]) X() (vector.Vector[T, vector.D3], error) { return m.axis(0) }

// Y returns the y basis axis (column 1).
func (m Matrix[T, C, R]) Y() (vector.Vector[T, vector.D3], error) { return m.axis(1) }

// Z returns the z basis axis (column 2).
func (m Matrix[T, C, R]) Z() (vector.Vector[T, vector.D3], error) { return m.axis(2) }

// SetX replaces the x basis axis.
func (m *Matrix[T, C, R]) SetX(x vector.Vector[T, vector.D3]) error { return m.setAxis(0, x) }

// SetY replaces the y basis axis.
func (m *Matrix[T, C, R]) SetY(y vector.Vector[T, vector.D3]) error { return m.setAxis(1, y) }

// SetZ replaces the z basis axis.
func (m *Matrix[T, C, R]) SetZ(z vector.Vector[T, vector.D3]) error { return m.setAxis(2, z) }

func (m Matrix[T, C, R]) axis(i int) (vector.Vector[T, vector.D3], error) {
	if err := m.needAxes(); err != nil {
		return vector.Vector[T, vector.D3]{}, err
	}
	return m.head(i), nil
}

func (m *Matrix[T, C, R]) setAxis(i int, v vector.Vector[T, vector.D3]) error {
	if err := m.needAxes(); err != nil {
		return err
	}
	m.setHead(i, v)
	return nil
}

// TransformPoint builds a translation to point, multiplies m by it and
// returns the resulting position.
func (m Matrix[T, C, R]) TransformPoint(point vector.Vector[T, vector.D3]) (vector.Vector[T, vector.D3], error) {
	if err := m.needAxes(); err != nil {
		return vector.Vector[T, vector.D3]{}, err
	}
	if rows, cols := vector.Len[R](), vector.Len[C](); rows > cols {
		return vector.Vector[T, vector.D3]{}, fmt.Errorf("%w: %d rows need as many columns, have %d",
			ErrTooFewColumns, rows, cols)
	}
	t, err := NewPosition[T, R, C](point)
	if err != nil {
		return vector.Vector[T, vector.D3]{}, err
	}
	return m.Mul(t).Position()
}
