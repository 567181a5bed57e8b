package quaternion

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/fixedmath/internal/vector"
)

const eps = 1e-5

func TestConstructors(t *testing.T) {
	q := New(1, 2, 3, 4)
	assert.Equal(t, float32(1), q.X())
	assert.Equal(t, float32(2), q.Y())
	assert.Equal(t, float32(3), q.Z())
	assert.Equal(t, float32(4), q.W())
	assert.True(t, q.XYZ().Equal(vector.New3[float32](1, 2, 3)))
	assert.True(t, q.XYZW().Equal(vector.New4[float32](1, 2, 3, 4)))

	assert.True(t, FromVec(vector.New3[float32](1, 2, 3), 4).Equal(q))
	assert.True(t, FromVec4(vector.New4[float32](1, 2, 3, 4)).Equal(q))
	assert.True(t, Identity().Equal(New(0, 0, 0, 1)))
}

func TestSetters(t *testing.T) {
	q := Identity()
	orig := q

	q.SetX(5)
	q.SetY(6)
	q.SetZ(7)
	q.SetW(8)
	assert.True(t, q.Equal(New(5, 6, 7, 8)))

	q.SetXYZ(vector.New3[float32](-1, -2, -3))
	assert.True(t, q.Equal(New(-1, -2, -3, 8)))
	assert.True(t, orig.Equal(Identity()), "copies must not observe updates")
}

func TestLength(t *testing.T) {
	q := New(1, 2, 2, 4)
	assert.Equal(t, float32(25), q.LengthSquared())
	assert.Equal(t, float32(5), q.Length())

	n, err := q.Normalized()
	require.NoError(t, err)
	assert.True(t, n.ApproxEqual(New(0.2, 0.4, 0.4, 0.8), eps))
	assert.InDelta(t, 1, n.Length(), eps)

	_, err = New(0.001, 0, 0, 0.001).Normalized()
	assert.ErrorIs(t, err, ErrZeroLength)
}

func TestFromAxisAngle(t *testing.T) {
	q, err := FromAxisAngle(vector.New3[float32](0, 0, 3), math32.Pi)
	require.NoError(t, err)
	assert.True(t, q.ApproxEqual(New(0, 0, 1, 0), eps), "got %v", q)

	_, err = FromAxisAngle(vector.New3[float32](0, 0, 0), 1)
	assert.ErrorIs(t, err, vector.ErrZeroLength)
}

func TestAxisAngle_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		axis  vector.Vector[float32, vector.D3]
		angle float32
	}{
		{"x quarter turn", vector.New3[float32](1, 0, 0), math32.Pi / 2},
		{"unnormalized axis", vector.New3[float32](0, 4, 0), 1.2},
		{"skew axis", vector.New3[float32](1, -2, 0.5), 2.5},
		{"small angle", vector.New3[float32](0, 1, 1), 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := FromAxisAngle(tt.axis, tt.angle)
			require.NoError(t, err)

			axis, angle := q.AxisAngle()
			want, err := tt.axis.Normalized()
			require.NoError(t, err)
			assert.InDelta(t, tt.angle, angle, 1e-4)
			assert.True(t, axis.ApproxEqual(want, 1e-3), "got %v, want %v", axis, want)
		})
	}
}

func TestAxisAngle_Identity(t *testing.T) {
	axis, angle := Identity().AxisAngle()
	assert.True(t, axis.Equal(vector.New3[float32](1, 0, 0)))
	assert.Equal(t, float32(0), angle)

	// w > 1 is renormalized before the angle is taken.
	axis, angle = New(0, 0, 0, 2).AxisAngle()
	assert.True(t, axis.Equal(vector.New3[float32](1, 0, 0)))
	assert.Equal(t, float32(0), angle)
}

func TestMul(t *testing.T) {
	i := New(1, 0, 0, 0)
	j := New(0, 1, 0, 0)
	k := New(0, 0, 1, 0)

	assert.True(t, i.Mul(j).Equal(k))
	assert.True(t, j.Mul(i).Equal(k.Neg()))
	assert.True(t, i.Mul(i).Equal(New(0, 0, 0, -1)))

	q := New(1, 2, 3, 4)
	assert.True(t, q.Mul(Identity()).Equal(q))
	assert.True(t, Identity().Mul(q).Equal(q))
}

func TestMul_ComposesRotations(t *testing.T) {
	z := vector.New3[float32](0, 0, 1)
	a, err := FromAxisAngle(z, 0.4)
	require.NoError(t, err)
	b, err := FromAxisAngle(z, 0.9)
	require.NoError(t, err)
	ab, err := FromAxisAngle(z, 1.3)
	require.NoError(t, err)

	assert.True(t, a.Mul(b).ApproxEqual(ab, eps))
}

func TestRotate(t *testing.T) {
	q, err := FromAxisAngle(vector.New3[float32](0, 0, 1), math32.Pi/2)
	require.NoError(t, err)

	got := q.Rotate(vector.New3[float32](1, 0, 0))
	assert.True(t, got.ApproxEqual(vector.New3[float32](0, 1, 0), eps), "got %v", got)
}

func TestInverted(t *testing.T) {
	q := New(1, 2, 3, 4)
	before := q

	inv := q.Inverted()
	assert.True(t, q.Equal(before), "receiver must not change")
	assert.True(t, q.Mul(inv).ApproxEqual(Identity(), eps), "got %v", q.Mul(inv))
	assert.True(t, inv.ApproxEqual(q.Conjugate().DivScalar(30), eps))

	tiny := New(0.001, 0, 0, 0)
	assert.True(t, tiny.Inverted().Equal(tiny))
}

func TestConjugate(t *testing.T) {
	assert.True(t, New(1, -2, 3, 4).Conjugate().Equal(New(-1, 2, -3, 4)))
}

func TestComponentWise(t *testing.T) {
	a := New(4, 6, 8, 10)
	b := New(2, 4, 3, 5)

	assert.True(t, a.Add(b).Equal(New(6, 10, 11, 15)))
	assert.True(t, a.Sub(b).Equal(New(2, 2, 5, 5)))
	assert.True(t, a.Div(b).Equal(New(2, 1.5, 8.0/3, 2)))
	assert.True(t, a.Rem(b).Equal(New(0, 2, 2, 0)))
	assert.True(t, a.AddScalar(1).Equal(New(5, 7, 9, 11)))
	assert.True(t, a.SubScalar(1).Equal(New(3, 5, 7, 9)))
	assert.True(t, a.MulScalar(0.5).Equal(New(2, 3, 4, 5)))
	assert.True(t, a.DivScalar(2).Equal(New(2, 3, 4, 5)))
	assert.True(t, a.RemScalar(3).Equal(New(1, 0, 2, 1)))
	assert.True(t, a.Neg().Equal(New(-4, -6, -8, -10)))
	assert.Equal(t, "(4, 6, 8, 10)", a.String())
}
