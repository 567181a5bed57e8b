package linalg_test

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/fixedmath/linalg"
)

func TestPublicVector(t *testing.T) {
	a := linalg.Vec3[float64](1, 2, 3)
	b := linalg.NewVector[float64, linalg.D3](4, 5, 6)
	assert.True(t, a.Add(b).MulScalar(2).Equal(linalg.Vec3[float64](10, 14, 18)))
	assert.Equal(t, 32.0, a.Dot(b))

	_, err := linalg.Splat[float32, linalg.D2](0).Normalized()
	assert.ErrorIs(t, err, linalg.ErrZeroLength)

	i := linalg.ConvertVector[int](linalg.Vec2(1.5, 2.5))
	assert.True(t, i.Equal(linalg.Vec2(1, 2)))
}

func TestPublicMatrix(t *testing.T) {
	m, err := linalg.NewPosition[float64, linalg.D4, linalg.D4](linalg.Vec3[float64](3, 4, 7))
	require.NoError(t, err)
	p, err := m.TransformPoint(linalg.Vec3[float64](0, 0, 0))
	require.NoError(t, err)
	assert.True(t, p.Equal(linalg.Vec3[float64](3, 4, 7)))

	id := linalg.Identity[float64, linalg.D4, linalg.D4]()
	linalg.MulAssign(&id, m)
	assert.True(t, id.Equal(m))

	_, err = linalg.Projection(0, 1, 1, 2)
	assert.ErrorIs(t, err, linalg.ErrOutOfRangeFOV)
}

func TestPublicQuaternion(t *testing.T) {
	q, err := linalg.QuaternionFromAxisAngle(linalg.Vec3[float32](0, 0, 1), math32.Pi/2)
	require.NoError(t, err)
	v := q.Rotate(linalg.Vec3[float32](1, 0, 0))
	assert.True(t, v.ApproxEqual(linalg.Vec3[float32](0, 1, 0), 1e-5), "got %v", v)

	_, err = linalg.NewQuaternion(0, 0, 0, 0).Normalized()
	assert.ErrorIs(t, err, linalg.ErrZeroQuaternion)
}
