package matrix

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/born-ml/fixedmath/internal/quaternion"
	"github.com/born-ml/fixedmath/internal/vector"
)

// Mat4 is the 4×4 float32 homogeneous transform used by the constructors
// below.
type Mat4 = Matrix[float32, vector.D4, vector.D4]

type vec3 = vector.Vector[float32, vector.D3]

func mat4(c0, c1, c2, c3 vector.Vector[float32, vector.D4]) Mat4 {
	return New[float32, vector.D4, vector.D4](c0, c1, c2, c3)
}

// NewRotationOnAxis returns a rotation by radians around axis, built with
// Rodrigues' formula. The axis is normalized first.
func NewRotationOnAxis(axis vec3, radians float32) (Mat4, error) {
	a, err := axis.Normalized()
	if err != nil {
		return Mat4{}, fmt.Errorf("rotation axis: %w", err)
	}
	x, y, z := a.X(), a.Y(), a.Z()
	sin, cos := math32.Sin(-radians), math32.Cos(-radians)
	t := 1 - cos

	return mat4(
		vector.New4(t*x*x+cos, t*x*y-sin*z, t*x*z+sin*y, 0),
		vector.New4(t*x*y+sin*z, t*y*y+cos, t*y*z-sin*x, 0),
		vector.New4(t*x*z-sin*y, t*y*z+sin*x, t*z*z+cos, 0),
		vector.New4[float32](0, 0, 0, 1),
	), nil
}

// NewRotation returns the rotation described by q.
func NewRotation(q quaternion.Quaternion) (Mat4, error) {
	axis, angle := q.AxisAngle()
	return NewRotationOnAxis(axis, angle)
}

// View returns a right-handed look-at matrix for a camera at from looking
// towards to, with up pointing roughly upwards.
func View(from, to, up vec3) (Mat4, error) {
	z, err := from.Sub(to).Normalized()
	if err != nil {
		return Mat4{}, fmt.Errorf("view direction: %w", err)
	}
	x, err := vector.Cross(up, z).Normalized()
	if err != nil {
		return Mat4{}, fmt.Errorf("view up: %w", err)
	}
	y := vector.Cross(z, x)

	return mat4(
		vector.New4(x.X(), y.X(), z.X(), 0),
		vector.New4(x.Y(), y.Y(), z.Y(), 0),
		vector.New4(x.Z(), y.Z(), z.Z(), 0),
		vector.New4(-x.Dot(from), -y.Dot(from), -z.Dot(from), 1),
	), nil
}

// Ortho returns an orthographic projection for a view volume of the given
// width and height. The far plane is not validated.
func Ortho(size vector.Vector[float32, vector.D2], near, far float32) Mat4 {
	depth := near - far
	return mat4(
		vector.New4(2/size.X(), 0, 0, 0),
		vector.New4(0, 2/size.Y(), 0, 0),
		vector.New4(0, 0, 1/depth, 0),
		vector.New4(0, 0, near/depth, 1),
	)
}

// Projection returns a perspective projection with a vertical field of view
// of fov radians.
func Projection(fov, aspect, near, far float32) (Mat4, error) {
	if fov <= 0 || fov >= math32.Pi {
		return Mat4{}, fmt.Errorf("%w: %v", ErrOutOfRangeFOV, fov)
	}
	if near <= 0 || near >= far {
		return Mat4{}, fmt.Errorf("%w: near %v, far %v", ErrIncorrectNearFarPlanes, near, far)
	}

	yScale := 1 / math32.Tan(fov*0.5)
	xScale := yScale / aspect
	depth := near - far

	return mat4(
		vector.New4(xScale, 0, 0, 0),
		vector.New4(0, yScale, 0, 0),
		vector.New4(0, 0, far/depth, -1),
		vector.New4(0, 0, near*far/depth, 0),
	), nil
}
