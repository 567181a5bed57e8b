// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package linalg

import (
	"github.com/born-ml/fixedmath/internal/matrix"
	"github.com/born-ml/fixedmath/internal/quaternion"
)

// Matrix is a column-major matrix of C columns with R rows each.
type Matrix[T Number, C, R Dim] = matrix.Matrix[T, C, R]

// Mat4 is the float32 4×4 matrix used by the projection helpers.
type Mat4 = matrix.Mat4

// Quaternion is a float32 rotation.
type Quaternion = quaternion.Quaternion

// Common matrix and quaternion errors.
var (
	ErrNotSquare              = matrix.ErrNotSquare
	ErrTooFewRows             = matrix.ErrTooFewRows
	ErrTooFewColumns          = matrix.ErrTooFewColumns
	ErrOutOfRangeFOV          = matrix.ErrOutOfRangeFOV
	ErrIncorrectNearFarPlanes = matrix.ErrIncorrectNearFarPlanes
	ErrZeroQuaternion         = quaternion.ErrZeroLength
)

// NewMatrix creates a matrix from exactly C columns.
func NewMatrix[T Number, C, R Dim](columns ...Vector[T, R]) Matrix[T, C, R] {
	return matrix.New[T, C](columns...)
}

// MatrixFromArrays creates a matrix from C column slices of R values each.
func MatrixFromArrays[T Number, C, R Dim](columns [][]T) (Matrix[T, C, R], error) {
	return matrix.FromArrays[T, C, R](columns)
}

// MatrixFromSmallerArrays embeds a smaller column-major block into the
// identity.
func MatrixFromSmallerArrays[T Number, C, R Dim](columns [][]T) (Matrix[T, C, R], error) {
	return matrix.FromSmallerArrays[T, C, R](columns)
}

// Identity returns the identity matrix.
func Identity[T Number, C, R Dim]() Matrix[T, C, R] { return matrix.Identity[T, C, R]() }

// NewPosition returns a translation matrix.
func NewPosition[T Number, C, R Dim](position Vector[T, D3]) (Matrix[T, C, R], error) {
	return matrix.NewPosition[T, C, R](position)
}

// NewScale returns a scaling matrix.
func NewScale[T Number, C, R Dim](scale Vector[T, D3]) (Matrix[T, C, R], error) {
	return matrix.NewScale[T, C, R](scale)
}

// NewPositionScale returns a matrix that scales and then translates.
func NewPositionScale[T Number, C, R Dim](position, scale Vector[T, D3]) (Matrix[T, C, R], error) {
	return matrix.NewPositionScale[T, C, R](position, scale)
}

// MulAssign sets m to m.Mul(o).
func MulAssign[T Number, D Dim](m *Matrix[T, D, D], o Matrix[T, D, D]) { matrix.MulAssign(m, o) }

// ConvertMatrix converts every element of m to T2.
func ConvertMatrix[T2, T Number, C, R Dim](m Matrix[T, C, R]) Matrix[T2, C, R] {
	return matrix.Convert[T2](m)
}

// Rotation and projection helpers.

// NewRotationOnAxis returns the rotation by radians around axis.
func NewRotationOnAxis(axis Vector[float32, D3], radians float32) (Mat4, error) {
	return matrix.NewRotationOnAxis(axis, radians)
}

// NewRotation returns the rotation matrix equivalent to q.
func NewRotation(q Quaternion) (Mat4, error) { return matrix.NewRotation(q) }

// View returns a look-at view matrix.
func View(from, to, up Vector[float32, D3]) (Mat4, error) { return matrix.View(from, to, up) }

// Ortho returns an orthographic projection.
func Ortho(size Vector[float32, D2], near, far float32) Mat4 { return matrix.Ortho(size, near, far) }

// Projection returns a perspective projection.
func Projection(fov, aspect, near, far float32) (Mat4, error) {
	return matrix.Projection(fov, aspect, near, far)
}

// NewQuaternion creates a quaternion from (x, y, z, w).
func NewQuaternion(x, y, z, w float32) Quaternion { return quaternion.New(x, y, z, w) }

// IdentityQuaternion returns the no-op rotation.
func IdentityQuaternion() Quaternion { return quaternion.Identity() }

// QuaternionFromAxisAngle returns the rotation by radians around axis.
func QuaternionFromAxisAngle(axis Vector[float32, D3], radians float32) (Quaternion, error) {
	return quaternion.FromAxisAngle(axis, radians)
}
