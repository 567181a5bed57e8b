// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package linalg

import (
	"github.com/born-ml/fixedmath/internal/scalar"
	"github.com/born-ml/fixedmath/internal/vector"
)

// Number is the constraint satisfied by every scalar type.
type Number = scalar.Number

// Dim is a compile-time component count.
type Dim = vector.Dim

// Dimension markers.
type (
	D1 = vector.D1
	D2 = vector.D2
	D3 = vector.D3
	D4 = vector.D4
)

// Vector is a fixed-dimension vector with value semantics.
type Vector[T Number, D Dim] = vector.Vector[T, D]

// Common vector errors.
var (
	ErrZeroComponents            = vector.ErrZeroComponents
	ErrNoComponentWithGivenIndex = vector.ErrNoComponentWithGivenIndex
	ErrDimensionMismatch         = vector.ErrDimensionMismatch
	ErrZeroLength                = vector.ErrZeroLength
)

// NewVector creates a vector from exactly D components.
func NewVector[T Number, D Dim](components ...T) Vector[T, D] {
	return vector.New[T, D](components...)
}

// Vec2 creates a two-component vector.
func Vec2[T Number](x, y T) Vector[T, D2] { return vector.New2(x, y) }

// Vec3 creates a three-component vector.
func Vec3[T Number](x, y, z T) Vector[T, D3] { return vector.New3(x, y, z) }

// Vec4 creates a four-component vector.
func Vec4[T Number](x, y, z, w T) Vector[T, D4] { return vector.New4(x, y, z, w) }

// Splat creates a vector with every component set to value.
func Splat[T Number, D Dim](value T) Vector[T, D] { return vector.Splat[T, D](value) }

// Cross returns the cross product a × b.
func Cross[T Number](a, b Vector[T, D3]) Vector[T, D3] { return vector.Cross(a, b) }

// ConvertVector converts every component of v to T2.
func ConvertVector[T2, T Number, D Dim](v Vector[T, D]) Vector[T2, D] {
	return vector.Convert[T2](v)
}
