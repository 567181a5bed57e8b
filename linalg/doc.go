// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package linalg provides the public API for fixed-dimension linear algebra.
//
// The package exposes:
//   - Vector[T, D]: a vector of D components of scalar type T
//   - Matrix[T, C, R]: a column-major matrix with C columns of R rows
//   - Quaternion: a float32 rotation
//
// Dimensions are type parameters (D1..D4), so mismatched shapes are rejected
// by the compiler.
//
// Example:
//
//	a := linalg.Vec3[float64](1, 2, 3)
//	b := linalg.Vec3[float64](4, 5, 6)
//	c := a.Add(b).MulScalar(2) // (10, 14, 18)
//
//	m, _ := linalg.NewPosition[float64, linalg.D4, linalg.D4](linalg.Vec3[float64](3, 4, 7))
//	p, _ := m.TransformPoint(linalg.Vec3[float64](0, 0, 0)) // (3, 4, 7)
package linalg
