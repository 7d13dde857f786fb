// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/backprop/internal/tensor"
	"gonum.org/v1/gonum/mat"
)

// Shape represents the dimensions of a payload.
// Example: Shape{2, 3} is a 2×3 matrix, Shape{} a scalar.
type Shape = tensor.Shape

// Array is a dense, row-major N-dimensional array of float64.
type Array = tensor.Array

// Errors returned by payload operations.
var (
	ErrShapeMismatch  = tensor.ErrShapeMismatch
	ErrInvalidOperand = tensor.ErrInvalidOperand
)

// NewArray creates an Array of the given shape over data, taking ownership of data.
func NewArray(shape Shape, data []float64) (*Array, error) {
	return tensor.NewArray(shape, data)
}

// Zeros creates a zero-filled Array.
func Zeros(shape Shape) *Array {
	return tensor.Zeros(shape)
}

// Ones creates a one-filled Array.
func Ones(shape Shape) *Array {
	return tensor.Ones(shape)
}

// Full creates an Array filled with value.
func Full(shape Shape, value float64) *Array {
	return tensor.Full(shape, value)
}

// Scalar creates a zero-rank Array holding v.
func Scalar(v float64) *Array {
	return tensor.Scalar(v)
}

// FromSlice creates a rank-1 Array holding a copy of values.
func FromSlice(values []float64) (*Array, error) {
	return tensor.FromSlice(values)
}

// FromRows creates a rank-2 Array from rectangular rows.
//
// Example:
//
//	x, err := tensor.FromRows([][]float64{{0.5}, {0.8}, {0.3}, {0.4}}) // (4, 1)
func FromRows(rows [][]float64) (*Array, error) {
	return tensor.FromRows(rows)
}

// FromMatrix copies a gonum matrix into a rank-2 Array.
func FromMatrix(m mat.Matrix) *Array {
	return tensor.FromMatrix(m)
}
