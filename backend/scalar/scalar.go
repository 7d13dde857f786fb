// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package scalar provides the scalar backend of the backprop engine, whose
// payloads are plain float64 values.
//
// Example:
//
//	engine := autodiff.New(scalar.New())
//	x := engine.Leaf(2.0)
//	y := x.Mul(x).Tanh()
//	_ = y.Backward()
//	fmt.Println(x.Grad())
package scalar

import (
	internalscalar "github.com/born-ml/backprop/internal/backend/scalar"
	"github.com/born-ml/backprop/tensor"
)

// Backend represents the scalar backend implementation.
type Backend = internalscalar.ScalarBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend[float64] = (*Backend)(nil)

// New creates a new scalar backend.
func New() *Backend {
	return internalscalar.New()
}
