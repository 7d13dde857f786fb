// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/backprop/internal/tensor"
)

// Backend supplies the payload arithmetic of an autodiff engine.
// P is float64 for the scalar backend and *Array for the array backend.
//
// Implementations:
//   - backend/cpu: Backend[*Array]
//   - backend/scalar: Backend[float64]
type Backend[P any] = tensor.Backend[P]

// MatrixProducter is implemented by backends whose natural product is the
// matrix product.
type MatrixProducter = tensor.MatrixProducter
