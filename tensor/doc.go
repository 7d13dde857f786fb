// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the payload types of the backprop engine.
//
// # Overview
//
// This package provides:
//   - Shape: dimensions of a payload (an empty Shape is a scalar)
//   - Array: dense row-major float64 arrays of any rank
//   - Backend[P]: the payload arithmetic an autodiff engine composes
//
// # Basic Usage
//
//	import "github.com/born-ml/backprop/tensor"
//
//	func main() {
//	    w, err := tensor.FromRows([][]float64{{0.67, 0.41, 0.05, 0.01}})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(w.Shape()) // (1, 4)
//	}
//
// # Broadcasting
//
// There is none. Element-wise operations require equal shapes and fail with
// ErrShapeMismatch otherwise.
package tensor
