// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the array backend of the backprop engine.
//
// # Overview
//
// Payloads are dense float64 arrays of any rank (*tensor.Array):
//   - Element-wise add, multiply, scale and accumulate on gonum/floats
//   - Matrix product and transpose of rank-2 arrays on gonum/mat
//   - Element-wise pow, exp, tanh and sigmoid
//   - No broadcasting: element-wise operands must have equal shapes
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/backprop/autodiff"
//	    "github.com/born-ml/backprop/backend/cpu"
//	)
//
//	func main() {
//	    engine := autodiff.New(cpu.New())
//	    w, _ := engine.Lift([][]float64{{0.67, 0.41, 0.05, 0.01}})
//	    x, _ := engine.Lift([][]float64{{0.5}, {0.8}, {0.3}, {0.4}})
//	    y, _ := autodiff.MatMul(w, x)
//	    _ = y.Backward()
//	}
//
// # Lifting
//
// Backend.Lift accepts *tensor.Array, Go numbers (rank 0), []float64
// (rank 1), [][]float64 and gonum matrices (rank 2).
//
// # Thread Safety
//
// The backend holds no state. Payloads are not synchronized; a graph must be
// used from one goroutine at a time.
package cpu
