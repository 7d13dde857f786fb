// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimizers that update the leaf parameters of an
// autodiff graph.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// The engine never updates parameters on its own. An optimizer reads the
// gradient accumulated in each parameter by Backward and replaces the
// parameter's value.
//
// # Training Loop Pattern
//
//	engine := autodiff.New(cpu.New())
//	w, _ := engine.Lift([][]float64{{0.67, 0.41, 0.05, 0.01}})
//	b, _ := engine.Lift([][]float64{{0.1}})
//
//	optimizer, err := optim.NewSGD([]*autodiff.Node[*tensor.Array]{w, b}, optim.SGDConfig{LR: 0.3})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for range steps {
//	    // 1. Forward pass
//	    loss := buildLoss(w, b)
//
//	    // 2. Zero gradients, they accumulate otherwise
//	    optimizer.ZeroGrad()
//
//	    // 3. Backward pass
//	    if err := loss.Backward(); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // 4. Update parameters
//	    if err := optimizer.Step(); err != nil {
//	        log.Fatal(err)
//	    }
//	}
package optim
