// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks on the autodiff engine.
//
// # Overview
//
// This package contains:
//   - Layers: Linear
//   - Activations: Sigmoid, Tanh
//   - Loss functions: SquaredError
//   - Utilities: Sequential, Module interface, Parameter
//   - Initialization: Xavier
//
// # Basic Usage
//
//	engine := autodiff.New(cpu.New())
//	layer, err := nn.NewLinear(engine, [][]float64{{0.67, 0.41}}, [][]float64{{0.1}})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	model := nn.NewSequential[*tensor.Array](layer, nn.NewSigmoid[*tensor.Array]())
//
//	x, _ := engine.Lift([][]float64{{0.5}, {0.8}})
//	out, err := model.Forward(x)
//	loss, err := nn.SquaredError(out, 0.5)
//	err = loss.Backward()
//
// Hand nn.Nodes(model.Parameters()) to an optimizer from the optim package.
package nn
