// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand/v2"

	"github.com/born-ml/backprop/autodiff"
	"github.com/born-ml/backprop/internal/nn"
	"github.com/born-ml/backprop/tensor"
)

// Module is the common interface of all neural network modules.
type Module[P any] = nn.Module[P]

// Parameter is a named trainable leaf.
type Parameter[P any] = nn.Parameter[P]

// NewParameter wraps a leaf node as a parameter.
func NewParameter[P any](name string, node *autodiff.Node[P]) (*Parameter[P], error) {
	return nn.NewParameter(name, node)
}

// Layers

// Linear is a fully connected layer, y = W·x + b.
type Linear[P any] = nn.Linear[P]

// NewLinear creates a linear layer from initial weight and bias values.
func NewLinear[P any](engine *autodiff.Engine[P], weight, bias any) (*Linear[P], error) {
	return nn.NewLinear(engine, weight, bias)
}

// NewLinearXavier creates an array layer with Xavier weights and a zero bias.
func NewLinearXavier(engine *autodiff.Engine[*tensor.Array], fanIn, fanOut, batch int, rng *rand.Rand) (*Linear[*tensor.Array], error) {
	return nn.NewLinearXavier(engine, fanIn, fanOut, batch, rng)
}

// Activations

// Sigmoid is the logistic activation module.
type Sigmoid[P any] = nn.Sigmoid[P]

// NewSigmoid creates a Sigmoid module.
func NewSigmoid[P any]() *Sigmoid[P] {
	return nn.NewSigmoid[P]()
}

// Tanh is the hyperbolic tangent activation module.
type Tanh[P any] = nn.Tanh[P]

// NewTanh creates a Tanh module.
func NewTanh[P any]() *Tanh[P] {
	return nn.NewTanh[P]()
}

// Containers

// Sequential chains modules.
type Sequential[P any] = nn.Sequential[P]

// NewSequential creates a Sequential container.
func NewSequential[P any](modules ...Module[P]) *Sequential[P] {
	return nn.NewSequential(modules...)
}

// Loss

// SquaredError returns (prediction - target)² element-wise.
func SquaredError[P any](prediction *autodiff.Node[P], target any) (*autodiff.Node[P], error) {
	return nn.SquaredError(prediction, target)
}

// Utilities

// Xavier draws an [fanOut, fanIn] array with Glorot uniform initialization.
func Xavier(fanIn, fanOut int, rng *rand.Rand) *tensor.Array {
	return nn.Xavier(fanIn, fanOut, rng)
}

// Nodes returns the leaf nodes of params for an optimizer.
func Nodes[P any](params []*Parameter[P]) []*autodiff.Node[P] {
	return nn.Nodes(params)
}

// StateDict returns the current parameter values keyed by name.
func StateDict[P any](params []*Parameter[P]) map[string]P {
	return nn.StateDict(params)
}
