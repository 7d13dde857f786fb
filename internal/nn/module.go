// Package nn builds small networks on top of the autodiff engine.
//
// This package provides building blocks for constructing neural networks:
//   - Module interface: Base interface for all NN components
//   - Parameter: Named trainable leaf
//   - Linear: Fully connected layer, y = W·x + b
//   - Activations: Sigmoid, Tanh
//   - Loss functions: SquaredError
//   - Sequential: Container for stacking layers
//
// Modules are generic over the payload type, so the same model runs on the
// scalar and the array engines.
package nn

import (
	"github.com/born-ml/backprop/internal/autodiff"
)

// Module is the base interface for all neural network components.
//
// Modules can be composed to build larger models:
//
//	model := nn.NewSequential[*tensor.Array](
//	    linear,
//	    nn.NewSigmoid[*tensor.Array](),
//	)
type Module[P any] interface {
	// Forward records the module's computation on input and returns its output node.
	Forward(input *autodiff.Node[P]) (*autodiff.Node[P], error)

	// Parameters returns all trainable parameters, or nil for modules without any.
	Parameters() []*Parameter[P]
}

// Nodes returns the leaf nodes of params, in order, for handing to an optimizer.
func Nodes[P any](params []*Parameter[P]) []*autodiff.Node[P] {
	nodes := make([]*autodiff.Node[P], len(params))
	for i, p := range params {
		nodes[i] = p.Node()
	}
	return nodes
}

// StateDict returns the current values of params keyed by name.
func StateDict[P any](params []*Parameter[P]) map[string]P {
	state := make(map[string]P, len(params))
	for _, p := range params {
		state[p.Name()] = p.Value()
	}
	return state
}
