package nn

import (
	"github.com/born-ml/backprop/internal/autodiff"
)

// Sigmoid applies 1 / (1 + e^-x) element-wise.
type Sigmoid[P any] struct{}

// NewSigmoid creates a new Sigmoid activation module.
func NewSigmoid[P any]() *Sigmoid[P] {
	return &Sigmoid[P]{}
}

// Forward applies the sigmoid.
func (s *Sigmoid[P]) Forward(input *autodiff.Node[P]) (*autodiff.Node[P], error) {
	return autodiff.Sigmoid(input)
}

// Parameters returns nil (Sigmoid has no trainable parameters).
func (s *Sigmoid[P]) Parameters() []*Parameter[P] {
	return nil
}

// Tanh applies the hyperbolic tangent element-wise.
type Tanh[P any] struct{}

// NewTanh creates a new Tanh activation module.
func NewTanh[P any]() *Tanh[P] {
	return &Tanh[P]{}
}

// Forward applies tanh.
func (t *Tanh[P]) Forward(input *autodiff.Node[P]) (*autodiff.Node[P], error) {
	return autodiff.Tanh(input)
}

// Parameters returns nil (Tanh has no trainable parameters).
func (t *Tanh[P]) Parameters() []*Parameter[P] {
	return nil
}
