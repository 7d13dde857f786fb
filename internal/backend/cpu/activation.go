package cpu

import (
	"github.com/born-ml/backprop/internal/backend/scalar"
	"github.com/born-ml/backprop/internal/tensor"
)

// Tanh computes the element-wise hyperbolic tangent.
func (cpu *CPUBackend) Tanh(a *tensor.Array) *tensor.Array {
	return cpu.apply(a, scalar.Tanh)
}

// Sigmoid computes the element-wise logistic function 1 / (1 + exp(-x)).
func (cpu *CPUBackend) Sigmoid(a *tensor.Array) *tensor.Array {
	return cpu.apply(a, scalar.Sigmoid)
}
