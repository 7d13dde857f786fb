// Package scalar implements the scalar backend: payloads are plain float64
// values of rank 0.
package scalar

import (
	"math"

	"github.com/born-ml/backprop/internal/tensor"
	"github.com/pkg/errors"
)

// ScalarBackend implements tensor.Backend for float64 payloads.
type ScalarBackend struct{}

// Compile-time check that ScalarBackend implements tensor.Backend.
var _ tensor.Backend[float64] = (*ScalarBackend)(nil)

// New creates a new scalar backend.
func New() *ScalarBackend {
	return &ScalarBackend{}
}

// Name returns the backend name.
func (s *ScalarBackend) Name() string {
	return "Scalar"
}

// MatrixProduct reports that the product of two scalars is element-wise.
func (s *ScalarBackend) MatrixProduct() bool {
	return false
}

// Shape always returns the empty (scalar) shape.
func (s *ScalarBackend) Shape(float64) tensor.Shape {
	return tensor.Shape{}
}

// Zeros returns 0. The shape must be scalar.
func (s *ScalarBackend) Zeros(shape tensor.Shape) float64 {
	mustScalar("zeros", shape)
	return 0
}

// Ones returns 1. The shape must be scalar.
func (s *ScalarBackend) Ones(shape tensor.Shape) float64 {
	mustScalar("ones", shape)
	return 1
}

// Clone returns v.
func (s *ScalarBackend) Clone(v float64) float64 {
	return v
}

// Lift converts Go numbers into float64.
func (s *ScalarBackend) Lift(v any) (float64, error) {
	f, err := ToFloat(v)
	if err != nil {
		return 0, errors.Wrap(err, "scalar lift")
	}
	return f, nil
}

// Add returns a + b.
func (s *ScalarBackend) Add(a, b float64) (float64, error) {
	return a + b, nil
}

// Mul returns a * b.
func (s *ScalarBackend) Mul(a, b float64) (float64, error) {
	return a * b, nil
}

// AddTo returns dst + src.
func (s *ScalarBackend) AddTo(dst, src float64) (float64, error) {
	return dst + src, nil
}

// MatMul is undefined for rank-0 operands.
func (s *ScalarBackend) MatMul(float64, float64) (float64, error) {
	return 0, errors.Wrap(tensor.ErrShapeMismatch, "matmul: only rank-2 operands supported, got rank 0 and 0")
}

// Transpose is undefined for rank-0 operands.
func (s *ScalarBackend) Transpose(float64) (float64, error) {
	return 0, errors.Wrap(tensor.ErrShapeMismatch, "transpose: only rank-2 operands supported, got rank 0")
}

// Neg returns -v.
func (s *ScalarBackend) Neg(v float64) float64 {
	return -v
}

// Scale returns factor * v.
func (s *ScalarBackend) Scale(v, factor float64) float64 {
	return factor * v
}

// Pow returns v^exponent.
func (s *ScalarBackend) Pow(v, exponent float64) float64 {
	return math.Pow(v, exponent)
}

// Exp returns e^v.
func (s *ScalarBackend) Exp(v float64) float64 {
	return math.Exp(v)
}

// Tanh returns the hyperbolic tangent of v.
func (s *ScalarBackend) Tanh(v float64) float64 {
	return Tanh(v)
}

// Sigmoid returns 1 / (1 + e^-v).
func (s *ScalarBackend) Sigmoid(v float64) float64 {
	return Sigmoid(v)
}

func mustScalar(op string, shape tensor.Shape) {
	if !shape.IsScalar() {
		panic(errors.Wrapf(tensor.ErrShapeMismatch, "%s: scalar backend cannot allocate shape %s", op, shape))
	}
}
