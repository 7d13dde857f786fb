// Package cpu implements the array backend: dense float64 arrays of any rank
// with element-wise math and gonum-backed matrix products.
package cpu

import (
	"github.com/born-ml/backprop/internal/parallel"
	"github.com/born-ml/backprop/internal/tensor"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// CPUBackend implements tensor.Backend for *tensor.Array payloads.
type CPUBackend struct {
	parallel parallel.Config
}

// Compile-time check that CPUBackend implements tensor.Backend.
var _ tensor.Backend[*tensor.Array] = (*CPUBackend)(nil)

// New creates a new CPU backend that parallelizes element-wise math on
// large arrays.
func New() *CPUBackend {
	return &CPUBackend{parallel: parallel.DefaultConfig()}
}

// NewWithParallel creates a CPU backend with the given parallel config.
// Use parallel.Sequential() to keep all work on the calling goroutine.
func NewWithParallel(config parallel.Config) *CPUBackend {
	return &CPUBackend{parallel: config}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// MatrixProduct reports that the product of two arrays is the matrix product.
func (cpu *CPUBackend) MatrixProduct() bool {
	return true
}

// Shape returns the array's shape.
func (cpu *CPUBackend) Shape(a *tensor.Array) tensor.Shape {
	return a.Shape()
}

// Zeros creates a zero-filled array.
func (cpu *CPUBackend) Zeros(shape tensor.Shape) *tensor.Array {
	return tensor.Zeros(shape)
}

// Ones creates a one-filled array.
func (cpu *CPUBackend) Ones(shape tensor.Shape) *tensor.Array {
	return tensor.Ones(shape)
}

// Clone returns a deep copy of a.
func (cpu *CPUBackend) Clone(a *tensor.Array) *tensor.Array {
	return a.Clone()
}

// Add performs element-wise addition. Shapes must match exactly.
func (cpu *CPUBackend) Add(a, b *tensor.Array) (*tensor.Array, error) {
	if err := tensor.CheckSameShape("add", a.Shape(), b.Shape()); err != nil {
		return nil, err
	}
	result := tensor.Zeros(a.Shape())
	floats.AddTo(result.Data(), a.Data(), b.Data())
	return result, nil
}

// Mul performs element-wise multiplication. Shapes must match exactly.
func (cpu *CPUBackend) Mul(a, b *tensor.Array) (*tensor.Array, error) {
	if err := tensor.CheckSameShape("mul", a.Shape(), b.Shape()); err != nil {
		return nil, err
	}
	result := tensor.Zeros(a.Shape())
	floats.MulTo(result.Data(), a.Data(), b.Data())
	return result, nil
}

// AddTo accumulates src into dst in place and returns dst.
func (cpu *CPUBackend) AddTo(dst, src *tensor.Array) (*tensor.Array, error) {
	if err := tensor.CheckSameShape("accumulate", dst.Shape(), src.Shape()); err != nil {
		return nil, err
	}
	floats.Add(dst.Data(), src.Data())
	return dst, nil
}

// Neg returns -a.
func (cpu *CPUBackend) Neg(a *tensor.Array) *tensor.Array {
	return cpu.Scale(a, -1)
}

// Scale returns factor * a.
func (cpu *CPUBackend) Scale(a *tensor.Array, factor float64) *tensor.Array {
	result := tensor.Zeros(a.Shape())
	floats.ScaleTo(result.Data(), factor, a.Data())
	return result
}

// Lift converts raw values into an array owned by the caller.
//
// Accepted: *tensor.Array (copied), float64/float32/int scalars (rank 0),
// []float64 (rank 1), [][]float64 (rank 2) and gonum mat.Matrix (rank 2).
func (cpu *CPUBackend) Lift(v any) (*tensor.Array, error) {
	a, err := liftArray(v)
	if err != nil {
		return nil, errors.Wrap(err, "cpu lift")
	}
	return a, nil
}
