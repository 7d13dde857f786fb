package cpu

import (
	"github.com/born-ml/backprop/internal/tensor"
	"gonum.org/v1/gonum/mat"
)

// MatMul performs matrix multiplication.
// For 2D arrays: (M, K) @ (K, N) -> (M, N). Other ranks fail with
// tensor.ErrShapeMismatch.
func (cpu *CPUBackend) MatMul(a, b *tensor.Array) (*tensor.Array, error) {
	outShape, err := tensor.CheckMatMul(a.Shape(), b.Shape())
	if err != nil {
		return nil, err
	}

	// Views share storage with the operands; only the result is written.
	aDense, _ := a.Dense()
	bDense, _ := b.Dense()

	result := tensor.Zeros(outShape)
	out := mat.NewDense(outShape[0], outShape[1], result.Data())
	out.Mul(aDense, bDense)
	return result, nil
}

// Transpose swaps the two axes of a rank-2 array.
func (cpu *CPUBackend) Transpose(a *tensor.Array) (*tensor.Array, error) {
	view, err := a.Dense()
	if err != nil {
		return nil, err
	}
	return tensor.FromMatrix(view.T()), nil
}
