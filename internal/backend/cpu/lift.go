package cpu

import (
	"github.com/born-ml/backprop/internal/backend/scalar"
	"github.com/born-ml/backprop/internal/tensor"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

func liftArray(v any) (*tensor.Array, error) {
	switch x := v.(type) {
	case *tensor.Array:
		if x == nil {
			return nil, errors.Wrap(tensor.ErrInvalidOperand, "nil array")
		}
		return x.Clone(), nil
	case []float64:
		if len(x) == 0 {
			return nil, errors.Wrap(tensor.ErrInvalidOperand, "empty slice")
		}
		return tensor.FromSlice(x)
	case [][]float64:
		a, err := tensor.FromRows(x)
		if err != nil {
			return nil, errors.Wrapf(tensor.ErrInvalidOperand, "%v", err)
		}
		return a, nil
	case *mat.Dense:
		if x == nil || x.IsEmpty() {
			return nil, errors.Wrap(tensor.ErrInvalidOperand, "empty matrix")
		}
		return tensor.FromMatrix(x), nil
	case mat.Matrix:
		if r, c := x.Dims(); r == 0 || c == 0 {
			return nil, errors.Wrap(tensor.ErrInvalidOperand, "empty matrix")
		}
		return tensor.FromMatrix(x), nil
	}

	f, err := scalar.ToFloat(v)
	if err != nil {
		return nil, err
	}
	return tensor.Scalar(f), nil
}
