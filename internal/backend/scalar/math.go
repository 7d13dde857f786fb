package scalar

import (
	"math"

	"github.com/born-ml/backprop/internal/tensor"
	"github.com/pkg/errors"
)

// Tanh returns (e^x - e^-x) / (e^x + e^-x).
// math.Tanh computes the same value without overflowing for large |x|.
func Tanh(x float64) float64 {
	return math.Tanh(x)
}

// Sigmoid returns 1 / (1 + e^-x), evaluated so that neither branch overflows.
func Sigmoid(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1 + e)
}

// ToFloat converts any Go numeric value to float64.
// Non-numeric values fail with tensor.ErrInvalidOperand.
func ToFloat(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int8:
		return float64(x), nil
	case int16:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint:
		return float64(x), nil
	case uint8:
		return float64(x), nil
	case uint16:
		return float64(x), nil
	case uint32:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	default:
		return 0, errors.Wrapf(tensor.ErrInvalidOperand, "cannot lift %T to a number", v)
	}
}
