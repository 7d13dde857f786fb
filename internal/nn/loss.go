package nn

import (
	"github.com/born-ml/backprop/internal/autodiff"
	"github.com/pkg/errors"
)

// SquaredError returns (prediction - target)² element-wise. target may be a
// node or anything the engine can lift; a float64 is filled to the
// prediction's shape.
func SquaredError[P any](prediction *autodiff.Node[P], target any) (*autodiff.Node[P], error) {
	if prediction == nil || prediction.Engine() == nil {
		return nil, errors.Wrap(autodiff.ErrInvalidOperand, "squared error: prediction is not a node of an engine")
	}
	engine := prediction.Engine()
	if v, ok := target.(float64); ok {
		backend := engine.Backend()
		target = backend.Scale(backend.Ones(prediction.Shape()), v)
	}
	diff, err := engine.Sub(prediction, target)
	if err != nil {
		return nil, errors.Wrap(err, "squared error")
	}
	loss, err := engine.Pow(diff, 2)
	return loss, errors.Wrap(err, "squared error")
}
