package nn

import (
	"github.com/born-ml/backprop/internal/autodiff"
	"github.com/pkg/errors"
)

// Linear implements a fully connected layer on column inputs.
//
// Performs y = W·x + b where:
//   - x has shape [in_features, batch]
//   - W has shape [out_features, in_features]
//   - b has the shape of y, [out_features, batch]
//
// On the scalar engine W, x and b are single numbers and W·x is a product.
type Linear[P any] struct {
	weight *Parameter[P]
	bias   *Parameter[P]
}

// NewLinear creates a layer from initial weight and bias values. Values may
// be anything the engine can lift: payloads, nested slices or numbers.
//
// Example:
//
//	layer, err := nn.NewLinear(engine, [][]float64{{0.67, 0.41}}, [][]float64{{0.1}})
func NewLinear[P any](engine *autodiff.Engine[P], weight, bias any) (*Linear[P], error) {
	w, err := engine.Lift(weight)
	if err != nil {
		return nil, errors.Wrap(err, "linear: weight")
	}
	b, err := engine.Lift(bias)
	if err != nil {
		return nil, errors.Wrap(err, "linear: bias")
	}
	return newLinear(w, b)
}

func newLinear[P any](w, b *autodiff.Node[P]) (*Linear[P], error) {
	weight, err := NewParameter("weight", w)
	if err != nil {
		return nil, err
	}
	bias, err := NewParameter("bias", b)
	if err != nil {
		return nil, err
	}
	return &Linear[P]{weight: weight, bias: bias}, nil
}

// Forward computes W·x + b.
func (l *Linear[P]) Forward(input *autodiff.Node[P]) (*autodiff.Node[P], error) {
	engine := l.weight.Node().Engine()
	y, err := engine.Product(l.weight.Node(), input)
	if err != nil {
		return nil, errors.Wrap(err, "linear")
	}
	y, err = engine.Add(y, l.bias.Node())
	return y, errors.Wrap(err, "linear")
}

// Parameters returns [weight, bias].
func (l *Linear[P]) Parameters() []*Parameter[P] {
	return []*Parameter[P]{l.weight, l.bias}
}

// Weight returns the weight parameter.
func (l *Linear[P]) Weight() *Parameter[P] {
	return l.weight
}

// Bias returns the bias parameter.
func (l *Linear[P]) Bias() *Parameter[P] {
	return l.bias
}
