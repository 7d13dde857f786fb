package nn

import (
	"math"
	"math/rand/v2"

	"github.com/born-ml/backprop/internal/autodiff"
	"github.com/born-ml/backprop/internal/tensor"
)

// Xavier (Glorot) initialization for weights.
//
// Draws an [fanOut, fanIn] array from U(-sqrt(6/(fanIn+fanOut)), sqrt(6/(fanIn+fanOut))).
// It panics if a dimension is not positive.
func Xavier(fanIn, fanOut int, rng *rand.Rand) *tensor.Array {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
	a := tensor.Zeros(tensor.Shape{fanOut, fanIn})
	data := a.Data()
	for i := range data {
		data[i] = (rng.Float64()*2.0 - 1.0) * bound
	}
	return a
}

// NewLinearXavier creates an array layer with Xavier weights and a zero bias
// of shape [fanOut, batch].
func NewLinearXavier(engine *autodiff.Engine[*tensor.Array], fanIn, fanOut, batch int, rng *rand.Rand) (*Linear[*tensor.Array], error) {
	return newLinear(
		engine.Leaf(Xavier(fanIn, fanOut, rng)),
		engine.Leaf(tensor.Zeros(tensor.Shape{fanOut, batch})),
	)
}
