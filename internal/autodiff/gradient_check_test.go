package autodiff_test

import (
	"testing"

	"github.com/born-ml/backprop/internal/autodiff"
	"github.com/born-ml/backprop/internal/backend/cpu"
	"github.com/born-ml/backprop/internal/backend/scalar"
	"github.com/born-ml/backprop/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
)

// Central differences with the default step are accurate to roughly 1e-8 for
// the smooth functions below.
const fdTol = 1e-6

// checkScalarGradient compares reverse-mode gradients of build against
// central finite differences at x.
func checkScalarGradient(t *testing.T, x []float64, build func(in []*autodiff.Node[float64]) *autodiff.Node[float64]) {
	t.Helper()

	eval := func(point []float64) float64 {
		engine := autodiff.New(scalar.New())
		in := make([]*autodiff.Node[float64], len(point))
		for i, v := range point {
			in[i] = engine.Leaf(v)
		}
		return build(in).Value()
	}
	numeric := fd.Gradient(nil, eval, x, &fd.Settings{Formula: fd.Central})

	engine := autodiff.New(scalar.New())
	in := make([]*autodiff.Node[float64], len(x))
	for i, v := range x {
		in[i] = engine.Leaf(v)
	}
	require.NoError(t, build(in).Backward())

	for i := range x {
		assert.InDelta(t, numeric[i], in[i].Grad(), fdTol, "d/dx%d", i)
	}
}

// TestGradientCheck_Scalar tests every operator against finite differences.
func TestGradientCheck_Scalar(t *testing.T) {
	tests := []struct {
		name  string
		x     []float64
		build func(in []*autodiff.Node[float64]) *autodiff.Node[float64]
	}{
		{"Add", []float64{1.5, -2}, func(in []*autodiff.Node[float64]) *autodiff.Node[float64] {
			return in[0].Add(in[1])
		}},
		{"Sub", []float64{1.5, -2}, func(in []*autodiff.Node[float64]) *autodiff.Node[float64] {
			return in[0].Sub(in[1])
		}},
		{"Mul", []float64{1.5, -2}, func(in []*autodiff.Node[float64]) *autodiff.Node[float64] {
			return in[0].Mul(in[1])
		}},
		{"Div", []float64{1.5, -2}, func(in []*autodiff.Node[float64]) *autodiff.Node[float64] {
			return in[0].Div(in[1])
		}},
		{"Pow", []float64{1.7}, func(in []*autodiff.Node[float64]) *autodiff.Node[float64] {
			return in[0].Pow(3)
		}},
		{"PowFractional", []float64{2.3}, func(in []*autodiff.Node[float64]) *autodiff.Node[float64] {
			return in[0].Pow(-1.5)
		}},
		{"Exp", []float64{0.3}, func(in []*autodiff.Node[float64]) *autodiff.Node[float64] {
			return in[0].Exp()
		}},
		{"Tanh", []float64{-0.6}, func(in []*autodiff.Node[float64]) *autodiff.Node[float64] {
			return in[0].Tanh()
		}},
		{"Sigmoid", []float64{0.9}, func(in []*autodiff.Node[float64]) *autodiff.Node[float64] {
			return in[0].Sigmoid()
		}},
		{"Neuron", []float64{2, 0, -3, 1, 6.8813735870195432}, func(in []*autodiff.Node[float64]) *autodiff.Node[float64] {
			x1, x2, w1, w2, b := in[0], in[1], in[2], in[3], in[4]
			return x1.Mul(w1).Add(x2.Mul(w2)).Add(b).Tanh()
		}},
		{"ReusedThroughPow", []float64{0.8, 1.3}, func(in []*autodiff.Node[float64]) *autodiff.Node[float64] {
			x, y := in[0], in[1]
			return x.Pow(2).Add(x.Mul(y)).Sub(x.Exp().Mul(y)).Sigmoid()
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkScalarGradient(t, tt.x, tt.build)
		})
	}
}

// TestGradientCheck_Array tests loss = sum((σ(w·x + b) - t)²) on the array
// backend against finite differences over every element of w.
func TestGradientCheck_Array(t *testing.T) {
	wData := []float64{0.67, 0.41, 0.05, 0.01, -0.3, 0.2, 0.8, -0.5}
	xData := []float64{0.5, 0.8, 0.3, 0.4}

	loss := func(engine *autodiff.Engine[*tensor.Array], w []float64) (*autodiff.Node[*tensor.Array], *autodiff.Node[*tensor.Array]) {
		wArr, err := tensor.NewArray(tensor.Shape{2, 4}, append([]float64(nil), w...))
		require.NoError(t, err)
		xArr, err := tensor.NewArray(tensor.Shape{4, 1}, append([]float64(nil), xData...))
		require.NoError(t, err)

		wNode := engine.Leaf(wArr)
		xNode := engine.Leaf(xArr)
		bNode := engine.Leaf(tensor.Full(tensor.Shape{2, 1}, 0.1))
		target := engine.Leaf(tensor.Full(tensor.Shape{2, 1}, 0.5))

		out := wNode.MatMul(xNode).Add(bNode).Sigmoid().Sub(target).Pow(2)
		// Sum the two outputs with a ones row vector.
		sum := engine.Leaf(tensor.Ones(tensor.Shape{1, 2})).MatMul(out)
		return sum, wNode
	}

	numeric := fd.Gradient(nil, func(w []float64) float64 {
		sum, _ := loss(autodiff.New(cpu.New()), w)
		return sum.Value().Item()
	}, wData, &fd.Settings{Formula: fd.Central})

	sum, w := loss(autodiff.New(cpu.New()), wData)
	require.NoError(t, sum.Backward())

	got := w.Grad().Data()
	require.Len(t, got, len(numeric))
	for i := range numeric {
		assert.InDelta(t, numeric[i], got[i], fdTol, "d/dw[%d]", i)
	}
}
