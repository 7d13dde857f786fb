// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package autodiff_test

import (
	"testing"

	"github.com/born-ml/backprop/autodiff"
	"github.com/born-ml/backprop/backend/cpu"
	"github.com/born-ml/backprop/backend/scalar"
	"github.com/born-ml/backprop/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPublicAPI_Scalar exercises the facade on the scalar engine.
func TestPublicAPI_Scalar(t *testing.T) {
	engine := autodiff.New(scalar.New())
	a := engine.Leaf(-3.0)
	b := engine.Leaf(2.5)

	c, err := autodiff.Mul(a, b)
	require.NoError(t, err)
	require.NoError(t, autodiff.Backward(c))

	assert.Equal(t, 2.5, a.Grad())
	assert.Equal(t, -3.0, b.Grad())
	assert.Equal(t, autodiff.OpMul, c.Op())

	require.NoError(t, autodiff.ZeroGrads(c))
	assert.Zero(t, a.Grad())
}

// TestPublicAPI_Array exercises the facade on the array engine.
func TestPublicAPI_Array(t *testing.T) {
	engine := autodiff.NewWithConfig(cpu.New(), autodiff.Config{Name: "facade"})
	assert.Equal(t, "Autodiff(facade)", engine.Name())

	w := engine.Leaf(tensor.Ones(tensor.Shape{1, 3}))
	x := engine.Leaf(tensor.Full(tensor.Shape{3, 1}, 2))

	y, err := autodiff.Product(w, x)
	require.NoError(t, err)
	assert.Equal(t, 6.0, y.Value().Item())

	order, err := autodiff.Topo(y)
	require.NoError(t, err)
	assert.Len(t, order, 3)

	require.NoError(t, y.Backward())
	assert.Equal(t, []float64{2, 2, 2}, w.Grad().Data())

	_, err = autodiff.Add(w, x)
	assert.ErrorIs(t, err, autodiff.ErrShapeMismatch)

	err = autodiff.Try(func() { w.Add(x) })
	var opErr *autodiff.OpError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "add", opErr.Op)
}
