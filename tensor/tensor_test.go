// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"errors"
	"testing"

	"github.com/born-ml/backprop/internal/backend/cpu"
	"github.com/born-ml/backprop/internal/backend/scalar"
	"github.com/born-ml/backprop/tensor"
	"gonum.org/v1/gonum/mat"
)

// TestBackendInterface verifies that both backends implement tensor.Backend.
func TestBackendInterface(_ *testing.T) {
	var _ tensor.Backend[*tensor.Array] = (*cpu.CPUBackend)(nil)
	var _ tensor.Backend[float64] = (*scalar.ScalarBackend)(nil)
	var _ tensor.MatrixProducter = (*cpu.CPUBackend)(nil)
}

// TestArrayCreationFunctions verifies the exported constructors.
func TestArrayCreationFunctions(t *testing.T) {
	zeros := tensor.Zeros(tensor.Shape{2, 3})
	if !zeros.Shape().Equal(tensor.Shape{2, 3}) {
		t.Errorf("Zeros shape = %v, want (2, 3)", zeros.Shape())
	}

	if got := tensor.Ones(tensor.Shape{2}).Data(); got[0] != 1 || got[1] != 1 {
		t.Errorf("Ones data = %v, want [1 1]", got)
	}

	if got := tensor.Full(tensor.Shape{1}, 7).Item(); got != 7 {
		t.Errorf("Full item = %v, want 7", got)
	}

	if got := tensor.Scalar(2.5); !got.Shape().IsScalar() || got.Item() != 2.5 {
		t.Errorf("Scalar = %v with shape %v", got, got.Shape())
	}

	rows, err := tensor.FromRows([][]float64{{0.5}, {0.8}, {0.3}, {0.4}})
	if err != nil {
		t.Fatalf("FromRows failed: %v", err)
	}
	if !rows.Shape().Equal(tensor.Shape{4, 1}) {
		t.Errorf("FromRows shape = %v, want (4, 1)", rows.Shape())
	}

	slice, err := tensor.FromSlice([]float64{1, 2, 3})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	if slice.Shape().Rank() != 1 {
		t.Errorf("FromSlice rank = %d, want 1", slice.Shape().Rank())
	}

	m := tensor.FromMatrix(mat.NewDense(1, 2, []float64{3, 4}))
	if m.At(0, 1) != 4 {
		t.Errorf("FromMatrix At(0, 1) = %v, want 4", m.At(0, 1))
	}

	if _, err := tensor.NewArray(tensor.Shape{2}, []float64{1}); !errors.Is(err, tensor.ErrShapeMismatch) {
		t.Errorf("NewArray with short data: got %v, want ErrShapeMismatch", err)
	}
}
