// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"testing"

	"github.com/born-ml/backprop/autodiff"
	"github.com/born-ml/backprop/backend/cpu"
	"github.com/born-ml/backprop/backend/scalar"
	"github.com/born-ml/backprop/nn"
	"github.com/born-ml/backprop/optim"
	"github.com/born-ml/backprop/tensor"
)

// TestModuleInterface verifies that concrete types implement Module interface.
func TestModuleInterface(t *testing.T) {
	engine := autodiff.New(scalar.New())
	linear, err := nn.NewLinear(engine, 0.5, 0.1)
	if err != nil {
		t.Fatalf("NewLinear failed: %v", err)
	}

	tests := []struct {
		name   string
		module nn.Module[float64]
		params int
	}{
		{"Linear", linear, 2},
		{"Sigmoid", nn.NewSigmoid[float64](), 0},
		{"Tanh", nn.NewTanh[float64](), 0},
		{"Sequential", nn.NewSequential[float64](linear, nn.NewTanh[float64]()), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.module.Forward(engine.Leaf(1)); err != nil {
				t.Fatalf("Forward failed: %v", err)
			}
			if got := len(tt.module.Parameters()); got != tt.params {
				t.Errorf("Parameters() has %d entries, want %d", got, tt.params)
			}
		})
	}
}

// TestTrainWithOptimizer fits a Xavier layer to a fixed output.
func TestTrainWithOptimizer(t *testing.T) {
	engine := autodiff.New(cpu.New())
	layer, err := nn.NewLinear(engine, [][]float64{{0.2, -0.4}}, [][]float64{{0}})
	if err != nil {
		t.Fatalf("NewLinear failed: %v", err)
	}
	model := nn.NewSequential[*tensor.Array](layer, nn.NewTanh[*tensor.Array]())
	opt, err := optim.NewAdam(nn.Nodes(model.Parameters()), optim.AdamConfig{LR: 0.02})
	if err != nil {
		t.Fatalf("NewAdam failed: %v", err)
	}
	x, err := engine.Lift([][]float64{{1}, {2}})
	if err != nil {
		t.Fatalf("Lift failed: %v", err)
	}

	var first, last float64
	for i := range 100 {
		out, err := model.Forward(x)
		if err != nil {
			t.Fatalf("Forward failed: %v", err)
		}
		loss, err := nn.SquaredError(out, 0.3)
		if err != nil {
			t.Fatalf("SquaredError failed: %v", err)
		}
		opt.ZeroGrad()
		if err := loss.Backward(); err != nil {
			t.Fatalf("Backward failed: %v", err)
		}
		if err := opt.Step(); err != nil {
			t.Fatalf("Step failed: %v", err)
		}
		if i == 0 {
			first = loss.Value().Item()
		}
		last = loss.Value().Item()
	}

	if last >= first || last > 1e-2 {
		t.Errorf("loss went from %g to %g, want it below 1e-2", first, last)
	}
}
