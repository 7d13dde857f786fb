// Package train runs gradient descent on a single logistic neuron,
// loss = (σ(w·x + b) - target)², built from nn modules on the array engine
// and optimized with SGD.
package train

import (
	"context"

	"github.com/born-ml/backprop/internal/autodiff"
	"github.com/born-ml/backprop/internal/backend/cpu"
	"github.com/born-ml/backprop/internal/nn"
	"github.com/born-ml/backprop/internal/optim"
	"github.com/born-ml/backprop/internal/tensor"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Config describes a training run.
type Config struct {
	Steps    int         // Number of gradient descent steps
	LR       float64     // Learning rate
	Momentum float64     // SGD momentum, 0 for plain gradient descent
	Target   float64     // Desired neuron output
	Weights  [][]float64 // Initial weights, shape (1, n)
	Inputs   [][]float64 // Input column, shape (n, 1)
	Bias     [][]float64 // Initial bias, shape (1, 1)
}

// DefaultConfig returns the standard scenario: four inputs, 50 steps of
// plain gradient descent at lr 0.3 towards an output of 0.5.
func DefaultConfig() Config {
	return Config{
		Steps:   50,
		LR:      0.3,
		Target:  0.5,
		Weights: [][]float64{{0.67, 0.41, 0.05, 0.01}},
		Inputs:  [][]float64{{0.5}, {0.8}, {0.3}, {0.4}},
		Bias:    [][]float64{{0.1}},
	}
}

// Step reports the state after one step.
type Step struct {
	Index  int     // Zero-based step index
	Loss   float64 // Loss before the update
	Output float64 // Neuron output before the update
}

// Result holds the outcome of a run.
type Result struct {
	Losses  []float64     // Loss at every step, before its update
	Weights *tensor.Array // Final weights
	Bias    *tensor.Array // Final bias
}

// FirstIncrease returns the index of the first loss that is not strictly
// below its predecessor, or -1 if the losses strictly decrease.
func (r *Result) FirstIncrease() int {
	for i := 1; i < len(r.Losses); i++ {
		if r.Losses[i] >= r.Losses[i-1] {
			return i
		}
	}
	return -1
}

// Run trains the neuron. onStep, if not nil, is called after every step.
// Run stops early with the context's error if ctx is cancelled.
func Run(ctx context.Context, config Config, onStep func(Step)) (*Result, error) {
	if config.Steps <= 0 {
		return nil, errors.Errorf("train: steps must be positive, got %d", config.Steps)
	}
	if config.LR <= 0 {
		return nil, errors.Errorf("train: learning rate must be positive, got %g", config.LR)
	}

	engine := autodiff.NewWithConfig(cpu.New(), autodiff.Config{Name: "train"})
	layer, err := nn.NewLinear(engine, config.Weights, config.Bias)
	if err != nil {
		return nil, errors.Wrap(err, "train")
	}
	model := nn.NewSequential[*tensor.Array](layer, nn.NewSigmoid[*tensor.Array]())
	x, err := engine.Lift(config.Inputs)
	if err != nil {
		return nil, errors.Wrap(err, "train: inputs")
	}

	optimizer, err := optim.NewSGD(nn.Nodes(model.Parameters()), optim.SGDConfig{
		LR:       config.LR,
		Momentum: config.Momentum,
	})
	if err != nil {
		return nil, errors.Wrap(err, "train")
	}

	result := &Result{Losses: make([]float64, 0, config.Steps)}
	for i := range config.Steps {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrapf(err, "train: cancelled at step %d", i)
		}

		output, err := model.Forward(x)
		if err != nil {
			return nil, errors.Wrapf(err, "train: step %d", i)
		}
		loss, err := nn.SquaredError(output, config.Target)
		if err != nil {
			return nil, errors.Wrapf(err, "train: step %d", i)
		}
		if loss.Value().Len() != 1 {
			return nil, errors.Wrapf(autodiff.ErrShapeMismatch, "train: loss has shape %s, want a single value", loss.Shape())
		}

		optimizer.ZeroGrad()
		if err := loss.Backward(); err != nil {
			return nil, errors.Wrapf(err, "train: step %d", i)
		}
		if err := optimizer.Step(); err != nil {
			return nil, errors.Wrapf(err, "train: step %d", i)
		}

		step := Step{Index: i, Loss: loss.Value().Item(), Output: output.Value().Item()}
		result.Losses = append(result.Losses, step.Loss)
		klog.V(1).Infof("train step %d: loss=%g output=%g", i, step.Loss, step.Output)
		if onStep != nil {
			onStep(step)
		}
	}

	result.Weights = layer.Weight().Value().Clone()
	result.Bias = layer.Bias().Value().Clone()
	return result, nil
}
