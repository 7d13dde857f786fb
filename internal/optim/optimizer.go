// Package optim implements optimization algorithms that update the leaf
// parameters of an autodiff graph between backward passes.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation
//
// Optimizers read each parameter's accumulated gradient and replace its value
// through Node.SetValue. They never run a backward pass themselves.
//
// Example usage:
//
//	optimizer, err := optim.NewSGD(params, optim.SGDConfig{LR: 0.3})
//	if err != nil {
//	    return err
//	}
//
//	for step := range steps {
//	    loss := buildLoss(params)
//	    optimizer.ZeroGrad()
//	    if err := loss.Backward(); err != nil {
//	        return err
//	    }
//	    if err := optimizer.Step(); err != nil {
//	        return err
//	    }
//	}
package optim

import (
	"github.com/born-ml/backprop/internal/autodiff"
	"github.com/born-ml/backprop/internal/tensor"
	"github.com/pkg/errors"
)

// Optimizer is the base interface for all optimization algorithms.
//
// All optimizers must implement:
//   - Step: Apply gradient updates to parameters
//   - ZeroGrad: Clear gradients before next iteration
//   - GetLR: Get current learning rate (for monitoring/scheduling)
type Optimizer interface {
	// Step applies the accumulated gradient of every parameter.
	Step() error

	// ZeroGrad clears all parameter gradients.
	//
	// Gradients accumulate across backward passes, so this should be called
	// before each one.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}

// checkParams verifies that every parameter is a leaf of some engine.
func checkParams[P any](params []*autodiff.Node[P]) error {
	for i, param := range params {
		if param == nil || param.Engine() == nil {
			return errors.Wrapf(autodiff.ErrInvalidArgument, "parameter %d is not a node of an engine", i)
		}
		if !param.IsLeaf() {
			return errors.Wrapf(autodiff.ErrInvalidArgument, "parameter %d (%s) is not a leaf", i, param)
		}
	}
	return nil
}

// descend sets param to param - update.
func descend[P any](backend tensor.Backend[P], param *autodiff.Node[P], update P) error {
	next, err := backend.Add(param.Value(), backend.Neg(update))
	if err != nil {
		return errors.Wrapf(err, "update %s", param)
	}
	return param.SetValue(next)
}
