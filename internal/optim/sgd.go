package optim

import (
	"fmt"

	"github.com/born-ml/backprop/internal/autodiff"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// SGD implements Stochastic Gradient Descent optimizer with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Example:
//
//	optimizer, err := optim.NewSGD(params, optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
type SGD[P any] struct {
	params     []*autodiff.Node[P]
	lr         float64
	momentum   float64
	velocities map[*autodiff.Node[P]]P
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer over leaf parameters.
//
// Every parameter must be a leaf node; anything else fails with
// autodiff.ErrInvalidArgument.
func NewSGD[P any](params []*autodiff.Node[P], config SGDConfig) (*SGD[P], error) {
	if err := checkParams(params); err != nil {
		return nil, errors.Wrap(err, "sgd")
	}
	if config.LR == 0 {
		config.LR = 0.01
	}
	if config.Momentum < 0 || config.Momentum >= 1 {
		return nil, errors.Wrapf(autodiff.ErrInvalidArgument, "sgd: momentum %g outside [0, 1)", config.Momentum)
	}

	return &SGD[P]{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*autodiff.Node[P]]P),
	}, nil
}

// Step performs a single optimization step.
//
// Applies gradient descent update to all parameters:
//   - Without momentum: param -= lr * grad
//   - With momentum: velocity = momentum * velocity + grad, param -= lr * velocity
func (s *SGD[P]) Step() error {
	klog.V(1).Infof("SGD step: %d parameters, lr=%g, momentum=%g", len(s.params), s.lr, s.momentum)
	for _, param := range s.params {
		backend := param.Engine().Backend()
		direction := param.Grad()

		if s.momentum != 0 {
			velocity, exists := s.velocities[param]
			if !exists {
				velocity = backend.Zeros(param.Shape())
			}
			next, err := backend.Add(backend.Scale(velocity, s.momentum), direction)
			if err != nil {
				return errors.Wrapf(err, "sgd: velocity of %s", param)
			}
			s.velocities[param] = next
			direction = next
		}

		if err := descend(backend, param, backend.Scale(direction, s.lr)); err != nil {
			return errors.Wrap(err, "sgd")
		}
	}
	return nil
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD[P]) ZeroGrad() {
	for _, param := range s.params {
		param.ZeroGrad()
	}
}

// GetLR returns the current learning rate.
func (s *SGD[P]) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (s *SGD[P]) SetLR(lr float64) {
	s.lr = lr
}

// StateDict returns the velocity buffers, keyed "velocity.{param_index}".
// Without momentum, returns an empty map.
func (s *SGD[P]) StateDict() map[string]P {
	stateDict := make(map[string]P)
	if s.momentum == 0 {
		return stateDict
	}

	for i, param := range s.params {
		velocity, exists := s.velocities[param]
		if !exists {
			continue // No velocity yet (hasn't been used in training)
		}
		stateDict[fmt.Sprintf("velocity.%d", i)] = velocity
	}
	return stateDict
}

// LoadStateDict restores velocity buffers saved by StateDict.
//
// Returns an error wrapping autodiff.ErrShapeMismatch if a velocity shape
// does not match its parameter.
func (s *SGD[P]) LoadStateDict(stateDict map[string]P) error {
	if s.momentum == 0 {
		return nil
	}

	velocities := make(map[*autodiff.Node[P]]P)
	for i, param := range s.params {
		velocity, exists := stateDict[fmt.Sprintf("velocity.%d", i)]
		if !exists {
			continue
		}
		backend := param.Engine().Backend()
		if !backend.Shape(velocity).Equal(param.Shape()) {
			return errors.Wrapf(autodiff.ErrShapeMismatch, "velocity shape mismatch for parameter %d: expected %s, got %s",
				i, param.Shape(), backend.Shape(velocity))
		}
		velocities[param] = backend.Clone(velocity)
	}
	s.velocities = velocities
	return nil
}
