// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/born-ml/backprop/autodiff"
	"github.com/born-ml/backprop/internal/optim"
)

// Optimizer interface defines the common interface for all optimizers.
type Optimizer = optim.Optimizer

// Config represents the base configuration for optimizers.
type Config = optim.Config

// SGD (Stochastic Gradient Descent)

// SGD represents the SGD optimizer with optional momentum.
type SGD[P any] = optim.SGD[P]

// SGDConfig contains configuration for SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer over leaf parameters.
//
// Example:
//
//	optimizer, err := optim.NewSGD(
//	    []*autodiff.Node[*tensor.Array]{w, b},
//	    optim.SGDConfig{
//	        LR:       0.3,
//	        Momentum: 0.9,
//	    },
//	)
func NewSGD[P any](params []*autodiff.Node[P], config SGDConfig) (*SGD[P], error) {
	return optim.NewSGD(params, config)
}

// Adam (Adaptive Moment Estimation)

// Adam represents the Adam optimizer.
type Adam[P any] = optim.Adam[P]

// AdamConfig contains configuration for Adam optimizer.
type AdamConfig = optim.AdamConfig

// NewAdam creates a new Adam optimizer with bias correction.
//
// Example:
//
//	optimizer, err := optim.NewAdam(
//	    []*autodiff.Node[*tensor.Array]{w, b},
//	    optim.AdamConfig{
//	        LR:    0.001,
//	        Betas: [2]float64{0.9, 0.999},
//	    },
//	)
func NewAdam[P any](params []*autodiff.Node[P], config AdamConfig) (*Adam[P], error) {
	return optim.NewAdam(params, config)
}
