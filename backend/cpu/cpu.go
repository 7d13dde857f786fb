// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/backprop/internal/backend/cpu"
	"github.com/born-ml/backprop/tensor"
)

// Backend represents the array backend implementation.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend[*tensor.Array] = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	engine := autodiff.New(cpu.New())
func New() *Backend {
	return internalcpu.New()
}
