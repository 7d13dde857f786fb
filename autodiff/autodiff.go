// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation.
//
// Operators evaluate eagerly and record a dynamic computation graph.
// Backward walks that graph from a terminal node in reverse topological order
// and accumulates d terminal / d node into every node's gradient.
//
// Example:
//
//	import (
//	    "github.com/born-ml/backprop/autodiff"
//	    "github.com/born-ml/backprop/backend/scalar"
//	)
//
//	func main() {
//	    engine := autodiff.New(scalar.New())
//	    a := engine.Leaf(-3.0)
//	    b := engine.Leaf(2.5)
//
//	    c, err := autodiff.Mul(a, b)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    if err := c.Backward(); err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(a.Grad(), b.Grad()) // 2.5 -3
//	}
//
// Gradients accumulate across backward passes; reset them with ZeroGrads.
package autodiff

import (
	"github.com/born-ml/backprop/internal/autodiff"
	"github.com/born-ml/backprop/tensor"
)

// Node is a vertex of the computation graph.
type Node[P any] = autodiff.Node[P]

// Engine binds a payload backend to computation graphs.
type Engine[P any] = autodiff.Engine[P]

// Config holds engine options.
type Config = autodiff.Config

// OpType identifies the operator that produced a node.
type OpType = autodiff.OpType

// Operators.
const (
	OpLeaf    = autodiff.OpLeaf
	OpAdd     = autodiff.OpAdd
	OpNeg     = autodiff.OpNeg
	OpMul     = autodiff.OpMul
	OpMatMul  = autodiff.OpMatMul
	OpPow     = autodiff.OpPow
	OpExp     = autodiff.OpExp
	OpTanh    = autodiff.OpTanh
	OpSigmoid = autodiff.OpSigmoid
)

// OpError records the operator that failed and why.
type OpError = autodiff.OpError

// Errors. Test for them with errors.Is.
var (
	ErrShapeMismatch   = autodiff.ErrShapeMismatch
	ErrInvalidOperand  = autodiff.ErrInvalidOperand
	ErrGraphCycle      = autodiff.ErrGraphCycle
	ErrInvalidArgument = autodiff.ErrInvalidArgument
)

// New creates an engine over the given backend.
//
// Example:
//
//	engine := autodiff.New(cpu.New())
func New[P any](backend tensor.Backend[P]) *Engine[P] {
	return autodiff.New(backend)
}

// NewWithConfig creates an engine over the given backend with options.
func NewWithConfig[P any](backend tensor.Backend[P], config Config) *Engine[P] {
	return autodiff.NewWithConfig(backend, config)
}

// Add returns a + b.
func Add[P any](a, b *Node[P]) (*Node[P], error) {
	return autodiff.Add(a, b)
}

// Sub returns a - b.
func Sub[P any](a, b *Node[P]) (*Node[P], error) {
	return autodiff.Sub(a, b)
}

// Neg returns -a.
func Neg[P any](a *Node[P]) (*Node[P], error) {
	return autodiff.Neg(a)
}

// Mul returns the element-wise product a * b.
func Mul[P any](a, b *Node[P]) (*Node[P], error) {
	return autodiff.Mul(a, b)
}

// MatMul returns the matrix product a @ b.
func MatMul[P any](a, b *Node[P]) (*Node[P], error) {
	return autodiff.MatMul(a, b)
}

// Product returns MatMul for array engines and Mul for scalar engines.
func Product[P any](a, b *Node[P]) (*Node[P], error) {
	return autodiff.Product(a, b)
}

// Div returns a / b.
func Div[P any](a, b *Node[P]) (*Node[P], error) {
	return autodiff.Div(a, b)
}

// Pow returns a^exponent for a constant exponent.
func Pow[P any](a *Node[P], exponent float64) (*Node[P], error) {
	return autodiff.Pow(a, exponent)
}

// Exp returns e^a.
func Exp[P any](a *Node[P]) (*Node[P], error) {
	return autodiff.Exp(a)
}

// Tanh returns tanh(a).
func Tanh[P any](a *Node[P]) (*Node[P], error) {
	return autodiff.Tanh(a)
}

// Sigmoid returns 1 / (1 + e^-a).
func Sigmoid[P any](a *Node[P]) (*Node[P], error) {
	return autodiff.Sigmoid(a)
}

// Backward computes the gradient of terminal with respect to every node it
// depends on.
func Backward[P any](terminal *Node[P]) error {
	return autodiff.Backward(terminal)
}

// Topo returns the nodes terminal depends on in replay order.
func Topo[P any](terminal *Node[P]) ([]*Node[P], error) {
	return autodiff.Topo(terminal)
}

// ZeroGrads resets the gradients of terminal and its ancestors.
func ZeroGrads[P any](terminal *Node[P]) error {
	return autodiff.ZeroGrads(terminal)
}

// Try runs fn and returns the error of any failed fluent operation.
func Try(fn func()) error {
	return autodiff.Try(fn)
}
