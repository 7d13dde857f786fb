// Package autodiff implements reverse-mode automatic differentiation over a
// dynamically built computation graph.
//
// Architecture:
//   - Node[P]: a graph vertex holding a value, a same-shape gradient
//     accumulator, its deduplicated parents and the operator that produced it
//   - Operator layer: Add, Neg, Sub, Mul, MatMul, Pow, Exp, Tanh, Sigmoid, Div.
//     Each call computes its value eagerly and appends exactly one Node
//   - Backward driver: depth-first topological sort from the terminal node,
//     then the backward rule of every node in reverse order
//   - Engine[P]: binds a payload backend (scalar or array) to the graph; the
//     driver is shared by every payload type
//
// Usage:
//
//	engine := autodiff.New(cpu.New())
//	w := engine.Leaf(tensor.Ones(tensor.Shape{1, 4}))
//	x := engine.Leaf(tensor.Ones(tensor.Shape{4, 1}))
//	y, _ := autodiff.MatMul(w, x)
//	_ = y.Backward()
//	fmt.Println(w.Grad()) // dy/dw = xᵀ
//
// Gradients accumulate across backward passes. Reset them with ZeroGrad or
// ZeroGrads before reusing a graph.
package autodiff

import (
	"sync/atomic"

	"github.com/born-ml/backprop/internal/tensor"
)

// Config holds engine options.
type Config struct {
	// Name identifies the engine in logs. Defaults to the backend name.
	Name string

	// LegacyPowGradient makes Pow assign its gradient contribution instead of
	// accumulating it. Contributions from other consumers of the same operand
	// are lost in that mode; it exists only to reproduce results computed
	// with the assigning rule.
	LegacyPowGradient bool

	// OnReplay, if set, is called for every node whose backward rule runs,
	// in replay order.
	OnReplay func(id uint64, op OpType)
}

// Engine binds a payload backend to computation graphs.
//
// Type parameter P is the payload type of the backend.
type Engine[P any] struct {
	backend tensor.Backend[P]
	config  Config
	nextID  atomic.Uint64
}

// New creates an engine over the given backend with default configuration.
func New[P any](backend tensor.Backend[P]) *Engine[P] {
	return NewWithConfig(backend, Config{})
}

// NewWithConfig creates an engine over the given backend.
func NewWithConfig[P any](backend tensor.Backend[P], config Config) *Engine[P] {
	if config.Name == "" {
		config.Name = backend.Name()
	}
	return &Engine[P]{
		backend: backend,
		config:  config,
	}
}

// Backend returns the payload backend.
func (e *Engine[P]) Backend() tensor.Backend[P] {
	return e.backend
}

// Name returns the engine name.
func (e *Engine[P]) Name() string {
	return "Autodiff(" + e.config.Name + ")"
}

// Leaf wraps value as a graph input with no parents.
// The node takes ownership of value; callers must not mutate it afterwards.
func (e *Engine[P]) Leaf(value P) *Node[P] {
	return e.newNode(OpLeaf, value, 0)
}

// newNode allocates a node with a zero gradient of the value's shape.
func (e *Engine[P]) newNode(op OpType, value P, exponent float64, operands ...*Node[P]) *Node[P] {
	n := &Node[P]{
		engine:   e,
		id:       e.nextID.Add(1),
		op:       op,
		value:    value,
		grad:     e.backend.Zeros(e.backend.Shape(value)),
		exponent: exponent,
	}
	if len(operands) > 0 {
		n.operands = operands
		n.parents = dedupe(operands)
	}
	return n
}

// dedupe returns operands without repeated nodes, in first-seen order.
func dedupe[P any](operands []*Node[P]) []*Node[P] {
	parents := make([]*Node[P], 0, len(operands))
	for _, op := range operands {
		seen := false
		for _, p := range parents {
			if p == op {
				seen = true
				break
			}
		}
		if !seen {
			parents = append(parents, op)
		}
	}
	return parents
}
