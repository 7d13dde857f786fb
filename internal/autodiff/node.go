package autodiff

import (
	"fmt"

	"github.com/born-ml/backprop/internal/tensor"
	"github.com/pkg/errors"
)

// Node is a vertex of the computation graph.
//
// The value of a non-leaf node never changes after construction. The
// gradient is mutated only by the backward driver and by explicit resets.
type Node[P any] struct {
	engine *Engine[P]
	id     uint64
	op     OpType

	value P
	grad  P

	operands []*Node[P] // as passed to the operator, may repeat
	parents  []*Node[P] // operands deduplicated by identity

	exponent float64 // Pow only
}

// ID returns the engine-unique sequence number of the node.
func (n *Node[P]) ID() uint64 {
	return n.id
}

// Op returns the operator that produced the node.
func (n *Node[P]) Op() OpType {
	return n.op
}

// Engine returns the engine the node belongs to.
func (n *Node[P]) Engine() *Engine[P] {
	return n.engine
}

// Value returns the node's value. Callers must not mutate it.
func (n *Node[P]) Value() P {
	return n.value
}

// Grad returns the accumulated gradient. Callers must not mutate it.
func (n *Node[P]) Grad() P {
	return n.grad
}

// Shape returns the shape of the value (and of the gradient).
func (n *Node[P]) Shape() tensor.Shape {
	return n.engine.backend.Shape(n.value)
}

// IsLeaf reports whether the node has no parents.
func (n *Node[P]) IsLeaf() bool {
	return len(n.parents) == 0
}

// Parents returns the nodes this node was derived from, without repeats.
func (n *Node[P]) Parents() []*Node[P] {
	parents := make([]*Node[P], len(n.parents))
	copy(parents, n.parents)
	return parents
}

// Exponent returns the constant exponent of a Pow node, 0 otherwise.
func (n *Node[P]) Exponent() float64 {
	return n.exponent
}

// ZeroGrad resets the gradient to zeros of the node's shape.
func (n *Node[P]) ZeroGrad() {
	n.grad = n.engine.backend.Zeros(n.Shape())
}

// SetValue replaces the value of a leaf node, typically with updated
// parameters between optimization steps. The node takes ownership of value.
// Only leaves may be updated and the shape must not change.
func (n *Node[P]) SetValue(value P) error {
	if n == nil || n.engine == nil {
		return errors.Wrap(ErrInvalidArgument, "set value: node was not created by an engine")
	}
	if !n.IsLeaf() {
		return errors.Wrapf(ErrInvalidArgument, "set value: node %d is a %s node, only leaves can be updated", n.id, n.op)
	}
	if err := tensor.CheckSameShape("set value", n.Shape(), n.engine.backend.Shape(value)); err != nil {
		return err
	}
	n.value = value
	return nil
}

// String returns a short description like "tanh#7(2, 3)".
func (n *Node[P]) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.engine == nil {
		return fmt.Sprintf("%s#%d", n.op, n.id)
	}
	return fmt.Sprintf("%s#%d%s", n.op, n.id, n.Shape())
}
