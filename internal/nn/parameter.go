package nn

import (
	"github.com/born-ml/backprop/internal/autodiff"
	"github.com/pkg/errors"
)

// Parameter is a named leaf node that an optimizer updates.
type Parameter[P any] struct {
	name string
	node *autodiff.Node[P]
}

// NewParameter wraps a leaf node. It fails with ErrInvalidArgument if node is
// nil or not a leaf.
func NewParameter[P any](name string, node *autodiff.Node[P]) (*Parameter[P], error) {
	if node == nil || !node.IsLeaf() {
		return nil, errors.Wrapf(autodiff.ErrInvalidArgument, "parameter %q must be a leaf node", name)
	}
	return &Parameter[P]{name: name, node: node}, nil
}

// Name returns the parameter name.
func (p *Parameter[P]) Name() string {
	return p.name
}

// Node returns the underlying leaf.
func (p *Parameter[P]) Node() *autodiff.Node[P] {
	return p.node
}

// Value returns the current value.
func (p *Parameter[P]) Value() P {
	return p.node.Value()
}

// Grad returns the accumulated gradient.
func (p *Parameter[P]) Grad() P {
	return p.node.Grad()
}

// SetValue replaces the value, keeping the shape.
func (p *Parameter[P]) SetValue(value P) error {
	return errors.Wrapf(p.node.SetValue(value), "parameter %q", p.name)
}
