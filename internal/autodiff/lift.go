package autodiff

import (
	"github.com/pkg/errors"
)

// Lift returns v as a node of the engine.
//
// A *Node[P] of this engine is returned as is. Anything else is handed to the
// backend and wrapped in a new constant leaf: numbers for every backend, and
// for the array backend also arrays, slices, rows and gonum matrices.
// Values that cannot be lifted fail with ErrInvalidOperand.
func (e *Engine[P]) Lift(v any) (*Node[P], error) {
	if n, ok := v.(*Node[P]); ok {
		if n == nil {
			return nil, errors.Wrap(ErrInvalidOperand, "lift: nil node")
		}
		if n.engine != e {
			return nil, errors.Wrap(ErrInvalidOperand, "lift: node belongs to another engine")
		}
		return n, nil
	}
	if v == nil {
		return nil, errors.Wrap(ErrInvalidOperand, "lift: nil value")
	}
	payload, err := e.backend.Lift(v)
	if err != nil {
		return nil, err
	}
	return e.Leaf(payload), nil
}

func (e *Engine[P]) lift(op string, operands ...any) ([]*Node[P], error) {
	nodes := make([]*Node[P], len(operands))
	for i, v := range operands {
		n, err := e.Lift(v)
		if err != nil {
			return nil, opError(op, errors.Wrapf(err, "operand %d", i))
		}
		nodes[i] = n
	}
	return nodes, nil
}

func (e *Engine[P]) binary(op string, fn func(a, b *Node[P]) (*Node[P], error), a, b any) (*Node[P], error) {
	nodes, err := e.lift(op, a, b)
	if err != nil {
		return nil, err
	}
	return fn(nodes[0], nodes[1])
}

func (e *Engine[P]) unary(op string, fn func(a *Node[P]) (*Node[P], error), a any) (*Node[P], error) {
	nodes, err := e.lift(op, a)
	if err != nil {
		return nil, err
	}
	return fn(nodes[0])
}

// Add returns a + b, lifting raw operands to constant leaves.
func (e *Engine[P]) Add(a, b any) (*Node[P], error) {
	return e.binary("add", Add[P], a, b)
}

// Sub returns a - b, lifting raw operands to constant leaves.
func (e *Engine[P]) Sub(a, b any) (*Node[P], error) {
	return e.binary("sub", Sub[P], a, b)
}

// Mul returns a * b element-wise, lifting raw operands to constant leaves.
func (e *Engine[P]) Mul(a, b any) (*Node[P], error) {
	return e.binary("mul", Mul[P], a, b)
}

// MatMul returns a @ b, lifting raw operands to constant leaves.
func (e *Engine[P]) MatMul(a, b any) (*Node[P], error) {
	return e.binary("matmul", MatMul[P], a, b)
}

// Product returns the backend's natural product of a and b, lifting raw
// operands to constant leaves. See Product.
func (e *Engine[P]) Product(a, b any) (*Node[P], error) {
	return e.binary("product", Product[P], a, b)
}

// Div returns a / b, lifting raw operands to constant leaves.
func (e *Engine[P]) Div(a, b any) (*Node[P], error) {
	return e.binary("div", Div[P], a, b)
}

// Neg returns -a, lifting a raw operand to a constant leaf.
func (e *Engine[P]) Neg(a any) (*Node[P], error) {
	return e.unary("neg", Neg[P], a)
}

// Pow returns a^exponent, lifting a raw operand to a constant leaf.
func (e *Engine[P]) Pow(a any, exponent float64) (*Node[P], error) {
	return e.unary("pow", func(n *Node[P]) (*Node[P], error) { return Pow(n, exponent) }, a)
}

// Exp returns e^a, lifting a raw operand to a constant leaf.
func (e *Engine[P]) Exp(a any) (*Node[P], error) {
	return e.unary("exp", Exp[P], a)
}

// Tanh returns tanh(a), lifting a raw operand to a constant leaf.
func (e *Engine[P]) Tanh(a any) (*Node[P], error) {
	return e.unary("tanh", Tanh[P], a)
}

// Sigmoid returns σ(a), lifting a raw operand to a constant leaf.
func (e *Engine[P]) Sigmoid(a any) (*Node[P], error) {
	return e.unary("sigmoid", Sigmoid[P], a)
}

// Backward runs the backward pass from target, which must be a *Node[P] of
// this engine; anything else fails with ErrInvalidArgument.
func (e *Engine[P]) Backward(target any) error {
	n, ok := target.(*Node[P])
	if !ok {
		return errors.Wrapf(ErrInvalidArgument, "backward: %T is not a node", target)
	}
	if n == nil || n.engine != e {
		return errors.Wrap(ErrInvalidArgument, "backward: node does not belong to this engine")
	}
	return Backward(n)
}
