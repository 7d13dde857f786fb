package autodiff

import (
	"github.com/born-ml/backprop/internal/tensor"
	"github.com/pkg/errors"
)

// OpType identifies the operator that produced a node. It selects the
// node's backward rule.
type OpType int

// Operators. Sub and Div are derived and have no type of their own.
const (
	OpLeaf OpType = iota
	OpAdd
	OpNeg
	OpMul
	OpMatMul
	OpPow
	OpExp
	OpTanh
	OpSigmoid
)

// String returns the operator name.
func (op OpType) String() string {
	switch op {
	case OpLeaf:
		return "leaf"
	case OpAdd:
		return "add"
	case OpNeg:
		return "neg"
	case OpMul:
		return "mul"
	case OpMatMul:
		return "matmul"
	case OpPow:
		return "pow"
	case OpExp:
		return "exp"
	case OpTanh:
		return "tanh"
	case OpSigmoid:
		return "sigmoid"
	default:
		return "unknown"
	}
}

// engineOf checks that every operand is a node of one engine and returns it.
func engineOf[P any](op string, operands ...*Node[P]) (*Engine[P], error) {
	var e *Engine[P]
	for i, n := range operands {
		if n == nil {
			return nil, opError(op, errors.Wrapf(ErrInvalidOperand, "operand %d is nil", i))
		}
		if n.engine == nil {
			return nil, opError(op, errors.Wrapf(ErrInvalidOperand, "operand %d was not created by an engine", i))
		}
		if e == nil {
			e = n.engine
		} else if n.engine != e {
			return nil, opError(op, errors.Wrapf(ErrInvalidOperand, "operand %d belongs to engine %s, want %s",
				i, n.engine.Name(), e.Name()))
		}
	}
	return e, nil
}

// Sub returns a - b, built as a + (-b).
func Sub[P any](a, b *Node[P]) (*Node[P], error) {
	if _, err := engineOf("sub", a, b); err != nil {
		return nil, err
	}
	if err := tensor.CheckSameShape("sub", a.Shape(), b.Shape()); err != nil {
		return nil, opError("sub", err)
	}
	negB, err := Neg(b)
	if err != nil {
		return nil, err
	}
	return Add(a, negB)
}

// Div returns a / b, built as a * b^-1.
func Div[P any](a, b *Node[P]) (*Node[P], error) {
	if _, err := engineOf("div", a, b); err != nil {
		return nil, err
	}
	if err := tensor.CheckSameShape("div", a.Shape(), b.Shape()); err != nil {
		return nil, opError("div", err)
	}
	inv, err := Pow(b, -1)
	if err != nil {
		return nil, err
	}
	return Mul(a, inv)
}

// Product returns the natural product of the engine's payloads: MatMul for
// backends reporting tensor.MatrixProducter, Mul otherwise.
func Product[P any](a, b *Node[P]) (*Node[P], error) {
	e, err := engineOf("product", a, b)
	if err != nil {
		return nil, err
	}
	if mp, ok := e.backend.(tensor.MatrixProducter); ok && mp.MatrixProduct() {
		return MatMul(a, b)
	}
	return Mul(a, b)
}
