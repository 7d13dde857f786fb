package autodiff

import "fmt"

// replay runs the backward rule of node, adding its contribution into the
// gradients of its operands.
func replay[P any](node *Node[P]) error {
	switch node.op {
	case OpLeaf:
		return nil
	case OpAdd:
		return addBackward(node)
	case OpNeg:
		return negBackward(node)
	case OpMul:
		return mulBackward(node)
	case OpMatMul:
		return matmulBackward(node)
	case OpPow:
		return powBackward(node)
	case OpExp:
		return expBackward(node)
	case OpTanh:
		return tanhBackward(node)
	case OpSigmoid:
		return sigmoidBackward(node)
	default:
		panic(fmt.Sprintf("autodiff: no backward rule for operator %d", node.op))
	}
}

// accumulate adds contrib into target's gradient.
func accumulate[P any](target *Node[P], contrib P) error {
	grad, err := target.engine.backend.AddTo(target.grad, contrib)
	if err != nil {
		return err
	}
	target.grad = grad
	return nil
}
