package autodiff

// Mul returns the element-wise product a * b. Shapes must match exactly.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a += outputGrad * b
//   - d(a*b)/db = a, so grad_b += outputGrad * a
//
// Mul(x, x) records x once as a parent but both terms reach its gradient,
// giving 2x.
func Mul[P any](a, b *Node[P]) (*Node[P], error) {
	e, err := engineOf("mul", a, b)
	if err != nil {
		return nil, err
	}
	value, err := e.backend.Mul(a.value, b.value)
	if err != nil {
		return nil, opError("mul", err)
	}
	return e.newNode(OpMul, value, 0, a, b), nil
}

func mulBackward[P any](out *Node[P]) error {
	backend := out.engine.backend
	a, b := out.operands[0], out.operands[1]

	gradA, err := backend.Mul(out.grad, b.value)
	if err != nil {
		return err
	}
	gradB, err := backend.Mul(out.grad, a.value)
	if err != nil {
		return err
	}

	if err := accumulate(a, gradA); err != nil {
		return err
	}
	return accumulate(b, gradB)
}
