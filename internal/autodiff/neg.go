package autodiff

// Neg returns -a.
//
// Backward pass:
//   - d(-a)/da = -1, so grad_a += -outputGrad
func Neg[P any](a *Node[P]) (*Node[P], error) {
	e, err := engineOf("neg", a)
	if err != nil {
		return nil, err
	}
	return e.newNode(OpNeg, e.backend.Neg(a.value), 0, a), nil
}

func negBackward[P any](out *Node[P]) error {
	return accumulate(out.operands[0], out.engine.backend.Neg(out.grad))
}
