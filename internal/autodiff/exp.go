package autodiff

// Exp returns e^a element-wise.
//
// Backward pass:
//   - d(exp(a))/da = exp(a) = output, so grad_a += outputGrad * output
func Exp[P any](a *Node[P]) (*Node[P], error) {
	e, err := engineOf("exp", a)
	if err != nil {
		return nil, err
	}
	return e.newNode(OpExp, e.backend.Exp(a.value), 0, a), nil
}

func expBackward[P any](out *Node[P]) error {
	grad, err := out.engine.backend.Mul(out.grad, out.value)
	if err != nil {
		return err
	}
	return accumulate(out.operands[0], grad)
}
