package autodiff

// Sigmoid returns the logistic function 1 / (1 + e^-a) element-wise.
//
// Backward pass:
//   - dσ/da = σ(a) * (1 - σ(a)), computed from the output s:
//     grad_a += s * (1 - s) * outputGrad
func Sigmoid[P any](a *Node[P]) (*Node[P], error) {
	e, err := engineOf("sigmoid", a)
	if err != nil {
		return nil, err
	}
	return e.newNode(OpSigmoid, e.backend.Sigmoid(a.value), 0, a), nil
}

func sigmoidBackward[P any](out *Node[P]) error {
	backend := out.engine.backend
	s := out.value

	// 1 - s
	oneMinus, err := backend.Add(backend.Ones(backend.Shape(s)), backend.Neg(s))
	if err != nil {
		return err
	}
	derivative, err := backend.Mul(s, oneMinus)
	if err != nil {
		return err
	}
	grad, err := backend.Mul(out.grad, derivative)
	if err != nil {
		return err
	}
	return accumulate(out.operands[0], grad)
}
