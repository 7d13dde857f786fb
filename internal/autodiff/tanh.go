package autodiff

// Tanh returns the hyperbolic tangent (e^a - e^-a) / (e^a + e^-a)
// element-wise.
//
// Backward pass:
//   - d(tanh(a))/da = 1 - tanh²(a), computed from the output t:
//     grad_a += (1 - t²) * outputGrad
func Tanh[P any](a *Node[P]) (*Node[P], error) {
	e, err := engineOf("tanh", a)
	if err != nil {
		return nil, err
	}
	return e.newNode(OpTanh, e.backend.Tanh(a.value), 0, a), nil
}

func tanhBackward[P any](out *Node[P]) error {
	backend := out.engine.backend
	t := out.value

	tSquared, err := backend.Mul(t, t)
	if err != nil {
		return err
	}
	// 1 - t²
	derivative, err := backend.Add(backend.Ones(backend.Shape(t)), backend.Neg(tSquared))
	if err != nil {
		return err
	}
	grad, err := backend.Mul(out.grad, derivative)
	if err != nil {
		return err
	}
	return accumulate(out.operands[0], grad)
}
