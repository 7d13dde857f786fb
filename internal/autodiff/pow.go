package autodiff

// Pow returns a^exponent element-wise for a constant exponent, which may be
// negative or fractional.
//
// Backward pass:
//   - d(a^p)/da = p * a^(p-1), so grad_a += p * a^(p-1) * outputGrad
//
// The contribution is accumulated like every other operator, so a node
// raised to a power and also used elsewhere keeps both contributions.
// Config.LegacyPowGradient switches to assignment instead.
func Pow[P any](a *Node[P], exponent float64) (*Node[P], error) {
	e, err := engineOf("pow", a)
	if err != nil {
		return nil, err
	}
	return e.newNode(OpPow, e.backend.Pow(a.value, exponent), exponent, a), nil
}

func powBackward[P any](out *Node[P]) error {
	backend := out.engine.backend
	a, p := out.operands[0], out.exponent

	local := backend.Scale(backend.Pow(a.value, p-1), p)
	grad, err := backend.Mul(local, out.grad)
	if err != nil {
		return err
	}

	if out.engine.config.LegacyPowGradient {
		a.grad = grad
		return nil
	}
	return accumulate(a, grad)
}
