package autodiff

// Add returns the element-wise sum a + b. Shapes must match exactly.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a += outputGrad
//   - d(a+b)/db = 1, so grad_b += outputGrad
func Add[P any](a, b *Node[P]) (*Node[P], error) {
	e, err := engineOf("add", a, b)
	if err != nil {
		return nil, err
	}
	value, err := e.backend.Add(a.value, b.value)
	if err != nil {
		return nil, opError("add", err)
	}
	return e.newNode(OpAdd, value, 0, a, b), nil
}

func addBackward[P any](out *Node[P]) error {
	a, b := out.operands[0], out.operands[1]
	if err := accumulate(a, out.grad); err != nil {
		return err
	}
	return accumulate(b, out.grad)
}
