package autodiff

// MatMul returns the matrix product a @ b of two rank-2 payloads with
// a.cols == b.rows.
//
// Backward pass:
//   - d(A@B)/dA = outputGrad @ B^T
//   - d(A@B)/dB = A^T @ outputGrad
func MatMul[P any](a, b *Node[P]) (*Node[P], error) {
	e, err := engineOf("matmul", a, b)
	if err != nil {
		return nil, err
	}
	value, err := e.backend.MatMul(a.value, b.value)
	if err != nil {
		return nil, opError("matmul", err)
	}
	return e.newNode(OpMatMul, value, 0, a, b), nil
}

func matmulBackward[P any](out *Node[P]) error {
	backend := out.engine.backend
	a, b := out.operands[0], out.operands[1]

	// grad_a = outputGrad @ b^T
	bT, err := backend.Transpose(b.value)
	if err != nil {
		return err
	}
	gradA, err := backend.MatMul(out.grad, bT)
	if err != nil {
		return err
	}

	// grad_b = a^T @ outputGrad
	aT, err := backend.Transpose(a.value)
	if err != nil {
		return err
	}
	gradB, err := backend.MatMul(aT, out.grad)
	if err != nil {
		return err
	}

	if err := accumulate(a, gradA); err != nil {
		return err
	}
	return accumulate(b, gradB)
}
