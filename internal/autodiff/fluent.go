package autodiff

import "github.com/janpfeifer/must"

// Fluent forms of the operators for chaining expressions. They panic with the
// same error the package-level function would return; wrap a block of them
// in Try to get it back as an error.

// Add returns n + other. See Add.
func (n *Node[P]) Add(other *Node[P]) *Node[P] {
	return must.M1(Add(n, other))
}

// Sub returns n - other. See Sub.
func (n *Node[P]) Sub(other *Node[P]) *Node[P] {
	return must.M1(Sub(n, other))
}

// Neg returns -n. See Neg.
func (n *Node[P]) Neg() *Node[P] {
	return must.M1(Neg(n))
}

// Mul returns the element-wise product n * other. See Mul.
func (n *Node[P]) Mul(other *Node[P]) *Node[P] {
	return must.M1(Mul(n, other))
}

// MatMul returns the matrix product n @ other. See MatMul.
func (n *Node[P]) MatMul(other *Node[P]) *Node[P] {
	return must.M1(MatMul(n, other))
}

// Div returns n / other. See Div.
func (n *Node[P]) Div(other *Node[P]) *Node[P] {
	return must.M1(Div(n, other))
}

// Pow returns n^exponent. See Pow.
func (n *Node[P]) Pow(exponent float64) *Node[P] {
	return must.M1(Pow(n, exponent))
}

// Exp returns e^n. See Exp.
func (n *Node[P]) Exp() *Node[P] {
	return must.M1(Exp(n))
}

// Tanh returns tanh(n). See Tanh.
func (n *Node[P]) Tanh() *Node[P] {
	return must.M1(Tanh(n))
}

// Sigmoid returns σ(n). See Sigmoid.
func (n *Node[P]) Sigmoid() *Node[P] {
	return must.M1(Sigmoid(n))
}
