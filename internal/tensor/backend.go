package tensor

// Backend defines the payload arithmetic an autodiff engine composes.
// P is the payload type: float64 for the scalar backend, *Array for the
// array backend.
//
// Every method except AddTo returns a freshly allocated payload and leaves its
// arguments untouched. Binary elementwise methods require equal shapes and
// fail with ErrShapeMismatch otherwise; there is no broadcasting.
//
// Implementations:
//   - cpu: dense N-d arrays on gonum
//   - scalar: plain float64
type Backend[P any] interface {
	// Name returns the backend name.
	Name() string

	// Shape returns the dimensions of p.
	Shape(p P) Shape

	// Creation
	Zeros(shape Shape) P
	Ones(shape Shape) P
	Clone(p P) P

	// Lift converts a raw Go value into a payload owned by the caller.
	// Values the backend cannot represent fail with ErrInvalidOperand.
	Lift(v any) (P, error)

	// Element-wise binary operations
	Add(a, b P) (P, error)
	Mul(a, b P) (P, error)

	// AddTo accumulates src into dst and returns the result. It may reuse the
	// storage of dst, so dst must be owned by the caller.
	AddTo(dst, src P) (P, error)

	// Matrix operations
	MatMul(a, b P) (P, error)
	Transpose(p P) (P, error)

	// Element-wise unary operations
	Neg(p P) P
	Scale(p P, factor float64) P
	Pow(p P, exponent float64) P
	Exp(p P) P
	Tanh(p P) P
	Sigmoid(p P) P
}

// MatrixProducter is implemented by backends whose natural product is the
// matrix product rather than the element-wise one.
type MatrixProducter interface {
	MatrixProduct() bool
}
