package tensor

import "errors"

// Common errors.
var (
	ErrShapeMismatch  = errors.New("shape mismatch")
	ErrInvalidOperand = errors.New("invalid operand")
)
