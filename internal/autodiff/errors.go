package autodiff

import (
	"errors"
	"fmt"

	"github.com/born-ml/backprop/internal/tensor"
	"github.com/gomlx/exceptions"
)

// Common errors.
var (
	// ErrShapeMismatch reports operand shapes incompatible with an operator.
	ErrShapeMismatch = tensor.ErrShapeMismatch

	// ErrInvalidOperand reports an operand that is not a node of the engine
	// and cannot be lifted to a constant leaf.
	ErrInvalidOperand = tensor.ErrInvalidOperand

	// ErrGraphCycle reports a graph in which a node is its own ancestor.
	ErrGraphCycle = errors.New("computation graph contains a cycle")

	// ErrInvalidArgument reports a backward pass requested on something that
	// is not a node of the engine.
	ErrInvalidArgument = errors.New("invalid argument")
)

// OpError records the operator that failed and why.
type OpError struct {
	Op  string // Operator name (e.g., "add", "matmul")
	Err error
}

// Error implements the error interface.
func (e *OpError) Error() string {
	return fmt.Sprintf("autodiff %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error, so errors.Is matches the sentinels.
func (e *OpError) Unwrap() error {
	return e.Err
}

func opError(op string, err error) error {
	return &OpError{Op: op, Err: err}
}

// Try runs fn and returns the error of any failed fluent operation
// (e.g., a.Add(b)) as a regular error.
//
// Example:
//
//	err := autodiff.Try(func() {
//	    loss = w.MatMul(x).Add(b).Sigmoid().Sub(target).Pow(2)
//	})
func Try(fn func()) error {
	return exceptions.TryCatch[error](fn)
}
