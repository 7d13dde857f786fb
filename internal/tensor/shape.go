package tensor

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Shape represents the dimensions of a payload.
// An empty shape is a scalar.
type Shape []int

// NumElements returns the total number of elements.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// IsScalar reports whether the shape has no dimensions.
func (s Shape) IsScalar() bool {
	return len(s) == 0
}

// Validate checks if the shape is valid (all dimensions > 0).
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return errors.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// String renders the shape as "(2, 3)", or "()" for a scalar.
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, dim := range s {
		parts[i] = fmt.Sprint(dim)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// CheckSameShape returns an ErrShapeMismatch naming op when a and b differ.
func CheckSameShape(op string, a, b Shape) error {
	if !a.Equal(b) {
		return errors.Wrapf(ErrShapeMismatch, "%s: %s vs %s", op, a, b)
	}
	return nil
}

// CheckMatMul validates the shapes of a matrix product a·b and returns the
// output shape.
func CheckMatMul(a, b Shape) (Shape, error) {
	if len(a) != 2 || len(b) != 2 {
		return nil, errors.Wrapf(ErrShapeMismatch, "matmul: only rank-2 operands supported, got rank %d and %d", len(a), len(b))
	}
	if a[1] != b[0] {
		return nil, errors.Wrapf(ErrShapeMismatch, "matmul: inner dimensions differ %s @ %s", a, b)
	}
	return Shape{a[0], b[1]}, nil
}
