package tensor

import (
	"fmt"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Array is a dense, row-major N-dimensional array of float64.
// A zero-rank Array holds a single value.
type Array struct {
	shape  Shape
	stride []int
	data   []float64
}

// NewArray creates an Array of the given shape over data.
// The Array takes ownership of data; len(data) must equal shape.NumElements().
func NewArray(shape Shape, data []float64) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid shape")
	}
	if len(data) != shape.NumElements() {
		return nil, errors.Wrapf(ErrShapeMismatch, "data length %d does not match shape %s (%d elements)",
			len(data), shape, shape.NumElements())
	}
	return &Array{
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		data:   data,
	}, nil
}

// Full creates an Array of the given shape filled with value.
// It panics if the shape is invalid.
func Full(shape Shape, value float64) *Array {
	data := make([]float64, shape.NumElements())
	if value != 0 {
		for i := range data {
			data[i] = value
		}
	}
	a, err := NewArray(shape, data)
	if err != nil {
		panic(fmt.Sprintf("full: %v", err))
	}
	return a
}

// Zeros creates a zero-filled Array.
func Zeros(shape Shape) *Array {
	return Full(shape, 0)
}

// Ones creates a one-filled Array.
func Ones(shape Shape) *Array {
	return Full(shape, 1)
}

// Scalar creates a zero-rank Array holding v.
func Scalar(v float64) *Array {
	return &Array{shape: Shape{}, stride: []int{}, data: []float64{v}}
}

// FromSlice creates a rank-1 Array holding a copy of values.
func FromSlice(values []float64) (*Array, error) {
	data := make([]float64, len(values))
	copy(data, values)
	return NewArray(Shape{len(values)}, data)
}

// FromRows creates a rank-2 Array from rows, which must be rectangular.
func FromRows(rows [][]float64) (*Array, error) {
	if len(rows) == 0 {
		return nil, errors.Wrap(ErrShapeMismatch, "from rows: no rows")
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, errors.Wrapf(ErrShapeMismatch, "from rows: row %d has %d columns, want %d", i, len(row), cols)
		}
		data = append(data, row...)
	}
	return NewArray(Shape{len(rows), cols}, data)
}

// FromMatrix copies a gonum matrix into a rank-2 Array.
func FromMatrix(m mat.Matrix) *Array {
	r, c := m.Dims()
	data := make([]float64, r*c)
	mat.NewDense(r, c, data).Copy(m)
	return &Array{shape: Shape{r, c}, stride: []int{c, 1}, data: data}
}

// Shape returns the array's shape.
func (a *Array) Shape() Shape {
	return a.shape
}

// Data returns the underlying row-major storage. Callers must not retain it
// across operations that may reuse storage.
func (a *Array) Data() []float64 {
	return a.data
}

// Len returns the number of elements.
func (a *Array) Len() int {
	return len(a.data)
}

// At returns the element at the given indices.
func (a *Array) At(indices ...int) float64 {
	if len(indices) != len(a.shape) {
		panic(fmt.Sprintf("at: got %d indices for shape %s", len(indices), a.shape))
	}
	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= a.shape[i] {
			panic(fmt.Sprintf("at: index %d out of range for dimension %d of shape %s", idx, i, a.shape))
		}
		offset += idx * a.stride[i]
	}
	return a.data[offset]
}

// Item returns the single element of a one-element array.
func (a *Array) Item() float64 {
	if len(a.data) != 1 {
		panic(fmt.Sprintf("item: array of shape %s has %d elements", a.shape, len(a.data)))
	}
	return a.data[0]
}

// Clone returns a deep copy.
func (a *Array) Clone() *Array {
	data := make([]float64, len(a.data))
	copy(data, a.data)
	return &Array{shape: a.shape.Clone(), stride: a.shape.ComputeStrides(), data: data}
}

// Equal reports whether both arrays have the same shape and elements.
func (a *Array) Equal(other *Array) bool {
	return a.shape.Equal(other.shape) && floats.Equal(a.data, other.data)
}

// EqualApprox reports whether both arrays have the same shape and all
// elements within tol of each other.
func (a *Array) EqualApprox(other *Array, tol float64) bool {
	return a.shape.Equal(other.shape) && floats.EqualApprox(a.data, other.data, tol)
}

// Dense returns a gonum view of a rank-2 array sharing its storage.
func (a *Array) Dense() (*mat.Dense, error) {
	if len(a.shape) != 2 {
		return nil, errors.Wrapf(ErrShapeMismatch, "dense: need rank 2, got shape %s", a.shape)
	}
	return mat.NewDense(a.shape[0], a.shape[1], a.data), nil
}

// String formats rank-2 arrays as matrices and others as flat values.
func (a *Array) String() string {
	if d, err := a.Dense(); err == nil {
		return fmt.Sprintf("%v", mat.Formatted(d, mat.Squeeze()))
	}
	if len(a.shape) == 0 {
		return fmt.Sprint(a.data[0])
	}
	return fmt.Sprintf("%v%s", a.data, a.shape)
}
