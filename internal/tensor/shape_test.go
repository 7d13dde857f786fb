package tensor

import (
	"errors"
	"testing"
)

func assertEqualShape(t *testing.T, expected, actual Shape, msg string) {
	t.Helper()
	if !expected.Equal(actual) {
		t.Errorf("%s: expected shape %v, got %v", msg, expected, actual)
	}
}

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape    Shape
		expected int
	}{
		{Shape{}, 1},         // Scalar
		{Shape{5}, 5},        // 1D
		{Shape{3, 4}, 12},    // 2D
		{Shape{2, 3, 4}, 24}, // 3D
		{Shape{1, 1, 1}, 1},  // Ones
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.expected {
			t.Errorf("Shape%v.NumElements() = %d, want %d", tt.shape, got, tt.expected)
		}
	}
}

func TestShapeValidation(t *testing.T) {
	validShapes := []Shape{
		{},
		{1},
		{3, 4},
		{2, 3, 4},
	}

	for _, s := range validShapes {
		if err := s.Validate(); err != nil {
			t.Errorf("Shape%v.Validate() failed: %v", s, err)
		}
	}

	invalidShapes := []Shape{
		{0},
		{3, 0},
		{-1},
		{3, -4},
	}

	for _, s := range invalidShapes {
		if err := s.Validate(); err == nil {
			t.Errorf("Shape%v.Validate() should fail but didn't", s)
		}
	}
}

func TestShapeEqual(t *testing.T) {
	tests := []struct {
		a, b  Shape
		equal bool
	}{
		{Shape{3, 4}, Shape{3, 4}, true},
		{Shape{3, 4}, Shape{4, 3}, false},
		{Shape{3}, Shape{3, 1}, false},
		{Shape{}, Shape{}, true},
		{Shape{}, nil, true},
	}

	for _, tt := range tests {
		if got := tt.a.Equal(tt.b); got != tt.equal {
			t.Errorf("Shape%v.Equal(%v) = %v, want %v", tt.a, tt.b, got, tt.equal)
		}
	}
}

func TestComputeStrides(t *testing.T) {
	tests := []struct {
		shape    Shape
		expected []int
	}{
		{Shape{}, []int{}},
		{Shape{4}, []int{1}},
		{Shape{3, 4}, []int{4, 1}},
		{Shape{2, 3, 4}, []int{12, 4, 1}},
	}

	for _, tt := range tests {
		got := tt.shape.ComputeStrides()
		if len(got) != len(tt.expected) {
			t.Fatalf("Shape%v.ComputeStrides() length = %d, want %d", tt.shape, len(got), len(tt.expected))
		}
		for i := range got {
			if got[i] != tt.expected[i] {
				t.Errorf("Shape%v.ComputeStrides()[%d] = %d, want %d", tt.shape, i, got[i], tt.expected[i])
			}
		}
	}
}

func TestShapeString(t *testing.T) {
	tests := []struct {
		shape    Shape
		expected string
	}{
		{Shape{}, "()"},
		{Shape{4}, "(4)"},
		{Shape{2, 3}, "(2, 3)"},
	}

	for _, tt := range tests {
		if got := tt.shape.String(); got != tt.expected {
			t.Errorf("Shape%v.String() = %q, want %q", []int(tt.shape), got, tt.expected)
		}
	}
}

func TestShapeClone(t *testing.T) {
	s := Shape{2, 3}
	c := s.Clone()
	c[0] = 7
	assertEqualShape(t, Shape{2, 3}, s, "original after clone mutation")
}

func TestCheckSameShape(t *testing.T) {
	if err := CheckSameShape("add", Shape{2, 3}, Shape{2, 3}); err != nil {
		t.Errorf("CheckSameShape on equal shapes: %v", err)
	}
	err := CheckSameShape("add", Shape{2, 3}, Shape{3, 2})
	if !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("CheckSameShape on (2, 3) vs (3, 2) = %v, want ErrShapeMismatch", err)
	}
}

func TestCheckMatMul(t *testing.T) {
	out, err := CheckMatMul(Shape{2, 3}, Shape{3, 5})
	if err != nil {
		t.Fatalf("CheckMatMul: %v", err)
	}
	assertEqualShape(t, Shape{2, 5}, out, "matmul output")

	invalid := [][2]Shape{
		{{2, 3}, {2, 3}}, // inner dimensions differ
		{{3}, {3, 1}},    // rank 1
		{{1, 2, 3}, {3, 1}},
	}
	for _, pair := range invalid {
		if _, err := CheckMatMul(pair[0], pair[1]); !errors.Is(err, ErrShapeMismatch) {
			t.Errorf("CheckMatMul(%v, %v) = %v, want ErrShapeMismatch", pair[0], pair[1], err)
		}
	}
}
