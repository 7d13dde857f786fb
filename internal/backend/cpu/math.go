package cpu

import (
	"math"

	"github.com/born-ml/backprop/internal/parallel"
	"github.com/born-ml/backprop/internal/tensor"
)

// gonum/floats has no element-wise map, so unary math loops directly,
// split across goroutines for large arrays.
func (cpu *CPUBackend) apply(a *tensor.Array, fn func(float64) float64) *tensor.Array {
	result := tensor.Zeros(a.Shape())
	src, dst := a.Data(), result.Data()
	parallel.Chunks(len(src), cpu.parallel, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = fn(src[i])
		}
	})
	return result
}

// Pow computes element-wise a^exponent.
func (cpu *CPUBackend) Pow(a *tensor.Array, exponent float64) *tensor.Array {
	return cpu.apply(a, func(v float64) float64 { return math.Pow(v, exponent) })
}

// Exp computes element-wise exponential: exp(x).
func (cpu *CPUBackend) Exp(a *tensor.Array) *tensor.Array {
	return cpu.apply(a, math.Exp)
}
