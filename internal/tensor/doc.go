// Package tensor provides the payload types shared by the autodiff engine and
// its backends: Shape, the dense float64 Array, and the generic Backend
// capability interface.
package tensor
