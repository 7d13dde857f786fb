// Package serialization saves and loads named float64 arrays in the
// SafeTensors format, the checkpoint format used for trained parameters.
//
//	Format Structure:
//	  [8 bytes: Header Size (uint64 LE)]
//	  [Header: JSON, tensor name -> {dtype, shape, data_offsets}, plus __metadata__]
//	  [Tensor data: raw little-endian bytes, tensors in name order]
//
// Only the F64 dtype is written or accepted.
//
// Example usage:
//
//	err := serialization.WriteSafeTensors("neuron.safetensors", map[string]*tensor.Array{
//	    "weights": w.Value(),
//	    "bias":    b.Value(),
//	}, map[string]string{"steps": "50"})
//
//	arrays, metadata, err := serialization.ReadSafeTensors("neuron.safetensors")
package serialization
