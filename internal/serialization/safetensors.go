package serialization

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"sort"

	"github.com/born-ml/backprop/internal/tensor"
	"github.com/pkg/errors"
)

const (
	metadataKey = "__metadata__"
	dtypeF64    = "F64"
	f64Size     = 8
)

// TensorInfo describes a tensor in the SafeTensors header.
type TensorInfo struct {
	DType       string   `json:"dtype"`
	Shape       []int    `json:"shape"`
	DataOffsets [2]int64 `json:"data_offsets"` // [start, end)
}

// Header is the parsed JSON header of a SafeTensors file.
type Header struct {
	Metadata map[string]string
	Tensors  map[string]TensorInfo
}

// MarshalJSON writes tensors and metadata as one flat object.
func (h Header) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(h.Tensors)+1)
	for name, info := range h.Tensors {
		flat[name] = info
	}
	if len(h.Metadata) > 0 {
		flat[metadataKey] = h.Metadata
	}
	return json.Marshal(flat)
}

// UnmarshalJSON splits the flat header object into tensors and metadata.
func (h *Header) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	h.Tensors = make(map[string]TensorInfo, len(raw))
	for key, value := range raw {
		if key == metadataKey {
			if err := json.Unmarshal(value, &h.Metadata); err != nil {
				return errors.Wrap(err, "metadata")
			}
			continue
		}
		var info TensorInfo
		if err := json.Unmarshal(value, &info); err != nil {
			return errors.Wrapf(err, "tensor %q", key)
		}
		h.Tensors[key] = info
	}
	return nil
}

// WriteSafeTensors saves arrays and optional metadata to path.
func WriteSafeTensors(path string, arrays map[string]*tensor.Array, metadata map[string]string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create file")
	}

	w := bufio.NewWriter(f)
	if err := WriteSafeTensorsTo(w, arrays, metadata); err != nil {
		_ = f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return errors.Wrap(err, "failed to flush")
	}
	return f.Close()
}

// WriteSafeTensorsTo writes arrays and optional metadata to w. Tensors are
// laid out in name order so the output is deterministic.
func WriteSafeTensorsTo(w io.Writer, arrays map[string]*tensor.Array, metadata map[string]string) error {
	names := make([]string, 0, len(arrays))
	for name, a := range arrays {
		if err := ValidateTensorName(name); err != nil {
			return err
		}
		if a == nil {
			return errors.Errorf("tensor %q is nil", name)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	header := Header{Metadata: metadata, Tensors: make(map[string]TensorInfo, len(names))}
	var offset int64
	for _, name := range names {
		a := arrays[name]
		size := int64(a.Len()) * f64Size
		shape := append([]int{}, a.Shape()...)
		header.Tensors[name] = TensorInfo{
			DType:       dtypeF64,
			Shape:       shape,
			DataOffsets: [2]int64{offset, offset + size},
		}
		offset += size
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return errors.Wrap(err, "failed to marshal header")
	}
	// Pad the header with spaces so the data section is 8-byte aligned.
	if pad := len(headerJSON) % 8; pad != 0 {
		headerJSON = append(headerJSON, bytes.Repeat([]byte{' '}, 8-pad)...)
	}

	if err := binary.Write(w, binary.LittleEndian, uint64(len(headerJSON))); err != nil {
		return errors.Wrap(err, "failed to write header size")
	}
	if _, err := w.Write(headerJSON); err != nil {
		return errors.Wrap(err, "failed to write header")
	}

	buf := make([]byte, f64Size)
	for _, name := range names {
		for _, v := range arrays[name].Data() {
			binary.LittleEndian.PutUint64(buf, math.Float64bits(v))
			if _, err := w.Write(buf); err != nil {
				return errors.Wrapf(err, "failed to write tensor %q", name)
			}
		}
	}
	return nil
}

// ReadSafeTensors loads every array and the metadata from path.
func ReadSafeTensors(path string) (map[string]*tensor.Array, map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open file")
	}
	defer func() { _ = f.Close() }()

	return ReadSafeTensorsFrom(bufio.NewReader(f))
}

// ReadSafeTensorsFrom loads every array and the metadata from r.
func ReadSafeTensorsFrom(r io.Reader) (map[string]*tensor.Array, map[string]string, error) {
	var headerSize uint64
	if err := binary.Read(r, binary.LittleEndian, &headerSize); err != nil {
		return nil, nil, errors.Wrap(err, "failed to read header size")
	}
	if headerSize > MaxHeaderSize {
		return nil, nil, errors.Wrapf(ErrHeaderTooLarge, "%d bytes", headerSize)
	}

	headerBytes := make([]byte, headerSize)
	if _, err := io.ReadFull(r, headerBytes); err != nil {
		return nil, nil, errors.Wrap(err, "failed to read header")
	}
	var header Header
	if err := json.Unmarshal(bytes.TrimRight(headerBytes, " "), &header); err != nil {
		return nil, nil, errors.Wrap(err, "failed to parse header")
	}

	metas := make([]TensorMeta, 0, len(header.Tensors))
	var dataSize int64
	for name, info := range header.Tensors {
		if err := ValidateTensorName(name); err != nil {
			return nil, nil, err
		}
		if info.DType != dtypeF64 {
			return nil, nil, errors.Wrapf(ErrUnsupportedDType, "tensor %q has dtype %s", name, info.DType)
		}
		shape := tensor.Shape(info.Shape)
		if err := shape.Validate(); err != nil {
			return nil, nil, errors.Wrapf(err, "tensor %q", name)
		}
		size := info.DataOffsets[1] - info.DataOffsets[0]
		if size != int64(shape.NumElements())*f64Size {
			return nil, nil, &ValidationError{
				Type:    "size_mismatch",
				Tensor:  name,
				Details: "data_offsets do not match shape " + shape.String(),
			}
		}
		metas = append(metas, TensorMeta{Name: name, Offset: info.DataOffsets[0], Size: size})
		dataSize = max(dataSize, info.DataOffsets[1])
	}
	if err := ValidateTensorOffsets(metas, dataSize); err != nil {
		return nil, nil, err
	}

	// Never allocate from the header's claim.
	data, err := io.ReadAll(io.LimitReader(r, dataSize))
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to read tensor data")
	}
	if int64(len(data)) < dataSize {
		return nil, nil, &ValidationError{
			Type:    "truncated_data",
			Details: fmt.Sprintf("header declares %d data bytes, file has %d", dataSize, len(data)),
		}
	}

	arrays := make(map[string]*tensor.Array, len(header.Tensors))
	for name, info := range header.Tensors {
		raw := data[info.DataOffsets[0]:info.DataOffsets[1]]
		values := make([]float64, len(raw)/f64Size)
		for i := range values {
			values[i] = math.Float64frombits(binary.LittleEndian.Uint64(raw[i*f64Size:]))
		}
		a, err := tensor.NewArray(tensor.Shape(info.Shape), values)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "tensor %q", name)
		}
		arrays[name] = a
	}
	return arrays, header.Metadata, nil
}

// Lookup returns the named array or ErrMissingTensor.
func Lookup(arrays map[string]*tensor.Array, name string) (*tensor.Array, error) {
	a, ok := arrays[name]
	if !ok {
		return nil, errors.Wrapf(ErrMissingTensor, "%q", name)
	}
	return a, nil
}
