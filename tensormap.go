// Package tensormap provides labeled tensor blocks aggregated into maps
// that enforce a single numeric backend per map.
//
// Data enters the library as opaque buffers wrapped by the array package;
// each buffer is tagged with the origin of the backend that produced it
// (a CPU array library, a GPU/autograd library, ...). Blocks bundle one
// tagged array with labels for each axis, and maps aggregate blocks under
// keys. Constructing a map validates that every block shares one origin,
// so backend mixups surface immediately instead of corrupting a later
// computation.
//
// # Basic Usage
//
// Building a map from two blocks of the same backend:
//
//	import (
//	    "github.com/arloliu/tensormap"
//	    "github.com/arloliu/tensormap/array"
//	    "github.com/arloliu/tensormap/labels"
//	    "github.com/arloliu/tensormap/tensor"
//	)
//
//	keys, _ := labels.Arange("block", 2)
//
//	first, _ := tensor.NewBlock(array.Zeros(1, 1), labels.Single(), nil, labels.Single())
//	second, _ := tensor.NewBlock(array.Zeros(1, 1), labels.Single(), nil, labels.Single())
//
//	m, err := tensormap.New(keys, []*tensor.Block{first, second})
//
// Mixing backends fails at construction:
//
//	values, _ := array.FromBuffer([][]float64{{0.0}}, "gpu.autograd")
//	other, _ := tensor.NewBlock(values, labels.Single(), nil, labels.Single())
//
//	_, err = tensormap.New(keys, []*tensor.Block{first, other})
//	// err wraps errs.ErrOriginMismatch: "... different origins ..."
//
// Saving and loading:
//
//	data, _ := tensormap.Save(m)
//	m2, _ := tensormap.Load(data)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the tensor
// package, covering the most common use cases. For fine-grained control
// (byte order, compression choice) use the tensor package directly.
package tensormap

import (
	"github.com/arloliu/tensormap/format"
	"github.com/arloliu/tensormap/labels"
	"github.com/arloliu/tensormap/tensor"
)

var defaultEncoderOptions = []tensor.EncoderOption{
	tensor.WithLittleEndian(),
	tensor.WithCompression(format.CompressionZstd),
}

// New creates a map from keys labels and blocks, enforcing the
// single-origin invariant. It is a thin wrapper around tensor.NewMap.
func New(keys *labels.Labels, blocks []*tensor.Block) (*tensor.Map, error) {
	return tensor.NewMap(keys, blocks)
}

// Save serializes a map with the default settings: little-endian byte
// order and Zstd payload compression. Caller options are applied after the
// defaults, so passing one option overrides only that setting.
func Save(m *tensor.Map, opts ...tensor.EncoderOption) ([]byte, error) {
	merged := make([]tensor.EncoderOption, 0, len(defaultEncoderOptions)+len(opts))
	merged = append(merged, defaultEncoderOptions...)
	merged = append(merged, opts...)

	encoder, err := tensor.NewEncoder(merged...)
	if err != nil {
		return nil, err
	}

	return encoder.Encode(m)
}

// Load deserializes a map previously encoded with Save or tensor.Encoder,
// re-validating every construction invariant.
func Load(data []byte) (*tensor.Map, error) {
	decoder, err := tensor.NewDecoder(data)
	if err != nil {
		return nil, err
	}

	return decoder.Decode()
}
