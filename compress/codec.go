package compress

import (
	"fmt"

	"github.com/arloliu/tensormap/errs"
	"github.com/arloliu/tensormap/format"
)

// Compressor compresses an encoded block payload.
//
// Memory management: the returned slice is newly allocated and owned by
// the caller (except the no-op codec, which returns the input slice); the
// input slice is never modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a block payload compressed with the matching
// algorithm. It validates the data format and returns an error if the data
// is corrupted or was compressed with an incompatible algorithm.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions. All codecs in this package implement it.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCodec(),
	format.CompressionZstd: NewZstdCodec(),
	format.CompressionS2:   NewS2Codec(),
	format.CompressionLZ4:  NewLZ4Codec(),
}

// NewCodec returns the built-in codec for the given compression type.
func NewCodec(compression format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compression]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compression)
}
