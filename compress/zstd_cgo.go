//go:build tensormap_cgo_zstd

package compress

import "github.com/valyala/gozstd"

// cgo implementation of the Zstandard codec, backed by libzstd through
// valyala/gozstd. Level 3 matches the default level of the pure-Go build.

// Compress compresses the payload using libzstd.
func (c ZstdCodec) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

// Decompress restores a zstd payload using libzstd.
func (c ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
