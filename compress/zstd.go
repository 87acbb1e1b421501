package compress

// ZstdCodec compresses payloads with Zstandard. It gives the best ratio of
// the supported codecs on block payloads and is the default for maps
// written to storage.
//
// The implementation is selected at build time: the pure-Go
// klauspost/compress encoder by default, or the cgo valyala/gozstd binding
// when built with the tensormap_cgo_zstd tag.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstandard codec.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
