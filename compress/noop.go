package compress

// NoOpCodec passes payloads through unchanged. It is the codec behind
// format.CompressionNone and is also handy as a baseline in benchmarks.
//
// Both directions return the input slice as-is, sharing its memory;
// callers must not modify the input afterwards.
type NoOpCodec struct{}

var _ Codec = (*NoOpCodec)(nil)

// NewNoOpCodec creates a pass-through codec.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

// Compress returns data unchanged.
func (c NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data unchanged.
func (c NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
