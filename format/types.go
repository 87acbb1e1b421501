package format

type (
	CompressionType uint8
	DType           uint8
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.

	DTypeFloat64 DType = 0x1 // DTypeFloat64 represents IEEE 754 64-bit values.
	DTypeFloat32 DType = 0x2 // DTypeFloat32 is reserved; no float32 backend exists yet.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

func (d DType) String() string {
	switch d {
	case DTypeFloat64:
		return "Float64"
	case DTypeFloat32:
		return "Float32"
	default:
		return "Unknown"
	}
}
