package section

import (
	"fmt"

	"github.com/arloliu/tensormap/errs"
)

// MapHeader is the fixed-size header at the start of a serialized map.
type MapHeader struct {
	// Flag is the packed options/magic field. byte offset 0-3.
	// Always stored little-endian so decoders can read it before knowing
	// the file's byte order.
	Flag MapFlag

	// BlockCount is the number of blocks in the map. byte offset 4-7.
	BlockCount uint32

	// IndexOffset is the byte offset of the block index section, i.e. the
	// end of the keys section. byte offset 8-11.
	IndexOffset uint32

	// PayloadOffset is the byte offset of the (possibly compressed) block
	// payload section. byte offset 12-15.
	PayloadOffset uint32

	// PayloadSize is the uncompressed size of the block payload in bytes.
	// byte offset 16-19.
	PayloadSize uint32

	// Checksum is the CRC32-Castagnoli checksum of the payload section as
	// stored (after compression). byte offset 20-23.
	Checksum uint32

	// Bytes 24-31 are reserved and must be zero.
}

// NewMapHeader creates a header with default flags. Counts, offsets and
// checksum are filled in when the encoder finishes.
func NewMapHeader() *MapHeader {
	return &MapHeader{
		Flag: NewMapFlag(),
	}
}

// Parse parses the header from a byte slice of exactly HeaderSize bytes.
func (h *MapHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("%w: got %d bytes, expected %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	// The flag itself is always little-endian; it tells us the byte order
	// of everything else.
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.CompressionType = data[2]
	h.Flag.DType = data[3]

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.Flag.GetEndianEngine()
	h.BlockCount = engine.Uint32(data[4:8])
	h.IndexOffset = engine.Uint32(data[8:12])
	h.PayloadOffset = engine.Uint32(data[12:16])
	h.PayloadSize = engine.Uint32(data[16:20])
	h.Checksum = engine.Uint32(data[20:24])

	return h.validateOffsets()
}

// Bytes serializes the header into a new HeaderSize byte slice.
func (h *MapHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)

	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = h.Flag.CompressionType
	b[3] = h.Flag.DType

	engine := h.Flag.GetEndianEngine()
	engine.PutUint32(b[4:8], h.BlockCount)
	engine.PutUint32(b[8:12], h.IndexOffset)
	engine.PutUint32(b[12:16], h.PayloadOffset)
	engine.PutUint32(b[16:20], h.PayloadSize)
	engine.PutUint32(b[20:24], h.Checksum)

	return b
}

func (h *MapHeader) validateOffsets() error {
	if h.IndexOffset < HeaderSize {
		return fmt.Errorf("%w: index offset %d overlaps header", errs.ErrInvalidHeaderSize, h.IndexOffset)
	}

	indexSize := uint64(h.BlockCount) * IndexEntrySize
	if uint64(h.PayloadOffset) < uint64(h.IndexOffset)+indexSize {
		return fmt.Errorf("%w: payload offset %d overlaps index section (offset %d, %d entries)",
			errs.ErrInvalidHeaderSize, h.PayloadOffset, h.IndexOffset, h.BlockCount)
	}

	return nil
}
