package section

import (
	"fmt"

	"github.com/arloliu/tensormap/endian"
	"github.com/arloliu/tensormap/errs"
)

// BlockIndexEntry records where one block's record lives inside the
// uncompressed payload. It is a fixed size of 16 bytes.
//
// Offsets are absolute positions inside the uncompressed payload: block
// records vary widely in size (labels plus values), so delta encoding the
// offsets would not reliably fit narrow integer fields.
type BlockIndexEntry struct {
	// KeyHash is the xxHash64 of the block's key entry in the map keys.
	// It lets a reader locate a block without decoding the keys labels.
	//
	// Offset: 0, Size: 8 bytes
	KeyHash uint64

	// Offset is the absolute byte offset of the block record inside the
	// uncompressed payload.
	//
	// Offset: 8, Size: 4 bytes
	Offset uint32

	// Length is the byte length of the block record.
	//
	// Offset: 12, Size: 4 bytes
	Length uint32
}

// Parse parses one index entry from a byte slice of at least
// IndexEntrySize bytes, using the given byte order.
func (e *BlockIndexEntry) Parse(data []byte, engine endian.EndianEngine) error {
	if len(data) < IndexEntrySize {
		return fmt.Errorf("%w: got %d bytes, need %d", errs.ErrInvalidIndexEntry, len(data), IndexEntrySize)
	}

	e.KeyHash = engine.Uint64(data[0:8])
	e.Offset = engine.Uint32(data[8:12])
	e.Length = engine.Uint32(data[12:16])

	return nil
}

// AppendBytes appends the 16-byte encoding of this entry to buf.
func (e *BlockIndexEntry) AppendBytes(buf []byte, engine endian.EndianEngine) []byte {
	buf = engine.AppendUint64(buf, e.KeyHash)
	buf = engine.AppendUint32(buf, e.Offset)
	buf = engine.AppendUint32(buf, e.Length)

	return buf
}

// Validate checks that the entry lies entirely inside a payload of the
// given uncompressed size.
func (e *BlockIndexEntry) Validate(payloadSize uint32) error {
	end := uint64(e.Offset) + uint64(e.Length)
	if end > uint64(payloadSize) {
		return fmt.Errorf("%w: record [%d, %d) exceeds payload size %d",
			errs.ErrInvalidIndexEntry, e.Offset, end, payloadSize)
	}

	return nil
}
