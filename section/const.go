package section

const (
	// HeaderSize is the fixed size of the map header in bytes.
	HeaderSize = 32

	// IndexEntrySize is the fixed size of one block index entry in bytes.
	IndexEntrySize = 16

	// Bit masks for the packed Options field.
	EndiannessMask   = 0x0001 // Mask for endianness bit (bit 0).
	ReservedBitsMask = 0x000E // Mask for reserved bits (bits 1-3), must be zero.
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15).

	// MagicMapV1Opt is the version 1 magic number for the map format.
	MagicMapV1Opt = 0xEC10
)
