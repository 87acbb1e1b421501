package section

import (
	"fmt"

	"github.com/arloliu/tensormap/endian"
	"github.com/arloliu/tensormap/errs"
	"github.com/arloliu/tensormap/format"
)

// MapFlag is the packed field at the start of the map header.
type MapFlag struct {
	// Options is a packed field for various options.
	// Bit 0 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bits 1-3 are reserved for future use, must be set to 0.
	// Bits 4-15 are the magic number identifying the map format:
	//   - 0xEC10 (0b1110_1100_0001_0000): map format v1
	Options uint16

	// CompressionType is the compression applied to the block payload.
	CompressionType uint8

	// DType is the data type of the block values.
	DType uint8
}

var validCompressions = map[uint8]struct{}{
	uint8(format.CompressionNone): {},
	uint8(format.CompressionZstd): {},
	uint8(format.CompressionS2):   {},
	uint8(format.CompressionLZ4):  {},
}

// NewMapFlag creates a MapFlag with default settings: little-endian,
// no compression, float64 values.
func NewMapFlag() MapFlag {
	return MapFlag{
		Options:         MagicMapV1Opt,
		CompressionType: uint8(format.CompressionNone),
		DType:           uint8(format.DTypeFloat64),
	}
}

// IsLittleEndian returns whether the file data is little-endian.
func (f MapFlag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the file data is big-endian.
func (f MapFlag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *MapFlag) WithLittleEndian() {
	f.Options &= ^uint16(EndiannessMask)
}

// WithBigEndian sets big-endian byte order.
func (f *MapFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetEndianEngine returns the endian engine matching the endianness flag.
func (f MapFlag) GetEndianEngine() endian.EndianEngine {
	if f.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// GetMagicNumber returns the magic number from the Options field.
func (f MapFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// SetCompression sets the payload compression type.
func (f *MapFlag) SetCompression(c format.CompressionType) {
	f.CompressionType = uint8(c)
}

// Compression returns the payload compression type.
func (f MapFlag) Compression() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

// ValueDType returns the value data type.
func (f MapFlag) ValueDType() format.DType {
	return format.DType(f.DType)
}

// Validate checks magic number, reserved bits, compression and dtype.
func (f MapFlag) Validate() error {
	if f.GetMagicNumber() != MagicMapV1Opt {
		return fmt.Errorf("%w: got 0x%04X, expected 0x%04X",
			errs.ErrInvalidMagic, f.GetMagicNumber(), uint16(MagicMapV1Opt))
	}

	if f.Options&ReservedBitsMask != 0 {
		return fmt.Errorf("%w: reserved flag bits must be zero", errs.ErrInvalidMagic)
	}

	if _, ok := validCompressions[f.CompressionType]; !ok {
		return fmt.Errorf("%w: 0x%02X", errs.ErrInvalidCompression, f.CompressionType)
	}

	// Only float64 payloads can be decoded today; DTypeFloat32 is a wire
	// reservation without a backend.
	if f.DType != uint8(format.DTypeFloat64) {
		return fmt.Errorf("%w: 0x%02X (%s)", errs.ErrInvalidDType, f.DType, f.ValueDType())
	}

	return nil
}
