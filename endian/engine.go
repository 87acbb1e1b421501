// Package endian provides byte order utilities for the tensormap binary
// format.
//
// It combines the standard library's ByteOrder and AppendByteOrder
// interfaces into a single EndianEngine, so the sections and label codecs
// can both read fixed offsets and append to growing buffers through one
// value. Tensormap files default to little-endian; big-endian files are
// supported for interoperability and the header records which one a file
// uses.
//
// All functions are safe for concurrent use: the returned engines are the
// stateless binary.LittleEndian / binary.BigEndian values.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface. It is satisfied by binary.LittleEndian and
// binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine, the default byte
// order for tensormap files.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// CheckEndianness probes the host's native byte order using a fixed
// integer value.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256: on a little-endian host the LSB (0x00) is stored
	// first, on a big-endian host the MSB (0x01) is.
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host is little-endian.
func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// IsNativeBigEndian reports whether the host is big-endian.
func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
}
