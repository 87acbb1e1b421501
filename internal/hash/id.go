package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Entry computes the xxHash64 of a labels entry (a row of int32 values),
// hashing the values as little-endian bytes regardless of host byte order
// so the hash is stable across platforms.
func Entry[T ~int32](values []T) uint64 {
	var d xxhash.Digest
	d.Reset()

	var buf [4]byte
	for _, v := range values {
		binary.LittleEndian.PutUint32(buf[:], uint32(v)) //nolint:gosec
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}
