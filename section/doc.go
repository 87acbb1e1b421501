// Package section defines the fixed-layout sections of the tensormap
// binary format: the file header, its packed flag field, and the per-block
// index entries.
//
// A serialized map is laid out as:
//
//	+------------------+  offset 0
//	| MapHeader        |  32 bytes, fixed
//	+------------------+  offset HeaderSize
//	| keys section     |  keys labels + resolved origin identity
//	+------------------+  header.IndexOffset
//	| block index      |  BlockCount * IndexEntrySize bytes
//	+------------------+  header.PayloadOffset
//	| block payload    |  concatenated block records, compressed as one
//	+------------------+
//
// The header's first four bytes (the flag) are always little-endian so a
// decoder can learn the file's byte order before using it; every other
// multi-byte field uses the byte order the flag records. Index entry
// offsets are absolute positions inside the uncompressed payload.
package section
