// Package tensor implements blocks, maps, and their binary serialization.
//
// A Block bundles one origin-tagged array with the labels of its axes. A
// Map aggregates blocks under keys labels and enforces the single-origin
// invariant at construction: all blocks in a map must come from the same
// numeric backend, or construction fails with errs.ErrOriginMismatch and a
// message naming both backends and the offending block.
//
// # Constructing Maps
//
//	keys, _ := labels.Arange("block", 2)
//	a, _ := tensor.NewBlock(array.Zeros(1, 1), labels.Single(), nil, labels.Single())
//	b, _ := tensor.NewBlock(array.Zeros(1, 1), labels.Single(), nil, labels.Single())
//	m, err := tensor.NewMap(keys, []*tensor.Block{a, b})
//
// Maps are immutable once constructed. Rebuilding a map with different
// blocks goes back through NewMap, which re-validates everything.
//
// # Serialization
//
// Encoder and Decoder implement the tensormap binary format described in
// the section package: a fixed header, the keys labels plus the resolved
// origin identity, a per-block index, and a compressed payload of block
// records. Decoding re-runs all construction validation, so a corrupted or
// hand-crafted file cannot produce a map violating the origin invariant.
//
//	encoder, _ := tensor.NewEncoder(tensor.WithCompression(format.CompressionZstd))
//	data, err := encoder.Encode(m)
//
//	decoder, err := tensor.NewDecoder(data)
//	m2, err := decoder.Decode()
package tensor
