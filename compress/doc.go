// Package compress provides the payload compression codecs for the
// tensormap binary format.
//
// Compression is applied once, to the whole concatenated block payload,
// after the labels and values have been encoded. Block payloads are mostly
// raw float64 values plus small int32 label tables, so the codecs trade
// off differently than for text data:
//
//   - None: no compression, fastest, for hot paths and tiny maps
//   - Zstd: best ratio, the default for maps written to storage
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression, moderate ratio
//
// Two Zstandard implementations are available: the pure-Go
// klauspost/compress encoder (default) and the cgo valyala/gozstd binding,
// selected with the tensormap_cgo_zstd build tag for deployments that can
// take the cgo dependency in exchange for throughput.
//
// All codecs are stateless values and safe for concurrent use; pooled
// encoder/decoder state is managed internally.
package compress
