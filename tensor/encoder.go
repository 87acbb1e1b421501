package tensor

import (
	"fmt"
	"hash/crc32"
	"math"

	"github.com/arloliu/tensormap/compress"
	"github.com/arloliu/tensormap/endian"
	"github.com/arloliu/tensormap/errs"
	"github.com/arloliu/tensormap/format"
	"github.com/arloliu/tensormap/internal/hash"
	"github.com/arloliu/tensormap/internal/options"
	"github.com/arloliu/tensormap/internal/pool"
	"github.com/arloliu/tensormap/origin"
	"github.com/arloliu/tensormap/section"
)

// castagnoli is the CRC32 table for payload checksums.
var castagnoli = crc32.MakeTable(crc32.Castagnoli)

// Encoder serializes maps into the tensormap binary format.
//
// An Encoder is configured once and can then encode any number of maps;
// it keeps no per-map state between Encode calls.
type Encoder struct {
	header section.MapHeader
	engine endian.EndianEngine
	codec  compress.Codec
}

// EncoderOption represents a functional option for configuring the Encoder.
type EncoderOption = options.Option[*Encoder]

// WithLittleEndian sets the encoder to write little-endian files. This is
// the default.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.header.Flag.WithLittleEndian()
		e.engine = e.header.Flag.GetEndianEngine()
	})
}

// WithBigEndian sets the encoder to write big-endian files.
func WithBigEndian() EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.header.Flag.WithBigEndian()
		e.engine = e.header.Flag.GetEndianEngine()
	})
}

// WithCompression sets the payload compression algorithm. The default is
// no compression.
func WithCompression(compression format.CompressionType) EncoderOption {
	return options.New(func(e *Encoder) error {
		codec, err := compress.NewCodec(compression)
		if err != nil {
			return err
		}

		e.header.Flag.SetCompression(compression)
		e.codec = codec

		return nil
	})
}

// NewEncoder creates an Encoder with the given options.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	encoder := &Encoder{
		header: *section.NewMapHeader(),
	}
	encoder.engine = encoder.header.Flag.GetEndianEngine()
	encoder.codec = compress.NewNoOpCodec()

	if err := options.Apply(encoder, opts...); err != nil {
		return nil, err
	}

	return encoder, nil
}

// Encode serializes the map and returns the encoded bytes. The returned
// slice is newly allocated and owned by the caller.
func (e *Encoder) Encode(m *Map) ([]byte, error) {
	keysSection, err := e.encodeKeysSection(m)
	if err != nil {
		return nil, err
	}

	payload := pool.GetMapBuffer()
	defer pool.PutMapBuffer(payload)

	entries := make([]section.BlockIndexEntry, m.Len())
	for i, block := range m.blocks {
		start := payload.Len()
		if err := appendBlockRecord(payload, e.engine, block); err != nil {
			return nil, err
		}

		entries[i] = section.BlockIndexEntry{
			KeyHash: hash.Entry(m.keys.Entry(i)),
			Offset:  uint32(start),                 //nolint:gosec
			Length:  uint32(payload.Len() - start), //nolint:gosec
		}
	}

	if payload.Len() > math.MaxUint32 {
		return nil, fmt.Errorf("payload size %d exceeds format limit", payload.Len())
	}

	compressed, err := e.codec.Compress(payload.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to compress payload: %w", err)
	}

	header := e.header
	header.BlockCount = uint32(m.Len())                               //nolint:gosec
	header.IndexOffset = uint32(section.HeaderSize + len(keysSection)) //nolint:gosec
	header.PayloadOffset = header.IndexOffset + uint32(len(entries)*section.IndexEntrySize) //nolint:gosec
	header.PayloadSize = uint32(payload.Len()) //nolint:gosec
	header.Checksum = crc32.Checksum(compressed, castagnoli)

	out := make([]byte, 0, int(header.PayloadOffset)+len(compressed))
	out = append(out, header.Bytes()...)
	out = append(out, keysSection...)
	for i := range entries {
		out = entries[i].AppendBytes(out, e.engine)
	}
	out = append(out, compressed...)

	return out, nil
}

// encodeKeysSection encodes the keys labels followed by the resolved
// origin identity (empty for an empty map).
func (e *Encoder) encodeKeysSection(m *Map) ([]byte, error) {
	buf, err := appendLabels(nil, e.engine, m.keys)
	if err != nil {
		return nil, err
	}

	identity := ""
	if m.resolved != origin.None {
		identity, err = origin.NameOf(m.resolved)
		if err != nil {
			return nil, fmt.Errorf("%w: map origin %d", errs.ErrUnknownOrigin, m.resolved)
		}
	}

	return appendString(buf, identity)
}

// appendBlockRecord encodes one block: samples labels, component labels,
// properties labels, then the raw float64 values. The value count is
// implied by the label counts, so it is not stored.
func appendBlockRecord(buf *pool.ByteBuffer, engine endian.EndianEngine, block *Block) error {
	encoded, err := appendLabels(buf.Bytes(), engine, block.samples)
	if err != nil {
		return err
	}

	if len(block.components) > math.MaxUint8 {
		return fmt.Errorf("block has %d components, maximum is %d", len(block.components), math.MaxUint8)
	}
	encoded = append(encoded, uint8(len(block.components)))
	for _, component := range block.components {
		encoded, err = appendLabels(encoded, engine, component)
		if err != nil {
			return err
		}
	}

	encoded, err = appendLabels(encoded, engine, block.properties)
	if err != nil {
		return err
	}

	data := block.values.Data()
	for _, v := range data {
		encoded = engine.AppendUint64(encoded, math.Float64bits(v))
	}

	buf.B = encoded

	return nil
}
