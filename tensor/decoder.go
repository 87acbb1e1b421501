package tensor

import (
	"fmt"
	"hash/crc32"
	"math"

	"github.com/arloliu/tensormap/array"
	"github.com/arloliu/tensormap/compress"
	"github.com/arloliu/tensormap/endian"
	"github.com/arloliu/tensormap/errs"
	"github.com/arloliu/tensormap/internal/hash"
	"github.com/arloliu/tensormap/labels"
	"github.com/arloliu/tensormap/section"
)

// Decoder deserializes maps from the tensormap binary format.
//
// Decoding is strict: the checksum, every section boundary, and every
// label/shape/origin invariant are re-validated, so a successful Decode
// returns a map indistinguishable from one built directly with NewMap.
type Decoder struct {
	data   []byte
	header section.MapHeader
	engine endian.EndianEngine
}

// NewDecoder creates a decoder over the given encoded bytes, parsing and
// validating the header. The data slice is referenced, not copied, and
// must not be modified while the decoder is in use.
func NewDecoder(data []byte) (*Decoder, error) {
	if len(data) < section.HeaderSize {
		return nil, fmt.Errorf("%w: got %d bytes, need at least %d",
			errs.ErrInvalidHeaderSize, len(data), section.HeaderSize)
	}

	decoder := &Decoder{data: data}
	if err := decoder.header.Parse(data[:section.HeaderSize]); err != nil {
		return nil, err
	}
	decoder.engine = decoder.header.Flag.GetEndianEngine()

	if uint64(len(data)) < uint64(decoder.header.PayloadOffset) {
		return nil, fmt.Errorf("%w: payload offset %d exceeds data length %d",
			errs.ErrTruncatedData, decoder.header.PayloadOffset, len(data))
	}

	return decoder, nil
}

// Decode deserializes the map, rebuilding blocks whose arrays are tagged
// with the origin identity recorded in the file.
func (d *Decoder) Decode() (*Map, error) {
	keys, identity, err := d.decodeKeysSection()
	if err != nil {
		return nil, err
	}

	// The keys section is not covered by the payload checksum, so the row
	// count must be cross-checked against the header before it is used to
	// index anything.
	if keys.Count() != int(d.header.BlockCount) {
		return nil, fmt.Errorf("%w: keys section has %d entries, header records %d blocks",
			errs.ErrLengthMismatch, keys.Count(), d.header.BlockCount)
	}

	entries, err := d.decodeIndex()
	if err != nil {
		return nil, err
	}

	payload, err := d.decodePayload()
	if err != nil {
		return nil, err
	}

	blocks := make([]*Block, len(entries))
	for i := range entries {
		if err := entries[i].Validate(d.header.PayloadSize); err != nil {
			return nil, err
		}

		if want := hash.Entry(keys.Entry(i)); entries[i].KeyHash != want {
			return nil, fmt.Errorf("%w: entry %d key hash 0x%016x does not match keys entry (0x%016x)",
				errs.ErrInvalidIndexEntry, i, entries[i].KeyHash, want)
		}

		record := payload[entries[i].Offset : entries[i].Offset+entries[i].Length]
		blocks[i], err = decodeBlockRecord(record, d.engine, identity)
		if err != nil {
			return nil, fmt.Errorf("failed to decode block %d: %w", i, err)
		}
	}

	// NewMap re-runs the length and origin validation; decoded blocks all
	// share one identity so this only fails on a corrupted keys section.
	return NewMap(keys, blocks)
}

func (d *Decoder) decodeKeysSection() (*labels.Labels, string, error) {
	if uint64(d.header.IndexOffset) > uint64(len(d.data)) {
		return nil, "", fmt.Errorf("%w: index offset %d exceeds data length %d",
			errs.ErrTruncatedData, d.header.IndexOffset, len(d.data))
	}

	r := newWireReader(d.data[section.HeaderSize:d.header.IndexOffset], d.engine)

	keys, err := r.labels()
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode keys labels: %w", err)
	}

	identity, err := r.string()
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode origin identity: %w", err)
	}

	return keys, identity, nil
}

func (d *Decoder) decodeIndex() ([]section.BlockIndexEntry, error) {
	indexSize := int(d.header.BlockCount) * section.IndexEntrySize
	start := int(d.header.IndexOffset)
	if start+indexSize > int(d.header.PayloadOffset) {
		return nil, fmt.Errorf("%w: index section [%d, %d) exceeds payload offset %d",
			errs.ErrInvalidIndexEntry, start, start+indexSize, d.header.PayloadOffset)
	}

	entries := make([]section.BlockIndexEntry, d.header.BlockCount)
	for i := range entries {
		offset := start + i*section.IndexEntrySize
		if err := entries[i].Parse(d.data[offset:offset+section.IndexEntrySize], d.engine); err != nil {
			return nil, fmt.Errorf("failed to parse index entry %d: %w", i, err)
		}
	}

	return entries, nil
}

func (d *Decoder) decodePayload() ([]byte, error) {
	compressed := d.data[d.header.PayloadOffset:]

	if checksum := crc32.Checksum(compressed, castagnoli); checksum != d.header.Checksum {
		return nil, fmt.Errorf("%w: computed 0x%08x, header records 0x%08x",
			errs.ErrChecksumMismatch, checksum, d.header.Checksum)
	}

	codec, err := compress.NewCodec(d.header.Flag.Compression())
	if err != nil {
		return nil, err
	}

	payload, err := codec.Decompress(compressed)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress payload: %w", err)
	}

	if len(payload) != int(d.header.PayloadSize) {
		return nil, fmt.Errorf("%w: decompressed payload is %d bytes, header records %d",
			errs.ErrTruncatedData, len(payload), d.header.PayloadSize)
	}

	return payload, nil
}

// decodeBlockRecord rebuilds one block from its payload record. The values
// array is tagged with the stored origin identity, re-registering it in
// this process's registry.
func decodeBlockRecord(record []byte, engine endian.EndianEngine, identity string) (*Block, error) {
	r := newWireReader(record, engine)

	samples, err := r.labels()
	if err != nil {
		return nil, err
	}

	componentCount, err := r.uint8()
	if err != nil {
		return nil, err
	}

	components := make([]*labels.Labels, componentCount)
	for i := range components {
		components[i], err = r.labels()
		if err != nil {
			return nil, err
		}
	}

	properties, err := r.labels()
	if err != nil {
		return nil, err
	}

	shape := make([]int, 0, 2+len(components))
	shape = append(shape, samples.Count())
	for _, component := range components {
		shape = append(shape, component.Count())
	}
	shape = append(shape, properties.Count())

	count := 1
	for _, dim := range shape {
		count *= dim
	}
	if r.remaining() != 8*count {
		return nil, fmt.Errorf("%w: block record has %d value bytes, shape %v needs %d",
			errs.ErrTruncatedData, r.remaining(), shape, 8*count)
	}

	data := make([]float64, count)
	for i := range data {
		bits, err := r.uint64()
		if err != nil {
			return nil, err
		}
		data[i] = math.Float64frombits(bits)
	}

	values, err := array.FromSlice(data, shape, identity)
	if err != nil {
		return nil, err
	}

	return NewBlock(values, samples, components, properties)
}
