package tensor

import (
	"fmt"
	"math"

	"github.com/arloliu/tensormap/endian"
	"github.com/arloliu/tensormap/errs"
	"github.com/arloliu/tensormap/labels"
)

// maxNameLength is the maximum byte length of a label column name or a
// backend identity string, so it fits a uint8 length prefix.
const maxNameLength = 255

// Labels wire encoding:
//
//	uint8  column count
//	per column: uint8 length + name bytes
//	uint32 entry count
//	entry count * column count int32 values, row-major
//
// Strings and int32 values use the file's byte order.

func appendString(buf []byte, s string) ([]byte, error) {
	if len(s) > maxNameLength {
		return nil, fmt.Errorf("string length %d exceeds maximum %d", len(s), maxNameLength)
	}

	buf = append(buf, uint8(len(s)))
	buf = append(buf, s...)

	return buf, nil
}

func appendLabels(buf []byte, engine endian.EndianEngine, l *labels.Labels) ([]byte, error) {
	names := l.Names()
	if len(names) > math.MaxUint8 {
		return nil, fmt.Errorf("labels have %d columns, maximum is %d", len(names), math.MaxUint8)
	}

	buf = append(buf, uint8(len(names)))
	for _, name := range names {
		var err error
		buf, err = appendString(buf, name)
		if err != nil {
			return nil, err
		}
	}

	count := l.Count()
	buf = engine.AppendUint32(buf, uint32(count)) //nolint:gosec
	for i := 0; i < count; i++ {
		for _, v := range l.Entry(i) {
			buf = engine.AppendUint32(buf, uint32(v)) //nolint:gosec
		}
	}

	return buf, nil
}

// wireReader is a cursor over a byte slice with truncation checks.
type wireReader struct {
	data   []byte
	pos    int
	engine endian.EndianEngine
}

func newWireReader(data []byte, engine endian.EndianEngine) *wireReader {
	return &wireReader{data: data, engine: engine}
}

func (r *wireReader) remaining() int {
	return len(r.data) - r.pos
}

func (r *wireReader) bytes(n int) ([]byte, error) {
	if r.remaining() < n {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			errs.ErrTruncatedData, n, r.pos, r.remaining())
	}

	b := r.data[r.pos : r.pos+n]
	r.pos += n

	return b, nil
}

func (r *wireReader) uint8() (uint8, error) {
	b, err := r.bytes(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

func (r *wireReader) uint32() (uint32, error) {
	b, err := r.bytes(4)
	if err != nil {
		return 0, err
	}

	return r.engine.Uint32(b), nil
}

func (r *wireReader) uint64() (uint64, error) {
	b, err := r.bytes(8)
	if err != nil {
		return 0, err
	}

	return r.engine.Uint64(b), nil
}

func (r *wireReader) string() (string, error) {
	length, err := r.uint8()
	if err != nil {
		return "", err
	}

	b, err := r.bytes(int(length))
	if err != nil {
		return "", err
	}

	return string(b), nil
}

func (r *wireReader) labels() (*labels.Labels, error) {
	columns, err := r.uint8()
	if err != nil {
		return nil, err
	}

	names := make([]string, columns)
	for i := range names {
		names[i], err = r.string()
		if err != nil {
			return nil, err
		}
	}

	builder, err := labels.NewBuilder(names...)
	if err != nil {
		return nil, err
	}

	count, err := r.uint32()
	if err != nil {
		return nil, err
	}

	// The count is untrusted input; bound it against the bytes actually
	// present before reserving, or a tiny crafted file claiming billions
	// of entries would trigger a huge allocation here.
	if uint64(count)*uint64(columns)*4 > uint64(r.remaining()) {
		return nil, fmt.Errorf("%w: labels claim %d entries of %d columns, only %d bytes remain",
			errs.ErrTruncatedData, count, columns, r.remaining())
	}

	builder.Reserve(int(count))
	entry := make([]labels.Value, columns)
	for i := uint32(0); i < count; i++ {
		for col := range entry {
			v, err := r.uint32()
			if err != nil {
				return nil, err
			}
			entry[col] = labels.Value(int32(v)) //nolint:gosec
		}

		if err := builder.Add(entry...); err != nil {
			return nil, err
		}
	}

	return builder.Build(), nil
}
