package array

import (
	"fmt"

	"github.com/arloliu/tensormap/errs"
	"github.com/arloliu/tensormap/origin"
)

// external wraps a buffer produced by another backend. The data slice
// aliases the caller's buffer; no copy is made.
type external struct {
	shape  []int
	data   []float64
	origin origin.ID
}

var _ Array = (*external)(nil)

func (e *external) Origin() origin.ID { return e.origin }
func (e *external) Shape() []int      { return e.shape }
func (e *external) Data() []float64   { return e.data }

// FromBuffer wraps an opaque numeric buffer as an Array tagged with the
// given backend identity, registering the identity on first sight.
//
// Supported buffer types:
//   - Array: returned as-is, keeping its existing origin tag
//   - []float64: one-dimensional array of shape [n], referenced not copied
//   - [][]float64: two-dimensional array, all rows the same length
//   - [][][]float64: three-dimensional array, all slices the same lengths
//
// Nested slices are not contiguous in Go, so the 2D and 3D cases build a
// contiguous row-major view of the buffer. Flat buffers are never copied;
// use FromSlice to wrap a flat buffer with an explicit shape.
//
// Returns errs.ErrUnsupportedBackend for any other buffer type, and
// errs.ErrInvalidShape for ragged nested slices.
func FromBuffer(buffer any, identity string) (Array, error) {
	switch b := buffer.(type) {
	case Array:
		return b, nil

	case []float64:
		return &external{
			shape:  []int{len(b)},
			data:   b,
			origin: origin.Register(identity),
		}, nil

	case [][]float64:
		shape, data, err := flatten2(b)
		if err != nil {
			return nil, err
		}

		return &external{shape: shape, data: data, origin: origin.Register(identity)}, nil

	case [][][]float64:
		shape, data, err := flatten3(b)
		if err != nil {
			return nil, err
		}

		return &external{shape: shape, data: data, origin: origin.Register(identity)}, nil

	default:
		return nil, fmt.Errorf("%w: cannot introspect buffer of type %T", errs.ErrUnsupportedBackend, buffer)
	}
}

// FromSlice wraps a row-major buffer with an explicit shape under the
// given backend identity, without copying the data.
func FromSlice(data []float64, shape []int, identity string) (Array, error) {
	count, err := elementCount(shape)
	if err != nil {
		return nil, err
	}
	if count != len(data) {
		return nil, fmt.Errorf("%w: shape %v implies %d elements, got %d",
			errs.ErrInvalidShape, shape, count, len(data))
	}

	return &external{
		shape:  append([]int(nil), shape...),
		data:   data,
		origin: origin.Register(identity),
	}, nil
}

func flatten2(rows [][]float64) ([]int, []float64, error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}

	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, nil, fmt.Errorf("%w: row %d has %d values, expected %d",
				errs.ErrInvalidShape, i, len(row), cols)
		}
		data = append(data, row...)
	}

	return []int{len(rows), cols}, data, nil
}

func flatten3(outer [][][]float64) ([]int, []float64, error) {
	mid, inner := 0, 0
	if len(outer) > 0 {
		mid = len(outer[0])
		if mid > 0 {
			inner = len(outer[0][0])
		}
	}

	data := make([]float64, 0, len(outer)*mid*inner)
	for i, plane := range outer {
		if len(plane) != mid {
			return nil, nil, fmt.Errorf("%w: slice %d has %d rows, expected %d",
				errs.ErrInvalidShape, i, len(plane), mid)
		}
		for j, row := range plane {
			if len(row) != inner {
				return nil, nil, fmt.Errorf("%w: row (%d, %d) has %d values, expected %d",
					errs.ErrInvalidShape, i, j, len(row), inner)
			}
			data = append(data, row...)
		}
	}

	return []int{len(outer), mid, inner}, data, nil
}
