// Package array binds raw numeric buffers to the origin of the backend
// that produced them.
//
// The Array interface is the only thing the rest of the library knows
// about a buffer: its origin tag, its shape, and a row-major float64 view
// of its data. The library never interprets the numeric contents.
//
// Dense is the built-in CPU backend. FromBuffer is the ingestion boundary
// for buffers produced elsewhere: it wraps the buffer and tags it with the
// caller-supplied backend identity.
package array

import (
	"fmt"

	"github.com/arloliu/tensormap/errs"
	"github.com/arloliu/tensormap/origin"
)

// Array is the capability interface any numeric buffer must implement to
// be stored in a tensor block.
//
// Implementations must be immutable after construction: Origin and Shape
// never change, and the Data slice contents are treated as read-only by
// this library.
type Array interface {
	// Origin returns the id of the backend that produced this array.
	Origin() origin.ID

	// Shape returns the dimensions of the array. The returned slice must
	// not be modified.
	Shape() []int

	// Data returns the underlying values in row-major order. The returned
	// slice must not be modified.
	Data() []float64
}

// DenseIdentity is the backend identity of arrays created by this library.
const DenseIdentity = "tensormap.dense"

// Dense is a simple CPU-resident array: a shape and a row-major float64
// buffer.
type Dense struct {
	shape  []int
	data   []float64
	origin origin.ID
}

var _ Array = (*Dense)(nil)

// NewDense creates a Dense array with the given shape, wrapping data
// without copying it.
//
// Returns errs.ErrInvalidShape if any dimension is negative or if the
// number of elements implied by shape does not match len(data).
func NewDense(shape []int, data []float64) (*Dense, error) {
	count, err := elementCount(shape)
	if err != nil {
		return nil, err
	}
	if count != len(data) {
		return nil, fmt.Errorf("%w: shape %v implies %d elements, got %d",
			errs.ErrInvalidShape, shape, count, len(data))
	}

	return &Dense{
		shape:  append([]int(nil), shape...),
		data:   data,
		origin: origin.Register(DenseIdentity),
	}, nil
}

// Zeros creates a zero-filled Dense array with the given shape. Panics on
// negative dimensions.
func Zeros(shape ...int) *Dense {
	count, err := elementCount(shape)
	if err != nil {
		panic(err)
	}

	arr, err := NewDense(shape, make([]float64, count))
	if err != nil {
		panic(err) // count is consistent by construction
	}

	return arr
}

func (d *Dense) Origin() origin.ID { return d.origin }
func (d *Dense) Shape() []int      { return d.shape }
func (d *Dense) Data() []float64   { return d.data }

func elementCount(shape []int) (int, error) {
	count := 1
	for _, dim := range shape {
		if dim < 0 {
			return 0, fmt.Errorf("%w: negative dimension in %v", errs.ErrInvalidShape, shape)
		}
		count *= dim
	}

	return count, nil
}
