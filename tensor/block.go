package tensor

import (
	"fmt"

	"github.com/arloliu/tensormap/array"
	"github.com/arloliu/tensormap/errs"
	"github.com/arloliu/tensormap/labels"
	"github.com/arloliu/tensormap/origin"
)

// Block bundles one origin-tagged array with the labels describing its
// axes: samples for the first dimension, one components labels per middle
// dimension, and properties for the last dimension.
//
// Blocks are immutable once constructed.
type Block struct {
	values     array.Array
	samples    *labels.Labels
	components []*labels.Labels
	properties *labels.Labels
}

// NewBlock creates a block from an array and its axis labels, validating
// that every array dimension matches the length of its labels.
//
// The array must have exactly 2+len(components) dimensions. Returns
// errs.ErrShapeMismatch naming the offending axis otherwise. Label entry
// uniqueness is guaranteed by labels construction, so it is not re-checked
// here.
func NewBlock(values array.Array, samples *labels.Labels, components []*labels.Labels, properties *labels.Labels) (*Block, error) {
	shape := values.Shape()
	if len(shape) != 2+len(components) {
		return nil, fmt.Errorf("%w: array has %d dimensions, expected %d (samples + %d components + properties)",
			errs.ErrShapeMismatch, len(shape), 2+len(components), len(components))
	}

	if shape[0] != samples.Count() {
		return nil, fmt.Errorf("%w: array has %d samples, samples labels have %d entries",
			errs.ErrShapeMismatch, shape[0], samples.Count())
	}

	for i, component := range components {
		if shape[1+i] != component.Count() {
			return nil, fmt.Errorf("%w: array axis %d has size %d, components labels %d have %d entries",
				errs.ErrShapeMismatch, 1+i, shape[1+i], i, component.Count())
		}
	}

	last := len(shape) - 1
	if shape[last] != properties.Count() {
		return nil, fmt.Errorf("%w: array has %d properties, properties labels have %d entries",
			errs.ErrShapeMismatch, shape[last], properties.Count())
	}

	return &Block{
		values:     values,
		samples:    samples,
		components: append([]*labels.Labels(nil), components...),
		properties: properties,
	}, nil
}

// Origin returns the id of the backend that produced this block's values.
func (b *Block) Origin() origin.ID {
	return b.values.Origin()
}

// Values returns the block's array.
func (b *Block) Values() array.Array {
	return b.values
}

// Samples returns the labels of the first axis.
func (b *Block) Samples() *labels.Labels {
	return b.samples
}

// Components returns the labels of the middle axes. The returned slice
// must not be modified.
func (b *Block) Components() []*labels.Labels {
	return b.components
}

// Properties returns the labels of the last axis.
func (b *Block) Properties() *labels.Labels {
	return b.properties
}
