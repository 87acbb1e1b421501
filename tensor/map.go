package tensor

import (
	"fmt"

	"github.com/arloliu/tensormap/errs"
	"github.com/arloliu/tensormap/labels"
	"github.com/arloliu/tensormap/origin"
)

// Map aggregates blocks under a set of keys, one key entry per block.
//
// Construction enforces the single-origin invariant: every block in a map
// must have been produced by the same backend. A map is immutable once
// constructed; replacing blocks means building a new map, which re-runs
// the validation.
type Map struct {
	keys   *labels.Labels
	blocks []*Block
	// resolved is the common origin of all blocks, established during
	// construction and never changed. origin.None for an empty map.
	resolved origin.ID
}

// NewMap creates a map from keys labels and the blocks they describe.
//
// Validation, in order:
//  1. keys must have exactly one entry per block, otherwise
//     errs.ErrLengthMismatch.
//  2. an empty map is valid and carries no origin constraint.
//  3. every block's origin must equal the first block's origin. The scan
//     is strictly left to right, so the error for a mismatch always blames
//     the first offending block and reports block 0's origin as the
//     expected one, no matter how many blocks disagree.
//
// On failure no map is returned and no side effects persist. On success
// the map takes ownership of the blocks slice.
func NewMap(keys *labels.Labels, blocks []*Block) (*Map, error) {
	if keys.Count() != len(blocks) {
		return nil, fmt.Errorf("%w: keys have %d entries, got %d blocks",
			errs.ErrLengthMismatch, keys.Count(), len(blocks))
	}

	resolved, err := resolveOrigin(blocks)
	if err != nil {
		return nil, err
	}

	return &Map{
		keys:     keys,
		blocks:   blocks,
		resolved: resolved,
	}, nil
}

// resolveOrigin scans the blocks left to right and returns their common
// origin, or origin.None when there are no blocks.
func resolveOrigin(blocks []*Block) (origin.ID, error) {
	if len(blocks) == 0 {
		return origin.None, nil
	}

	first := blocks[0].Origin()
	for i, block := range blocks[1:] {
		got := block.Origin()
		if got == first {
			continue
		}

		expected := originName(first)
		actual := originName(got)

		return origin.None, fmt.Errorf("%w: blocks have different origins: expected %q (block 0), got %q (block %d)",
			errs.ErrOriginMismatch, expected, actual, i+1)
	}

	return first, nil
}

// originName resolves an origin id for diagnostics. Blocks only carry ids
// handed out by the registry, so a lookup failure here means the registry
// was reset mid-use; fall back to a placeholder rather than masking the
// mismatch error.
func originName(id origin.ID) string {
	name, err := origin.NameOf(id)
	if err != nil {
		return fmt.Sprintf("<unregistered origin %d>", id)
	}

	return name
}

// Origin returns the common origin of all blocks in this map, or
// origin.None for an empty map.
func (m *Map) Origin() origin.ID {
	return m.resolved
}

// Keys returns the keys labels of this map.
func (m *Map) Keys() *labels.Labels {
	return m.keys
}

// Len returns the number of blocks.
func (m *Map) Len() int {
	return len(m.blocks)
}

// Block returns the i-th block.
func (m *Map) Block(i int) (*Block, error) {
	if i < 0 || i >= len(m.blocks) {
		return nil, fmt.Errorf("block index %d out of range [0, %d)", i, len(m.blocks))
	}

	return m.blocks[i], nil
}

// BlockByKey returns the block whose key entry matches the given values,
// or false if no key matches.
func (m *Map) BlockByKey(entry ...labels.Value) (*Block, bool) {
	pos, ok := m.keys.Position(entry...)
	if !ok {
		return nil, false
	}

	return m.blocks[pos], true
}

// Blocks returns all blocks in key order. The returned slice is cloned to
// prevent external modification; the blocks themselves are shared and
// immutable.
func (m *Map) Blocks() []*Block {
	blocks := make([]*Block, len(m.blocks))
	copy(blocks, m.blocks)

	return blocks
}
