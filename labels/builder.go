package labels

import (
	"fmt"
	"strings"

	"github.com/arloliu/tensormap/errs"
	"github.com/arloliu/tensormap/internal/hash"
)

// Builder constructs Labels entry by entry, rejecting duplicate entries as
// they are added.
type Builder struct {
	names     []string
	values    []Value
	positions map[uint64][]int
}

// NewBuilder creates an empty Builder with the given column names.
//
// Returns errs.ErrInvalidLabelName if any name is not a valid identifier
// or if the same name appears more than once.
func NewBuilder(names ...string) (*Builder, error) {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if !IsValidName(name) {
			return nil, fmt.Errorf("%w: %q is not a valid identifier", errs.ErrInvalidLabelName, name)
		}
		if _, ok := seen[name]; ok {
			return nil, fmt.Errorf("%w: %q is used multiple times", errs.ErrInvalidLabelName, name)
		}
		seen[name] = struct{}{}
	}

	return &Builder{
		names:     append([]string(nil), names...),
		positions: make(map[uint64][]int),
	}, nil
}

// Reserve pre-allocates space for n additional entries.
func (b *Builder) Reserve(n int) {
	need := len(b.values) + n*len(b.names)
	if n <= 0 || cap(b.values) >= need {
		return
	}

	grown := make([]Value, len(b.values), need)
	copy(grown, b.values)
	b.values = grown
}

// Size returns the number of columns in each entry.
func (b *Builder) Size() int {
	return len(b.names)
}

// Count returns the number of entries added so far.
func (b *Builder) Count() int {
	if len(b.names) == 0 {
		return 0
	}

	return len(b.values) / len(b.names)
}

// Add appends a single entry.
//
// Returns errs.ErrSizeMismatch if the entry does not have one value per
// column, and errs.ErrDuplicateLabels if an identical entry was already
// added; the duplicate error message names the entry and its previous
// position.
func (b *Builder) Add(entry ...Value) error {
	if len(entry) != len(b.names) {
		return fmt.Errorf("%w: entry has %d values, labels have %d columns",
			errs.ErrSizeMismatch, len(entry), len(b.names))
	}

	h := hash.Entry(entry)
	for _, pos := range b.positions[h] {
		if equalEntries(b.entry(pos), entry) {
			return fmt.Errorf("%w: [%s] is already present at position %d",
				errs.ErrDuplicateLabels, formatEntry(entry), pos)
		}
	}

	b.positions[h] = append(b.positions[h], b.Count())
	b.values = append(b.values, entry...)

	return nil
}

// Build finishes the builder and returns the immutable Labels. The builder
// must not be used after Build.
func (b *Builder) Build() *Labels {
	return &Labels{
		names:     b.names,
		values:    b.values,
		positions: b.positions,
	}
}

func (b *Builder) entry(i int) []Value {
	size := len(b.names)
	return b.values[i*size : (i+1)*size]
}

func formatEntry(entry []Value) string {
	parts := make([]string, len(entry))
	for i, v := range entry {
		parts[i] = fmt.Sprintf("%d", v)
	}

	return strings.Join(parts, ", ")
}
