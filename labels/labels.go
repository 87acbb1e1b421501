// Package labels implements the ordered, duplicate-free sets of named
// integer tuples used to index tensor block axes.
//
// Labels behave like a list of named tuples stored as a 2D int32 array of
// shape (Count, Size), with one name per column. Every row is unique; a
// hash-based position index gives O(1) row lookup.
//
// Labels are immutable once built. Use Builder to construct them, or the
// Arange/Single/Empty helpers for the common fixture shapes.
package labels

import (
	"fmt"
	"strings"

	"github.com/arloliu/tensormap/internal/hash"
)

// Value is a single value inside a labels entry, a 32-bit signed integer.
type Value int32

// Labels is an immutable set of named integer tuples. The zero value is
// not usable; construct Labels through a Builder or the package helpers.
type Labels struct {
	names  []string
	values []Value // row-major, Count()*Size() values
	// positions maps the xxHash64 of a row to the row indices sharing that
	// hash. Almost always a single candidate; collisions are resolved by
	// comparing the actual rows.
	positions map[uint64][]int
}

// Size returns the number of named columns in each entry.
func (l *Labels) Size() int {
	return len(l.names)
}

// Count returns the number of entries in this set of labels.
func (l *Labels) Count() int {
	if len(l.names) == 0 {
		return 0
	}

	return len(l.values) / len(l.names)
}

// IsEmpty returns true if this set of labels contains no entry.
func (l *Labels) IsEmpty() bool {
	return l.Count() == 0
}

// Names returns the column names. The returned slice is cloned to prevent
// external modification.
func (l *Labels) Names() []string {
	names := make([]string, len(l.names))
	copy(names, l.names)

	return names
}

// Entry returns the i-th entry as a slice of values. The returned slice
// aliases internal storage and must not be modified. Panics if i is out of
// range.
func (l *Labels) Entry(i int) []Value {
	size := l.Size()
	return l.values[i*size : (i+1)*size]
}

// Position returns the row index of the given entry, or false if the entry
// is not part of this set of labels or has the wrong number of values.
func (l *Labels) Position(entry ...Value) (int, bool) {
	if len(entry) != l.Size() {
		return -1, false
	}

	h := hash.Entry(entry)
	for _, pos := range l.positions[h] {
		if equalEntries(l.Entry(pos), entry) {
			return pos, true
		}
	}

	return -1, false
}

// Contains returns whether the given entry is part of this set of labels.
func (l *Labels) Contains(entry ...Value) bool {
	_, ok := l.Position(entry...)
	return ok
}

// Equal returns whether two sets of labels have the same names and the
// same entries in the same order. A nil other is not equal to anything.
func (l *Labels) Equal(other *Labels) bool {
	if other == nil {
		return false
	}
	if len(l.names) != len(other.names) || len(l.values) != len(other.values) {
		return false
	}
	for i, name := range l.names {
		if other.names[i] != name {
			return false
		}
	}
	for i, v := range l.values {
		if other.values[i] != v {
			return false
		}
	}

	return true
}

// String renders the labels as a small table, one entry per line.
func (l *Labels) String() string {
	var sb strings.Builder
	sb.WriteString("Labels{\n")
	sb.WriteString("    " + strings.Join(l.names, ", ") + "\n")

	for i := 0; i < l.Count(); i++ {
		sb.WriteString("   ")
		for col, v := range l.Entry(i) {
			fmt.Fprintf(&sb, " %*d", len(l.names[col]), v)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}")

	return sb.String()
}

// Arange creates labels with a single column called name, containing n
// sequential entries 0, 1, ..., n-1.
func Arange(name string, n int) (*Labels, error) {
	builder, err := NewBuilder(name)
	if err != nil {
		return nil, err
	}

	builder.Reserve(n)
	for i := 0; i < n; i++ {
		if err := builder.Add(Value(i)); err != nil { //nolint:gosec
			return nil, err
		}
	}

	return builder.Build(), nil
}

// Single returns the canonical labels used for axes of scalar blocks: a
// single entry with one column named "_" and value 0.
func Single() *Labels {
	builder, err := NewBuilder("_")
	if err != nil {
		panic(err) // "_" is always a valid name
	}
	if err := builder.Add(0); err != nil {
		panic(err) // single entry cannot be a duplicate
	}

	return builder.Build()
}

// Empty creates labels with the given column names and no entries.
func Empty(names ...string) (*Labels, error) {
	builder, err := NewBuilder(names...)
	if err != nil {
		return nil, err
	}

	return builder.Build(), nil
}

// IsValidName checks if the given name is a valid identifier usable as a
// labels column name: non-empty, ASCII alphanumeric or underscore, not
// starting with a digit.
func IsValidName(name string) bool {
	if name == "" {
		return false
	}

	for i, c := range name {
		if i == 0 && c >= '0' && c <= '9' {
			return false
		}
		isAlnum := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
		if !isAlnum && c != '_' {
			return false
		}
	}

	return true
}

func equalEntries(a, b []Value) bool {
	for i, v := range a {
		if b[i] != v {
			return false
		}
	}

	return true
}
