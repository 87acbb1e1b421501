package tensor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tensormap/array"
	"github.com/arloliu/tensormap/errs"
	"github.com/arloliu/tensormap/labels"
)

func mustArange(t *testing.T, name string, n int) *labels.Labels {
	t.Helper()

	l, err := labels.Arange(name, n)
	require.NoError(t, err)

	return l
}

func TestNewBlock(t *testing.T) {
	samples := mustArange(t, "sample", 3)
	properties := mustArange(t, "property", 2)

	block, err := NewBlock(array.Zeros(3, 2), samples, nil, properties)
	require.NoError(t, err)

	require.Equal(t, samples, block.Samples())
	require.Empty(t, block.Components())
	require.Equal(t, properties, block.Properties())
	require.Equal(t, []int{3, 2}, block.Values().Shape())
}

func TestNewBlockWithComponents(t *testing.T) {
	samples := mustArange(t, "sample", 2)
	components := []*labels.Labels{mustArange(t, "spherical_m", 3)}
	properties := mustArange(t, "property", 4)

	block, err := NewBlock(array.Zeros(2, 3, 4), samples, components, properties)
	require.NoError(t, err)
	require.Len(t, block.Components(), 1)
}

func TestNewBlockDimensionCountMismatch(t *testing.T) {
	samples := mustArange(t, "sample", 2)
	properties := mustArange(t, "property", 2)

	// 3 dimensions but no components labels.
	_, err := NewBlock(array.Zeros(2, 1, 2), samples, nil, properties)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrShapeMismatch))
}

func TestNewBlockAxisMismatch(t *testing.T) {
	samples := mustArange(t, "sample", 2)
	components := []*labels.Labels{mustArange(t, "component", 3)}
	properties := mustArange(t, "property", 4)

	tests := []struct {
		name  string
		shape []int
	}{
		{"wrong samples axis", []int{1, 3, 4}},
		{"wrong component axis", []int{2, 5, 4}},
		{"wrong properties axis", []int{2, 3, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBlock(array.Zeros(tt.shape...), samples, components, properties)
			require.Error(t, err)
			require.True(t, errors.Is(err, errs.ErrShapeMismatch))
		})
	}
}

func TestBlockOriginDelegates(t *testing.T) {
	values, err := array.FromBuffer([][]float64{{0.0}}, "backend.delegate")
	require.NoError(t, err)

	block, err := NewBlock(values, labels.Single(), nil, labels.Single())
	require.NoError(t, err)

	require.Equal(t, values.Origin(), block.Origin())
}
