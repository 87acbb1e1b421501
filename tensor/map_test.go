package tensor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tensormap/array"
	"github.com/arloliu/tensormap/errs"
	"github.com/arloliu/tensormap/labels"
	"github.com/arloliu/tensormap/origin"
)

// scalarBlock builds a 1x1 block from the given backend identity, the
// shape used by the classic mixed-backend regression scenario.
func scalarBlock(t *testing.T, identity string) *Block {
	t.Helper()

	values, err := array.FromBuffer([][]float64{{0.0}}, identity)
	require.NoError(t, err)

	block, err := NewBlock(values, labels.Single(), nil, labels.Single())
	require.NoError(t, err)

	return block
}

func TestNewMapSingleOrigin(t *testing.T) {
	keys := mustArange(t, "block", 3)
	blocks := []*Block{
		scalarBlock(t, "backend.cpu"),
		scalarBlock(t, "backend.cpu"),
		scalarBlock(t, "backend.cpu"),
	}

	m, err := NewMap(keys, blocks)
	require.NoError(t, err)

	require.Equal(t, 3, m.Len())
	require.Equal(t, blocks[0].Origin(), m.Origin())
}

func TestNewMapDifferentOrigins(t *testing.T) {
	keys := mustArange(t, "dummy", 2)
	blockCPU := scalarBlock(t, "backend.cpu")
	blockGPU := scalarBlock(t, "backend.gpu.autograd")

	_, err := NewMap(keys, []*Block{blockCPU, blockGPU})
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrOriginMismatch))
	require.Contains(t, err.Error(), "different origins")
	require.Contains(t, err.Error(), "backend.cpu")
	require.Contains(t, err.Error(), "backend.gpu.autograd")
	require.Contains(t, err.Error(), "block 1")
}

func TestNewMapBlamesFirstMismatch(t *testing.T) {
	keys := mustArange(t, "block", 3)
	blocks := []*Block{
		scalarBlock(t, "backend.one"),
		scalarBlock(t, "backend.two"),
		scalarBlock(t, "backend.one"),
	}

	// The expected origin is always block 0's, and the reported index is
	// the first mismatching block, regardless of how often we retry.
	for i := 0; i < 5; i++ {
		_, err := NewMap(keys, blocks)
		require.Error(t, err)
		require.True(t, errors.Is(err, errs.ErrOriginMismatch))
		require.Contains(t, err.Error(), `expected "backend.one" (block 0)`)
		require.Contains(t, err.Error(), `got "backend.two" (block 1)`)
	}
}

func TestNewMapEmpty(t *testing.T) {
	keys, err := labels.Empty("block")
	require.NoError(t, err)

	m, err := NewMap(keys, nil)
	require.NoError(t, err)

	require.Equal(t, 0, m.Len())
	require.Equal(t, origin.None, m.Origin())
}

func TestNewMapLengthMismatch(t *testing.T) {
	keys := mustArange(t, "block", 1)

	// Two blocks with different origins: the length check must fire
	// before any origin comparison.
	blocks := []*Block{
		scalarBlock(t, "backend.cpu"),
		scalarBlock(t, "backend.gpu.autograd"),
	}

	_, err := NewMap(keys, blocks)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrLengthMismatch))
	require.False(t, errors.Is(err, errs.ErrOriginMismatch))
}

func TestMapBlockAccess(t *testing.T) {
	keys := mustArange(t, "block", 2)
	blocks := []*Block{
		scalarBlock(t, "backend.cpu"),
		scalarBlock(t, "backend.cpu"),
	}

	m, err := NewMap(keys, blocks)
	require.NoError(t, err)

	got, err := m.Block(1)
	require.NoError(t, err)
	require.Same(t, blocks[1], got)

	_, err = m.Block(2)
	require.Error(t, err)
	_, err = m.Block(-1)
	require.Error(t, err)
}

func TestMapBlockByKey(t *testing.T) {
	keys := mustArange(t, "block", 2)
	blocks := []*Block{
		scalarBlock(t, "backend.cpu"),
		scalarBlock(t, "backend.cpu"),
	}

	m, err := NewMap(keys, blocks)
	require.NoError(t, err)

	got, ok := m.BlockByKey(1)
	require.True(t, ok)
	require.Same(t, blocks[1], got)

	_, ok = m.BlockByKey(7)
	require.False(t, ok)
}

func TestMapBlocksIsCloned(t *testing.T) {
	keys := mustArange(t, "block", 1)
	blocks := []*Block{scalarBlock(t, "backend.cpu")}

	m, err := NewMap(keys, blocks)
	require.NoError(t, err)

	clone := m.Blocks()
	clone[0] = nil

	got, err := m.Block(0)
	require.NoError(t, err)
	require.NotNil(t, got)
}

// TestMixedBackendScenario is the canonical regression: one block from a
// CPU array library, one from a GPU/autograd library, both holding the
// scalar value [[0.0]], aggregated under a two-entry "dummy" key.
func TestMixedBackendScenario(t *testing.T) {
	keys := mustArange(t, "dummy", 2)

	numpyValues, err := array.FromBuffer([][]float64{{0.0}}, "numpy.ndarray")
	require.NoError(t, err)
	blockNumpy, err := NewBlock(numpyValues, labels.Single(), nil, labels.Single())
	require.NoError(t, err)

	torchValues, err := array.FromBuffer([][]float64{{0.0}}, "torch.tensor")
	require.NoError(t, err)
	blockTorch, err := NewBlock(torchValues, labels.Single(), nil, labels.Single())
	require.NoError(t, err)

	_, err = NewMap(keys, []*Block{blockNumpy, blockTorch})
	require.Error(t, err)
	require.Contains(t, err.Error(), "different origins")
}
