package array

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tensormap/errs"
	"github.com/arloliu/tensormap/origin"
)

func TestNewDense(t *testing.T) {
	arr, err := NewDense([]int{2, 3}, make([]float64, 6))
	require.NoError(t, err)

	require.Equal(t, []int{2, 3}, arr.Shape())
	require.Len(t, arr.Data(), 6)
	require.Equal(t, origin.Register(DenseIdentity), arr.Origin())
}

func TestNewDenseInvalidShape(t *testing.T) {
	_, err := NewDense([]int{2, 3}, make([]float64, 5))
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrInvalidShape))

	_, err = NewDense([]int{-1, 3}, nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrInvalidShape))
}

func TestZeros(t *testing.T) {
	arr := Zeros(2, 1, 4)

	require.Equal(t, []int{2, 1, 4}, arr.Shape())
	require.Len(t, arr.Data(), 8)
	for _, v := range arr.Data() {
		require.Zero(t, v)
	}
}

func TestFromBuffer1D(t *testing.T) {
	buf := []float64{1.5, 2.5, 3.5}

	arr, err := FromBuffer(buf, "backend.cpu")
	require.NoError(t, err)

	require.Equal(t, []int{3}, arr.Shape())
	require.Equal(t, buf, arr.Data())
	require.Equal(t, origin.Register("backend.cpu"), arr.Origin())
}

func TestFromBuffer2D(t *testing.T) {
	arr, err := FromBuffer([][]float64{{1, 2}, {3, 4}, {5, 6}}, "backend.cpu")
	require.NoError(t, err)

	require.Equal(t, []int{3, 2}, arr.Shape())
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, arr.Data())
}

func TestFromBuffer3D(t *testing.T) {
	arr, err := FromBuffer([][][]float64{
		{{1, 2}, {3, 4}},
		{{5, 6}, {7, 8}},
	}, "backend.cpu")
	require.NoError(t, err)

	require.Equal(t, []int{2, 2, 2}, arr.Shape())
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8}, arr.Data())
}

func TestFromBufferRagged(t *testing.T) {
	_, err := FromBuffer([][]float64{{1, 2}, {3}}, "backend.cpu")
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrInvalidShape))

	_, err = FromBuffer([][][]float64{{{1, 2}}, {{3, 4}, {5, 6}}}, "backend.cpu")
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrInvalidShape))
}

func TestFromBufferUnsupported(t *testing.T) {
	_, err := FromBuffer("not a buffer", "backend.cpu")
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrUnsupportedBackend))

	_, err = FromBuffer([]int{1, 2, 3}, "backend.cpu")
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrUnsupportedBackend))
}

func TestFromBufferArrayPassthrough(t *testing.T) {
	dense := Zeros(1, 1)

	arr, err := FromBuffer(dense, "some.other.identity")
	require.NoError(t, err)

	// An existing array keeps its origin tag.
	require.Equal(t, dense.Origin(), arr.Origin())
}

func TestFromBufferSharesOrigin(t *testing.T) {
	a, err := FromBuffer([]float64{1}, "backend.shared")
	require.NoError(t, err)
	b, err := FromBuffer([][]float64{{2}}, "backend.shared")
	require.NoError(t, err)

	require.Equal(t, a.Origin(), b.Origin())
}

func TestFromSlice(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}

	arr, err := FromSlice(data, []int{2, 3}, "backend.cpu")
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, arr.Shape())
	require.Equal(t, data, arr.Data())

	_, err = FromSlice(data, []int{2, 2}, "backend.cpu")
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrInvalidShape))
}
