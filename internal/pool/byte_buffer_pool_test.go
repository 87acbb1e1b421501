package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBufferBasics(t *testing.T) {
	bb := NewByteBuffer(64)

	require.Equal(t, 0, bb.Len())
	require.GreaterOrEqual(t, bb.Cap(), 64)

	bb.MustWrite([]byte("hello"))
	require.Equal(t, 5, bb.Len())
	require.Equal(t, []byte("hello"), bb.Bytes())

	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.GreaterOrEqual(t, bb.Cap(), 64)
}

func TestByteBufferGrow(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.MustWrite([]byte{1, 2, 3, 4})

	bb.Grow(1024)
	require.GreaterOrEqual(t, bb.Cap()-bb.Len(), 1024)
	require.Equal(t, []byte{1, 2, 3, 4}, bb.Bytes())

	// Growing within capacity is a no-op.
	capBefore := bb.Cap()
	bb.Grow(1)
	require.Equal(t, capBefore, bb.Cap())
}

func TestByteBufferWriter(t *testing.T) {
	bb := NewByteBuffer(16)

	n, err := bb.Write([]byte("payload"))
	require.NoError(t, err)
	require.Equal(t, 7, n)

	var sink bytes.Buffer
	written, err := bb.WriteTo(&sink)
	require.NoError(t, err)
	require.Equal(t, int64(7), written)
	require.Equal(t, "payload", sink.String())
}

func TestByteBufferPoolReuse(t *testing.T) {
	p := NewByteBufferPool(32, 1024)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.MustWrite([]byte("data"))
	p.Put(bb)

	reused := p.Get()
	require.Equal(t, 0, reused.Len(), "pooled buffer must be reset")
}

func TestByteBufferPoolDiscardsLarge(t *testing.T) {
	p := NewByteBufferPool(32, 64)

	bb := p.Get()
	bb.Grow(1024) // exceeds the threshold
	p.Put(bb)     // must be discarded, not pooled

	fresh := p.Get()
	require.LessOrEqual(t, fresh.Cap(), 1024)

	p.Put(nil) // must not panic
}

func TestDefaultMapPool(t *testing.T) {
	bb := GetMapBuffer()
	require.NotNil(t, bb)
	bb.MustWrite([]byte{1})
	PutMapBuffer(bb)
}
