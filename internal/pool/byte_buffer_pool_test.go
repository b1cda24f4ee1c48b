package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(64)

	n, err := bb.Write([]byte("curve "))
	require.NoError(t, err)
	require.Equal(t, 6, n)

	bb.MustWrite([]byte("payload"))

	require.Equal(t, 13, bb.Len())
	require.Equal(t, []byte("curve payload"), bb.Bytes())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(64)
	bb.MustWrite([]byte("some payload bytes"))

	before := bb.Cap()
	bb.Reset()

	require.Equal(t, 0, bb.Len())
	require.Equal(t, before, bb.Cap(), "reset keeps the allocation")
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.MustWrite([]byte("snapshot bytes"))

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)

	require.NoError(t, err)
	require.Equal(t, int64(14), n)
	require.Equal(t, "snapshot bytes", out.String())
}

func TestByteBuffer_Grow(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.MustWrite([]byte("12345678"))

	bb.Grow(1024)
	require.GreaterOrEqual(t, bb.Cap()-bb.Len(), 1024)
	require.Equal(t, []byte("12345678"), bb.Bytes(), "growing preserves contents")

	// Growing within the existing capacity is a no-op.
	capBefore := bb.Cap()
	bb.Grow(1)
	require.Equal(t, capBefore, bb.Cap())
}

func TestByteBufferPool_Reuse(t *testing.T) {
	p := NewByteBufferPool(32, 1024)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.MustWrite([]byte("scratch"))
	p.Put(bb)

	// Whatever buffer comes back next must arrive empty.
	next := p.Get()
	require.Equal(t, 0, next.Len())
	p.Put(next)
}

func TestByteBufferPool_DropsOversizedBuffers(t *testing.T) {
	p := NewByteBufferPool(32, 64)

	bb := p.Get()
	bb.Grow(4096)
	require.Greater(t, bb.Cap(), 64)

	// Put must not panic; the oversized buffer is simply not retained.
	p.Put(bb)
	p.Put(nil)
}

func TestSnapshotBufferHelpers(t *testing.T) {
	bb := GetSnapshotBuffer()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())
	require.GreaterOrEqual(t, bb.Cap(), SnapshotBufferDefaultSize)

	bb.MustWrite([]byte("payload"))
	PutSnapshotBuffer(bb)
}
