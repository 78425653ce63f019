package buf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOutputPutAndGrow(t *testing.T) {
	o := NewOutput(2)
	require.True(t, o.Put('a'))
	require.True(t, o.Put('b'))
	// buffer is full now
	require.False(t, o.Put('c'))
	require.True(t, o.Grow())
	require.True(t, o.Put('c'))
	require.Equal(t, []byte("abc"), o.Data())
}

func TestOutputFixedRegionNeverGrows(t *testing.T) {
	region := make([]byte, 3)
	o := NewOutputFixed(region)
	require.True(t, o.PutBytes([]byte("abc")))
	require.False(t, o.Put('d'))
	require.False(t, o.Grow())
	require.Equal(t, []byte("abc"), o.Data())
}

func TestOutputPushPop(t *testing.T) {
	o := NewOutput(8)
	win, ok := o.Push(4)
	require.True(t, ok)
	copy(win, "ABCD")
	require.Equal(t, 4, o.Tell())

	back, ok := o.Pop(2)
	require.True(t, ok)
	require.Equal(t, []byte("CD"), back)
	require.Equal(t, 2, o.Tell())
}

func TestOutputSeekAndEOS(t *testing.T) {
	o := NewOutput(8)
	require.True(t, o.PutBytes([]byte("hello")))
	require.True(t, o.Seek(0))
	require.Equal(t, 0, o.Tell())
	require.True(t, o.SetEOS(0))
	// SetEOS must not advance tell.
	require.Equal(t, 0, o.Tell())
}

func TestOutputPutRetryFixedFails(t *testing.T) {
	o := NewOutputFixed(make([]byte, 1))
	require.Nil(t, o.PutRetry('a'))
	err := o.PutRetry('b')
	require.NotNil(t, err)
	require.Equal(t, "buffer_full", err.Kind.String())
}
