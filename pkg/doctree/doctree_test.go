package doctree

import (
	"testing"

	"github.com/joshuapare/doctree/internal/buf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDocument(t *testing.T, ctx *Context) *Value {
	t.Helper()
	root := ctx.NewValue()
	root.ToMap()

	name := ctx.NewValue()
	name.SetString("alice")
	require.Nil(t, root.Insert("name", name))

	tags := ctx.NewValue()
	tags.ToArray()
	for _, s := range []string{"admin", "beta"} {
		el := ctx.NewValue()
		el.SetString(s)
		require.Nil(t, tags.Push(el))
	}
	require.Nil(t, root.Insert("tags", tags))
	return root
}

func TestEndToEndJSONRoundTrip(t *testing.T) {
	ctx := NewContext(DefaultOptions())
	root := buildDocument(t, ctx)

	out := buf.NewOutput(0)
	require.Nil(t, Encode(root, CodecJSON, out))

	ctx2 := NewContext(DefaultOptions())
	decoded, err := Decode(ctx2, CodecJSON, out.Data())
	require.Nil(t, err)

	found, ok := Search(decoded, "name")
	require.True(t, ok)
	s, _ := found.GetString()
	assert.Equal(t, "alice", s)
}

func TestEndToEndMsgPackAndCBORRoundTrip(t *testing.T) {
	ctx := NewContext(DefaultOptions())
	root := buildDocument(t, ctx)

	for _, codec := range []Codec{CodecMsgPack, CodecCBOR} {
		out := buf.NewOutput(0)
		require.Nil(t, Encode(root, codec, out))
		ctx2 := NewContext(DefaultOptions())
		decoded, err := Decode(ctx2, codec, out.Data())
		require.Nil(t, err)
		found, ok := Search(decoded, "tags.@1")
		require.True(t, ok)
		s, _ := found.GetString()
		assert.Equal(t, "beta", s)
	}
}

func TestApproxEncodeSizeNeverUndershoots(t *testing.T) {
	ctx := NewContext(DefaultOptions())
	root := buildDocument(t, ctx)
	for _, codec := range []Codec{CodecJSON, CodecMsgPack, CodecCBOR} {
		estimate := ApproxEncodeSize(root, codec)
		out := buf.NewOutput(0)
		require.Nil(t, Encode(root, codec, out))
		assert.GreaterOrEqual(t, estimate, out.Size())
	}
}

func TestDiffPatchEndToEnd(t *testing.T) {
	ctx := NewContext(DefaultOptions())
	og := buildDocument(t, ctx)

	md := ctx.NewValue()
	require.Nil(t, md.Copy(og))
	renamed := ctx.NewValue()
	renamed.SetString("alicia")
	md.Remove("name")
	require.Nil(t, md.Insert("name", renamed))

	result, err := Diff(ctx, og, md)
	require.Nil(t, err)
	require.Nil(t, Patch(og, result))

	found, ok := Search(og, "name")
	require.True(t, ok)
	s, _ := found.GetString()
	assert.Equal(t, "alicia", s)
}

func TestBuilderSetStringAtAutoVivifies(t *testing.T) {
	ctx := NewContext(DefaultOptions())
	root := ctx.NewValue()
	root.ToMap()

	require.Nil(t, SetStringAt(ctx, root, "profile.bio", "hello"))
	found, ok := Search(root, "profile.bio")
	require.True(t, ok)
	s, _ := found.GetString()
	assert.Equal(t, "hello", s)
}

func TestBuilderSetIntAtOverwritesExisting(t *testing.T) {
	ctx := NewContext(DefaultOptions())
	root := ctx.NewValue()
	root.ToMap()
	require.Nil(t, SetIntAt(ctx, root, "count", 1))
	require.Nil(t, SetIntAt(ctx, root, "count", 2))

	found, ok := Search(root, "count")
	require.True(t, ok)
	i, _ := found.GetInt()
	assert.EqualValues(t, 2, i)
}

func TestDumpProducesNonEmptyOutput(t *testing.T) {
	ctx := NewContext(DefaultOptions())
	root := buildDocument(t, ctx)
	assert.NotEmpty(t, root.Dump())
}
