package cbor

import (
	"testing"

	"github.com/joshuapare/doctree/internal/buf"
	"github.com/joshuapare/doctree/internal/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, build func(ctx *tree.Context) *tree.Value) (*tree.Value, *tree.Value) {
	t.Helper()
	ctx := tree.NewContext(tree.DefaultOptions())
	v := build(ctx)

	out := buf.NewOutput(0)
	require.Nil(t, Encode(v, out))

	ctx2 := tree.NewContext(tree.DefaultOptions())
	decoded, err := Decode(ctx2, out.Data())
	require.Nil(t, err)
	return v, decoded
}

func TestRoundTripScalars(t *testing.T) {
	cases := []func(*tree.Context) *tree.Value{
		func(ctx *tree.Context) *tree.Value { v := ctx.NewValue(); v.ToNull(); return v },
		func(ctx *tree.Context) *tree.Value { v := ctx.NewValue(); v.SetBool(true); return v },
		func(ctx *tree.Context) *tree.Value { v := ctx.NewValue(); v.SetBool(false); return v },
		func(ctx *tree.Context) *tree.Value { v := ctx.NewValue(); v.SetInt(0); return v },
		func(ctx *tree.Context) *tree.Value { v := ctx.NewValue(); v.SetInt(23); return v },
		func(ctx *tree.Context) *tree.Value { v := ctx.NewValue(); v.SetInt(24); return v },
		func(ctx *tree.Context) *tree.Value { v := ctx.NewValue(); v.SetInt(-1); return v },
		func(ctx *tree.Context) *tree.Value { v := ctx.NewValue(); v.SetInt(-100); return v },
		func(ctx *tree.Context) *tree.Value { v := ctx.NewValue(); v.SetInt(100000); return v },
		func(ctx *tree.Context) *tree.Value { v := ctx.NewValue(); v.SetInt(9223372036854775807); return v },
		func(ctx *tree.Context) *tree.Value { v := ctx.NewValue(); v.SetFloat(3.1416); return v },
		func(ctx *tree.Context) *tree.Value { v := ctx.NewValue(); v.SetString("hello cbor"); return v },
	}
	for _, build := range cases {
		original, decoded := roundTrip(t, build)
		assert.True(t, tree.Equal(original, decoded))
	}
}

func TestRoundTripNestedStructure(t *testing.T) {
	original, decoded := roundTrip(t, func(ctx *tree.Context) *tree.Value {
		root := ctx.NewValue()
		root.ToMap()
		arr := ctx.NewValue()
		arr.ToArray()
		require.Nil(t, root.Insert("items", arr))
		for i := 0; i < 3; i++ {
			el := ctx.NewValue()
			el.SetInt(int64(i))
			require.Nil(t, arr.Push(el))
		}
		return root
	})
	assert.True(t, tree.Equal(original, decoded))
}

func TestDecodeRejectsNonStringMapKey(t *testing.T) {
	ctx := tree.NewContext(tree.DefaultOptions())
	// map with 1 pair: key = uint 1, value = null.
	data := []byte{majorMap | 1, majorUint | 1, majorSimple | simpleNull}
	_, err := Decode(ctx, data)
	assert.NotNil(t, err)
}

func TestDecodeRejectsTruncatedInput(t *testing.T) {
	ctx := tree.NewContext(tree.DefaultOptions())
	_, err := Decode(ctx, []byte{majorUint | info4, 0x00})
	assert.NotNil(t, err)
}

func TestDecodeRejectsTrailingGarbage(t *testing.T) {
	ctx := tree.NewContext(tree.DefaultOptions())
	v := ctx.NewValue()
	v.SetInt(1)
	out := buf.NewOutput(0)
	require.Nil(t, Encode(v, out))
	trailing := append(out.Data(), 0xff)
	_, err := Decode(ctx, trailing)
	assert.NotNil(t, err)
}
