package tree

import (
	"strings"
	"testing"

	"github.com/joshuapare/doctree/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortStringIsInline(t *testing.T) {
	ctx := NewContext(DefaultOptions())
	v := ctx.NewValue()
	require.True(t, v.SetString("hello"))
	assert.True(t, v.IsStringInline())
	s, ok := v.GetString()
	require.True(t, ok)
	assert.Equal(t, "hello", s)
}

func TestStringInlineBoundary(t *testing.T) {
	ctx := NewContext(DefaultOptions())

	atCap := strings.Repeat("x", types.InlineStringPayload)
	v := ctx.NewValue()
	require.True(t, v.SetString(atCap))
	assert.True(t, v.IsStringInline())

	overCap := strings.Repeat("x", types.InlineStringPayload+1)
	w := ctx.NewValue()
	require.True(t, w.SetString(overCap))
	assert.False(t, w.IsStringInline())

	gs, _ := v.GetString()
	assert.Equal(t, atCap, gs)
	gw, _ := w.GetString()
	assert.Equal(t, overCap, gw)
}

func TestMoveStringTakesOwnership(t *testing.T) {
	ctx := NewContext(DefaultOptions())
	v := ctx.NewValue()
	buf := []byte(strings.Repeat("y", types.InlineStringPayload+10))
	require.True(t, v.MoveString(buf))
	assert.False(t, v.IsStringInline())
	s, _ := v.GetString()
	assert.Equal(t, string(buf), s)
}

func TestSetStringEmpty(t *testing.T) {
	ctx := NewContext(DefaultOptions())
	v := ctx.NewValue()
	require.True(t, v.SetString(""))
	assert.True(t, v.IsStringInline())
	s, ok := v.GetString()
	require.True(t, ok)
	assert.Equal(t, "", s)
}
