package tree

import (
	"strings"
	"testing"

	"github.com/joshuapare/doctree/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyLengthLimitOnInsert(t *testing.T) {
	ctx := NewContext(DefaultOptions())
	m := ctx.NewValue()
	m.ToMap()

	atLimit := strings.Repeat("k", types.MaxKeyLen)
	v1 := ctx.NewValue()
	require.Nil(t, m.Insert(atLimit, v1))

	overLimit := strings.Repeat("k", types.MaxKeyLen+1)
	v2 := ctx.NewValue()
	err := m.Insert(overLimit, v2)
	require.NotNil(t, err)
	assert.Equal(t, types.ErrKindCapacity, err.Kind)
}

func TestToTagIsNoOpWhenAlreadyThatTag(t *testing.T) {
	ctx := NewContext(DefaultOptions())
	v := ctx.NewValue()
	v.ToMap()
	child := ctx.NewValue()
	require.Nil(t, v.Insert("a", child))
	v.ToMap() // no-op: must not destruct the existing payload
	assert.Equal(t, 1, v.Size())
}

func TestToArrayDestructsPreviousAggregate(t *testing.T) {
	ctx := NewContext(DefaultOptions())
	v := ctx.NewValue()
	v.ToMap()
	child := ctx.NewValue()
	require.Nil(t, v.Insert("a", child))

	v.ToArray()
	assert.True(t, v.IsArray())
	assert.Equal(t, 0, v.Length())
	assert.Equal(t, 0, ctx.KeyStoreLen())
}

func TestPredicates(t *testing.T) {
	ctx := NewContext(DefaultOptions())
	v := ctx.NewValue()
	assert.True(t, v.IsNull())
	v.SetBool(true)
	assert.True(t, v.IsBool())
	v.SetInt(1)
	assert.True(t, v.IsInt())
	v.SetFloat(1)
	assert.True(t, v.IsFloat())
	v.SetString("s")
	assert.True(t, v.IsString())
	v.ToArray()
	assert.True(t, v.IsArray())
	v.ToMap()
	assert.True(t, v.IsMap())
}
