package tree

import (
	"fmt"
	"testing"

	"github.com/joshuapare/doctree/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapInsertFindRemove(t *testing.T) {
	ctx := NewContext(DefaultOptions())
	m := ctx.NewValue()
	m.ToMap()

	v := ctx.NewValue()
	v.SetInt(7)
	require.Nil(t, m.Insert("a", v))
	assert.Equal(t, 1, m.Size())

	found, ok := m.Find("a")
	require.True(t, ok)
	i, _ := found.GetInt()
	assert.Equal(t, int64(7), i)

	assert.True(t, m.Remove("a"))
	assert.Equal(t, 0, m.Size())
	_, ok = m.Find("a")
	assert.False(t, ok)
}

func TestMapStrictDuplicateRejected(t *testing.T) {
	ctx := NewContext(DefaultOptions())
	m := ctx.NewValue()
	m.ToMap()

	v1 := ctx.NewValue()
	require.Nil(t, m.Insert("a", v1))

	v2 := ctx.NewValue()
	err := m.Insert("a", v2)
	require.NotNil(t, err)
	assert.Equal(t, types.ErrKindDuplicate, err.Kind)
}

func TestMapFastInsertAllowsDuplicate(t *testing.T) {
	opts := DefaultOptions()
	opts.StrictMapKeys = false
	ctx := NewContext(opts)
	m := ctx.NewValue()
	m.ToMap()

	v1 := ctx.NewValue()
	v1.SetInt(1)
	v2 := ctx.NewValue()
	v2.SetInt(2)

	require.Nil(t, m.Insert("a", v1))
	require.Nil(t, m.Insert("a", v2))
	assert.Equal(t, 2, m.Size())
}

func TestMapRejectsForeignOrAttachedValue(t *testing.T) {
	ctx := NewContext(DefaultOptions())
	other := NewContext(DefaultOptions())

	m := ctx.NewValue()
	m.ToMap()

	foreign := other.NewValue()
	err := m.Insert("a", foreign)
	require.NotNil(t, err)
	assert.Equal(t, types.ErrKindShape, err.Kind)

	attached := ctx.NewValue()
	require.Nil(t, m.Insert("b", attached))
	// attached is now ParentMap, not ParentCtx, so re-inserting it elsewhere fails.
	err = m.Insert("c", attached)
	require.NotNil(t, err)
	assert.Equal(t, types.ErrKindShape, err.Kind)
}

func TestMapRejectsSelfReference(t *testing.T) {
	ctx := NewContext(DefaultOptions())
	m := ctx.NewValue()
	m.ToMap()
	err := m.Insert("self", m)
	require.NotNil(t, err)
	assert.Equal(t, types.ErrKindShape, err.Kind)
}

func TestMapDepthLimit(t *testing.T) {
	ctx := NewContext(DefaultOptions())
	root := ctx.NewValue()
	root.ToMap()
	cur := root
	for i := 0; i < types.MaxDepth; i++ {
		child := ctx.NewValue()
		child.ToMap()
		err := cur.Insert("k", child)
		require.Nil(t, err, "depth %d should succeed", i)
		cur = child
	}
	// cur is now at depth types.MaxDepth; one more nesting exceeds the limit.
	tooDeep := ctx.NewValue()
	err := cur.Insert("k", tooDeep)
	require.NotNil(t, err)
	assert.Equal(t, types.ErrKindCapacity, err.Kind)
}

func TestMapRejectsInsertAtMaxMapSize(t *testing.T) {
	ctx := NewContext(DefaultOptions())
	m := ctx.NewValue()
	m.ToMap()
	m.mp.size = types.MaxMapSize // simulate being at the ceiling without actually filling it

	v := ctx.NewValue()
	err := m.Insert("over", v)
	require.NotNil(t, err)
	assert.Equal(t, types.ErrKindCapacity, err.Kind)
}

func TestMapCursorIteratesAllPairs(t *testing.T) {
	ctx := NewContext(DefaultOptions())
	m := ctx.NewValue()
	m.ToMap()
	for _, k := range []string{"a", "b", "c"} {
		v := ctx.NewValue()
		require.Nil(t, m.Insert(k, v))
	}
	cur := m.NewCursor()
	seen := map[string]bool{}
	for {
		k, _, ok := cur.Next()
		if !ok {
			break
		}
		seen[k] = true
	}
	assert.Len(t, seen, 3)
}

func TestMapGrowsPastInitialBlock(t *testing.T) {
	ctx := NewContext(DefaultOptions())
	m := ctx.NewValue()
	m.ToMap()
	n := types.MapGrowBlock*2 + 3
	for i := 0; i < n; i++ {
		v := ctx.NewValue()
		key := fmt.Sprintf("k%d", i)
		require.Nil(t, m.Insert(key, v))
	}
	assert.Equal(t, n, m.Size())
}
