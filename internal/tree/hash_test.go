package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashCodeStableAcrossCalls(t *testing.T) {
	ctx := NewContext(DefaultOptions())
	v := ctx.NewValue()
	v.SetString("hello")
	assert.Equal(t, v.HashCode(0), v.HashCode(0))
}

func TestHashCodeMapOrderIndependent(t *testing.T) {
	ctx := NewContext(DefaultOptions())
	m1 := ctx.NewValue()
	m1.ToMap()
	a := ctx.NewValue()
	a.SetInt(1)
	b := ctx.NewValue()
	b.SetInt(2)
	require.Nil(t, m1.Insert("a", a))
	require.Nil(t, m1.Insert("b", b))

	m2 := ctx.NewValue()
	m2.ToMap()
	c := ctx.NewValue()
	c.SetInt(2)
	d := ctx.NewValue()
	d.SetInt(1)
	require.Nil(t, m2.Insert("b", c))
	require.Nil(t, m2.Insert("a", d))

	assert.Equal(t, m1.HashCode(0), m2.HashCode(0))
}

func TestHashCodeArrayOrderDependent(t *testing.T) {
	ctx := NewContext(DefaultOptions())
	a1 := ctx.NewValue()
	a1.ToArray()
	x := ctx.NewValue()
	x.SetInt(1)
	y := ctx.NewValue()
	y.SetInt(2)
	require.Nil(t, a1.Push(x))
	require.Nil(t, a1.Push(y))

	a2 := ctx.NewValue()
	a2.ToArray()
	p := ctx.NewValue()
	p.SetInt(2)
	q := ctx.NewValue()
	q.SetInt(1)
	require.Nil(t, a2.Push(p))
	require.Nil(t, a2.Push(q))

	assert.NotEqual(t, a1.HashCode(0), a2.HashCode(0))
}

func TestHashCodeDistinguishesTags(t *testing.T) {
	ctx := NewContext(DefaultOptions())
	n := ctx.NewValue()
	bTrue := ctx.NewValue()
	bTrue.SetBool(true)
	bFalse := ctx.NewValue()
	bFalse.SetBool(false)
	assert.NotEqual(t, n.HashCode(0), bTrue.HashCode(0))
	assert.NotEqual(t, bTrue.HashCode(0), bFalse.HashCode(0))
}
