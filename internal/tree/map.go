package tree

import (
	"github.com/joshuapare/doctree/internal/keystore"
	"github.com/joshuapare/doctree/pkg/types"
)

func (m *Value) growMapIfNeeded() {
	if m.mp.size < len(m.mp.pairs) {
		return
	}
	next := make([]pair, len(m.mp.pairs)+types.MapGrowBlock)
	copy(next, m.mp.pairs)
	m.mp.pairs = next
}

// Insert interns key into the map's context, then appends (key, val) as a
// new pair. val must be a freshly allocated, unattached value (ParentCtx);
// attaching an already-owned value, or a map into itself, is rejected to
// preserve the tree-shaped ownership invariant. Under strict map keys
// (the context default) a duplicate key is rejected; under fast-insert it
// is appended alongside the existing pair instead (the map remains
// traversable, but Find now returns whichever pair the linear scan meets
// first).
func (m *Value) Insert(key string, val *Value) *types.Error {
	if m.tag != types.Map {
		return types.ErrShape
	}
	if val == nil || val.ctx != m.ctx || val.parentKind != types.ParentCtx {
		return types.ErrShape
	}
	if val == m {
		return types.ErrShape
	}
	if uint64(m.mp.size) >= types.MaxMapSize {
		return types.ErrMapTooLarge
	}
	newDepth := m.depth + 1
	if newDepth > types.MaxDepth {
		return types.ErrTooDeep
	}

	if m.ctx.opts.StrictMapKeys {
		if existing := m.ctx.keys.Lookup(key); existing != nil {
			if m.findIndexByKey(existing, key) >= 0 {
				return types.ErrDuplicate
			}
		}
	}

	k, kerr := m.ctx.keys.Intern(key)
	if kerr != nil {
		return kerr
	}

	m.growMapIfNeeded()
	val.parentKind = types.ParentMap
	val.depth = newDepth
	m.mp.pairs[m.mp.size] = pair{key: k, val: val}
	m.mp.size++
	return nil
}

// findIndexByKey scans m's pairs comparing interned key pointers first,
// falling back to content comparison when k is nil (the needle was never
// interned in this context, so it cannot match by pointer).
func (m *Value) findIndexByKey(k *keystore.Key, key string) int {
	for i := 0; i < m.mp.size; i++ {
		if k != nil {
			if m.mp.pairs[i].key == k {
				return i
			}
			continue
		}
		if m.mp.pairs[i].key.String() == key {
			return i
		}
	}
	return -1
}

// Find looks up key via an interned-pointer comparison when possible,
// falling back to a content scan. Returns (nil, false) on a shape mismatch
// or a miss.
func (m *Value) Find(key string) (*Value, bool) {
	if m.tag != types.Map {
		return nil, false
	}
	k := m.ctx.keys.Lookup(key)
	idx := m.findIndexByKey(k, key)
	if idx < 0 {
		return nil, false
	}
	return m.mp.pairs[idx].val, true
}

// Remove releases the held key, destructs the child value, and compacts
// the pair array by swapping the removed entry with the last live one:
// maps are unordered, so this does not preserve relative order. Returns
// false if key is absent or m is not a map.
func (m *Value) Remove(key string) bool {
	if m.tag != types.Map {
		return false
	}
	k := m.ctx.keys.Lookup(key)
	idx := m.findIndexByKey(k, key)
	if idx < 0 {
		return false
	}
	m.ctx.keys.Release(m.mp.pairs[idx].key)
	m.ctx.destroyChild(m.mp.pairs[idx].val)

	last := m.mp.size - 1
	m.mp.pairs[idx] = m.mp.pairs[last]
	m.mp.pairs[last] = pair{}
	m.mp.size--
	return true
}

// Size returns the number of live pairs. Returns 0 if m is not a map.
func (m *Value) Size() int {
	if m.tag != types.Map || m.mp == nil {
		return 0
	}
	return m.mp.size
}

// Cursor is a storage-order iterator over a map's live pairs (not a
// snapshot), valid until the next mutation of the map (insert, remove,
// or destruction).
type Cursor struct {
	m   *Value
	pos int
}

// NewCursor returns a cursor over m's pairs in storage order. Returns nil
// if m is not a map.
func (m *Value) NewCursor() *Cursor {
	if m.tag != types.Map {
		return nil
	}
	return &Cursor{m: m}
}

// Next advances the cursor and returns the next (key, value) pair. ok is
// false once the cursor is exhausted.
func (c *Cursor) Next() (key string, val *Value, ok bool) {
	if c == nil || c.pos >= c.m.mp.size {
		return "", nil, false
	}
	p := c.m.mp.pairs[c.pos]
	c.pos++
	return p.key.String(), p.val, true
}
