package tree

import "github.com/joshuapare/doctree/pkg/types"

func (a *Value) growArrayIfNeeded() {
	if a.arr.size < len(a.arr.items) {
		return
	}
	next := make([]*Value, len(a.arr.items)+types.ArrayGrowBlock)
	copy(next, a.arr.items)
	a.arr.items = next
}

// Push appends val to the array. val must be a freshly allocated,
// unattached value; an already-owned value, or the array itself, is
// rejected to preserve the tree-shaped ownership invariant.
func (a *Value) Push(val *Value) *types.Error {
	if a.tag != types.Array {
		return types.ErrShape
	}
	if val == nil || val.ctx != a.ctx || val.parentKind != types.ParentCtx {
		return types.ErrShape
	}
	if val == a {
		return types.ErrShape
	}
	if uint64(a.arr.size) >= types.MaxArraySize {
		return types.ErrArrayTooLarge
	}
	newDepth := a.depth + 1
	if newDepth > types.MaxDepth {
		return types.ErrTooDeep
	}
	a.growArrayIfNeeded()
	val.parentKind = types.ParentArray
	val.depth = newDepth
	a.arr.items[a.arr.size] = val
	a.arr.size++
	return nil
}

// Pop destructs and removes the last element. Returns false if the array
// is empty or a is not an array.
func (a *Value) Pop() bool {
	if a.tag != types.Array || a.arr.size == 0 {
		return false
	}
	last := a.arr.size - 1
	a.ctx.destroyChild(a.arr.items[last])
	a.arr.items[last] = nil
	a.arr.size--
	return true
}

// RemoveAt destructs and removes the element at index i, shifting
// later elements down to preserve order (arrays are ordered, unlike
// maps, so Remove's swap-with-last compaction would corrupt sequence).
// Returns false if i is out of range or a is not an array.
func (a *Value) RemoveAt(i int) bool {
	if a.tag != types.Array || i < 0 || i >= a.arr.size {
		return false
	}
	a.ctx.destroyChild(a.arr.items[i])
	copy(a.arr.items[i:a.arr.size-1], a.arr.items[i+1:a.arr.size])
	a.arr.items[a.arr.size-1] = nil
	a.arr.size--
	return true
}

// Element returns the bounds-checked element at index i.
func (a *Value) Element(i int) (*Value, bool) {
	if a.tag != types.Array || i < 0 || i >= a.arr.size {
		return nil, false
	}
	return a.arr.items[i], true
}

// Length returns the number of elements. Returns 0 if a is not an array.
func (a *Value) Length() int {
	if a.tag != types.Array || a.arr == nil {
		return 0
	}
	return a.arr.size
}
