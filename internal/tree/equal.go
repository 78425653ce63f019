package tree

import "github.com/joshuapare/doctree/pkg/types"

// Equal reports whether a and b are structurally equal: same tag, equal
// scalar payloads (floats compared within types.FloatEpsilon), equal
// string bytes, element-wise equal arrays, and maps equal up to key order
// (every key in a must be present in b with an equal value, and vice
// versa).
func Equal(a, b *Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.tag != b.tag {
		return false
	}
	switch a.tag {
	case types.Null:
		return true
	case types.Bool:
		return a.b == b.b
	case types.Int:
		return a.i == b.i
	case types.Float:
		diff := a.f - b.f
		if diff < 0 {
			diff = -diff
		}
		return diff <= types.FloatEpsilon
	case types.String:
		return string(a.stringBytes()) == string(b.stringBytes())
	case types.Array:
		if a.arr.size != b.arr.size {
			return false
		}
		for i := 0; i < a.arr.size; i++ {
			if !Equal(a.arr.items[i], b.arr.items[i]) {
				return false
			}
		}
		return true
	case types.Map:
		if a.mp.size != b.mp.size {
			return false
		}
		for i := 0; i < a.mp.size; i++ {
			p := a.mp.pairs[i]
			bv, ok := b.Find(p.key.String())
			if !ok || !Equal(p.val, bv) {
				return false
			}
		}
		return true
	}
	return false
}
