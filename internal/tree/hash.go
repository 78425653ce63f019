package tree

import "math"

// mix is a MurmurHash3 fmix64-style finalizer used to fold a new value
// into a running hash.
func mix(h, x uint64) uint64 {
	h ^= x
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	h *= 0xc4ceb9fe1a85ec53
	h ^= h >> 33
	return h
}

func mixBytes(h uint64, b []byte) uint64 {
	// FNV-1a over b, then folded into h via mix.
	var f uint64 = 14695981039346656037
	for _, c := range b {
		f ^= uint64(c)
		f *= 1099511628211
	}
	return mix(h, f)
}

// HashCode computes a stable hash of v, chained from seed so callers can
// fold a value's hash into a larger structure. Map hashing is
// order-independent (pairs are combined by XOR-accumulation); array
// hashing is order-dependent (elements are folded sequentially).
func (v *Value) HashCode(seed uint64) uint64 {
	h := seed
	switch {
	case v.IsNull():
		return mix(h, 0x1)
	case v.IsBool():
		if v.b {
			return mix(h, 0x2)
		}
		return mix(h, 0x3)
	case v.IsInt():
		return mix(h, uint64(v.i))
	case v.IsFloat():
		return mix(h, math.Float64bits(v.f))
	case v.IsString():
		return mixBytes(h, v.stringBytes())
	case v.IsArray():
		h = mix(h, 0x9e3779b97f4a7c15)
		for i := 0; i < v.arr.size; i++ {
			h = v.arr.items[i].HashCode(h)
		}
		return h
	case v.IsMap():
		h = mix(h, 0xff51afd7ed558ccd)
		var acc uint64
		for i := 0; i < v.mp.size; i++ {
			p := v.mp.pairs[i]
			kh := mixBytes(0, []byte(p.key.String()))
			vh := p.val.HashCode(0)
			acc ^= mix(kh, vh)
		}
		return mix(h, acc)
	}
	return h
}
