package cbor

import (
	"math"

	"github.com/joshuapare/doctree/internal/buf"
	"github.com/joshuapare/doctree/internal/tree"
	"github.com/joshuapare/doctree/pkg/types"
)

// Encode writes v's CBOR encoding to out.
func Encode(v *tree.Value, out *buf.Output) *types.Error {
	return writeValue(v, out)
}

func writeValue(v *tree.Value, out *buf.Output) *types.Error {
	switch {
	case v.IsNull():
		return out.PutRetry(byte(majorSimple | simpleNull))
	case v.IsBool():
		b, _ := v.GetBool()
		if b {
			return out.PutRetry(byte(majorSimple | simpleTrue))
		}
		return out.PutRetry(byte(majorSimple | simpleFalse))
	case v.IsInt():
		i, _ := v.GetInt()
		return writeInt(out, i)
	case v.IsFloat():
		f, _ := v.GetFloat()
		if err := out.PutRetry(byte(majorSimple | simpleFloat64)); err != nil {
			return err
		}
		return putBE64(out, math.Float64bits(f))
	case v.IsString():
		s, _ := v.GetString()
		if err := writeHeader(out, majorText, uint64(len(s))); err != nil {
			return err
		}
		return out.PutBytesRetry([]byte(s))
	case v.IsArray():
		return writeArray(v, out)
	case v.IsMap():
		return writeMap(v, out)
	}
	return nil
}

// writeInt encodes i as CBOR major type 0 (non-negative) or 1 (negative,
// stored as -1-n per RFC 8949).
func writeInt(out *buf.Output, i int64) *types.Error {
	if i >= 0 {
		return writeHeader(out, majorUint, uint64(i))
	}
	return writeHeader(out, majorNegInt, uint64(-1-i))
}

// writeHeader writes a major-type byte with the narrowest additional-info
// encoding of n.
func writeHeader(out *buf.Output, major byte, n uint64) *types.Error {
	switch {
	case n < info1:
		return out.PutRetry(major | byte(n))
	case n <= 0xff:
		if err := out.PutRetry(major | info1); err != nil {
			return err
		}
		return out.PutRetry(byte(n))
	case n <= 0xffff:
		if err := out.PutRetry(major | info2); err != nil {
			return err
		}
		return putBE16(out, uint16(n))
	case n <= 0xffffffff:
		if err := out.PutRetry(major | info4); err != nil {
			return err
		}
		return putBE32(out, uint32(n))
	default:
		if err := out.PutRetry(major | info8); err != nil {
			return err
		}
		return putBE64(out, n)
	}
}

func writeArray(v *tree.Value, out *buf.Output) *types.Error {
	n := v.Length()
	if err := writeHeader(out, majorArray, uint64(n)); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		el, _ := v.Element(i)
		if err := writeValue(el, out); err != nil {
			return err
		}
	}
	return nil
}

func writeMap(v *tree.Value, out *buf.Output) *types.Error {
	n := v.Size()
	if err := writeHeader(out, majorMap, uint64(n)); err != nil {
		return err
	}
	cur := v.NewCursor()
	for {
		k, val, ok := cur.Next()
		if !ok {
			break
		}
		if err := writeHeader(out, majorText, uint64(len(k))); err != nil {
			return err
		}
		if err := out.PutBytesRetry([]byte(k)); err != nil {
			return err
		}
		if err := writeValue(val, out); err != nil {
			return err
		}
	}
	return nil
}

func putBE16(out *buf.Output, v uint16) *types.Error {
	b := [2]byte{byte(v >> 8), byte(v)}
	return out.PutBytesRetry(b[:])
}

func putBE32(out *buf.Output, v uint32) *types.Error {
	b := [4]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
	return out.PutBytesRetry(b[:])
}

func putBE64(out *buf.Output, v uint64) *types.Error {
	b := [8]byte{
		byte(v >> 56), byte(v >> 48), byte(v >> 40), byte(v >> 32),
		byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v),
	}
	return out.PutBytesRetry(b[:])
}

// ApproxEncodeSize returns an upper-bound estimate of v's encoded CBOR
// length.
func ApproxEncodeSize(v *tree.Value) int {
	switch {
	case v.IsNull(), v.IsBool():
		return 1
	case v.IsInt(), v.IsFloat():
		return 9
	case v.IsString():
		s, _ := v.GetString()
		return len(s) + 9
	case v.IsArray():
		n := v.Length()
		size := 9
		for i := 0; i < n; i++ {
			el, _ := v.Element(i)
			size += ApproxEncodeSize(el)
		}
		return size
	case v.IsMap():
		size := 9
		cur := v.NewCursor()
		for {
			k, val, ok := cur.Next()
			if !ok {
				break
			}
			size += len(k) + 9
			size += ApproxEncodeSize(val)
		}
		return size
	}
	return 0
}
