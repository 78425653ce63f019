package msgpack

import (
	"math"

	"github.com/joshuapare/doctree/internal/buf"
	"github.com/joshuapare/doctree/internal/tree"
	"github.com/joshuapare/doctree/pkg/types"
)

// Encode writes v's MessagePack encoding to out, retrying through a
// grow-and-retry policy identical to the JSON writer's.
func Encode(v *tree.Value, out *buf.Output) *types.Error {
	return writeValue(v, out)
}

func writeValue(v *tree.Value, out *buf.Output) *types.Error {
	switch {
	case v.IsNull():
		return out.PutRetry(tagNil)
	case v.IsBool():
		b, _ := v.GetBool()
		if b {
			return out.PutRetry(tagTrue)
		}
		return out.PutRetry(tagFalse)
	case v.IsInt():
		i, _ := v.GetInt()
		return writeInt(out, i)
	case v.IsFloat():
		f, _ := v.GetFloat()
		if err := out.PutRetry(tagFloat64); err != nil {
			return err
		}
		return putBE64(out, math.Float64bits(f))
	case v.IsString():
		s, _ := v.GetString()
		return writeString(out, s)
	case v.IsArray():
		return writeArray(v, out)
	case v.IsMap():
		return writeMap(v, out)
	}
	return nil
}

// writeInt chooses the narrowest MessagePack integer encoding that can
// hold i: fixint where possible, then the smallest fixed-width tag.
func writeInt(out *buf.Output, i int64) *types.Error {
	if i >= 0 {
		return writeUintNarrow(out, uint64(i))
	}
	switch {
	case i >= -32:
		return out.PutRetry(byte(int8(i)))
	case i >= -128:
		if err := out.PutRetry(tagInt8); err != nil {
			return err
		}
		return out.PutRetry(byte(int8(i)))
	case i >= -32768:
		if err := out.PutRetry(tagInt16); err != nil {
			return err
		}
		return putBE16(out, uint16(int16(i)))
	case i >= -2147483648:
		if err := out.PutRetry(tagInt32); err != nil {
			return err
		}
		return putBE32(out, uint32(int32(i)))
	default:
		if err := out.PutRetry(tagInt64); err != nil {
			return err
		}
		return putBE64(out, uint64(i))
	}
}

func writeUintNarrow(out *buf.Output, u uint64) *types.Error {
	switch {
	case u <= posFixIntHi:
		return out.PutRetry(byte(u))
	case u <= 0xff:
		if err := out.PutRetry(tagUint8); err != nil {
			return err
		}
		return out.PutRetry(byte(u))
	case u <= 0xffff:
		if err := out.PutRetry(tagUint16); err != nil {
			return err
		}
		return putBE16(out, uint16(u))
	case u <= 0xffffffff:
		if err := out.PutRetry(tagUint32); err != nil {
			return err
		}
		return putBE32(out, uint32(u))
	default:
		if err := out.PutRetry(tagUint64); err != nil {
			return err
		}
		return putBE64(out, u)
	}
}

func writeString(out *buf.Output, s string) *types.Error {
	n := len(s)
	switch {
	case n <= 31:
		if err := out.PutRetry(byte(fixstrMask | n)); err != nil {
			return err
		}
	case n <= 0xff:
		if err := out.PutRetry(tagStr8); err != nil {
			return err
		}
		if err := out.PutRetry(byte(n)); err != nil {
			return err
		}
	case n <= 0xffff:
		if err := out.PutRetry(tagStr16); err != nil {
			return err
		}
		if err := putBE16(out, uint16(n)); err != nil {
			return err
		}
	default:
		if err := out.PutRetry(tagStr32); err != nil {
			return err
		}
		if err := putBE32(out, uint32(n)); err != nil {
			return err
		}
	}
	return out.PutBytesRetry([]byte(s))
}

func writeArray(v *tree.Value, out *buf.Output) *types.Error {
	n := v.Length()
	if err := writeArrayHeader(out, n); err != nil {
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

func writeArrayHeader(out *buf.Output, n int) *types.Error {
	switch {
	case n <= 15:
		return out.PutRetry(byte(fixarrMask | n))
	case n <= 0xffff:
		if err := out.PutRetry(tagArray16); err != nil {
			return err
		}
		return putBE16(out, uint16(n))
	default:
		if err := out.PutRetry(tagArray32); err != nil {
			return err
		}
		return putBE32(out, uint32(n))
	}
}

func writeMap(v *tree.Value, out *buf.Output) *types.Error {
	n := v.Size()
	if err := writeMapHeader(out, n); err != nil {
		return err
	}
	cur := v.NewCursor()
	for {
		k, val, ok := cur.Next()
		if !ok {
			break
		}
		if err := writeString(out, k); err != nil {
			return err
		}
		if err := writeValue(val, out); err != nil {
			return err
		}
	}
	return nil
}

func writeMapHeader(out *buf.Output, n int) *types.Error {
	switch {
	case n <= 15:
		return out.PutRetry(byte(fixmapMask | n))
	case n <= 0xffff:
		if err := out.PutRetry(tagMap16); err != nil {
			return err
		}
		return putBE16(out, uint16(n))
	default:
		if err := out.PutRetry(tagMap32); err != nil {
			return err
		}
		return putBE32(out, uint32(n))
	}
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

// ApproxEncodeSize returns an upper-bound estimate of v's encoded
// MessagePack length.
func ApproxEncodeSize(v *tree.Value) int {
	switch {
	case v.IsNull(), v.IsBool():
		return 1
	case v.IsInt():
		return 9 // tag + uint64/int64 payload
	case v.IsFloat():
		return 9 // tag + float64 payload
	case v.IsString():
		s, _ := v.GetString()
		return len(s) + 5 // payload plus the widest length header
	case v.IsArray():
		n := v.Length()
		size := 5
		for i := 0; i < n; i++ {
			el, _ := v.Element(i)
			size += ApproxEncodeSize(el)
		}
		return size
	case v.IsMap():
		size := 5
		cur := v.NewCursor()
		for {
			k, val, ok := cur.Next()
			if !ok {
				break
			}
			size += len(k) + 5
			size += ApproxEncodeSize(val)
		}
		return size
	}
	return 0
}
