package json

import (
	"strconv"

	"github.com/joshuapare/doctree/internal/buf"
	"github.com/joshuapare/doctree/internal/tree"
	"github.com/joshuapare/doctree/pkg/types"
)

// Encode walks v and writes its JSON text representation to out,
// growing a growable buffer on a failed Put and retrying (the writer's
// standard policy per spec), then terminates with an EOS byte at the
// final write position.
func Encode(v *tree.Value, out *buf.Output) *types.Error {
	if err := writeValue(v, out); err != nil {
		return err
	}
	out.SetEOS(0)
	return nil
}

func writeValue(v *tree.Value, out *buf.Output) *types.Error {
	switch {
	case v.IsNull():
		return out.PutBytesRetry([]byte("null"))
	case v.IsBool():
		b, _ := v.GetBool()
		if b {
			return out.PutBytesRetry([]byte("true"))
		}
		return out.PutBytesRetry([]byte("false"))
	case v.IsInt():
		i, _ := v.GetInt()
		return out.PutBytesRetry(strconv.AppendInt(nil, i, 10))
	case v.IsFloat():
		f, _ := v.GetFloat()
		return out.PutBytesRetry(strconv.AppendFloat(nil, f, 'g', -1, 64))
	case v.IsString():
		s, _ := v.GetString()
		return writeString(s, out)
	case v.IsArray():
		return writeArray(v, out)
	case v.IsMap():
		return writeMap(v, out)
	}
	return nil
}

func writeArray(v *tree.Value, out *buf.Output) *types.Error {
	if err := out.PutRetry('['); err != nil {
		return err
	}
	n := v.Length()
	for i := 0; i < n; i++ {
		if i > 0 {
			if err := out.PutRetry(','); err != nil {
				return err
			}
		}
		el, _ := v.Element(i)
		if err := writeValue(el, out); err != nil {
			return err
		}
	}
	return out.PutRetry(']')
}

func writeMap(v *tree.Value, out *buf.Output) *types.Error {
	if err := out.PutRetry('{'); err != nil {
		return err
	}
	cur := v.NewCursor()
	first := true
	for {
		k, val, ok := cur.Next()
		if !ok {
			break
		}
		if !first {
			if err := out.PutRetry(','); err != nil {
				return err
			}
		}
		first = false
		if err := writeString(k, out); err != nil {
			return err
		}
		if err := out.PutRetry(':'); err != nil {
			return err
		}
		if err := writeValue(val, out); err != nil {
			return err
		}
	}
	return out.PutRetry('}')
}

func writeString(s string, out *buf.Output) *types.Error {
	if err := out.PutRetry('"'); err != nil {
		return err
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			if err := out.PutBytesRetry([]byte(`\"`)); err != nil {
				return err
			}
		case '\\':
			if err := out.PutBytesRetry([]byte(`\\`)); err != nil {
				return err
			}
		case '\n':
			if err := out.PutBytesRetry([]byte(`\n`)); err != nil {
				return err
			}
		case '\r':
			if err := out.PutBytesRetry([]byte(`\r`)); err != nil {
				return err
			}
		case '\t':
			if err := out.PutBytesRetry([]byte(`\t`)); err != nil {
				return err
			}
		default:
			if c < 0x20 {
				const hex = "0123456789abcdef"
				esc := [6]byte{'\\', 'u', '0', '0', hex[(c>>4)&0xf], hex[c&0xf]}
				if err := out.PutBytesRetry(esc[:]); err != nil {
					return err
				}
				continue
			}
			if err := out.PutRetry(c); err != nil {
				return err
			}
		}
	}
	return out.PutRetry('"')
}

// ApproxEncodeSize returns an upper-bound estimate of v's encoded JSON
// length, used by callers sizing an output buffer before encoding: each
// scalar is counted at its worst-case textual width, and each aggregate
// adds its brackets, commas, and (for maps) quoted-key overhead.
func ApproxEncodeSize(v *tree.Value) int {
	switch {
	case v.IsNull():
		return len("null")
	case v.IsBool():
		return len("false")
	case v.IsInt():
		return 20 // -9223372036854775808
	case v.IsFloat():
		return 24 // worst-case strconv 'g' width plus sign/exponent
	case v.IsString():
		s, _ := v.GetString()
		return len(s)*6 + 2 // every byte may need a \u00XX escape, plus quotes
	case v.IsArray():
		n := v.Length()
		size := 2 // []
		for i := 0; i < n; i++ {
			el, _ := v.Element(i)
			size += ApproxEncodeSize(el) + 1 // +1 for the comma/nothing
		}
		return size
	case v.IsMap():
		size := 2 // {}
		cur := v.NewCursor()
		for {
			k, val, ok := cur.Next()
			if !ok {
				break
			}
			size += len(k)*6 + 4 // quoted key plus ':' and ','
			size += ApproxEncodeSize(val)
		}
		return size
	}
	return 0
}
