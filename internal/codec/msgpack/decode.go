package msgpack

import (
	"math"

	"github.com/joshuapare/doctree/internal/buf"
	"github.com/joshuapare/doctree/internal/tree"
	"github.com/joshuapare/doctree/pkg/types"
)

// Decode parses data as MessagePack into a fresh value tree owned by ctx.
func Decode(ctx *tree.Context, data []byte) (*tree.Value, *types.Error) {
	in := buf.NewInput(data)
	v, err := readValue(ctx, in)
	if err != nil {
		return nil, err
	}
	if in.Remaining() != 0 {
		return nil, types.ErrParse
	}
	return v, nil
}

func readValue(ctx *tree.Context, in *buf.Input) (*tree.Value, *types.Error) {
	tagBytes, ok := in.Push(1)
	if !ok {
		return nil, types.ErrParse
	}
	tag := tagBytes[0]
	v := ctx.NewValue()

	switch {
	case tag == tagNil:
		v.ToNull()
		return v, nil
	case tag == tagFalse:
		v.SetBool(false)
		return v, nil
	case tag == tagTrue:
		v.SetBool(true)
		return v, nil
	case tag <= posFixIntHi:
		v.SetInt(int64(tag))
		return v, nil
	case tag >= negFixIntLo:
		v.SetInt(int64(int8(tag)))
		return v, nil
	case tag == tagUint8:
		b, ok := in.Push(1)
		if !ok {
			return nil, types.ErrParse
		}
		v.SetInt(int64(b[0]))
		return v, nil
	case tag == tagUint16:
		u, err := getBE16(in)
		if err != nil {
			return nil, err
		}
		v.SetInt(int64(u))
		return v, nil
	case tag == tagUint32:
		u, err := getBE32(in)
		if err != nil {
			return nil, err
		}
		v.SetInt(int64(u))
		return v, nil
	case tag == tagUint64:
		u, err := getBE64(in)
		if err != nil {
			return nil, err
		}
		if u <= math.MaxInt64 {
			v.SetInt(int64(u))
		} else {
			v.SetFloat(float64(u))
		}
		return v, nil
	case tag == tagInt8:
		b, ok := in.Push(1)
		if !ok {
			return nil, types.ErrParse
		}
		v.SetInt(int64(int8(b[0])))
		return v, nil
	case tag == tagInt16:
		u, err := getBE16(in)
		if err != nil {
			return nil, err
		}
		v.SetInt(int64(int16(u)))
		return v, nil
	case tag == tagInt32:
		u, err := getBE32(in)
		if err != nil {
			return nil, err
		}
		v.SetInt(int64(int32(u)))
		return v, nil
	case tag == tagInt64:
		u, err := getBE64(in)
		if err != nil {
			return nil, err
		}
		v.SetInt(int64(u))
		return v, nil
	case tag == tagFloat32:
		u, err := getBE32(in)
		if err != nil {
			return nil, err
		}
		v.SetFloat(float64(math.Float32frombits(u)))
		return v, nil
	case tag == tagFloat64:
		u, err := getBE64(in)
		if err != nil {
			return nil, err
		}
		v.SetFloat(math.Float64frombits(u))
		return v, nil
	case tag&0xe0 == fixstrMask:
		return readString(ctx, v, in, int(tag&0x1f))
	case tag == tagStr8:
		n, ok := in.Push(1)
		if !ok {
			return nil, types.ErrParse
		}
		return readString(ctx, v, in, int(n[0]))
	case tag == tagStr16:
		n, err := getBE16(in)
		if err != nil {
			return nil, err
		}
		return readString(ctx, v, in, int(n))
	case tag == tagStr32:
		n, err := getBE32(in)
		if err != nil {
			return nil, err
		}
		return readString(ctx, v, in, int(n))
	case tag&0xf0 == fixarrMask:
		return readArray(ctx, v, in, int(tag&0x0f))
	case tag == tagArray16:
		n, err := getBE16(in)
		if err != nil {
			return nil, err
		}
		return readArray(ctx, v, in, int(n))
	case tag == tagArray32:
		n, err := getBE32(in)
		if err != nil {
			return nil, err
		}
		return readArray(ctx, v, in, int(n))
	case tag&0xf0 == fixmapMask:
		return readMap(ctx, v, in, int(tag&0x0f))
	case tag == tagMap16:
		n, err := getBE16(in)
		if err != nil {
			return nil, err
		}
		return readMap(ctx, v, in, int(n))
	case tag == tagMap32:
		n, err := getBE32(in)
		if err != nil {
			return nil, err
		}
		return readMap(ctx, v, in, int(n))
	default:
		return nil, types.ErrParse
	}
}

func readString(ctx *tree.Context, v *tree.Value, in *buf.Input, n int) (*tree.Value, *types.Error) {
	raw, ok := in.Push(n)
	if !ok {
		return nil, types.ErrParse
	}
	v.SetString(string(raw))
	return v, nil
}

func readArray(ctx *tree.Context, v *tree.Value, in *buf.Input, n int) (*tree.Value, *types.Error) {
	v.ToArray()
	for i := 0; i < n; i++ {
		el, err := readValue(ctx, in)
		if err != nil {
			return nil, err
		}
		if pushErr := v.Push(el); pushErr != nil {
			return nil, pushErr
		}
	}
	return v, nil
}

func readMap(ctx *tree.Context, v *tree.Value, in *buf.Input, n int) (*tree.Value, *types.Error) {
	v.ToMap()
	for i := 0; i < n; i++ {
		keyVal, err := readValue(ctx, in)
		if err != nil {
			return nil, err
		}
		if !keyVal.IsString() {
			return nil, types.ErrParse
		}
		key, _ := keyVal.GetString()
		ctx.DestroyValue(keyVal)

		child, err := readValue(ctx, in)
		if err != nil {
			return nil, err
		}
		if insertErr := v.Insert(key, child); insertErr != nil {
			return nil, insertErr
		}
	}
	return v, nil
}

func getBE16(in *buf.Input) (uint16, *types.Error) {
	b, ok := in.Push(2)
	if !ok {
		return 0, types.ErrParse
	}
	return uint16(b[0])<<8 | uint16(b[1]), nil
}

func getBE32(in *buf.Input) (uint32, *types.Error) {
	b, ok := in.Push(4)
	if !ok {
		return 0, types.ErrParse
	}
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]), nil
}

func getBE64(in *buf.Input) (uint64, *types.Error) {
	b, ok := in.Push(8)
	if !ok {
		return 0, types.ErrParse
	}
	var u uint64
	for i := 0; i < 8; i++ {
		u = u<<8 | uint64(b[i])
	}
	return u, nil
}
