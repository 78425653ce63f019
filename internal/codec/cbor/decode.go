package cbor

import (
	"math"

	"github.com/joshuapare/doctree/internal/buf"
	"github.com/joshuapare/doctree/internal/tree"
	"github.com/joshuapare/doctree/pkg/types"
)

// Decode parses data as CBOR into a fresh value tree owned by ctx.
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
	b, ok := in.Push(1)
	if !ok {
		return nil, types.ErrParse
	}
	tag := b[0]
	major := tag & majorMask
	info := tag & infoMask
	v := ctx.NewValue()

	switch major {
	case majorUint:
		n, err := readLen(in, info)
		if err != nil {
			return nil, err
		}
		if n <= math.MaxInt64 {
			v.SetInt(int64(n))
		} else {
			v.SetFloat(float64(n))
		}
		return v, nil
	case majorNegInt:
		n, err := readLen(in, info)
		if err != nil {
			return nil, err
		}
		// -1-n; guard the int64 round-trip for very large magnitudes.
		if n > math.MaxInt64 {
			v.SetFloat(-1 - float64(n))
		} else {
			v.SetInt(-1 - int64(n))
		}
		return v, nil
	case majorText:
		n, err := readLen(in, info)
		if err != nil {
			return nil, err
		}
		raw, ok := in.Push(int(n))
		if !ok {
			return nil, types.ErrParse
		}
		v.SetString(string(raw))
		return v, nil
	case majorArray:
		n, err := readLen(in, info)
		if err != nil {
			return nil, err
		}
		v.ToArray()
		for i := uint64(0); i < n; i++ {
			el, elErr := readValue(ctx, in)
			if elErr != nil {
				return nil, elErr
			}
			if pushErr := v.Push(el); pushErr != nil {
				return nil, pushErr
			}
		}
		return v, nil
	case majorMap:
		n, err := readLen(in, info)
		if err != nil {
			return nil, err
		}
		v.ToMap()
		for i := uint64(0); i < n; i++ {
			keyVal, keyErr := readValue(ctx, in)
			if keyErr != nil {
				return nil, keyErr
			}
			if !keyVal.IsString() {
				return nil, types.ErrParse
			}
			key, _ := keyVal.GetString()
			ctx.DestroyValue(keyVal)

			child, childErr := readValue(ctx, in)
			if childErr != nil {
				return nil, childErr
			}
			if insertErr := v.Insert(key, child); insertErr != nil {
				return nil, insertErr
			}
		}
		return v, nil
	case majorSimple:
		switch info {
		case simpleFalse:
			v.SetBool(false)
			return v, nil
		case simpleTrue:
			v.SetBool(true)
			return v, nil
		case simpleNull:
			v.ToNull()
			return v, nil
		case simpleFloat64:
			raw, ok := in.Push(8)
			if !ok {
				return nil, types.ErrParse
			}
			var u uint64
			for i := 0; i < 8; i++ {
				u = u<<8 | uint64(raw[i])
			}
			v.SetFloat(math.Float64frombits(u))
			return v, nil
		default:
			return nil, types.ErrParse
		}
	default:
		return nil, types.ErrParse
	}
}

// readLen decodes the additional-info length/value field that follows a
// major-type byte: info itself if < 24, else 1/2/4/8 big-endian bytes.
func readLen(in *buf.Input, info byte) (uint64, *types.Error) {
	switch {
	case info < info1:
		return uint64(info), nil
	case info == info1:
		b, ok := in.Push(1)
		if !ok {
			return 0, types.ErrParse
		}
		return uint64(b[0]), nil
	case info == info2:
		b, ok := in.Push(2)
		if !ok {
			return 0, types.ErrParse
		}
		return uint64(b[0])<<8 | uint64(b[1]), nil
	case info == info4:
		b, ok := in.Push(4)
		if !ok {
			return 0, types.ErrParse
		}
		var u uint64
		for i := 0; i < 4; i++ {
			u = u<<8 | uint64(b[i])
		}
		return u, nil
	case info == info8:
		b, ok := in.Push(8)
		if !ok {
			return 0, types.ErrParse
		}
		var u uint64
		for i := 0; i < 8; i++ {
			u = u<<8 | uint64(b[i])
		}
		return u, nil
	default:
		return 0, types.ErrParse
	}
}
