package doctree

import (
	"github.com/joshuapare/doctree/internal/buf"
	"github.com/joshuapare/doctree/internal/codec/cbor"
	"github.com/joshuapare/doctree/internal/codec/json"
	"github.com/joshuapare/doctree/internal/codec/msgpack"
	"github.com/joshuapare/doctree/pkg/types"
)

// Codec selects the wire format for Encode/Decode/ApproxEncodeSize, per
// spec.md §4.5's "interchangeable codecs switched by a codec tag".
type Codec int

const (
	CodecJSON Codec = iota
	CodecMsgPack
	CodecCBOR
)

// Encode writes v's encoding under codec to out.
func Encode(v *Value, codec Codec, out *buf.Output) *Error {
	switch codec {
	case CodecJSON:
		return json.Encode(v, out)
	case CodecMsgPack:
		return msgpack.Encode(v, out)
	case CodecCBOR:
		return cbor.Encode(v, out)
	default:
		return types.ErrShape
	}
}

// Decode parses data under codec into a fresh value owned by ctx.
func Decode(ctx *Context, codec Codec, data []byte) (*Value, *Error) {
	switch codec {
	case CodecJSON:
		return json.Decode(ctx, data)
	case CodecMsgPack:
		return msgpack.Decode(ctx, data)
	case CodecCBOR:
		return cbor.Decode(ctx, data)
	default:
		return nil, types.ErrShape
	}
}

// ApproxEncodeSize returns an upper-bound estimate of v's encoded
// length under codec, letting callers pre-size an output buffer before
// calling Encode.
func ApproxEncodeSize(v *Value, codec Codec) int {
	switch codec {
	case CodecJSON:
		return json.ApproxEncodeSize(v)
	case CodecMsgPack:
		return msgpack.ApproxEncodeSize(v)
	case CodecCBOR:
		return cbor.ApproxEncodeSize(v)
	default:
		return 0
	}
}
