// Package msgpack implements a typed-length-value MessagePack codec: a
// direct-recursion writer choosing the narrowest encoding for every
// integer, and a matching reader. Grounded on the teacher's typed binary
// record decoding style (internal/format, hive/reader nk.go/vk.go), which
// reads a fixed tag byte and dispatches to a fixed-width or
// length-prefixed payload exactly as MessagePack's own framing does.
package msgpack

const (
	tagNil      = 0xc0
	tagFalse    = 0xc2
	tagTrue     = 0xc3
	tagFloat32  = 0xca
	tagFloat64  = 0xcb
	tagUint8    = 0xcc
	tagUint16   = 0xcd
	tagUint32   = 0xce
	tagUint64   = 0xcf
	tagInt8     = 0xd0
	tagInt16    = 0xd1
	tagInt32    = 0xd2
	tagInt64    = 0xd3
	tagStr8     = 0xd9
	tagStr16    = 0xda
	tagStr32    = 0xdb
	tagArray16  = 0xdc
	tagArray32  = 0xdd
	tagMap16    = 0xde
	tagMap32    = 0xdf
	fixstrMask  = 0xa0
	fixarrMask  = 0x90
	fixmapMask  = 0x80
	posFixIntLo = 0x00
	posFixIntHi = 0x7f
	negFixIntLo = 0xe0
	negFixIntHi = 0xff
)
