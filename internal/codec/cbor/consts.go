// Package cbor implements a minimal CBOR (RFC 8949) codec covering the
// major types this value tree needs: unsigned integer (0), negative
// integer (1), text string (3), array (4), map (5), and the simple/float
// values false/true/null/float64 (7). Definite-length items only — no
// indefinite-length streaming, no byte strings, no tags. Grounded on the
// same typed-length-value discipline as internal/codec/msgpack, the
// supplemented third codec spec.md names without specifying.
package cbor

const (
	majorUint    = 0 << 5
	majorNegInt  = 1 << 5
	majorText    = 3 << 5
	majorArray   = 4 << 5
	majorMap     = 5 << 5
	majorSimple  = 7 << 5
	majorMask    = 0xe0
	infoMask     = 0x1f
	info1        = 24
	info2        = 25
	info4        = 26
	info8        = 27
	simpleFalse  = 20
	simpleTrue   = 21
	simpleNull   = 22
	simpleFloat64 = 27
)
