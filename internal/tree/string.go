package tree

import "github.com/joshuapare/doctree/pkg/types"

// SetString sets v's string payload, choosing inline storage when the
// content fits (length <= types.InlineStringPayload) and a dynamic,
// heap-owned buffer otherwise. The choice is deterministic at set time, so
// a round-tripped value always lands in the same storage form for a given
// length. Implicitly converts v's tag first per the context's
// ImplicitConversion flag.
func (v *Value) SetString(s string) bool {
	if !v.maybeConvert(types.String) {
		return false
	}
	v.setStringBytes([]byte(s))
	return true
}

// setStringBytes is the shared assignment path used by SetString and by
// the codec readers, which decode bytes directly without an intermediate
// string allocation.
func (v *Value) setStringBytes(b []byte) {
	if len(b) <= types.InlineStringPayload {
		v.strDynamic = nil
		copy(v.strInline[:], b)
		v.strInlineLen = uint8(len(b))
		return
	}
	buf := make([]byte, len(b))
	copy(buf, b)
	v.strDynamic = buf
	v.strInlineLen = 0
}

// MoveString takes ownership of a caller-allocated heap buffer as v's
// string payload without copying, the move-string primitive decoders use
// once they already hold a freshly decoded byte slice. Still respects the
// inline/dynamic threshold: a short buffer is copied inline rather than
// kept as a needless heap reference.
func (v *Value) MoveString(buf []byte) bool {
	if !v.maybeConvert(types.String) {
		return false
	}
	if len(buf) <= types.InlineStringPayload {
		v.strDynamic = nil
		copy(v.strInline[:], buf)
		v.strInlineLen = uint8(len(buf))
		return true
	}
	v.strDynamic = buf
	v.strInlineLen = 0
	return true
}

// GetString returns v's string payload and its length. ok is false if v is
// not STRING.
func (v *Value) GetString() (s string, ok bool) {
	if v.tag != types.String {
		return "", false
	}
	return string(v.stringBytes()), true
}

// stringBytes returns the raw bytes of v's string payload without
// allocating when the string is inline.
func (v *Value) stringBytes() []byte {
	if v.strDynamic != nil {
		return v.strDynamic
	}
	return v.strInline[:v.strInlineLen]
}

// IsStringInline reports whether v's string payload currently uses inline
// storage (for round-trip and boundary tests).
func (v *Value) IsStringInline() bool {
	return v.tag == types.String && v.strDynamic == nil
}
