package tree

import "github.com/joshuapare/doctree/pkg/types"

// maybeConvert implicitly converts v to t first when the context's
// ImplicitConversion optimization flag is on (the default); otherwise the
// caller must already have converted, and a mismatch is reported through
// the bool return of the calling setter.
func (v *Value) maybeConvert(t types.Tag) bool {
	if v.tag == t {
		return true
	}
	if !v.ctx.opts.ImplicitConversion {
		return false
	}
	v.ensureTag(t)
	return true
}

// SetBool sets v's boolean payload, implicitly converting v's tag first
// unless IMPLICIT_TYPE_CONVERSION_OFF is set for v's context (in which
// case the caller must already have called ToBool). Returns false on a
// shape mismatch.
func (v *Value) SetBool(b bool) bool {
	if !v.maybeConvert(types.Bool) {
		return false
	}
	v.b = b
	return true
}

// GetBool returns v's boolean payload. ok is false if v is not BOOL.
func (v *Value) GetBool() (b bool, ok bool) {
	if v.tag != types.Bool {
		return false, false
	}
	return v.b, true
}

// SetInt sets v's signed 64-bit payload.
func (v *Value) SetInt(i int64) bool {
	if !v.maybeConvert(types.Int) {
		return false
	}
	v.i = i
	return true
}

// GetInt returns v's integer payload. ok is false if v is not INT.
func (v *Value) GetInt() (i int64, ok bool) {
	if v.tag != types.Int {
		return 0, false
	}
	return v.i, true
}

// SetFloat sets v's double payload.
func (v *Value) SetFloat(f float64) bool {
	if !v.maybeConvert(types.Float) {
		return false
	}
	v.f = f
	return true
}

// GetFloat returns v's float payload. ok is false if v is not FLOAT.
func (v *Value) GetFloat() (f float64, ok bool) {
	if v.tag != types.Float {
		return 0, false
	}
	return v.f, true
}
