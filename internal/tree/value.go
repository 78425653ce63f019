package tree

import (
	"github.com/joshuapare/doctree/internal/keystore"
	"github.com/joshuapare/doctree/pkg/types"
)

// Value is a tagged-union node: at any instant exactly one of the payload
// fields below is meaningful, selected by tag. A value is born NULL and
// may be converted in place to any other tag via the conv_T family.
type Value struct {
	ctx        *Context
	tag        types.Tag
	parentKind types.ParentKind
	depth      int // distance from the owning root, enforced against types.MaxDepth

	b bool
	i int64
	f float64

	// String payload: strDynamic == nil means the string (of length
	// strInlineLen, possibly zero) lives in strInline; otherwise it is the
	// dynamic, heap-owned form and strDynamic holds it directly.
	strInline    [types.InlineStringPayload]byte
	strInlineLen uint8
	strDynamic   []byte

	arr *arrayData
	mp  *mapData
}

type pair struct {
	key *keystore.Key
	val *Value
}

type mapData struct {
	pairs []pair
	size  int
}

type arrayData struct {
	items []*Value
	size  int
}

// Context returns the value's owning context.
func (v *Value) Context() *Context { return v.ctx }

// Tag returns the value's current variant.
func (v *Value) Tag() types.Tag { return v.tag }

// Depth returns the value's distance from its owning root.
func (v *Value) Depth() int { return v.depth }

// ParentKind reports what kind of container (if any) owns this value.
func (v *Value) ParentKind() types.ParentKind { return v.parentKind }

func (v *Value) IsNull() bool   { return v.tag == types.Null }
func (v *Value) IsBool() bool   { return v.tag == types.Bool }
func (v *Value) IsInt() bool    { return v.tag == types.Int }
func (v *Value) IsFloat() bool  { return v.tag == types.Float }
func (v *Value) IsString() bool { return v.tag == types.String }
func (v *Value) IsArray() bool  { return v.tag == types.Array }
func (v *Value) IsMap() bool    { return v.tag == types.Map }

// destructPayload releases the current payload (recursively for
// aggregates, including held key references) but does not change the
// value's tag; callers that are about to assign a new tag do so
// immediately afterward.
func (v *Value) destructPayload() {
	switch v.tag {
	case types.Array:
		if v.arr != nil {
			for i := 0; i < v.arr.size; i++ {
				v.ctx.destroyChild(v.arr.items[i])
			}
		}
		v.arr = nil
	case types.Map:
		if v.mp != nil {
			for i := 0; i < v.mp.size; i++ {
				v.ctx.keys.Release(v.mp.pairs[i].key)
				v.ctx.destroyChild(v.mp.pairs[i].val)
			}
		}
		v.mp = nil
	case types.String:
		v.strDynamic = nil
		v.strInlineLen = 0
	}
}

// ensureTag destructs the current payload (if switching away from an
// aggregate) and initializes a zero-valued payload for tag t. A request to
// convert to the tag the value already holds is a no-op, per spec.
func (v *Value) ensureTag(t types.Tag) {
	if v.tag == t {
		return
	}
	v.destructPayload()
	v.tag = t
	switch t {
	case types.Array:
		v.arr = &arrayData{}
	case types.Map:
		v.mp = &mapData{}
	}
}

// ToNull converts v to NULL.
func (v *Value) ToNull() { v.ensureTag(types.Null) }

// ToBool converts v to BOOL, zero-valued (false) if it was not already.
func (v *Value) ToBool() { v.ensureTag(types.Bool) }

// ToInt converts v to INT, zero-valued if it was not already.
func (v *Value) ToInt() { v.ensureTag(types.Int) }

// ToFloat converts v to FLOAT, zero-valued if it was not already.
func (v *Value) ToFloat() { v.ensureTag(types.Float) }

// ToString converts v to STRING (empty, inline), destructing any
// aggregate payload recursively first.
func (v *Value) ToString() { v.ensureTag(types.String) }

// ToArray converts v to an empty ARRAY.
func (v *Value) ToArray() { v.ensureTag(types.Array) }

// ToMap converts v to an empty MAP.
func (v *Value) ToMap() { v.ensureTag(types.Map) }
