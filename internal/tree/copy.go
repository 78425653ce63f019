package tree

import "github.com/joshuapare/doctree/pkg/types"

// Copy deep-copies src's subtree into dst, first destructing dst's current
// payload. Map keys are re-interned into dst's context (which may differ
// from src's), incrementing their reference counts there. A self-copy
// (dst == src) is a no-op.
func (dst *Value) Copy(src *Value) *types.Error {
	if src == nil {
		return types.ErrShape
	}
	if dst == src {
		return nil
	}
	dst.destructPayload()
	dst.tag = types.Null
	if err := dst.copyPayloadFrom(src); err != nil {
		dst.destructPayload()
		dst.tag = types.Null
		return err
	}
	return nil
}

// copyPayloadFrom fills dst (already placed at its final depth in the
// destination tree) with a deep copy of src's payload. Aggregate children
// are attached first (establishing their real depth) and filled
// afterward, so depth-limit checks see the destination's actual nesting.
func (dst *Value) copyPayloadFrom(src *Value) *types.Error {
	switch src.tag {
	case types.Null:
		dst.tag = types.Null
	case types.Bool:
		dst.tag = types.Bool
		dst.b = src.b
	case types.Int:
		dst.tag = types.Int
		dst.i = src.i
	case types.Float:
		dst.tag = types.Float
		dst.f = src.f
	case types.String:
		dst.tag = types.String
		dst.setStringBytes(src.stringBytes())
	case types.Array:
		dst.tag = types.Array
		dst.arr = &arrayData{}
		for i := 0; i < src.arr.size; i++ {
			child := dst.ctx.NewValue()
			if err := dst.Push(child); err != nil {
				dst.ctx.destroyChild(child)
				return err
			}
			if err := child.copyPayloadFrom(src.arr.items[i]); err != nil {
				return err
			}
		}
	case types.Map:
		dst.tag = types.Map
		dst.mp = &mapData{}
		cur := src.NewCursor()
		for {
			k, v, ok := cur.Next()
			if !ok {
				break
			}
			child := dst.ctx.NewValue()
			if err := dst.Insert(k, child); err != nil {
				dst.ctx.destroyChild(child)
				return err
			}
			if err := child.copyPayloadFrom(v); err != nil {
				return err
			}
		}
	}
	return nil
}
