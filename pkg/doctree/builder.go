package doctree

import (
	"github.com/joshuapare/doctree/internal/path"
	"github.com/joshuapare/doctree/pkg/types"
)

// SetStringAt, SetIntAt, SetFloatAt, and SetBoolAt set a scalar at a
// path expression, auto-vivifying intermediate maps and arrays the way
// CreateKey's CreateParents option does for registry keys. Convenience
// only: no semantics beyond Insert/Push and the conv_T setters spec.md
// already defines.
func SetStringAt(ctx *Context, root *Value, pathExpr string, s string) *Error {
	return setAt(ctx, root, pathExpr, func(v *Value) { v.SetString(s) })
}

func SetIntAt(ctx *Context, root *Value, pathExpr string, i int64) *Error {
	return setAt(ctx, root, pathExpr, func(v *Value) { v.SetInt(i) })
}

func SetFloatAt(ctx *Context, root *Value, pathExpr string, f float64) *Error {
	return setAt(ctx, root, pathExpr, func(v *Value) { v.SetFloat(f) })
}

func SetBoolAt(ctx *Context, root *Value, pathExpr string, b bool) *Error {
	return setAt(ctx, root, pathExpr, func(v *Value) { v.SetBool(b) })
}

func setAt(ctx *Context, root *Value, pathExpr string, apply func(*Value)) *Error {
	segments, err := path.Split(pathExpr)
	if err != nil {
		return err
	}
	if len(segments) == 0 {
		apply(root)
		return nil
	}

	cur := root
	for i, seg := range segments[:len(segments)-1] {
		next, err := vivifyChild(ctx, cur, seg, segments[i+1])
		if err != nil {
			return err
		}
		cur = next
	}

	last := segments[len(segments)-1]
	if idx, isIdx := path.ParseIndexSegment(last); isIdx {
		if !cur.IsArray() {
			return types.ErrShape
		}
		el, ok := cur.Element(idx)
		if !ok {
			return types.ErrNotFound
		}
		apply(el)
		return nil
	}
	if !cur.IsMap() {
		return types.ErrShape
	}
	child, ok := cur.Find(last)
	if !ok {
		child = ctx.NewValue()
		if ierr := cur.Insert(last, child); ierr != nil {
			ctx.DestroyValue(child)
			return ierr
		}
	}
	apply(child)
	return nil
}

// vivifyChild descends into cur's child named by seg, creating it as a
// map or array (inferred from the form of the segment that follows) if
// absent. Array indices are never auto-vivified: an out-of-range index
// on an intermediate segment is a not-found error, since arrays only
// grow by Push.
func vivifyChild(ctx *Context, cur *Value, seg, nextSeg string) (*Value, *Error) {
	if idx, isIdx := path.ParseIndexSegment(seg); isIdx {
		if !cur.IsArray() {
			return nil, types.ErrShape
		}
		el, ok := cur.Element(idx)
		if !ok {
			return nil, types.ErrNotFound
		}
		return el, nil
	}
	if !cur.IsMap() {
		return nil, types.ErrShape
	}
	child, ok := cur.Find(seg)
	if ok {
		return child, nil
	}
	next := ctx.NewValue()
	if _, nextIsIdx := path.ParseIndexSegment(nextSeg); nextIsIdx {
		next.ToArray()
	} else {
		next.ToMap()
	}
	if ierr := cur.Insert(seg, next); ierr != nil {
		ctx.DestroyValue(next)
		return nil, ierr
	}
	return next, nil
}
