// Package diffpatch implements the three-way delta between two value
// trees and its inverse application, grounded on the teacher's registry
// diff (pkg/hive/diff.go's DiffStatus classification) and its merge
// plan (hive/merge/ops.go's Op/Plan builder), generalized from fixed
// registry keys/values to the document tree's own maps and arrays.
//
// A Result holds three flat maps keyed by dotted path expression (see
// internal/path): Set holds paths present in both trees whose value
// changed, Add holds paths present only in the newer tree, and Rem
// holds paths present only in the older tree. Paths are built
// incrementally as the walk descends, per internal/path's stated role
// as the engine diff uses to accumulate a path one segment at a time.
package diffpatch

import (
	"strconv"

	"github.com/joshuapare/doctree/internal/path"
	"github.com/joshuapare/doctree/internal/tree"
	"github.com/joshuapare/doctree/pkg/types"
)

// Result is the delta between an older (og) and newer (md) tree.
type Result struct {
	Set *tree.Value // path string -> replacement value
	Add *tree.Value // path string -> new value
	Rem *tree.Value // path string -> null marker; only the key matters
}

// Diff walks og and md in lockstep and returns the delta needed to turn
// og into md. Both trees must be owned by ctx or a context compatible
// with it (values inserted into the result are deep-copied via ctx).
func Diff(ctx *tree.Context, og, md *tree.Value) (*Result, *types.Error) {
	res := &Result{Set: ctx.NewValue(), Add: ctx.NewValue(), Rem: ctx.NewValue()}
	res.Set.ToMap()
	res.Add.ToMap()
	res.Rem.ToMap()
	if err := diffWalk(ctx, og, md, nil, res); err != nil {
		return nil, err
	}
	return res, nil
}

func diffWalk(ctx *tree.Context, og, md *tree.Value, segments []string, res *Result) *types.Error {
	if len(segments) > types.MaxDepth {
		return types.ErrTooDeep
	}
	switch {
	case og.IsMap() && md.IsMap():
		cur := og.NewCursor()
		for {
			k, ogVal, ok := cur.Next()
			if !ok {
				break
			}
			childSegs := appendSeg(segments, k)
			if mdVal, exists := md.Find(k); exists {
				if err := diffWalk(ctx, ogVal, mdVal, childSegs, res); err != nil {
					return err
				}
			} else if err := markRem(res, childSegs); err != nil {
				return err
			}
		}
		cur2 := md.NewCursor()
		for {
			k, mdVal, ok := cur2.Next()
			if !ok {
				break
			}
			if _, exists := og.Find(k); !exists {
				if err := markLeaf(ctx, res.Add, appendSeg(segments, k), mdVal); err != nil {
					return err
				}
			}
		}
	case og.IsArray() && md.IsArray():
		ogLen, mdLen := og.Length(), md.Length()
		minLen := ogLen
		if mdLen < minLen {
			minLen = mdLen
		}
		for i := 0; i < minLen; i++ {
			ogEl, _ := og.Element(i)
			mdEl, _ := md.Element(i)
			if err := diffWalk(ctx, ogEl, mdEl, appendSeg(segments, indexSeg(i)), res); err != nil {
				return err
			}
		}
		for i := minLen; i < mdLen; i++ {
			mdEl, _ := md.Element(i)
			if err := markLeaf(ctx, res.Add, appendSeg(segments, indexSeg(i)), mdEl); err != nil {
				return err
			}
		}
		for i := minLen; i < ogLen; i++ {
			if err := markRem(res, appendSeg(segments, indexSeg(i))); err != nil {
				return err
			}
		}
	default:
		if og.Tag() != md.Tag() || !tree.Equal(og, md) {
			return markLeaf(ctx, res.Set, segments, md)
		}
	}
	return nil
}

func indexSeg(i int) string {
	return path.ArrayToken + strconv.Itoa(i)
}

func appendSeg(segments []string, seg string) []string {
	next := make([]string, len(segments)+1)
	copy(next, segments)
	next[len(segments)] = seg
	return next
}

// markLeaf records a deep copy of val under dst, keyed by segments
// joined into a path expression.
func markLeaf(ctx *tree.Context, dst *tree.Value, segments []string, val *tree.Value) *types.Error {
	key := path.Join(segments)
	cp := ctx.NewValue()
	if err := cp.Copy(val); err != nil {
		ctx.DestroyValue(cp)
		return err
	}
	if err := dst.Insert(key, cp); err != nil {
		ctx.DestroyValue(cp)
		return err
	}
	return nil
}

// markRem records that the value at segments was removed. Only the key
// is meaningful; the marker value itself carries no information.
func markRem(res *Result, segments []string) *types.Error {
	key := path.Join(segments)
	marker := res.Rem.Context().NewValue()
	if err := res.Rem.Insert(key, marker); err != nil {
		res.Rem.Context().DestroyValue(marker)
		return err
	}
	return nil
}
