package diffpatch

import (
	"sort"

	"github.com/joshuapare/doctree/internal/path"
	"github.com/joshuapare/doctree/internal/tree"
	"github.com/joshuapare/doctree/pkg/types"
)

// Patch applies result to target in place: rem first (depth-first,
// prunes paths), then set (overwrites existing paths), then add
// (creates missing intermediate maps/arrays as needed). A set whose
// parent path no longer exists in target is a conflict and aborts the
// whole patch, reporting the offending path; add auto-vivifies
// instead, since by construction its path never existed in the older
// tree.
func Patch(target *tree.Value, result *Result) *types.Error {
	if err := applyRem(target, result.Rem); err != nil {
		return err
	}
	if err := applySet(target, result.Set); err != nil {
		return err
	}
	return applyAdd(target, result.Add)
}

type remEntry struct {
	parentSegs []string
	last       string
}

func applyRem(target *tree.Value, rem *tree.Value) *types.Error {
	if rem == nil {
		return nil
	}
	groups := map[string][]remEntry{}
	var order []string
	cur := rem.NewCursor()
	for {
		k, _, ok := cur.Next()
		if !ok {
			break
		}
		segs, err := path.Split(k)
		if err != nil {
			return err
		}
		if len(segs) == 0 {
			target.ToNull()
			continue
		}
		parentSegs := segs[:len(segs)-1]
		pk := path.Join(parentSegs)
		if _, seen := groups[pk]; !seen {
			order = append(order, pk)
		}
		groups[pk] = append(groups[pk], remEntry{parentSegs: parentSegs, last: segs[len(segs)-1]})
	}
	for _, pk := range order {
		ents := groups[pk]
		parent, ok := path.SearchSegments(target, ents[0].parentSegs)
		if !ok {
			continue // already gone: removal is idempotent
		}
		switch {
		case parent.IsArray():
			idxs := make([]int, 0, len(ents))
			for _, e := range ents {
				if idx, isIdx := path.ParseIndexSegment(e.last); isIdx {
					idxs = append(idxs, idx)
				}
			}
			sort.Sort(sort.Reverse(sort.IntSlice(idxs)))
			for _, idx := range idxs {
				parent.RemoveAt(idx)
			}
		case parent.IsMap():
			for _, e := range ents {
				parent.Remove(e.last)
			}
		}
	}
	return nil
}

func applySet(target *tree.Value, set *tree.Value) *types.Error {
	if set == nil {
		return nil
	}
	cur := set.NewCursor()
	for {
		k, val, ok := cur.Next()
		if !ok {
			break
		}
		segs, err := path.Split(k)
		if err != nil {
			return err
		}
		if len(segs) == 0 {
			if err := target.Copy(val); err != nil {
				return err
			}
			continue
		}
		parentSegs := segs[:len(segs)-1]
		last := segs[len(segs)-1]
		parent, ok := path.SearchSegments(target, parentSegs)
		if !ok {
			return types.Wrap(types.ErrKindConflict, "patch: set target missing intermediate path: "+k, nil)
		}
		if idx, isIdx := path.ParseIndexSegment(last); isIdx {
			if !parent.IsArray() {
				return types.Wrap(types.ErrKindConflict, "patch: set target is not an array: "+k, nil)
			}
			el, ok := parent.Element(idx)
			if !ok {
				return types.Wrap(types.ErrKindConflict, "patch: set target index missing: "+k, nil)
			}
			if err := el.Copy(val); err != nil {
				return err
			}
			continue
		}
		if !parent.IsMap() {
			return types.Wrap(types.ErrKindConflict, "patch: set target is not a map: "+k, nil)
		}
		child, ok := parent.Find(last)
		if !ok {
			return types.Wrap(types.ErrKindConflict, "patch: set target key missing: "+k, nil)
		}
		if err := child.Copy(val); err != nil {
			return err
		}
	}
	return nil
}

func applyAdd(target *tree.Value, add *tree.Value) *types.Error {
	if add == nil {
		return nil
	}
	ctx := target.Context()
	cur := add.NewCursor()
	for {
		k, val, ok := cur.Next()
		if !ok {
			break
		}
		segs, err := path.Split(k)
		if err != nil {
			return err
		}
		if len(segs) == 0 {
			if err := target.Copy(val); err != nil {
				return err
			}
			continue
		}
		parent, err := ensurePath(ctx, target, segs)
		if err != nil {
			return err
		}
		last := segs[len(segs)-1]
		cp := ctx.NewValue()
		if err := cp.Copy(val); err != nil {
			ctx.DestroyValue(cp)
			return err
		}
		if _, isIdx := path.ParseIndexSegment(last); isIdx {
			if !parent.IsArray() {
				ctx.DestroyValue(cp)
				return types.Wrap(types.ErrKindConflict, "patch: add target is not an array: "+k, nil)
			}
			if err := parent.Push(cp); err != nil {
				ctx.DestroyValue(cp)
				return err
			}
			continue
		}
		if !parent.IsMap() {
			ctx.DestroyValue(cp)
			return types.Wrap(types.ErrKindConflict, "patch: add target is not a map: "+k, nil)
		}
		if err := parent.Insert(last, cp); err != nil {
			ctx.DestroyValue(cp)
			return err
		}
	}
	return nil
}

// ensurePath walks target through all but the last of segs (the full
// path being added), auto-vivifying missing map keys, and returns the
// parent of the final segment. A missing intermediate's container kind
// is inferred from the next segment's form (`@N` implies array, anything
// else implies map). A segment that names an array index but finds no
// such element is a conflict: add only creates new trailing structure,
// never sparse gaps.
func ensurePath(ctx *tree.Context, target *tree.Value, segs []string) (*tree.Value, *types.Error) {
	cur := target
	for i, seg := range segs[:len(segs)-1] {
		if idx, isIdx := path.ParseIndexSegment(seg); isIdx {
			if !cur.IsArray() {
				return nil, types.Wrap(types.ErrKindConflict, "patch: add path segment is not an array: "+seg, nil)
			}
			el, ok := cur.Element(idx)
			if !ok {
				return nil, types.Wrap(types.ErrKindConflict, "patch: add path index missing: "+seg, nil)
			}
			cur = el
			continue
		}
		if !cur.IsMap() {
			return nil, types.Wrap(types.ErrKindConflict, "patch: add path segment is not a map: "+seg, nil)
		}
		child, ok := cur.Find(seg)
		if !ok {
			next := ctx.NewValue()
			if _, nextIsIdx := path.ParseIndexSegment(segs[i+1]); nextIsIdx {
				next.ToArray()
			} else {
				next.ToMap()
			}
			if err := cur.Insert(seg, next); err != nil {
				ctx.DestroyValue(next)
				return nil, err
			}
			child = next
		}
		cur = child
	}
	return cur, nil
}
