package json

import (
	"io"
	"math"

	"github.com/joshuapare/doctree/internal/tree"
	"github.com/joshuapare/doctree/pkg/types"
)

// build drives a pushdown automaton over scan's event stream, per the
// spec's construction rules: a depth-bounded stack of open aggregate
// nodes plus a single pending-key slot. Each scalar or Start event is
// placed into the current slot (the array being appended to, or the
// map pair named by the most recent Key). Nesting deeper than MaxDepth
// is rejected by the scanner before Insert/Push see it, and surfaces
// here as an ErrKindParse error wrapping the scanner's cause.
func build(ctx *tree.Context, scan *Scanner) (*tree.Value, *types.Error) {
	var root *tree.Value
	var stack []*tree.Value
	var pendingKey string
	havePending := false

	nextSlot := func() (*tree.Value, *types.Error) {
		if len(stack) == 0 {
			if root != nil {
				return nil, types.ErrParse
			}
			root = ctx.NewValue()
			return root, nil
		}
		top := stack[len(stack)-1]
		if top.IsArray() {
			child := ctx.NewValue()
			if err := top.Push(child); err != nil {
				ctx.DestroyValue(child)
				return nil, err
			}
			return child, nil
		}
		if !havePending {
			return nil, types.ErrParse
		}
		child := ctx.NewValue()
		if err := top.Insert(pendingKey, child); err != nil {
			ctx.DestroyValue(child)
			return nil, err
		}
		havePending = false
		return child, nil
	}

	for {
		ev, err := scan.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, types.Wrap(types.ErrKindParse, "json: malformed input", err)
		}
		switch ev.Kind {
		case Null:
			slot, perr := nextSlot()
			if perr != nil {
				return nil, perr
			}
			slot.ToNull()
		case Bool:
			slot, perr := nextSlot()
			if perr != nil {
				return nil, perr
			}
			slot.SetBool(ev.BoolV)
		case Int:
			slot, perr := nextSlot()
			if perr != nil {
				return nil, perr
			}
			slot.SetInt(ev.IntV)
		case Uint:
			slot, perr := nextSlot()
			if perr != nil {
				return nil, perr
			}
			if ev.UintV > math.MaxInt64 {
				return nil, types.ErrParse
			}
			slot.SetInt(int64(ev.UintV))
		case Double:
			slot, perr := nextSlot()
			if perr != nil {
				return nil, perr
			}
			slot.SetFloat(ev.Double)
		case String:
			slot, perr := nextSlot()
			if perr != nil {
				return nil, perr
			}
			slot.SetString(ev.Str)
		case StartObject:
			slot, perr := nextSlot()
			if perr != nil {
				return nil, perr
			}
			slot.ToMap()
			stack = append(stack, slot)
		case Key:
			if len(stack) == 0 || !stack[len(stack)-1].IsMap() {
				return nil, types.ErrParse
			}
			pendingKey = ev.Str
			havePending = true
		case EndObject:
			if len(stack) == 0 || !stack[len(stack)-1].IsMap() {
				return nil, types.ErrParse
			}
			stack = stack[:len(stack)-1]
		case StartArray:
			slot, perr := nextSlot()
			if perr != nil {
				return nil, perr
			}
			slot.ToArray()
			stack = append(stack, slot)
		case EndArray:
			if len(stack) == 0 || !stack[len(stack)-1].IsArray() {
				return nil, types.ErrParse
			}
			stack = stack[:len(stack)-1]
		}
	}
	if root == nil {
		return nil, types.ErrParse
	}
	return root, nil
}

// Decode parses data as JSON into a fresh value tree owned by ctx.
func Decode(ctx *tree.Context, data []byte) (*tree.Value, *types.Error) {
	return build(ctx, NewScanner(data))
}
