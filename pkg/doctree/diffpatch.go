package doctree

import "github.com/joshuapare/doctree/internal/diffpatch"

// DiffResult holds the delta between an older and newer tree: Set
// (changed paths present in both), Add (paths only in the newer
// tree), and Rem (paths only in the older tree), per spec.md §4.5's
// diff document shape.
type DiffResult = diffpatch.Result

// Diff walks og and md and returns the delta needed to turn og into
// md.
func Diff(ctx *Context, og, md *Value) (*DiffResult, *Error) {
	return diffpatch.Diff(ctx, og, md)
}

// Patch applies result to target in place: rem first, then set, then
// add, per spec.md §4.5's patch algorithm.
func Patch(target *Value, result *DiffResult) *Error {
	return diffpatch.Patch(target, result)
}
