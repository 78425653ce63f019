// Package path implements the dotted path-expression grammar used to
// locate a value inside a tree: a `.`-delimited sequence of map-key
// selectors and `@N` array-index selectors, grounded on the teacher's
// registry path walker (internal/reader/path.go) but generalized from
// fixed registry hive names to the document tree's own keys and indices.
package path

import (
	"strconv"
	"strings"

	"github.com/joshuapare/doctree/internal/tree"
	"github.com/joshuapare/doctree/pkg/types"
)

// Delimiter separates path segments; ArrayToken prefixes a decimal array
// index segment.
const (
	Delimiter  = "."
	ArrayToken = "@"
)

// Split parses expr into its ordered segments, tolerating a leading
// delimiter and collapsing empty segments produced by repeated
// delimiters. Returns ErrTooDeep if expr has more segments than the
// tree can be deep.
func Split(expr string) ([]string, *types.Error) {
	expr = strings.TrimPrefix(expr, Delimiter)
	if expr == "" {
		return nil, nil
	}
	raw := strings.Split(expr, Delimiter)
	segments := make([]string, 0, len(raw))
	for _, s := range raw {
		if s == "" {
			continue
		}
		segments = append(segments, s)
	}
	if len(segments) > types.MaxDepth {
		return nil, types.ErrTooDeep
	}
	return segments, nil
}

// Join is the inverse of Split: it joins segments with Delimiter, the
// entry point diff uses to build a path incrementally as it recurses.
func Join(segments []string) string {
	return strings.Join(segments, Delimiter)
}

// Search evaluates a pre-formed path expression against root, per
// spec §4.4: for each segment, find(key) on a map or element(N) on an
// array, failing early (ok=false) on a type mismatch, missing key,
// out-of-range index, or malformed array selector.
func Search(root *tree.Value, expr string) (*tree.Value, bool) {
	segments, err := Split(expr)
	if err != nil {
		return nil, false
	}
	return SearchSegments(root, segments)
}

// SearchSegments evaluates an already-split segment list against root,
// the entry point diff uses so it never round-trips through a joined
// string while walking.
func SearchSegments(root *tree.Value, segments []string) (*tree.Value, bool) {
	if len(segments) > types.MaxDepth {
		return nil, false
	}
	cur := root
	for _, seg := range segments {
		if idx, isIndex := parseIndex(seg); isIndex {
			if !cur.IsArray() {
				return nil, false
			}
			el, ok := cur.Element(idx)
			if !ok {
				return nil, false
			}
			cur = el
			continue
		}
		if !cur.IsMap() {
			return nil, false
		}
		v, ok := cur.Find(seg)
		if !ok {
			return nil, false
		}
		cur = v
	}
	return cur, true
}

// ParseIndexSegment reports whether seg is an array-index selector
// (`@N`) and, if so, its decoded value — exported so diffpatch can tell
// an array-index path segment from a map-key segment without
// re-deriving the grammar.
func ParseIndexSegment(seg string) (int, bool) {
	return parseIndex(seg)
}

// parseIndex reports whether seg is an array-index selector (`@N`) and,
// if so, its decoded value.
func parseIndex(seg string) (int, bool) {
	if !strings.HasPrefix(seg, ArrayToken) {
		return 0, false
	}
	n, err := strconv.Atoi(seg[len(ArrayToken):])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
