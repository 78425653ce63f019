package doctree

import "github.com/joshuapare/doctree/internal/path"

// Search evaluates a dotted path expression (map keys separated by `.`,
// array indices written `@N`) against root, per spec.md §4.4.
func Search(root *Value, expr string) (*Value, bool) {
	return path.Search(root, expr)
}

// SearchSegments evaluates an already-split segment list against root,
// avoiding a round trip through a joined path string.
func SearchSegments(root *Value, segments []string) (*Value, bool) {
	return path.SearchSegments(root, segments)
}

// SplitPath parses a path expression into its ordered segments.
func SplitPath(expr string) ([]string, *Error) {
	return path.Split(expr)
}

// JoinPath is the inverse of SplitPath.
func JoinPath(segments []string) string {
	return path.Join(segments)
}
