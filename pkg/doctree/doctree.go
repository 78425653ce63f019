/*
Package doctree provides a high-level API over a dynamically-typed,
in-memory document value model: maps, arrays, strings, integers,
floats, bools, and null, with pluggable wire codecs and a three-way
diff/patch algorithm.

# Quick Start

Build a value and round-trip it through JSON:

	ctx := doctree.NewContext(doctree.DefaultOptions())
	v := ctx.NewValue()
	v.ToMap()
	name := ctx.NewValue()
	name.SetString("alice")
	v.Insert("name", name)

	out := buf.NewOutput(0)
	doctree.Encode(v, doctree.CodecJSON, out)

# Path search

	found, ok := doctree.Search(v, "name")

# Diff and patch

	result, _ := doctree.Diff(ctx, og, md)
	doctree.Patch(og, result) // og now equals md

# Advanced usage

For direct access to the value tree, key store, and codec internals,
see internal/tree, internal/keystore, internal/path, and
internal/codec/{json,msgpack,cbor} — doctree is a thin facade over
them for the concerns most callers need.
*/
package doctree

import (
	"github.com/joshuapare/doctree/internal/tree"
	"github.com/joshuapare/doctree/pkg/types"
)

// Core types re-exported so callers only need to import pkg/doctree.
type (
	Context = tree.Context
	Value   = tree.Value
	Cursor  = tree.Cursor
	Options = tree.Options
)

// Error types.
type (
	Error   = types.Error
	ErrKind = types.ErrKind
)

// Error kind constants.
const (
	ErrKindShape      = types.ErrKindShape
	ErrKindCapacity   = types.ErrKindCapacity
	ErrKindDuplicate  = types.ErrKindDuplicate
	ErrKindParse      = types.ErrKindParse
	ErrKindBufferFull = types.ErrKindBufferFull
	ErrKindConflict   = types.ErrKindConflict
	ErrKindNotFound   = types.ErrKindNotFound
)

// Common error sentinels.
var (
	ErrShape       = types.ErrShape
	ErrCapacity    = types.ErrCapacity
	ErrDuplicate   = types.ErrDuplicate
	ErrParse       = types.ErrParse
	ErrBufferFull  = types.ErrBufferFull
	ErrConflict    = types.ErrConflict
	ErrNotFound    = types.ErrNotFound
	ErrOutOfRange  = types.ErrOutOfRange
	ErrKeyTooLong  = types.ErrKeyTooLong
	ErrTooDeep     = types.ErrTooDeep
	ErrMapTooLarge   = types.ErrMapTooLarge
	ErrArrayTooLarge = types.ErrArrayTooLarge
)

// NewContext creates a context with the given options; every value
// reachable from it shares its allocation scope and key store.
func NewContext(opts Options) *Context { return tree.NewContext(opts) }

// DefaultOptions returns strict duplicate-key rejection and implicit
// tag conversion both on, matching the context defaults spec.md names.
func DefaultOptions() Options { return tree.DefaultOptions() }
