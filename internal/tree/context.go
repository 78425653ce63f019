// Package tree implements the tagged-union value tree: a context-owned
// allocation scope, per-value payload conversions, map and array storage
// with fixed-block growth, and a key-interning reference through
// internal/keystore. This is the engine pkg/doctree exposes under its
// public Context/Value API.
package tree

import (
	"github.com/joshuapare/doctree/internal/arena"
	"github.com/joshuapare/doctree/internal/keystore"
	"github.com/joshuapare/doctree/pkg/types"
)

// Options controls the per-context optimization switches the spec calls
// out: whether map inserts reject duplicate keys, and whether typed
// setters implicitly convert a value's tag before writing.
type Options struct {
	// StrictMapKeys rejects Insert of a key already present in the map
	// (the default). When false ("fast-insert"), a duplicate key is
	// appended as a second pair alongside the existing one; see
	// Value.Insert.
	StrictMapKeys bool

	// ImplicitConversion, when true (the default), makes every typed
	// setter (SetBool, SetInt, ...) first convert the value's tag via the
	// matching conv_T, rather than requiring the caller to convert first.
	ImplicitConversion bool
}

// DefaultOptions returns the spec's default optimization switches: strict
// duplicate-key rejection and implicit tag conversion both on.
func DefaultOptions() Options {
	return Options{StrictMapKeys: true, ImplicitConversion: true}
}

// Context is the allocation and key-interning scope for every value
// reachable from it. A context is single-threaded: callers serialize
// access externally (spec §5).
type Context struct {
	keys     *keystore.Store
	opts     Options
	nodePool arena.Pool[Value]
}

// NewContext creates a context with the given options.
func NewContext(opts Options) *Context {
	return &Context{keys: keystore.New(), opts: opts}
}

// KeyStoreLen reports the number of distinct interned keys currently live
// in this context, used to check the invariant that creating then
// destroying a value leaves key-store size unchanged.
func (c *Context) KeyStoreLen() int { return c.keys.Len() }

// NewValue allocates a fresh NULL value owned directly by the context
// (parent kind ctx). The caller may convert and populate it, then either
// keep it as a root value or adopt it into a map/array.
func (c *Context) NewValue() *Value {
	v := c.nodePool.Get()
	v.ctx = c
	v.tag = types.Null
	v.parentKind = types.ParentCtx
	v.depth = 0
	return v
}

// DestroyValue recursively destructs v's payload (releasing any held keys
// and destroying children) and returns the node to the context's pool. It
// is a no-op for a nil value or a value not owned by this context.
func (c *Context) DestroyValue(v *Value) {
	if v == nil || v.ctx != c {
		return
	}
	v.destructPayload()
	c.nodePool.Put(v)
}

// destroyChild is the recursive counterpart DestroyValue delegates to for
// descendants: destruct then return to the pool, without the ownership
// check (a child's ctx pointer was inherited at attach time).
func (c *Context) destroyChild(v *Value) {
	if v == nil {
		return
	}
	v.destructPayload()
	c.nodePool.Put(v)
}
