// Package keystore implements the per-context key-interning table: a
// content-addressed table mapping byte-identical key strings to a single
// shared, reference-counted Key. Contexts are single-threaded (spec §5), so
// unlike the sharded, mutex-per-shard decode cache this table is adapted
// from, Store carries no locking of its own.
package keystore

import (
	"github.com/joshuapare/doctree/internal/arena"
	"github.com/joshuapare/doctree/pkg/types"
)

// Key is an immutable interned byte string used as a map field name.
type Key struct {
	s    string
	hash uint32
	refs int
	next *Key // store-table collision chain
}

// String returns the key's contents.
func (k *Key) String() string { return k.s }

// Len returns the key's byte length.
func (k *Key) Len() int { return len(k.s) }

// Refs returns the key's current reference count.
func (k *Key) Refs() int { return k.refs }

const numBuckets = 64

// Store is a per-context hash table from key content to *Key.
type Store struct {
	buckets [numBuckets]*Key
	size    int
	pool    arena.Pool[Key]
}

// New creates an empty key store.
func New() *Store {
	return &Store{}
}

// Len returns the number of distinct interned keys currently live.
func (s *Store) Len() int { return s.size }

// djb2 hashes s the way the spec mandates: h = ((h<<5)+h)+c, seed 5381.
func djb2(s string) uint32 {
	var h uint32 = 5381
	for i := 0; i < len(s); i++ {
		h = ((h << 5) + h) + uint32(s[i])
	}
	return h
}

// Intern looks up s in the table. If present, it increments the existing
// key's reference count and returns it; otherwise it allocates a new Key
// with refcount 1, inserts it, and returns it. Keys longer than
// types.MaxKeyLen are rejected.
func (s *Store) Intern(str string) (*Key, *types.Error) {
	if len(str) > types.MaxKeyLen {
		return nil, types.ErrKeyTooLong
	}
	h := djb2(str)
	for k := s.buckets[h%numBuckets]; k != nil; k = k.next {
		if k.hash == h && k.s == str {
			k.refs++
			return k, nil
		}
	}
	k := s.pool.Get()
	k.s, k.hash, k.refs = str, h, 1
	idx := h % numBuckets
	k.next = s.buckets[idx]
	s.buckets[idx] = k
	s.size++
	return k, nil
}

// Release decrements k's reference count; at zero it is removed from the
// store and freed. Passing a key not interned in s is a programming error
// and is a no-op here (ownership is always tracked by the caller holding
// the Key pointer it got from Intern).
func (s *Store) Release(k *Key) {
	if k == nil {
		return
	}
	k.refs--
	if k.refs > 0 {
		return
	}
	idx := k.hash % numBuckets
	var prev *Key
	for cur := s.buckets[idx]; cur != nil; cur = cur.next {
		if cur == k {
			if prev == nil {
				s.buckets[idx] = cur.next
			} else {
				prev.next = cur.next
			}
			s.size--
			s.pool.Put(cur)
			return
		}
		prev = cur
	}
}

// Lookup finds an already-interned key by content without affecting its
// reference count, used by Map.Find to compare interned pointers first and
// fall back to content comparison only when the needle was never interned
// in this store.
func (s *Store) Lookup(str string) *Key {
	h := djb2(str)
	for k := s.buckets[h%numBuckets]; k != nil; k = k.next {
		if k.hash == h && k.s == str {
			return k
		}
	}
	return nil
}
