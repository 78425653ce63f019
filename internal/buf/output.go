// Package buf implements the reusable byte stream shared by every codec:
// a growable or fixed-region output buffer, and a read-only input cursor.
// Growth policy for the owned-storage output buffer is capacity doubling;
// a caller-supplied fixed region never grows and a full write is a hard
// error, matching a fixed-region memory-mapped write target.
package buf

import "github.com/joshuapare/doctree/pkg/types"

const defaultOutputCap = 256

// Output is a positional byte sink. It can own its storage (growing by
// doubling on demand) or wrap a caller-supplied fixed region, in which case
// writes past the end fail instead of growing.
type Output struct {
	data []byte
	pos  int
	grow bool
}

// NewOutput creates an owned, growable output buffer. initialCap <= 0
// selects a small default capacity.
func NewOutput(initialCap int) *Output {
	if initialCap <= 0 {
		initialCap = defaultOutputCap
	}
	return &Output{data: make([]byte, initialCap), grow: true}
}

// NewOutputFixed wraps a caller-supplied region. The buffer never grows:
// once region is exhausted, Put/Push return false and the caller must
// treat it as a hard error (types.ErrBufferFull).
func NewOutputFixed(region []byte) *Output {
	return &Output{data: region, grow: false}
}

// Cap returns the buffer's current capacity.
func (o *Output) Cap() int { return len(o.data) }

// Tell returns the current write position.
func (o *Output) Tell() int { return o.pos }

// Data returns the written portion of the buffer, data()[:tell()].
func (o *Output) Data() []byte { return o.data[:o.pos] }

// Size is an alias for Tell, matching the external-interface naming.
func (o *Output) Size() int { return o.pos }

// Seek repositions the write cursor. pos must be within [0, cap]; repositioning
// past the current high-water mark is allowed (later writes may still be
// truncated by the same capacity as Put).
func (o *Output) Seek(pos int) bool {
	if pos < 0 || pos > len(o.data) {
		return false
	}
	o.pos = pos
	return true
}

// Put writes a single byte at the current position and advances it. It
// returns false if the buffer is full; the caller may then Resize (typical
// policy: double) and retry.
func (o *Output) Put(b byte) bool {
	if o.pos >= len(o.data) {
		return false
	}
	o.data[o.pos] = b
	o.pos++
	return true
}

// PutBytes writes all of b at the current position and advances past it.
// It returns false without writing anything if there is insufficient
// room.
func (o *Output) PutBytes(b []byte) bool {
	if o.pos+len(b) > len(o.data) {
		return false
	}
	copy(o.data[o.pos:], b)
	o.pos += len(b)
	return true
}

// Push reserves count bytes starting at the current position, advances
// tell by count, and returns the writable window for the caller to fill
// directly. Returns (nil, false) if there is insufficient room.
func (o *Output) Push(count int) ([]byte, bool) {
	if count < 0 || o.pos+count > len(o.data) {
		return nil, false
	}
	win := o.data[o.pos : o.pos+count]
	o.pos += count
	return win, true
}

// Pop rewinds the write position by count bytes and returns the
// now-unwritten window (the bytes that were just un-reserved), letting the
// caller inspect or overwrite them. Returns (nil, false) if count exceeds
// the current position.
func (o *Output) Pop(count int) ([]byte, bool) {
	if count < 0 || count > o.pos {
		return nil, false
	}
	o.pos -= count
	return o.data[o.pos : o.pos+count], true
}

// SetEOS writes a terminator byte at the current position without
// advancing it, for callers that want a sentinel just past the logical
// end of the written data.
func (o *Output) SetEOS(b byte) bool {
	if o.pos >= len(o.data) {
		return false
	}
	o.data[o.pos] = b
	return true
}

// Resize changes the buffer's capacity. A fixed-region buffer can never
// grow and Resize always fails for it (types.ErrBufferFull is the caller's
// to report). An owned buffer copies its written prefix into new storage.
func (o *Output) Resize(newCap int) bool {
	if !o.grow {
		return false
	}
	if newCap < o.pos {
		newCap = o.pos
	}
	next := make([]byte, newCap)
	copy(next, o.data[:o.pos])
	o.data = next
	return true
}

// Grow doubles the buffer's capacity (the writer components' standard
// retry policy on a failed Put/Push), returning false for a fixed-region
// buffer.
func (o *Output) Grow() bool {
	if !o.grow {
		return false
	}
	newCap := len(o.data) * 2
	if newCap == 0 {
		newCap = defaultOutputCap
	}
	return o.Resize(newCap)
}

// PutRetry writes b, growing and retrying once on failure. It returns
// types.ErrBufferFull if the buffer cannot accommodate b even after
// growing (or is a fixed region that is already full).
func (o *Output) PutRetry(b byte) *types.Error {
	if o.Put(b) {
		return nil
	}
	if !o.Grow() {
		return types.ErrBufferFull
	}
	if !o.Put(b) {
		return types.ErrBufferFull
	}
	return nil
}

// PutBytesRetry writes b, growing and retrying (possibly more than once,
// if b is larger than one doubling step) on failure.
func (o *Output) PutBytesRetry(b []byte) *types.Error {
	for !o.PutBytes(b) {
		if !o.Grow() {
			return types.ErrBufferFull
		}
	}
	return nil
}
