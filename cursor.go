package pex

import (
	"fmt"
	"strings"
)

// Cursor is an immutable-value position into a (possibly nested) input
// sequence. It denotes: "descend into child path[0] of the root, then
// child path[1] of that, ... and point at position path[len(path)-1]
// inside the deepest sequence reached." The final index may address one
// past the last element of its containing sequence (end-of-sequence is
// representable, but such a position is not Valid for reading). All
// earlier indices must address a sub-sequence.
//
// Cursors are value-semantic: every operation returns a new Cursor: no
// Cursor's backing path is ever shared-mutated across two call sites that
// hold a copy of it.
type Cursor struct {
	path []int
}

// NewCursor creates a Cursor pointing at the given top-level index.
func NewCursor(at int) Cursor {
	return Cursor{path: []int{at}}
}

// Depth returns the number of indices in the cursor's path.
func (c Cursor) Depth() int {
	return len(c.path)
}

// Last returns the final index of the cursor's path, i.e. the position it
// points at within its immediately containing sequence.
func (c Cursor) Last() int {
	return c.path[len(c.path)-1]
}

func (c Cursor) clone() []int {
	p := make([]int, len(c.path))
	copy(p, c.path)
	return p
}

// parent resolves every index but the last one, returning the Sequence
// that directly contains the element the cursor points at. ok is false if
// any intermediate index is out of range or does not address a
// sub-sequence.
func (c Cursor) parent(input Sequence) (Sequence, bool) {
	seq := input
	for _, idx := range c.path[:len(c.path)-1] {
		if idx < 0 || idx >= seq.Len() {
			return nil, false
		}
		elem := seq.At(idx)
		sub, ok := elem.(Sequence)
		if !ok {
			return nil, false
		}
		seq = sub
	}
	return seq, true
}

// Container returns the Sequence that directly contains the element the
// cursor points at, i.e. the result of resolving every index but the last.
// The atom matcher uses this to tell whether the cursor sits inside a
// string or vector sub-sequence, which is where a string/vector literal
// matches as a contiguous run rather than as a single whole-item equality
// test.
func (c Cursor) Container(input Sequence) (Sequence, bool) {
	return c.parent(input)
}

// Path returns a copy of the cursor's index path, used by the
// left-recursion guard to build a hashable identity for "this rule, at
// this position".
func (c Cursor) Path() []int {
	return c.clone()
}

// Valid reports whether every index in the cursor addresses a valid
// element at its depth. The last index may equal the length of its
// containing sequence (end-of-sequence is representable), but that
// position is not Valid for reading.
func (c Cursor) Valid(input Sequence) bool {
	parent, ok := c.parent(input)
	if !ok {
		return false
	}
	last := c.Last()
	return last >= 0 && last < parent.Len()
}

// Item returns the element under the cursor. It panics if the cursor is
// not Valid; callers must check Valid (or rely on the fact that matching
// code never calls Item on an out-of-range cursor).
func (c Cursor) Item(input Sequence) interface{} {
	parent, ok := c.parent(input)
	if !ok {
		panic(fmt.Sprintf("pex: Item called on invalid cursor %s", c))
	}
	last := c.Last()
	if last < 0 || last >= parent.Len() {
		panic(fmt.Sprintf("pex: Item called on out-of-range cursor %s", c))
	}
	return parent.At(last)
}

// LengthAt returns the length of the sub-sequence that contains the
// element under the cursor, i.e. one level up from the deepest index. It
// is defined even when the cursor sits at end-of-sequence.
func (c Cursor) LengthAt(input Sequence) int {
	parent, ok := c.parent(input)
	if !ok {
		return 0
	}
	return parent.Len()
}

// Step returns a cursor with its last index advanced by n (n may be
// negative, though the combinator interpreter never does that).
func (c Cursor) Step(n int) Cursor {
	p := c.clone()
	p[len(p)-1] += n
	return Cursor{path: p}
}

// Descend returns a cursor that enters the element under the current
// cursor as a sub-sequence, pointing at its first position.
func (c Cursor) Descend() Cursor {
	p := c.clone()
	p = append(p, 0)
	return Cursor{path: p}
}

// Ascend returns a cursor that leaves the current sub-sequence and steps
// by one in the parent, i.e. past the sub-sequence just matched.
func (c Cursor) Ascend() Cursor {
	if len(c.path) == 1 {
		panic("pex: Ascend called on a top-level cursor")
	}
	p := c.clone()
	p = p[:len(p)-1]
	p[len(p)-1]++
	return Cursor{path: p}
}

// AtEnd reports whether the cursor sits exactly at the end of its
// containing sequence (Last() == LengthAt()).
func (c Cursor) AtEnd(input Sequence) bool {
	return c.Last() == c.LengthAt(input)
}

// Before reports whether c comes strictly before other in depth-first
// order, comparing path elements lexicographically; it is false for two
// equal cursors. Cursor monotonicity — every successful match returns a
// cursor at-or-after the one it was called with — is stated in terms of
// Before and Equal.
func (c Cursor) Before(other Cursor) bool {
	for i := 0; i < len(c.path) && i < len(other.path); i++ {
		if c.path[i] != other.path[i] {
			return c.path[i] < other.path[i]
		}
	}
	return len(c.path) < len(other.path)
}

// Equal reports whether two cursors denote the same position.
func (c Cursor) Equal(other Cursor) bool {
	if len(c.path) != len(other.path) {
		return false
	}
	for i := range c.path {
		if c.path[i] != other.path[i] {
			return false
		}
	}
	return true
}

func (c Cursor) String() string {
	parts := make([]string, len(c.path))
	for i, idx := range c.path {
		parts[i] = fmt.Sprintf("%d", idx)
	}
	return "[" + strings.Join(parts, ",") + "]"
}
