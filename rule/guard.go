package rule

import (
	"github.com/cnf/structhash"

	"github.com/npillmayer/pex"
)

// guardKey builds a content hash identifying "this rule, at this cursor
// position", turning an otherwise-incomparable composite key into a plain
// string usable as a stack entry.
func guardKey(ruleName string, c pex.Cursor) string {
	h, err := structhash.Hash(struct {
		Rule string
		Path []int
	}{ruleName, c.Path()}, 1)
	if err != nil {
		fail("hashing guard key for rule %q: %v", ruleName, err)
	}
	return h
}

// enterGuard implements the left-recursion guard (§4.6): on entry, if the
// rule is already active at the very same cursor, the call would recurse
// forever without consuming input, so the parse aborts. Otherwise the
// entry cursor is pushed, to be popped by the returned function on every
// exit path.
func (t *Table) enterGuard(name string, c pex.Cursor) func() {
	g := t.guardFor(name)
	key := guardKey(name, c)
	if top, ok := g.Peek(); ok && top.(string) == key {
		fail("left recursion detected in rule %q at cursor %s", name, c)
	}
	g.Push(key)
	return func() { g.Pop() }
}
