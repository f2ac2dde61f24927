package rule

import (
	"golang.org/x/exp/slices"

	"github.com/npillmayer/pex"
	"github.com/npillmayer/pex/runtime"
	"github.com/npillmayer/pex/value"
)

// Match is the combinator interpreter's single recursive entry point
// (§4.3): it dispatches on the concrete type of e, bottoming out in the
// atom matcher (atom.go) for Literal/Wildcard/Param, and in rule
// invocation (invoke.go) for Ref.
func Match(t *Table, e Expr, c pex.Cursor, seq pex.Sequence, env *runtime.Bindings) (value.Value, bool, pex.Cursor) {
	switch x := e.(type) {
	case Literal:
		return matchLiteral(x, c, seq)
	case Wildcard:
		return matchWildcard(x, c, seq)
	case Param:
		v, ok := env.Get(x.Name)
		if !ok {
			fail("unbound parameter %q", x.Name)
		}
		return matchLiteralRaw(v.Raw(), c, seq)
	case Ref:
		return invoke(t, x, c, seq, env)
	case Or:
		for _, alt := range x.Alts {
			if v, ok, nc := Match(t, alt, c, seq, env); ok {
				return v, true, nc
			}
		}
		return value.Nil, false, c
	case And:
		cur := c
		vals := make([]value.Value, 0, len(x.Items))
		for _, item := range x.Items {
			v, ok, nc := Match(t, item, cur, seq, env)
			if !ok {
				return value.Nil, false, c
			}
			vals = append(vals, v)
			cur = nc
		}
		return value.ListOf(vals...), true, cur
	case Unordered:
		return matchUnordered(t, x, c, seq, env)
	case Not:
		if !c.Valid(seq) {
			return value.Nil, false, c
		}
		if _, ok, _ := Match(t, x.Inner, c, seq, env); ok {
			return value.Nil, false, c
		}
		return value.Atomize(c.Item(seq)), true, c.Step(1)
	case Star:
		return matchRepeat(t, x.Inner, c, seq, env, 0, -1)
	case Plus:
		return matchRepeat(t, x.Inner, c, seq, env, 1, -1)
	case Rep:
		return matchRepeat(t, x.Inner, c, seq, env, x.Min, x.Max)
	case Opt:
		if v, ok, nc := Match(t, x.Inner, c, seq, env); ok {
			return v, true, nc
		}
		return value.Nil, true, c
	case Look:
		if v, ok, _ := Match(t, x.Inner, c, seq, env); ok {
			return v, true, c
		}
		return value.Nil, false, c
	case LookNot:
		if !c.Valid(seq) {
			return value.Nil, false, c
		}
		if _, ok, _ := Match(t, x.Inner, c, seq, env); ok {
			return value.Nil, false, c
		}
		return value.Atomize(c.Item(seq)), true, c
	case TypedDescent:
		return matchTyped(t, x, c, seq, env)
	}
	fail("malformed expression: unrecognized type %T", e)
	return value.Nil, false, c
}

// matchRepeat implements Star, Plus and Rep uniformly: greedy, no
// backtracking across the whole repetition, and stopping (without
// counting that application) the moment an inner success fails to advance
// the cursor, which is what prevents a non-consuming inner expression from
// looping forever (§4.3, §8).
func matchRepeat(t *Table, inner Expr, c pex.Cursor, seq pex.Sequence, env *runtime.Bindings, min, max int) (value.Value, bool, pex.Cursor) {
	cur := c
	var vals []value.Value
	count := 0
	for max < 0 || count < max {
		v, ok, nc := Match(t, inner, cur, seq, env)
		if !ok || nc.Equal(cur) {
			break
		}
		vals = append(vals, v)
		cur = nc
		count++
	}
	if count < min {
		return value.Nil, false, c
	}
	return value.ListOf(vals...), true, cur
}

// matchUnordered implements the "and~" combinator (§4.3): at each of
// len(Items) steps, try every not-yet-succeeded alternative, in its
// original position, against the current cursor, and accept the first
// that succeeds; fail the whole combinator if no alternative succeeds at
// some step. The returned list preserves the rule's original item order,
// not the order in which alternatives actually matched.
func matchUnordered(t *Table, u Unordered, c pex.Cursor, seq pex.Sequence, env *runtime.Bindings) (value.Value, bool, pex.Cursor) {
	n := len(u.Items)
	results := make([]value.Value, n)
	pending := make([]int, n)
	for i := range pending {
		pending[i] = i
	}
	cur := c
	for len(pending) > 0 {
		matched := false
		for pi, idx := range pending {
			v, ok, nc := Match(t, u.Items[idx], cur, seq, env)
			if ok {
				results[idx] = v
				cur = nc
				pending = slices.Delete(pending, pi, pi+1)
				matched = true
				break
			}
		}
		if !matched {
			return value.Nil, false, c
		}
	}
	return value.ListOf(results...), true, cur
}

// matchTyped implements the list/string/vector typed-descent combinators
// (§4.3): the item under the cursor must be a sub-sequence of the named
// kind, inner must match its entire contents, then the cursor ascends past
// the whole sub-sequence.
func matchTyped(t *Table, td TypedDescent, c pex.Cursor, seq pex.Sequence, env *runtime.Bindings) (value.Value, bool, pex.Cursor) {
	if !c.Valid(seq) {
		return value.Nil, false, c
	}
	sub, ok := c.Item(seq).(pex.Sequence)
	if !ok || sub.Kind() != td.Kind {
		return value.Nil, false, c
	}
	v, ok, nc := Match(t, td.Inner, c.Descend(), seq, env)
	if !ok || !nc.AtEnd(seq) {
		return value.Nil, false, c
	}
	return v, true, nc.Ascend()
}
