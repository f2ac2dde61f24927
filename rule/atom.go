package rule

import (
	"github.com/npillmayer/pex"
	"github.com/npillmayer/pex/value"
)

// matchLiteral dispatches a Literal by the concrete type of its wrapped
// value.
func matchLiteral(lit Literal, c pex.Cursor, seq pex.Sequence) (value.Value, bool, pex.Cursor) {
	return matchLiteralRaw(lit.Value, c, seq)
}

// matchLiteralRaw implements the atom matcher's literal rules (§4.2): a
// symbol, character or number literal compares against item(cursor) as a
// whole; a string or vector literal matches as a contiguous sub-sequence
// when the cursor's container is itself a string/vector, and otherwise
// compares against item(cursor) as a whole.
func matchLiteralRaw(raw interface{}, c pex.Cursor, seq pex.Sequence) (value.Value, bool, pex.Cursor) {
	switch lv := raw.(type) {
	case Symbol:
		return matchWholeItem(c, seq, func(item interface{}) (value.Value, bool) {
			if s, ok := item.(Symbol); ok && s == lv {
				return value.Atomize(item), true
			}
			return value.Nil, false
		})
	case rune:
		return matchWholeItem(c, seq, func(item interface{}) (value.Value, bool) {
			if r, ok := item.(rune); ok && r == lv {
				return value.Atomize(r), true
			}
			return value.Nil, false
		})
	case float64:
		return matchWholeItem(c, seq, func(item interface{}) (value.Value, bool) {
			if f, ok := toFloat(item); ok && f == lv {
				return value.Atomize(lv), true
			}
			return value.Nil, false
		})
	case string:
		return matchRun(c, seq, pex.String, len([]rune(lv)),
			func(container pex.Sequence, at int) bool {
				for i, r := range []rune(lv) {
					if container.At(at+i) != r {
						return false
					}
				}
				return true
			},
			value.Str(lv),
			func(item interface{}) (value.Value, bool) {
				if s, ok := item.(string); ok && s == lv {
					return value.Atomize(s), true
				}
				return value.Nil, false
			})
	case []float64:
		return matchRun(c, seq, pex.Vector, len(lv),
			func(container pex.Sequence, at int) bool {
				for i, f := range lv {
					cf, ok := toFloat(container.At(at + i))
					if !ok || cf != f {
						return false
					}
				}
				return true
			},
			value.Vec(lv),
			func(item interface{}) (value.Value, bool) {
				if v, ok := item.([]float64); ok && sameFloats(v, lv) {
					return value.Vec(lv), true
				}
				return value.Nil, false
			})
	}
	fail("unsupported literal type %T", raw)
	return value.Nil, false, c
}

// matchWholeItem is the common case: compare item(cursor) as a whole,
// consuming one position on success.
func matchWholeItem(c pex.Cursor, seq pex.Sequence, test func(item interface{}) (value.Value, bool)) (value.Value, bool, pex.Cursor) {
	if !c.Valid(seq) {
		return value.Nil, false, c
	}
	v, ok := test(c.Item(seq))
	if !ok {
		return value.Nil, false, c
	}
	return v, true, c.Step(1)
}

// matchRun implements the two-case string/vector literal rule: a
// contiguous run inside a same-kind container, or a whole-item comparison
// otherwise.
func matchRun(c pex.Cursor, seq pex.Sequence, kind pex.Kind, runLen int,
	runTest func(container pex.Sequence, at int) bool, onRun value.Value,
	wholeTest func(item interface{}) (value.Value, bool)) (value.Value, bool, pex.Cursor) {

	if container, ok := c.Container(seq); ok && container.Kind() == kind {
		at := c.Last()
		if at+runLen <= container.Len() && runTest(container, at) {
			return onRun, true, c.Step(runLen)
		}
		return value.Nil, false, c
	}
	return matchWholeItem(c, seq, wholeTest)
}

func sameFloats(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// matchWildcard implements the atom matcher's kind-test wildcards (§4.2):
// each succeeds when item(cursor) passes the corresponding test,
// consuming one position.
func matchWildcard(w Wildcard, c pex.Cursor, seq pex.Sequence) (value.Value, bool, pex.Cursor) {
	if !c.Valid(seq) {
		return value.Nil, false, c
	}
	item := c.Item(seq)
	ok := false
	switch w.Kind {
	case WildChar:
		_, ok = item.(rune)
	case WildByte:
		if f, isNum := toFloat(item); isNum {
			ok = f >= 0 && f <= 255 && f == float64(int64(f))
		}
	case WildSymbol:
		_, ok = item.(Symbol)
	case WildAnyForm:
		ok = true
	case WildNumber:
		_, ok = toFloat(item)
	case WildList, WildVector, WildString:
		if sub, isSeq := item.(pex.Sequence); isSeq {
			ok = sub.Kind() == kindForWildcard(w.Kind)
		}
	}
	if !ok {
		return value.Nil, false, c
	}
	return value.Atomize(item), true, c.Step(1)
}

func kindForWildcard(k WildcardKind) pex.Kind {
	switch k {
	case WildList:
		return pex.List
	case WildVector:
		return pex.Vector
	case WildString:
		return pex.String
	}
	return pex.List
}

func toFloat(thing interface{}) (float64, bool) {
	switch n := thing.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
