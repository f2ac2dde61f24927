package rule

import (
	"github.com/npillmayer/pex"
	"github.com/npillmayer/pex/runtime"
	"github.com/npillmayer/pex/value"
)

type parseOptions struct {
	start       int
	end         int
	hasEnd      bool
	junkAllowed bool
}

// ParseOption configures a call to Parse/ParseWith.
type ParseOption func(*parseOptions)

// Start sets the top-level index the parse begins at (default 0).
func Start(at int) ParseOption { return func(o *parseOptions) { o.start = at } }

// End sets the index the parse must reach (default: the length of the
// top-level input sequence).
func End(at int) ParseOption {
	return func(o *parseOptions) { o.end = at; o.hasEnd = true }
}

// JunkAllowed, when true, lets the parse succeed without having reached
// end, as long as the start expression itself matched.
func JunkAllowed(allowed bool) ParseOption {
	return func(o *parseOptions) { o.junkAllowed = allowed }
}

// Parse runs start against seq using the active table (§4.7). See
// ParseWith for the full semantics.
func Parse(start Expr, seq pex.Sequence, opts ...ParseOption) (value.Value, bool) {
	return ParseWith(active, start, seq, opts...)
}

// ParseWith runs start against seq using table t.
//
// The parse succeeds iff start matches at the configured start index
// (default 0), and either junk is allowed — in which case any final
// cursor position at or before end is accepted — or the final cursor
// position equals end exactly (default: the length of the top-level
// sequence). A grammar error met while matching (unknown rule, malformed
// expression, left recursion) aborts the parse as a panic rather than
// returning (Nil, false); see the package doc comment. An illegal
// repetition range is rejected by RepBetween when the expression is built,
// before any parse runs.
func ParseWith(t *Table, start Expr, seq pex.Sequence, opts ...ParseOption) (value.Value, bool) {
	o := parseOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	env := runtime.NewBindings()
	c := pex.NewCursor(o.start)
	v, matched, nc := Match(t, start, c, seq, env)
	if !matched {
		return value.Nil, false
	}

	end := seq.Len()
	if o.hasEnd {
		end = o.end
	}
	if nc.Last() == end {
		return v, true
	}
	if o.junkAllowed && (!o.hasEnd || nc.Last() < end) {
		return v, true
	}
	return value.Nil, false
}
