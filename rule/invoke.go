package rule

import (
	"github.com/npillmayer/pex"
	"github.com/npillmayer/pex/runtime"
	"github.com/npillmayer/pex/value"
)

// invoke implements rule invocation (§4.4): look the rule up, guard
// against left recursion, trace entry/exit, bind arguments and lexical
// bindings in a fresh frame, match the body, then run the result-
// processing pipeline.
func invoke(t *Table, ref Ref, c pex.Cursor, seq pex.Sequence, env *runtime.Bindings) (value.Value, bool, pex.Cursor) {
	def, ok := t.Lookup(ref.Name)
	if !ok {
		fail("unknown rule %q", ref.Name)
	}

	release := t.enterGuard(ref.Name, c)
	defer release()

	t.depth++
	defer func() { t.depth-- }()
	t.traceEnter(ref.Name, c)

	if t.traceLevel[ref.Name] == 2 {
		t.recursiveTraceDepth++
		defer func() { t.recursiveTraceDepth-- }()
	}

	argVals := bindArguments(ref, def, env)

	env.Push(ref.Name)
	defer env.Pop()
	for i, p := range def.Params {
		env.DefineLexical(p, argVals[i])
	}
	for _, lb := range def.Lexical {
		env.DefineLexical(lb.Name, lb.Init)
	}
	for _, name := range def.Inherited {
		if _, ok := env.Get(name); !ok {
			fail("rule %q: inherited binding %q was not provided by any caller", ref.Name, name)
		}
	}

	v, matched, nc := Match(t, def.Body, c, seq, env)
	if !matched {
		t.traceExitFailure(ref.Name, c)
		return value.Nil, false, c
	}

	result, passed := runPipeline(def.Pipeline, v, env)
	if !passed {
		t.traceExitFailure(ref.Name, c)
		return value.Nil, false, c
	}

	t.traceExitSuccess(ref.Name, c, nc, result)
	return result, true, nc
}

// bindArguments resolves ref's argument expressions against the caller's
// bindings: a Literal argument passes its wrapped value through unchanged
// (quoted, not matched against input); a Param argument forwards the
// caller's own binding for that parameter (§4.2, §4.4).
func bindArguments(ref Ref, def *Definition, env *runtime.Bindings) []value.Value {
	if len(ref.Args) != len(def.Params) {
		fail("rule %q: expected %d argument(s), got %d", ref.Name, len(def.Params), len(ref.Args))
	}
	argVals := make([]value.Value, len(ref.Args))
	for i, a := range ref.Args {
		switch av := a.(type) {
		case Literal:
			argVals[i] = value.Atomize(av.Value)
		case Param:
			v, ok := env.Get(av.Name)
			if !ok {
				fail("rule %q: unbound parameter %q forwarded as argument", ref.Name, av.Name)
			}
			argVals[i] = v
		default:
			fail("rule %q: argument %d must be a literal or a parameter reference, got %T", ref.Name, i, a)
		}
	}
	return argVals
}
