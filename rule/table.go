package rule

import (
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/npillmayer/pex/value"
)

// LexicalBinding is one of a rule's fresh local bindings, (re-)created on
// every entry to the rule (§4.4).
type LexicalBinding struct {
	Name string
	Init value.Value
}

// Definition is one named rule: its formal parameters, its body
// expression, the lexical bindings it creates fresh on entry, the
// inherited bindings it expects some caller to have already declared, and
// its result-processing pipeline.
type Definition struct {
	Name      string
	Params    []string
	Body      Expr
	Lexical   []LexicalBinding
	Inherited []string
	Pipeline  []Step
}

// DefOption configures a Definition at Define time.
type DefOption func(*Definition)

// WithLexical adds a fresh local binding, created anew on every entry.
func WithLexical(name string, init value.Value) DefOption {
	return func(d *Definition) { d.Lexical = append(d.Lexical, LexicalBinding{name, init}) }
}

// WithInherited declares names the rule body reads and/or writes that must
// already be bound by some caller on the dynamic call chain.
func WithInherited(names ...string) DefOption {
	return func(d *Definition) { d.Inherited = append(d.Inherited, names...) }
}

// WithPipeline appends result-processing steps (§4.5), run in order after
// the body matches.
func WithPipeline(steps ...Step) DefOption {
	return func(d *Definition) { d.Pipeline = append(d.Pipeline, steps...) }
}

// Table holds named rule Definitions together with the per-rule state the
// control services need: a left-recursion guard stack and a trace level,
// one of each per rule name (§4.4, §4.6). A Table is not safe for
// concurrent use — like the rest of the engine, a single parse runs on one
// goroutine (§5) — but two Tables are fully independent and may be driven
// from different goroutines at once.
type Table struct {
	defs       map[string]*Definition
	guards     map[string]*arraystack.Stack
	traceLevel map[string]int

	depth               int
	recursiveTraceDepth int
}

// NewTable creates an empty rule table.
func NewTable() *Table {
	return &Table{
		defs:       make(map[string]*Definition),
		guards:     make(map[string]*arraystack.Stack),
		traceLevel: make(map[string]int),
	}
}

// Define adds (or replaces) a named rule.
func (t *Table) Define(name string, params []string, body Expr, opts ...DefOption) {
	d := &Definition{Name: name, Params: params, Body: body}
	for _, o := range opts {
		o(d)
	}
	t.defs[name] = d
}

// Lookup returns the Definition for name, if any.
func (t *Table) Lookup(name string) (*Definition, bool) {
	d, ok := t.defs[name]
	return d, ok
}

func (t *Table) guardFor(name string) *arraystack.Stack {
	g, ok := t.guards[name]
	if !ok {
		g = arraystack.New()
		t.guards[name] = g
	}
	return g
}

// active is the process-wide default rule table the package-level
// Define/TraceRule/UntraceRule/Parse convenience functions operate on.
// WithLocalTable shadows it for the dynamic extent of a function call.
var active = NewTable()

// Active returns the process-wide default rule table.
func Active() *Table { return active }

// Define adds a rule to the active table.
func Define(name string, params []string, body Expr, opts ...DefOption) {
	active.Define(name, params, body, opts...)
}

// Lookup looks up a rule in the active table.
func Lookup(name string) (*Definition, bool) { return active.Lookup(name) }

// WithLocalTable shadows the active table with a fresh, empty one for the
// duration of fn, then restores the previous table — a scoped region in
// which grammar definitions do not pollute global state (§4.6).
func WithLocalTable(fn func()) {
	prev := active
	active = NewTable()
	tracer().Debugf("shadowing active rule table for local scope")
	defer func() {
		active = prev
		tracer().Debugf("restored previous active rule table")
	}()
	fn()
}
