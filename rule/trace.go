package rule

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/pex"
	"github.com/npillmayer/pex/value"
)

// tracer traces with key 'pex.rule'.
func tracer() tracing.Trace {
	return tracing.Select("pex.rule")
}

// TraceRule turns tracing on for name: level 1 traces only calls to name
// itself; recursive (level 2) additionally traces every rule reached while
// name is active, however deep the call graph goes (§4.6).
func (t *Table) TraceRule(name string, recursive bool) {
	lvl := 1
	if recursive {
		lvl = 2
	}
	t.traceLevel[name] = lvl
}

// UntraceRule turns tracing back off for name.
func (t *Table) UntraceRule(name string) {
	delete(t.traceLevel, name)
}

// TraceRule traces a rule in the active table.
func TraceRule(name string, recursive bool) { active.TraceRule(name, recursive) }

// UntraceRule untraces a rule in the active table.
func UntraceRule(name string) { active.UntraceRule(name) }

func (t *Table) isTraced(name string) bool {
	if lvl, ok := t.traceLevel[name]; ok && lvl > 0 {
		return true
	}
	return t.recursiveTraceDepth > 0
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}

func (t *Table) traceEnter(name string, c pex.Cursor) {
	tracer().Debugf("%s %s?", name, c)
	if !t.isTraced(name) {
		return
	}
	pterm.Debug.Println(fmt.Sprintf("%s%d: %s %s?", indent(t.depth), t.depth, name, c))
}

func (t *Table) traceExitSuccess(name string, entry, exit pex.Cursor, v value.Value) {
	tracer().Debugf("%s %s→%s → %s", name, entry, exit, v)
	if !t.isTraced(name) {
		return
	}
	pterm.Debug.Println(fmt.Sprintf("%s%d: %s %s→%s → %s", indent(t.depth), t.depth, name, entry, exit, v))
}

func (t *Table) traceExitFailure(name string, c pex.Cursor) {
	tracer().Debugf("%s -| at %s", name, c)
	if !t.isTraced(name) {
		return
	}
	pterm.Debug.Println(fmt.Sprintf("%s%d: %s -|", indent(t.depth), t.depth, name))
}
