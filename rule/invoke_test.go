package rule

import (
	"testing"

	"github.com/npillmayer/pex"
	"github.com/npillmayer/pex/value"
)

func TestInheritedBindingMustBeProvidedByCaller(t *testing.T) {
	tbl := freshTable()
	tbl.Define("inner", nil, Sym("a"), WithInherited("count"))
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected a panic: 'count' was never declared by any caller")
		}
	}()
	ParseWith(tbl, RefTo("inner"), pex.ListSeq{Symbol("a")})
}

func TestInheritedBindingProvidedByCaller(t *testing.T) {
	tbl := freshTable()
	tbl.Define("bump", nil, Sym("a"), WithInherited("count"), WithPipeline(
		FunctionStep(func(args ...value.Value) value.Value {
			return args[0]
		}),
	))
	tbl.Define("outer", nil, RefTo("bump"), WithLexical("count", value.Atomize(0)))
	v, ok := ParseWith(tbl, RefTo("outer"), pex.ListSeq{Symbol("a")})
	if !ok || v.Raw() != Symbol("a") {
		t.Fatalf("expected bump to run with outer's 'count' binding and outer to return bump's match, got (%v,%v)", v, ok)
	}
}

func TestScopedLocalTableDoesNotLeak(t *testing.T) {
	Define("global-only", nil, Sym("g"))
	WithLocalTable(func() {
		if _, ok := Lookup("global-only"); ok {
			t.Errorf("local table must not see rules defined in the shadowed table")
		}
		Define("local-only", nil, Sym("l"))
		v, ok := Parse(RefTo("local-only"), pex.ListSeq{Symbol("l")})
		if !ok || v.Raw() != Symbol("l") {
			t.Fatalf("expected local-only to match inside its own scope, got (%v,%v)", v, ok)
		}
	})
	if _, ok := Lookup("local-only"); ok {
		t.Errorf("local-only must not survive past WithLocalTable")
	}
	if _, ok := Lookup("global-only"); !ok {
		t.Errorf("global-only must still be defined after WithLocalTable returns")
	}
}
