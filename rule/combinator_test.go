package rule

import (
	"testing"

	"github.com/npillmayer/pex"
)

func TestUnorderedCompleteness(t *testing.T) {
	tbl := freshTable()
	tbl.Define("r", nil, UnorderedExpr(Sym("a"), Sym("b"), Sym("c")))
	v, ok := ParseWith(tbl, RefTo("r"), pex.ListSeq{Symbol("c"), Symbol("a"), Symbol("b")})
	if !ok {
		t.Fatalf("expected and~ to accept any permutation of {a,b,c}")
	}
	elems := v.Elements()
	if len(elems) != 3 || elems[0].Raw() != Symbol("a") || elems[1].Raw() != Symbol("b") || elems[2].Raw() != Symbol("c") {
		t.Errorf("expected result in rule order [a b c], got %v", v)
	}
	if _, ok := ParseWith(tbl, RefTo("r"), pex.ListSeq{Symbol("a"), Symbol("b")}); ok {
		t.Errorf("expected failure when one alternative is missing")
	}
}

func TestNotConsumesOnInnerFailure(t *testing.T) {
	tbl := freshTable()
	tbl.Define("r", nil, NotExpr(Sym("a")))
	v, ok := ParseWith(tbl, RefTo("r"), pex.ListSeq{Symbol("b")})
	if !ok || v.Raw() != Symbol("b") {
		t.Fatalf("expected (not 'a) to consume and return [b], got (%v,%v)", v, ok)
	}
	if _, ok := ParseWith(tbl, RefTo("r"), pex.ListSeq{Symbol("a")}); ok {
		t.Errorf("expected (not 'a) to fail against [a]")
	}
}

func TestLookDoesNotAdvance(t *testing.T) {
	tbl := freshTable()
	tbl.Define("r", nil, AndExpr(LookExpr(Sym("a")), Sym("a")))
	v, ok := ParseWith(tbl, RefTo("r"), pex.ListSeq{Symbol("a")})
	if !ok || len(v.Elements()) != 2 {
		t.Fatalf("expected (& 'a) to not consume, leaving 'a for the following match, got (%v,%v)", v, ok)
	}
}

func TestLookNotReturnsItemWithoutAdvancing(t *testing.T) {
	tbl := freshTable()
	tbl.Define("r", nil, AndExpr(LookNotExpr(Sym("a")), Sym("b")))
	v, ok := ParseWith(tbl, RefTo("r"), pex.ListSeq{Symbol("b")})
	if !ok || len(v.Elements()) != 2 {
		t.Fatalf("expected (! 'a) to succeed and not consume before matching 'b', got (%v,%v)", v, ok)
	}
}

func TestRepBounds(t *testing.T) {
	tbl := freshTable()
	tbl.Define("r", nil, RepBetween(1, 2, Sym("a")))
	if _, ok := ParseWith(tbl, RefTo("r"), pex.ListSeq{}); ok {
		t.Errorf("expected rep(1,2) to fail on zero matches")
	}
	v, ok := ParseWith(tbl, RefTo("r"), pex.ListSeq{Symbol("a")})
	if !ok || len(v.Elements()) != 1 {
		t.Fatalf("expected rep(1,2) to match 1 'a', got (%v,%v)", v, ok)
	}
	v, ok = ParseWith(tbl, RefTo("r"), pex.ListSeq{Symbol("a"), Symbol("a")}, JunkAllowed(true))
	if !ok || len(v.Elements()) != 2 {
		t.Fatalf("expected rep(1,2) to match 2 'a's, got (%v,%v)", v, ok)
	}
}

func TestTypedDescentIntoNestedList(t *testing.T) {
	tbl := freshTable()
	tbl.Define("r", nil, ListOf(AndExpr(Sym("a"), Sym("b"))))
	nested := pex.ListSeq{pex.ListSeq{Symbol("a"), Symbol("b")}}
	v, ok := ParseWith(tbl, RefTo("r"), nested)
	if !ok || len(v.Elements()) != 2 {
		t.Fatalf("expected (list (and 'a 'b)) to descend and match, got (%v,%v)", v, ok)
	}
	partial := pex.ListSeq{pex.ListSeq{Symbol("a")}}
	if _, ok := ParseWith(tbl, RefTo("r"), partial); ok {
		t.Errorf("expected failure when the inner list is not fully consumed")
	}
}
