package rule

import (
	"testing"

	"github.com/npillmayer/pex"
)

func freshTable() *Table { return NewTable() }

func TestLiteralMatch(t *testing.T) {
	seq := pex.ListSeq{Symbol("a")}
	v, ok := ParseWith(freshTable(), Sym("a"), seq)
	if !ok || v.Raw() != Symbol("a") {
		t.Fatalf("expected ('a,true), got (%v,%v)", v, ok)
	}
	seq2 := pex.ListSeq{Symbol("b")}
	if _, ok := ParseWith(freshTable(), Sym("a"), seq2); ok {
		t.Errorf("expected no match against [b]")
	}
}

func TestAndSequence(t *testing.T) {
	tbl := freshTable()
	tbl.Define("r", nil, AndExpr(Sym("a"), Sym("b"), Sym("c")))
	ok3 := pex.ListSeq{Symbol("a"), Symbol("b"), Symbol("c")}
	v, ok := ParseWith(tbl, RefTo("r"), ok3)
	if !ok || len(v.Elements()) != 3 {
		t.Fatalf("expected full match of [a b c], got (%v,%v)", v, ok)
	}
	if _, ok := ParseWith(tbl, RefTo("r"), pex.ListSeq{Symbol("a"), Symbol("b")}); ok {
		t.Errorf("expected no match against [a b]")
	}
	if _, ok := ParseWith(tbl, RefTo("r"), pex.ListSeq{Symbol("a"), Symbol("c")}); ok {
		t.Errorf("expected no match against [a c]")
	}
}

func TestOrChoice(t *testing.T) {
	tbl := freshTable()
	tbl.Define("r", nil, OrExpr(Sym("a"), Sym("b"), Sym("c")))
	v, ok := ParseWith(tbl, RefTo("r"), pex.ListSeq{Symbol("a")})
	if !ok || v.Raw() != Symbol("a") {
		t.Fatalf("expected ('a,true), got (%v,%v)", v, ok)
	}
	if _, ok := ParseWith(tbl, RefTo("r"), pex.ListSeq{Symbol("d")}); ok {
		t.Errorf("expected no match against [d]")
	}
}

func TestStarRepetition(t *testing.T) {
	tbl := freshTable()
	tbl.Define("r", nil, StarExpr(Sym("a")))
	v, ok := ParseWith(tbl, RefTo("r"), pex.ListSeq{})
	if !ok || len(v.Elements()) != 0 {
		t.Fatalf("expected ([],true) on empty input, got (%v,%v)", v, ok)
	}
	v, ok = ParseWith(tbl, RefTo("r"), pex.ListSeq{Symbol("a"), Symbol("a"), Symbol("a")})
	if !ok || len(v.Elements()) != 3 {
		t.Fatalf("expected 3 matched a's, got (%v,%v)", v, ok)
	}
}

func TestRuleWithParameter(t *testing.T) {
	tbl := freshTable()
	tbl.Define("greet", []string{"x"}, AndExpr(Sym("hey"), Param{"x"}))
	v, ok := ParseWith(tbl, RefTo("greet", Sym("you")), pex.ListSeq{Symbol("hey"), Symbol("you")})
	if !ok || len(v.Elements()) != 2 {
		t.Fatalf("expected ([hey you],true), got (%v,%v)", v, ok)
	}
	if _, ok := ParseWith(tbl, RefTo("greet", Sym("you")), pex.ListSeq{Symbol("hey"), Symbol("me")}); ok {
		t.Errorf("expected no match against [hey me]")
	}
}

func TestLeftRecursionDetected(t *testing.T) {
	tbl := freshTable()
	tbl.Define("palindrome", nil, OrExpr(RefTo("palindrome"), Sym("a")))
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected a panic for left-recursive rule 'palindrome'")
		}
	}()
	ParseWith(tbl, RefTo("palindrome"), pex.ListSeq{Symbol("a")})
}
