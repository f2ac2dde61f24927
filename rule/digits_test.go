package rule

import (
	"testing"
	"unicode"

	"github.com/npillmayer/pex"
	"github.com/npillmayer/pex/runtime"
	"github.com/npillmayer/pex/value"
)

// TestDigitsWithJunkAllowed grounds the engine's scenario of a repeated
// character rule reduced to a string via a pipeline, and left un-consumed
// input tolerated by junk-allowed. The atom matcher's "char" wildcard
// accepts any rune, so a digit class is built out of it the way real
// grammars build character classes in this engine: as its own rule, with
// a test-step pipeline vetoing non-digit matches.
func TestDigitsWithJunkAllowed(t *testing.T) {
	tbl := freshTable()
	tbl.Define("digit", nil, CharWildcard, WithPipeline(
		TestStep([]string{"ch"}, func(args []value.Value, _ *runtime.Bindings) bool {
			r, ok := args[0].Raw().(rune)
			return ok && unicode.IsDigit(r)
		}),
	))
	tbl.Define("digits", nil, PlusExpr(RefTo("digit")), WithPipeline(ToStringStep()))

	v, ok := ParseWith(tbl, RefTo("digits"), pex.NewStringSeq("123abc"), JunkAllowed(true))
	if !ok {
		t.Fatalf("expected digits to match a prefix of \"123abc\"")
	}
	if v.Tag() != value.String || v.RawString() != "123" {
		t.Errorf("expected (\"123\",true), got (%v,%v)", v, ok)
	}
}
