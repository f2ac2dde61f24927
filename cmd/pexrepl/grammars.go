package main

import (
	"unicode"

	"github.com/pterm/pterm"

	"github.com/npillmayer/pex"
	"github.com/npillmayer/pex/runtime"
	"github.com/npillmayer/pex/rule"
	"github.com/npillmayer/pex/value"
)

// defineDemoGrammars preloads three small demo grammars into the active
// table: ordered choice, a parameterized rule, and a repeated-digit rule
// (built on a helper "digit" rule) reduced to a string.
func defineDemoGrammars() {
	rule.Define("choice", nil, rule.OrExpr(rule.Sym("a"), rule.Sym("b"), rule.Sym("c")))

	rule.Define("greet", []string{"x"}, rule.AndExpr(rule.Sym("hey"), rule.ParamRef("x")))

	rule.Define("digit", nil, rule.CharWildcard, rule.WithPipeline(
		rule.TestStep([]string{"ch"}, func(args []value.Value, _ *runtime.Bindings) bool {
			r, ok := args[0].Raw().(rune)
			return ok && unicode.IsDigit(r)
		}),
	))
	rule.Define("digits", nil, rule.PlusExpr(rule.RefTo("digit")), rule.WithPipeline(
		rule.ToStringStep(),
	))
}

// runDemoParse drives one of the three demo grammars against REPL-typed
// arguments and prints the result.
func runDemoParse(words []string) {
	switch words[0] {
	case "choice":
		if len(words) < 2 {
			pterm.Error.Println("usage: choice <symbol>")
			return
		}
		seq := pex.ListSeq{rule.Symbol(words[1])}
		v, ok := rule.Parse(rule.RefTo("choice"), seq)
		printResult(v, ok)
	case "greet":
		if len(words) < 2 {
			pterm.Error.Println("usage: greet <name>")
			return
		}
		seq := pex.ListSeq{rule.Symbol("hey"), rule.Symbol(words[1])}
		v, ok := rule.Parse(rule.RefTo("greet", rule.Sym(words[1])), seq)
		printResult(v, ok)
	case "digits":
		if len(words) < 2 {
			pterm.Error.Println("usage: digits <text> [junk]")
			return
		}
		junk := len(words) > 2 && words[2] == "junk"
		v, ok := rule.Parse(rule.RefTo("digits"), pex.NewStringSeq(words[1]), rule.JunkAllowed(junk))
		printResult(v, ok)
	}
}

func printResult(v value.Value, ok bool) {
	if !ok {
		pterm.Error.Println("no match")
		return
	}
	pterm.Info.Println(v.String())
}
