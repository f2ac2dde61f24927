/*
Command pexrepl is an interactive shell for trying out grammars built with
package rule. It preloads three small demo grammars (see grammars.go),
lets the user toggle tracing on a rule, and runs a parse against typed
input.

Usage, once in the shell:

  :trace greet recursive    enable tracing for rule "greet", propagating
                             into every rule it calls
  :untrace greet            disable tracing for "greet"
  choice a                  parse a single symbol against the "choice"
                             demo grammar: (or 'a 'b 'c)
  greet you                 parse [hey you] against greet(x) = (and 'hey x)
  digits "123abc" junk      parse a string against the "digits" demo
                             grammar, tolerating trailing junk
  :quit                     leave the shell

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/pex/rule"
)

func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "pex>",
		Style: pterm.NewStyle(pterm.BgBlue, pterm.FgWhite),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "pex!",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgWhite),
	}
}

func traceLevel(l string) tracing.TraceLevel { return tracing.TraceLevelFromString(l) }

func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	flag.Parse()
	gtrace.SyntaxTracer.SetTraceLevel(traceLevel(*tlevel))
	pterm.Info.Println("Welcome to pexrepl")
	gtrace.SyntaxTracer.Infof("Quit with :quit or <ctrl>D")

	defineDemoGrammars()

	lx, err := newCommandLexer()
	if err != nil {
		gtrace.SyntaxTracer.Errorf("building command lexer: %v", err)
		os.Exit(1)
	}

	repl, err := readline.New("pex> ")
	if err != nil {
		gtrace.SyntaxTracer.Errorf("%v", err)
		os.Exit(1)
	}
	defer repl.Close()

	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF or ctrl-C
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		toks, err := tokenize(lx, line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if len(toks) == 0 {
			continue
		}
		if quit := dispatch(toks); quit {
			break
		}
	}
	fmt.Println("Good bye!")
}

// dispatch executes one tokenized command line, returning true iff the
// user asked to quit.
func dispatch(toks []token) bool {
	words := make([]string, len(toks))
	for i, t := range toks {
		words[i] = t.lexeme
	}
	defer func() {
		if r := recover(); r != nil {
			pterm.Error.Println(fmt.Sprintf("%v", r))
		}
	}()
	switch words[0] {
	case ":quit":
		return true
	case ":help":
		pterm.Info.Println("commands: :trace <rule> [recursive] | :untrace <rule> | choice <sym> | greet <name> | digits <text> [junk] | :quit")
	case ":trace":
		if len(words) < 2 {
			pterm.Error.Println(":trace needs a rule name")
			return false
		}
		recursive := len(words) > 2 && words[2] == "recursive"
		rule.TraceRule(words[1], recursive)
		pterm.Info.Println("tracing " + words[1])
	case ":untrace":
		if len(words) < 2 {
			pterm.Error.Println(":untrace needs a rule name")
			return false
		}
		rule.UntraceRule(words[1])
	case "choice", "greet", "digits":
		runDemoParse(words)
	default:
		pterm.Error.Println("unknown command: " + words[0])
	}
	return false
}
