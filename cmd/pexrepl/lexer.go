package main

import (
	"strings"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token kinds for the REPL's tiny command language. Commands are lines
// like ":trace greet recursive" or "greet you" — a command word (optional
// leading colon) followed by bareword or quoted-string arguments.
const (
	tokWord = iota
	tokString
)

type token struct {
	kind   int
	lexeme string
}

// newCommandLexer builds a lexmachine.Lexer for the REPL's command
// language, the way lr/scanner/lexmachine.go builds one for a host
// grammar's surface syntax: patterns are added with Add, then the whole
// thing is compiled once into a DFA.
func newCommandLexer() (*lexmachine.Lexer, error) {
	lx := lexmachine.NewLexer()
	lx.Add([]byte(`"[^"]*"`), func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		lexeme := string(m.Bytes)
		return token{kind: tokString, lexeme: strings.Trim(lexeme, `"`)}, nil
	})
	lx.Add([]byte(`:?[a-zA-Z][a-zA-Z0-9_-]*`), func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return token{kind: tokWord, lexeme: string(m.Bytes)}, nil
	})
	lx.Add([]byte(` +`), func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return nil, nil // skip whitespace
	})
	if err := lx.Compile(); err != nil {
		return nil, err
	}
	return lx, nil
}

// tokenize scans an entire command line into words, unquoting any quoted
// strings along the way.
func tokenize(lx *lexmachine.Lexer, line string) ([]token, error) {
	scanner, err := lx.Scanner([]byte(line))
	if err != nil {
		return nil, err
	}
	var toks []token
	for {
		tok, err, eof := scanner.Next()
		if eof {
			break
		}
		if err != nil {
			return nil, err
		}
		if tok == nil {
			continue
		}
		toks = append(toks, tok.(token))
	}
	return toks, nil
}
