/*
Package scanner is a tokenizer for the Pie language, backed by lexmachine.

The parser in package syntax does not need a separate scanning phase; it
recognizes tokens directly on the input text. The scanner serves clients which
are interested in tokens only, for example a REPL deciding whether a line of
input leaves parentheses open, or tools highlighting source text.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"

	"github.com/npillmayer/pie"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pie.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("pie.scanner")
}

// Token categories.
const (
	EOF    pie.TokType = -1
	Atom   pie.TokType = 1
	Ident  pie.TokType = 2
	LParen pie.TokType = '('
	RParen pie.TokType = ')'
)

var tokTypeNames = map[pie.TokType]string{
	EOF:    "EOF",
	Atom:   "ATOM",
	Ident:  "IDENT",
	LParen: "(",
	RParen: ")",
}

// TokTypeString returns a readable name for a token category.
func TokTypeString(t pie.TokType) string {
	if s, ok := tokTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("<%d>", t)
}

// Token is the token type produced by the scanner.
type Token struct {
	kind   pie.TokType
	lexeme string
	span   pie.Span
}

var _ pie.Token = Token{}

// MakeToken creates a token.
func MakeToken(typ pie.TokType, lexeme string, span pie.Span) Token {
	return Token{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

// TokType is part of interface pie.Token.
func (t Token) TokType() pie.TokType {
	return t.kind
}

// Lexeme is part of interface pie.Token.
func (t Token) Lexeme() string {
	return t.lexeme
}

// Span is part of interface pie.Token. Spans are byte offsets into the input.
func (t Token) Span() pie.Span {
	return t.span
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q %v", TokTypeString(t.kind), t.lexeme, t.span)
}

// Configuration key: if set, every token is traced.
const configTraceTokens = "pie.trace-tokens"

func traceTokens() (on bool) {
	defer func() {
		if r := recover(); r != nil { // tolerate a missing global configuration
			on = false
		}
	}()
	return gconf.GetBool(configTraceTokens)
}
