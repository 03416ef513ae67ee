package scanner

import (
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/pie"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// The tokens representing literal one-char lexemes
var literals = []string{"(", ")"}

// tokenIds maps token names to their categories.
var tokenIds = map[string]int{
	"ATOM":  int(Atom),
	"IDENT": int(Ident),
	"(":     int(LParen),
	")":     int(RParen),
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. It receives an init function
// adding the patterns of the language, a list of literals ('(', ')', …) and a
// map for translating token strings to their categories.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, tokenIds map[string]int) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	init(adapter.Lexer)
	for _, lit := range literals {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		adapter.Lexer.Add([]byte(r), MakeAction(lit, tokenIds[lit]))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

var lexer *LMAdapter
var lexerErr error
var lexerOnce sync.Once // monitors one-time creation of the lexer

// Lexer returns the lexmachine lexer for Pie. The DFA is compiled on first use.
func Lexer() (*LMAdapter, error) {
	lexerOnce.Do(func() {
		tracer().Infof("Creating lexer")
		init := func(lexer *lexmachine.Lexer) {
			lexer.Add([]byte("[ \t\n\r\f\v]+"), Skip)
			lexer.Add([]byte(`'[a-zA-Z\-]+`), MakeAction("ATOM", tokenIds["ATOM"]))
			lexer.Add([]byte(`[a-zA-Z\+\-!\$%&\*/:<=>\?~_\^]+[a-zA-Z0-9\.\+\-]*`), MakeAction("IDENT", tokenIds["IDENT"]))
		}
		lexer, lexerErr = NewLMAdapter(init, literals, tokenIds)
	})
	return lexer, lexerErr
}

// Scanner creates a scanner for a given input.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, Error: logError, traceAll: traceTokens()}, nil
}

// LMScanner is a scanner type for lexmachine scanners.
type LMScanner struct {
	scanner  *lexmachine.Scanner
	Error    func(error) // error handler
	traceAll bool
}

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// NextToken returns the next token of the input, or a token of category EOF.
// Input which cannot be matched is reported to the error handler and skipped.
func (lms *LMScanner) NextToken() Token {
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		if ui, is := err.(*machines.UnconsumedInput); is {
			lms.Error(&IllegalInputError{Offset: ui.StartTC, Text: string(ui.Text)})
			next := ui.FailTC
			if next <= ui.StartTC { // always make progress
				next = ui.StartTC + 1
			}
			lms.scanner.TC = next
		} else {
			lms.Error(err)
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		end := uint64(lms.scanner.TC)
		return MakeToken(EOF, "", pie.Span{end, end})
	}
	token := tok.(*lexmachine.Token)
	t := MakeToken(
		pie.TokType(token.Type),
		string(token.Lexeme),
		pie.MakeSpan(token.TC, token.TC+len(token.Lexeme)),
	)
	if lms.traceAll {
		tracer().Infof("token %v", t)
	} else {
		tracer().Debugf("token %v", t)
	}
	return t
}

// IllegalInputError is reported for input which is not part of any token.
type IllegalInputError struct {
	Offset int
	Text   string
}

func (e *IllegalInputError) Error() string {
	return fmt.Sprintf("illegal input at offset %d: %q", e.Offset, e.Text)
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeAction is a pre-defined action which wraps a scanned match into a token.
func MakeAction(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
