package syntax

import (
	"sync"

	"github.com/npillmayer/pie/ast"
	"github.com/npillmayer/schuko/gconf"
)

// DefaultMaxDepth is the nesting limit for lists if nothing else is configured.
const DefaultMaxDepth = 1000

// Configuration key for the nesting limit of lists.
const configMaxDepth = "pie.max-nesting-depth"

// Parser parses Pie source text. The zero value is ready to use and applies
// DefaultMaxDepth.
type Parser struct {
	// MaxDepth is the maximum number of lists open at the same time.
	// Values <= 0 select DefaultMaxDepth.
	MaxDepth int
}

// NewParser creates a parser with settings taken from the global configuration.
func NewParser() *Parser {
	return &Parser{MaxDepth: configuredMaxDepth()}
}

func configuredMaxDepth() (depth int) {
	defer func() {
		if r := recover(); r != nil { // tolerate a missing global configuration
			depth = 0
		}
	}()
	return gconf.GetInt(configMaxDepth)
}

func (p *Parser) maxDepth() int {
	if p == nil || p.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return p.MaxDepth
}

// ParseExpr recognizes one expression at the start of input. It returns the
// expression and the rest of the input following it. Leading whitespace is not
// skipped. If no expression can be recognized, the error is a *SyntaxError and
// no partial tree is returned.
func (p *Parser) ParseExpr(input string) (ast.Expr, string, error) {
	e, next, err := p.expr(startOf(input))
	if err != nil {
		return nil, input, err
	}
	return e, next.rest(), nil
}

// Parse parses input as a single expression. Whitespace around the expression
// is ignored; anything else following it is an error (ErrTrailingInput).
func (p *Parser) Parse(input string) (ast.Expr, error) {
	tracer().Debugf("parse %q", input)
	c := startOf(input).skipSpace()
	e, next, err := p.expr(c)
	if err != nil {
		return nil, err
	}
	if next = next.skipSpace(); !next.eof() {
		tracer().Debugf("parse: trailing input %q", next.rest())
		return nil, syntaxError(next, ErrTrailingInput)
	}
	return e, nil
}

// ParseAll parses a sequence of zero or more expressions, as found in a source
// file. An atom or identifier has to be followed by whitespace or the end of
// input; a list is delimited by its closing parenthesis. Either all of the
// expressions are returned or none of them.
func (p *Parser) ParseAll(input string) ([]ast.Expr, error) {
	exprs := []ast.Expr{}
	c := startOf(input).skipSpace()
	for !c.eof() {
		e, next, err := p.expr(c)
		if err != nil {
			return nil, err
		}
		if e.Kind() != ast.KindList && !next.eof() && !isSpace(next.peek()) {
			return nil, syntaxError(next, ErrNoSeparator)
		}
		exprs = append(exprs, e)
		c = next.skipSpace()
	}
	tracer().Infof("parsed %d top-level expressions", len(exprs))
	return exprs, nil
}

// ParseList recognizes a list at the start of input, returning the list and the
// rest of the input.
func (p *Parser) ParseList(input string) (*ast.List, string, error) {
	l, next, err := p.list(startOf(input))
	if err != nil {
		return nil, input, err
	}
	return l, next.rest(), nil
}

// --- Package level API -----------------------------------------------------

var defaultParser *Parser
var defaultOnce sync.Once // monitors one-time creation of the default parser

func std() *Parser {
	defaultOnce.Do(func() {
		defaultParser = NewParser()
		tracer().Infof("default parser uses max nesting depth %d", defaultParser.maxDepth())
	})
	return defaultParser
}

// ParseExpr recognizes one expression at the start of input, using a default
// parser. See Parser.ParseExpr.
func ParseExpr(input string) (ast.Expr, string, error) {
	return std().ParseExpr(input)
}

// Parse parses input as a single expression, using a default parser.
// See Parser.Parse.
func Parse(input string) (ast.Expr, error) {
	return std().Parse(input)
}

// ParseAll parses a sequence of expressions, using a default parser.
// See Parser.ParseAll.
func ParseAll(input string) ([]ast.Expr, error) {
	return std().ParseAll(input)
}

// ParseList recognizes a list at the start of input, using a default parser.
func ParseList(input string) (*ast.List, string, error) {
	return std().ParseList(input)
}

// ParseAtom recognizes a quoted atom at the start of input. It returns the atom
// and the rest of the input.
func ParseAtom(input string) (*ast.Atom, string, error) {
	c := startOf(input)
	a, next, ok := atom(c)
	if !ok {
		return nil, input, syntaxError(c, ErrNoMatch)
	}
	return a, next.rest(), nil
}

// ParseIdent recognizes an identifier at the start of input. It returns the
// identifier and the rest of the input.
func ParseIdent(input string) (*ast.Ident, string, error) {
	c := startOf(input)
	id, next, ok := ident(c)
	if !ok {
		return nil, input, syntaxError(c, ErrNoMatch)
	}
	return id, next.rest(), nil
}
