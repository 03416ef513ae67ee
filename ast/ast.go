package ast

import (
	"github.com/npillmayer/pie"
)

// Kind is the variant tag of an expression.
type Kind uint8

// The three kinds of expressions.
const (
	KindAtom Kind = iota + 1
	KindIdent
	KindList
)

var kindNames = map[Kind]string{
	KindAtom:  "atom",
	KindIdent: "ident",
	KindList:  "list",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "invalid"
}

// Expr is a node of the syntax tree. It is implemented by *Atom, *Ident and *List
// and by nothing else, so a type switch over these three is exhaustive.
type Expr interface {
	Kind() Kind
	Span() pie.Span
	String() string
	isExpr()
}

// Atom is a literal symbolic constant, written with a leading quote mark.
// Text holds the word without the quote: 'baguette has Text "baguette".
type Atom struct {
	Text string
	Pos  pie.Span // covers the quote mark as well
}

// Ident names a variable, a keyword or an operator.
type Ident struct {
	Name string
	Pos  pie.Span
}

// List is a parenthesized sequence of expressions. Elements may be empty.
type List struct {
	Elements []Expr
	Pos      pie.Span // from '(' to ')' inclusive
}

var _ Expr = (*Atom)(nil)
var _ Expr = (*Ident)(nil)
var _ Expr = (*List)(nil)

// NewAtom creates an atom without position information.
func NewAtom(text string) *Atom {
	return &Atom{Text: text}
}

// NewIdent creates an identifier without position information.
func NewIdent(name string) *Ident {
	return &Ident{Name: name}
}

// NewList creates a list of expressions without position information.
func NewList(elements ...Expr) *List {
	if elements == nil {
		elements = []Expr{}
	}
	return &List{Elements: elements}
}

// Kind returns KindAtom.
func (a *Atom) Kind() Kind { return KindAtom }

// Span returns the input range the atom was parsed from.
func (a *Atom) Span() pie.Span { return a.Pos }

func (a *Atom) isExpr() {}

// Kind returns KindIdent.
func (id *Ident) Kind() Kind { return KindIdent }

// Span returns the input range the identifier was parsed from.
func (id *Ident) Span() pie.Span { return id.Pos }

func (id *Ident) isExpr() {}

// Kind returns KindList.
func (l *List) Kind() Kind { return KindList }

// Span returns the input range the list was parsed from.
func (l *List) Span() pie.Span { return l.Pos }

func (l *List) isExpr() {}

// Len returns the number of elements of a list.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Elements)
}

// First returns the first element of a list, or nil for the empty list.
func (l *List) First() Expr {
	if l.Len() == 0 {
		return nil
	}
	return l.Elements[0]
}

// Rest returns all but the first element of a list.
func (l *List) Rest() []Expr {
	if l.Len() <= 1 {
		return nil
	}
	return l.Elements[1:]
}

// HeadIs is true if the list starts with an identifier of the given name, as in
// (define one (add1 zero)) for name "define".
func (l *List) HeadIs(name string) bool {
	if id, ok := l.First().(*Ident); ok {
		return id.Name == name
	}
	return false
}
