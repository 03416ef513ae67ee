package ast

import (
	"strings"
)

// String returns the canonical text of an expression: atoms with their quote
// mark, identifiers verbatim and list elements separated by a single blank.
// Parsing the canonical text yields a tree equal to e.
func String(e Expr) string {
	if e == nil {
		return ""
	}
	var sb strings.Builder
	write(&sb, e)
	return sb.String()
}

func write(sb *strings.Builder, e Expr) {
	switch x := e.(type) {
	case *Atom:
		sb.WriteByte('\'')
		sb.WriteString(x.Text)
	case *Ident:
		sb.WriteString(x.Name)
	case *List:
		sb.WriteByte('(')
		for i, el := range x.Elements {
			if i > 0 {
				sb.WriteByte(' ')
			}
			write(sb, el)
		}
		sb.WriteByte(')')
	}
}

func (a *Atom) String() string {
	return "'" + a.Text
}

func (id *Ident) String() string {
	return id.Name
}

func (l *List) String() string {
	return String(l)
}

// Walk visits e and all of its sub-expressions depth-first, parents before
// children. If visit returns false for a list, its elements are skipped.
func Walk(e Expr, visit func(e Expr, depth int) bool) {
	walk(e, 0, visit)
}

func walk(e Expr, depth int, visit func(Expr, int) bool) {
	if e == nil {
		return
	}
	if !visit(e, depth) {
		return
	}
	if l, ok := e.(*List); ok {
		for _, el := range l.Elements {
			walk(el, depth+1, visit)
		}
	}
}

// Leaves returns the atoms and identifiers of e in left-to-right order.
func Leaves(e Expr) []Expr {
	var leaves []Expr
	Walk(e, func(x Expr, _ int) bool {
		if x.Kind() != KindList {
			leaves = append(leaves, x)
		}
		return true
	})
	return leaves
}

// Depth returns the nesting depth of lists in e. Atoms and identifiers have
// depth 0, () has depth 1.
func Depth(e Expr) int {
	max := 0
	Walk(e, func(x Expr, d int) bool {
		if x.Kind() == KindList && d+1 > max {
			max = d + 1
		}
		return true
	})
	return max
}
