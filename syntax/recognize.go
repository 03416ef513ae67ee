package syntax

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/pie"
	"github.com/npillmayer/pie/ast"
)

// --- Token-level recognizers -----------------------------------------------

// atom recognizes a quote mark followed by one or more letters or hyphens.
// The quote mark is not part of the atom's text.
func atom(c cursor) (*ast.Atom, cursor, bool) {
	if !c.at('\'') {
		return nil, c, false
	}
	word := c.advance(1)
	end := word.takeWhile(isAtomChar)
	if end.pos == word.pos {
		return nil, c, false // a lone quote, or a quote followed by a digit, quote, …
	}
	a := &ast.Atom{
		Text: word.text(end),
		Pos:  pie.MakeSpan(c.pos, end.pos),
	}
	tracer().Debugf("atom %q at %v", a.Text, a.Pos)
	return a, end, true
}

// ident recognizes a run of identifier head characters, optionally followed by
// a run of identifier tail characters.
func ident(c cursor) (*ast.Ident, cursor, bool) {
	head := c.takeWhile(isIdentHead)
	if head.pos == c.pos {
		return nil, c, false
	}
	end := head.takeWhile(isIdentTail)
	id := &ast.Ident{
		Name: c.text(end),
		Pos:  pie.MakeSpan(c.pos, end.pos),
	}
	tracer().Debugf("ident %q at %v", id.Name, id.Pos)
	return id, end, true
}

// leaf is the ordered choice of the two token-level alternatives.
func leaf(c cursor) (ast.Expr, cursor, bool) {
	if a, next, ok := atom(c); ok {
		return a, next, true
	}
	if id, next, ok := ident(c); ok {
		return id, next, true
	}
	return nil, c, false
}

// --- Grammar rules ---------------------------------------------------------

// expr tries atom, identifier and list, in this order. The first alternative
// which matches determines the result. On failure, nothing is consumed and the
// error tells why no alternative applied.
func (p *Parser) expr(c cursor) (ast.Expr, cursor, error) {
	if e, next, ok := leaf(c); ok {
		return e, next, nil
	}
	if c.at('(') {
		l, next, err := p.list(c)
		if err != nil {
			return nil, c, err
		}
		return l, next, nil
	}
	return nil, c, syntaxError(c, ErrNoMatch)
}

// frame is a list under construction.
type frame struct {
	start    int
	elements []ast.Expr
}

// list recognizes '(' followed by zero or more expressions and ')', with
// whitespace allowed between all of them. Nested lists do not recurse into
// expr; every open parenthesis pushes a frame onto an explicit stack instead.
// Elements within a list are still chosen in the order atom, identifier, list.
//
// The list is recognized as a whole or not at all: on failure, the returned
// cursor is c.
func (p *Parser) list(c cursor) (*ast.List, cursor, error) {
	if !c.at('(') {
		return nil, c, syntaxError(c, ErrNoMatch)
	}
	maxDepth := p.maxDepth()
	stack := arraystack.New()
	stack.Push(&frame{start: c.pos, elements: []ast.Expr{}})
	cur := c.advance(1)
	for {
		cur = cur.skipSpace()
		tos, _ := stack.Peek()
		top := tos.(*frame)
		switch {
		case cur.eof():
			tracer().Debugf("list opened at %d is not closed", top.start)
			return nil, c, &SyntaxError{Offset: top.start, Err: ErrUnclosedList}
		case cur.at(')'):
			cur = cur.advance(1)
			stack.Pop()
			l := &ast.List{
				Elements: top.elements,
				Pos:      pie.MakeSpan(top.start, cur.pos),
			}
			if stack.Empty() {
				return l, cur, nil
			}
			parent, _ := stack.Peek()
			parent.(*frame).elements = append(parent.(*frame).elements, l)
		case cur.at('('):
			if stack.Size() >= maxDepth {
				tracer().Infof("nesting depth exceeds %d at offset %d", maxDepth, cur.pos)
				return nil, c, syntaxError(cur, ErrTooDeep)
			}
			stack.Push(&frame{start: cur.pos, elements: []ast.Expr{}})
			cur = cur.advance(1)
		default:
			e, next, ok := leaf(cur)
			if !ok {
				tracer().Debugf("unexpected character %q in list at %d", cur.peek(), cur.pos)
				return nil, c, syntaxError(cur, ErrUnexpectedChar)
			}
			top.elements = append(top.elements, e)
			cur = next
		}
	}
}
