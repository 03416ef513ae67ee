package ast

import (
	"github.com/cnf/structhash"
)

// Equal reports whether two expressions have the same shape and text.
// Spans are not compared.
func Equal(a, b Expr) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case *Atom:
		y, ok := b.(*Atom)
		return ok && x.Text == y.Text
	case *Ident:
		y, ok := b.(*Ident)
		return ok && x.Name == y.Name
	case *List:
		y, ok := b.(*List)
		if !ok || len(x.Elements) != len(y.Elements) {
			return false
		}
		for i := range x.Elements {
			if !Equal(x.Elements[i], y.Elements[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// shape is the span-free image of an expression, used for hashing.
type shape struct {
	Kind     string
	Text     string
	Elements []shape
}

func shapeOf(e Expr) shape {
	switch x := e.(type) {
	case *Atom:
		return shape{Kind: KindAtom.String(), Text: x.Text}
	case *Ident:
		return shape{Kind: KindIdent.String(), Text: x.Name}
	case *List:
		s := shape{Kind: KindList.String(), Elements: make([]shape, len(x.Elements))}
		for i, el := range x.Elements {
			s.Elements[i] = shapeOf(el)
		}
		return s
	}
	return shape{}
}

// Fingerprint returns a structural hash of an expression. Trees which are Equal
// have identical fingerprints, regardless of the layout of their source text.
func Fingerprint(e Expr) (string, error) {
	h, err := structhash.Hash(shapeOf(e), 1)
	if err != nil {
		tracer().Errorf("cannot hash expression %s: %v", String(e), err)
		return "", err
	}
	return h, nil
}
