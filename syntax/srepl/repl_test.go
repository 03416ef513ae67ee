package main

import (
	"testing"

	"github.com/npillmayer/pie/ast"
	"github.com/npillmayer/pie/syntax"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestLineBuffer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pie.repl")
	defer teardown()
	//
	var lb lineBuffer
	text, complete := lb.Feed("   ")
	assert.False(t, complete, "blank line is not an input")
	text, complete = lb.Feed("(define one")
	assert.False(t, complete)
	assert.False(t, lb.Empty())
	text, complete = lb.Feed("  (add1 zero))")
	assert.True(t, complete)
	assert.Equal(t, "(define one\n  (add1 zero))", text)
	assert.True(t, lb.Empty())
	//
	text, complete = lb.Feed("(car cons 'a))")
	assert.True(t, complete, "too many closing parentheses are left to the parser")
	assert.Equal(t, "(car cons 'a))", text)
	text, complete = lb.Feed("(a #")
	assert.True(t, complete, "illegal input is left to the parser")
	//
	lb.Feed("(claim")
	assert.Equal(t, "(claim", lb.Flush())
	assert.True(t, lb.Empty())
}

func TestLeveledExpr(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pie.repl")
	defer teardown()
	//
	e, err := syntax.Parse("(car (cons 'olive 'oil))")
	assert.NoError(t, err)
	ll := leveledExpr(e, nil, 0)
	if assert.Len(t, ll, 6) {
		assert.Equal(t, 0, ll[0].Level)
		assert.Equal(t, "list [2]", ll[0].Text)
		assert.Equal(t, "ident car", ll[1].Text)
		assert.Equal(t, 1, ll[2].Level)
		assert.Equal(t, "atom 'olive", ll[4].Text)
		assert.Equal(t, 2, ll[4].Level)
	}
}

func TestEval(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pie.repl")
	defer teardown()
	//
	intp := &Intp{parser: &syntax.Parser{}}
	assert.NoError(t, intp.Eval("(claim one Nat) (define one (add1 zero))"))
	assert.True(t, ast.Equal(intp.lastTree,
		ast.NewList(ast.NewIdent("define"), ast.NewIdent("one"),
			ast.NewList(ast.NewIdent("add1"), ast.NewIdent("zero")))))
	assert.Error(t, intp.Eval("(define one"))
}
