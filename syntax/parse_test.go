package syntax

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/npillmayer/pie/ast"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validInputs = []string{
	`'ratatouille`,
	`zero`,
	`()`,
	`(car (cons 'ratatouille 'baguette))`,
	`(claim one Nat)`,
	`(define one (add1 zero))`,
	`(the (Pair Atom Atom) (cons 'olive 'oil))`,
	`(lambda (x) (which-Nat x 'zero (lambda (n-1) 'more)))`,
	`(((a) (b)) (() ()))`,
	"(+ (add1\n\t(add1 zero))\n  (add1 zero))",
}

func TestParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pie.syntax")
	defer teardown()
	//
	e, err := Parse("  \n (car (cons 'ratatouille 'baguette)) \n ")
	require.NoError(t, err)
	expected := ast.NewList(
		ast.NewIdent("car"),
		ast.NewList(ast.NewIdent("cons"), ast.NewAtom("ratatouille"), ast.NewAtom("baguette")),
	)
	assert.True(t, ast.Equal(expected, e), "unexpected tree %s", ast.String(e))
	//
	e, err = Parse("()")
	require.NoError(t, err)
	assert.True(t, ast.Equal(ast.NewList(), e))
	assert.Equal(t, 0, e.(*ast.List).Len())
	assert.NotNil(t, e.(*ast.List).Elements, "empty list has an empty, non-nil element slice")
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pie.syntax")
	defer teardown()
	//
	testCases := []struct {
		in     string
		err    error
		offset int
	}{
		{in: "(car (cons 'ratatouille 'baguette)", err: ErrUnclosedList, offset: 0},
		{in: "(car cons 'ratatouille 'baguette))", err: ErrTrailingInput, offset: 33},
		{in: "(a #)", err: ErrUnexpectedChar, offset: 3},
		{in: ")", err: ErrNoMatch, offset: 0},
		{in: "", err: ErrNoMatch, offset: 0},
		{in: "'a1", err: ErrTrailingInput, offset: 2},
		{in: "a b", err: ErrTrailingInput, offset: 2},
		{in: "(a (b", err: ErrUnclosedList, offset: 3},
	}
	for _, tc := range testCases {
		e, err := Parse(tc.in)
		assert.Nil(t, e, tc.in)
		if assert.Error(t, err, tc.in) {
			assert.True(t, errors.Is(err, tc.err), "expected %v for %q, have %v", tc.err, tc.in, err)
			var serr *SyntaxError
			if assert.True(t, errors.As(err, &serr), tc.in) {
				assert.Equal(t, tc.offset, serr.Offset, tc.in)
			}
		}
	}
}

func TestWhitespaceInsensitivity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pie.syntax")
	defer teardown()
	//
	var fingerprints []string
	for _, input := range []string{"(a b)", "(a  b)", "(\n\ta\n\n  b\r\n)", "( a b )"} {
		e, err := Parse(input)
		require.NoError(t, err, input)
		assert.True(t, ast.Equal(ast.NewList(ast.NewIdent("a"), ast.NewIdent("b")), e), input)
		h, err := ast.Fingerprint(e)
		require.NoError(t, err)
		fingerprints = append(fingerprints, h)
	}
	for _, h := range fingerprints[1:] {
		assert.Equal(t, fingerprints[0], h)
	}
}

func TestRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pie.syntax")
	defer teardown()
	//
	for _, input := range validInputs {
		e, err := Parse(input)
		require.NoError(t, err, input)
		text := ast.String(e)
		again, err := Parse(text)
		require.NoError(t, err, text)
		assert.True(t, ast.Equal(e, again), "round trip of %q yields %q", input, ast.String(again))
		assert.Equal(t, text, ast.String(again), "canonical text is a fixed point")
	}
}

func TestParseAll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pie.syntax")
	defer teardown()
	//
	source := `
		(claim one Nat)
		(define one
			(add1 zero))
		'done
	`
	exprs, err := ParseAll(source)
	require.NoError(t, err)
	require.Len(t, exprs, 3)
	assert.True(t, exprs[0].(*ast.List).HeadIs("claim"))
	assert.True(t, exprs[1].(*ast.List).HeadIs("define"))
	assert.Equal(t, ast.KindAtom, exprs[2].Kind())
	//
	exprs, err = ParseAll("  \n ")
	assert.NoError(t, err)
	assert.Empty(t, exprs)
	//
	exprs, err = ParseAll("(claim one Nat) (define one (add1 zero)")
	assert.Nil(t, exprs, "no partial result")
	assert.ErrorIs(t, err, ErrUnclosedList)
	//
	exprs, err = ParseAll("(a) )")
	assert.Nil(t, exprs)
	assert.ErrorIs(t, err, ErrNoMatch)
	//
	exprs, err = ParseAll("a'b(c)d")
	assert.Nil(t, exprs, "adjacent leaves are rejected")
	assert.ErrorIs(t, err, ErrNoSeparator)
	var serr *SyntaxError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, 1, serr.Offset)
	//
	exprs, err = ParseAll("(claim one Nat)(define one zero) one")
	require.NoError(t, err)
	assert.Len(t, exprs, 3)
	//
	exprs, err = ParseAll("'a(b)")
	assert.Nil(t, exprs)
	assert.ErrorIs(t, err, ErrNoSeparator)
}

func TestMaxDepth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pie.syntax")
	defer teardown()
	//
	p := &Parser{MaxDepth: 3}
	e, err := p.Parse("(((a)) (()))")
	require.NoError(t, err)
	assert.Equal(t, 3, ast.Depth(e))
	_, err = p.Parse("((((a))))")
	assert.ErrorIs(t, err, ErrTooDeep)
	//
	nested := func(n int) string {
		return strings.Repeat("(", n) + "x" + strings.Repeat(")", n)
	}
	var zero Parser
	e, err = zero.Parse(nested(DefaultMaxDepth))
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxDepth, ast.Depth(e))
	_, err = zero.Parse(nested(DefaultMaxDepth + 1))
	assert.ErrorIs(t, err, ErrTooDeep)
	_, err = Parse(nested(100000))
	assert.Error(t, err, "adversarial nesting must fail cleanly")
}

func TestConcurrentParses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pie.syntax")
	defer teardown()
	//
	var wg sync.WaitGroup
	results := make([]ast.Expr, len(validInputs))
	errs := make([]error, len(validInputs))
	for i := range validInputs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = Parse(validInputs[i])
		}(i)
	}
	wg.Wait()
	for i, input := range validInputs {
		require.NoError(t, errs[i], input)
		e, _ := Parse(input)
		assert.True(t, ast.Equal(e, results[i]), input)
	}
}
