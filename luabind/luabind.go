/*
Package luabind makes the Pie parser available to Lua scripts running on
gopher-lua.

Register the module with

    L.PreloadModule("pie", luabind.Loader)

and use it from Lua:

    local pie = require("pie")
    local tree, err = pie.parse("(car (cons 'olive 'oil))")

Trees are plain Lua tables: {atom="olive"}, {ident="car"} and {list={...}}.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package luabind

import (
	"errors"
	"fmt"

	"github.com/npillmayer/pie/ast"
	"github.com/npillmayer/pie/syntax"
	"github.com/npillmayer/pie/syntax/scanner"
	"github.com/npillmayer/schuko/tracing"
	lua "github.com/yuin/gopher-lua"
)

// tracer traces with key 'pie.lua'.
func tracer() tracing.Trace {
	return tracing.Select("pie.lua")
}

var exports = map[string]lua.LGFunction{
	"parse":     parse,
	"parse_all": parseAll,
	"format":    format,
	"tokens":    tokens,
}

// Loader is a gopher-lua module loader for module "pie".
func Loader(L *lua.LState) int {
	mod := L.SetFuncs(L.NewTable(), exports)
	L.Push(mod)
	return 1
}

// parse(src) returns a tree, or nil and an error message.
func parse(L *lua.LState) int {
	src := L.CheckString(1)
	e, err := syntax.Parse(src)
	if err != nil {
		tracer().Debugf("parse failed: %v", err)
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(ToLua(L, e))
	L.Push(lua.LNil)
	return 2
}

// parse_all(src) returns an array of trees, or nil and an error message.
func parseAll(L *lua.LState) int {
	src := L.CheckString(1)
	exprs, err := syntax.ParseAll(src)
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	t := L.NewTable()
	for _, e := range exprs {
		t.Append(ToLua(L, e))
	}
	L.Push(t)
	L.Push(lua.LNil)
	return 2
}

// format(tree) returns the canonical source text of a tree.
func format(L *lua.LState) int {
	e, err := FromLua(L.CheckAny(1))
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	L.Push(lua.LString(ast.String(e)))
	return 1
}

// tokens(src) returns an array of {type=…, lexeme=…, from=…, to=…} tables,
// or nil and an error message.
func tokens(L *lua.LState) int {
	src := L.CheckString(1)
	toks, err := scanner.Tokenize(src)
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	t := L.NewTable()
	for _, tok := range toks {
		lt := L.NewTable()
		lt.RawSetString("type", lua.LString(scanner.TokTypeString(tok.TokType())))
		lt.RawSetString("lexeme", lua.LString(tok.Lexeme()))
		lt.RawSetString("from", lua.LNumber(tok.Span().From()))
		lt.RawSetString("to", lua.LNumber(tok.Span().To()))
		t.Append(lt)
	}
	L.Push(t)
	L.Push(lua.LNil)
	return 2
}

// --- Conversion ------------------------------------------------------------

// ToLua converts an expression into its Lua table representation.
func ToLua(L *lua.LState, e ast.Expr) lua.LValue {
	t := L.NewTable()
	switch x := e.(type) {
	case *ast.Atom:
		t.RawSetString("atom", lua.LString(x.Text))
	case *ast.Ident:
		t.RawSetString("ident", lua.LString(x.Name))
	case *ast.List:
		elems := L.NewTable()
		for _, el := range x.Elements {
			elems.Append(ToLua(L, el))
		}
		t.RawSetString("list", elems)
	default:
		return lua.LNil
	}
	return t
}

// ErrNotATree is returned by FromLua for values which do not represent a tree.
var ErrNotATree = errors.New("value is not a pie tree")

// FromLua converts the Lua table representation of a tree back into an
// expression. Tables nested deeper than syntax.DefaultMaxDepth and tables
// containing themselves are rejected with ErrNotATree.
func FromLua(v lua.LValue) (ast.Expr, error) {
	return fromLua(v, 0, map[*lua.LTable]bool{})
}

func fromLua(v lua.LValue, depth int, open map[*lua.LTable]bool) (ast.Expr, error) {
	t, ok := v.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotATree, v.Type().String())
	}
	if s, ok := t.RawGetString("atom").(lua.LString); ok {
		return ast.NewAtom(string(s)), nil
	}
	if s, ok := t.RawGetString("ident").(lua.LString); ok {
		return ast.NewIdent(string(s)), nil
	}
	elems, ok := t.RawGetString("list").(*lua.LTable)
	if !ok {
		return nil, ErrNotATree
	}
	if depth >= syntax.DefaultMaxDepth {
		return nil, fmt.Errorf("%w: lists nested deeper than %d", ErrNotATree, syntax.DefaultMaxDepth)
	}
	if open[t] || open[elems] {
		tracer().Errorf("cyclic table passed as tree")
		return nil, fmt.Errorf("%w: cyclic table", ErrNotATree)
	}
	open[t], open[elems] = true, true
	defer func() { delete(open, t); delete(open, elems) }()
	l := ast.NewList()
	for i := 1; i <= elems.Len(); i++ {
		el, err := fromLua(elems.RawGetInt(i), depth+1, open)
		if err != nil {
			return nil, err
		}
		l.Elements = append(l.Elements, el)
	}
	return l, nil
}
