/*
Package syntax turns Pie source text into abstract syntax trees.

The grammar is small:

    Expr  ::=  Atom  |  Ident  |  List
    Atom  ::=  '\'' [A-Za-z-]+
    Ident ::=  [A-Za-z/+\-!$%&*:<=>?~_^]+ [A-Za-z0-9.+\-]*
    List  ::=  '(' ws* (Expr ws*)* ')'

Each rule is a recognizer, working on a cursor into the input text. A
recognizer either matches and advances the cursor, or fails and consumes
nothing. ParseExpr exposes the raw contract of the Expr rule: it returns a tree
together with the unconsumed rest of the input. Parse additionally requires that
the whole input (modulo surrounding whitespace) forms a single expression.

Lists are built with an explicit stack of open frames instead of Go call
recursion, and the nesting depth is limited (see Parser.MaxDepth). Deeply
nested input therefore results in an error, never in a stack overflow.

Parsing is a pure function of its input. Parsers may be used concurrently.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package syntax

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pie.syntax'.
func tracer() tracing.Trace {
	return tracing.Select("pie.syntax")
}
