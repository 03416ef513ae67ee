/*
Package ast implements the abstract syntax tree of the Pie surface language.

A tree consists of exactly three kinds of nodes: atoms ('olive-oil), identifiers
(cons, add1, zero?) and lists, which hold zero or more further nodes. Nodes refer
to substrings of the parsed input and remember the span of input they cover.
Spans are informational only: equality and fingerprints of trees ignore them.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ast

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pie.ast'.
func tracer() tracing.Trace {
	return tracing.Select("pie.ast")
}
