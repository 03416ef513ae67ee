/*
Package srepl/main provides an interactive command line tool (S.REPL)
for s-expressions of the Pie language. S.REPL parses what the user enters
and displays the resulting syntax trees. Input spanning several lines is
collected until all parentheses are closed.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pie.repl'
func tracer() tracing.Trace {
	return tracing.Select("pie.repl")
}
