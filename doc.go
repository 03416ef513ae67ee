/*
Package pie is a front end for a small Lisp-like surface language.

The language is the one of "The Little Typer": quoted atoms ('ratatouille),
identifiers (car, add1, zero?, +) and parenthesized lists. Source text is turned
into a homogenous abstract syntax tree, which is intended as input for a
downstream interpreter or type checker. Package structure is as follows:

■ ast: Package ast defines the three-variant expression tree.

■ syntax: Package syntax implements the recognizers for atoms, identifiers and
lists, and assembles them into trees.

■ syntax/scanner: Package scanner is a DFA-based tokenizer for the same language.

■ luabind: Package luabind makes the parser available to Lua scripts.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pie
