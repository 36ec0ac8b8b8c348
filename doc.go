/*
Package gtfo is the syntax core of a small, message-oriented expression language.

It defines the abstract syntax tree of the language, a generic tree-rewriting
engine and a canonical serializer. Lexing and parsing live elsewhere; this
module starts from trees a parser has already built. Package structure is
as follows:

■ ast: Package ast implements the node catalog (atoms, envelopes and composite
expressions), the one-level structural map every node supports, and the two
whole-tree traversals derived from it: bottom-up folding and top-down rewriting.

■ ast/fp: Package fp provides sequences over tree walks, together with filters
and mappers.

■ render: Package render serializes trees back to source text, with optional
syntax highlighting and some debugging views.

■ termr: Package termr implements pattern-based term rewriting on top of the
traversals of package ast.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gtfo
