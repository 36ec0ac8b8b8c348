/*
Package render renders GTFO syntax trees as source text.

Render is a bottom-up fold (see ast.FoldUp) with a handler for every node
kind. Each handler replaces a node by an ast.Fragment carrying the node's
text, so that by the time a composite node is rendered, its children are
fragments already:

    tree := ast.NewAssign(ast.NewIdentifier("a"), ast.NewInteger(42))
    render.Render(tree)   // "a = 42"

Besides canonical text, the package offers syntax highlighting
(WithColors), a tree view for terminals (PrintTree), a YAML outline
(DumpYAML) and a diff of two renderings (Diff). Persistent settings are
loaded with LoadConfig.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package render

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gtfo.render'.
func tracer() tracing.Trace {
	return tracing.Select("gtfo.render")
}
