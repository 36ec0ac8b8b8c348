/*
Package ast implements the abstract syntax tree of the GTFO language, together
with a generic mechanism for tree traversal and rewriting.

The tree is heterogenous: there is one Go type per syntactic variant, and all
of them implement the sealed interface Node. Nodes are immutable once created.
Every node supports exactly one structural operation, Map, which applies a
function to the node's immediate children and rebuilds a node of the same
variant from the results. Atoms have no children; mapping an atom returns the
atom itself.

Two whole-tree traversals are derived from Map, once and for all variants:

    FoldUp(n, fn)       // post-order: children first, then fn on the rebuilt node
    RewriteDown(n, fn)  // pre-order: fn first, then descend into the result

Clients parameterize a traversal with a table of per-kind handlers (see
Handlers and Dispatch). Package render is such a client: it folds a tree into
its source text.

Constructing a composite node without one of its mandatory children is a
programming error and panics with ErrMissingChild.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ast

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gtfo.ast'.
func tracer() tracing.Trace {
	return tracing.Select("gtfo.ast")
}
