/*
Package termr implements tools for term rewriting of GTFO syntax trees.

A rewrite rule consists of a pattern and a rewriting function. Patterns are
predicates on nodes; they may be composed from the predefined ones or be
written as boolean expressions over a node's properties (see When). Rules
are collected in a RuleSet, which applies them in one of the traversal
directions of package ast, or repeatedly until the tree does not change any
more.

No concrete rewriting passes are defined here; clients bring their own
rules.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package termr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gtfo.termr'.
func tracer() tracing.Trace {
	return tracing.Select("gtfo.termr")
}
