package termr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/npillmayer/gtfo/ast"
	"github.com/npillmayer/gtfo/ast/fp"
	"github.com/npillmayer/gtfo/render"
)

// ErrBadPattern is returned for patterns which cannot be compiled.
var ErrBadPattern = errors.New("bad pattern")

// Pattern is a predicate on nodes.
type Pattern func(ast.Node) bool

// Anything is a pattern matching any node.
func Anything() Pattern {
	return func(ast.Node) bool { return true }
}

// AnyAtom is a pattern matching any node without children.
func AnyAtom() Pattern {
	return func(n ast.Node) bool { return n.Kind().IsAtom() }
}

// OfKind is a pattern matching nodes of the given kinds.
func OfKind(kinds ...ast.Kind) Pattern {
	return func(n ast.Node) bool {
		for _, k := range kinds {
			if n.Kind() == k {
				return true
			}
		}
		return false
	}
}

// And matches if all of the patterns match.
func And(patterns ...Pattern) Pattern {
	return func(n ast.Node) bool {
		for _, p := range patterns {
			if !p(n) {
				return false
			}
		}
		return true
	}
}

// Or matches if any of the patterns matches.
func Or(patterns ...Pattern) Pattern {
	return func(n ast.Node) bool {
		for _, p := range patterns {
			if p(n) {
				return true
			}
		}
		return false
	}
}

// Not inverts a pattern.
func Not(p Pattern) Pattern {
	return func(n ast.Node) bool { return !p(n) }
}

// When compiles a boolean expression into a pattern. The expression is
// evaluated against the properties of a node:
//
//     kind   string    variant name, e.g. "Identifier"
//     atom   bool      true for nodes without children
//     arity  int       number of children
//     label  string    label of identifiers, symbols and operators
//     text   string    rendered source text of the node
//     opts   map       the node's options
//
// Example:
//
//     When(`kind == "Identifier" && label startsWith "tmp"`)
//
// Expression syntax is that of github.com/expr-lang/expr.
func When(expression string) (Pattern, error) {
	program, err := expr.Compile(expression, expr.Env(envOf(ast.NewBottom())), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrBadPattern, expression, err)
	}
	return func(n ast.Node) bool {
		return run(program, expression, n)
	}, nil
}

// MustWhen is like When, but panics if the expression cannot be compiled.
func MustWhen(expression string) Pattern {
	p, err := When(expression)
	if err != nil {
		panic(err)
	}
	return p
}

func run(program *vm.Program, expression string, n ast.Node) bool {
	out, err := expr.Run(program, envOf(n))
	if err != nil {
		tracer().Errorf("pattern %q on %s node: %v", expression, n.Kind(), err)
		return false
	}
	b, ok := out.(bool)
	return ok && b
}

func envOf(n ast.Node) map[string]interface{} {
	opts := make(map[string]interface{}, n.Options().Len())
	for _, e := range n.Options().Entries() {
		opts[e.Key] = e.Value
	}
	var label string
	switch a := n.(type) {
	case *ast.Identifier:
		label = a.Label
	case *ast.Symbol:
		label = a.Label
	case *ast.Operator:
		label = a.Label
	}
	return map[string]interface{}{
		"kind":  n.Kind().String(),
		"atom":  n.Kind().IsAtom(),
		"arity": len(ast.Children(n)),
		"label": label,
		"text":  render.Render(n),
		"opts":  opts,
	}
}

// Matches turns a pattern into a filter for tree walks.
func Matches(p Pattern) fp.NodeFilter {
	return func(node fp.TreeNode) bool {
		if node.Node == nil {
			panic("nil node as pattern input")
		}
		return p(node.Node)
	}
}

// Find returns all nodes of a tree matching a pattern, in pre-order.
func Find(n ast.Node, p Pattern) []ast.Node {
	if n == nil {
		return nil
	}
	return fp.Traverse(n, fp.TopDownDir).Where(Matches(p)).List()
}
