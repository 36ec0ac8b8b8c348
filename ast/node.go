package ast

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "fmt"

// Node is the interface every tree element implements. The set of
// implementations is closed; all of them live in this package.
type Node interface {
	Kind() Kind       // variant tag
	Options() Options // rendering/parsing metadata
	// Map applies fn to each immediate child and returns a node of the same
	// variant holding the results. Nodes without children return themselves.
	Map(fn Mapper) Node
	node() // marker
}

// Mapper is a function node ↦ node, used for structural maps and traversals.
type Mapper func(Node) Node

// Identity is the mapper returning its argument.
func Identity(n Node) Node {
	return n
}

// meta holds the fields common to all nodes.
type meta struct {
	opts Options
}

func newMeta(opts []Option) meta {
	return meta{opts: NewOptions(opts...)}
}

// Options returns the node's options.
func (m meta) Options() Options {
	return m.opts
}

// copy is used when rebuilding a node; the new node gets its own option set.
func (m meta) copy() meta {
	return meta{opts: m.opts.clone()}
}

func (meta) node() {}

// --- Traversals ------------------------------------------------------------

// FoldUp traverses a tree bottom-up. It folds every child first (post-order),
// rebuilds n from the folded children using Map, then applies fn to the
// rebuilt node and returns the result.
//
// By the time fn sees a composite node, each of its children has already been
// replaced by whatever fn returned for it. This is how a whole-tree property,
// like a rendered string, is computed from the leaves upward.
func FoldUp(n Node, fn Mapper) Node {
	if n == nil {
		return nil
	}
	folded := n.Map(func(child Node) Node {
		return FoldUp(child, fn)
	})
	return apply(fn, folded)
}

// RewriteDown traverses a tree top-down. It applies fn to n first, then
// recursively rewrites the children of the result (not the children of n).
// An early rewrite thus decides which rewrites apply to its subtree.
func RewriteDown(n Node, fn Mapper) Node {
	if n == nil {
		return nil
	}
	rewritten := apply(fn, n)
	return rewritten.Map(func(child Node) Node {
		return RewriteDown(child, fn)
	})
}

// Children returns the immediate children of n, in order.
// Optional children which are absent are not included.
func Children(n Node) []Node {
	var children []Node
	n.Map(func(child Node) Node {
		children = append(children, child)
		return child
	})
	return children
}

// Size returns the number of nodes of a tree.
func Size(n Node) int {
	if n == nil {
		return 0
	}
	size := 1
	for _, ch := range Children(n) {
		size += Size(ch)
	}
	return size
}

func apply(fn Mapper, n Node) Node {
	r := fn(n)
	if r == nil {
		tracer().Errorf("mapper returned nil for %s node", n.Kind())
		panic(fmt.Errorf("%w: mapper returned nil for %s node", ErrNilNode, n.Kind()))
	}
	return r
}

// mapChild applies fn to a mandatory child.
func mapChild(fn Mapper, child Node) Node {
	return apply(fn, child)
}

// mapOptional applies fn to an optional child, which may be nil.
func mapOptional(fn Mapper, child Node) Node {
	if child == nil {
		return nil
	}
	return apply(fn, child)
}

func mapAll(fn Mapper, nodes []Node) []Node {
	if nodes == nil {
		return nil
	}
	mapped := make([]Node, len(nodes))
	for i, n := range nodes {
		mapped[i] = apply(fn, n)
	}
	return mapped
}

// --- Construction checks ---------------------------------------------------

func must(kind Kind, field string, child Node) Node {
	if child == nil {
		panic(fmt.Errorf("%w: %s.%s", ErrMissingChild, kind, field))
	}
	return child
}

func mustAll(kind Kind, field string, nodes []Node) []Node {
	if nodes == nil {
		return nil
	}
	c := make([]Node, len(nodes))
	for i, n := range nodes {
		if n == nil {
			panic(fmt.Errorf("%w: %s.%s[%d]", ErrMissingChild, kind, field, i))
		}
		c[i] = n
	}
	return c
}
