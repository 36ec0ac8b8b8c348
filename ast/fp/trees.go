package fp

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/gtfo/ast"
)

// TreeSeq is a type which represents a tree walk as a sequence.
type TreeSeq struct {
	node TreeNode
	gen  TreeGenerator // nil if done
}

// TreeGenerator is a generator function type to iterate over trees.
// It returns false if no more nodes are available.
type TreeGenerator func() (TreeNode, bool)

// A TreeNode is a node of a tree walk. Its parent node is available with a
// call to Parent().
type TreeNode struct {
	Node   ast.Node
	Depth  int // root has depth 0
	parent ast.Node
}

// Parent returns the parent of a tree node, or nil for the root.
func (n TreeNode) Parent() ast.Node {
	return n.parent
}

func (n TreeNode) String() string {
	if n.Node == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s@%d", n.Node.Kind(), n.Depth)
}

// Flags for tree traversal, either bottom-up (depth-first) or top-down
const (
	DepthFirstDir int = iota
	TopDownDir
)

// Traverse creates a sequence from a tree. With TopDownDir the sequence walks
// the tree in pre-order, with DepthFirstDir in post-order. Children are
// visited in the order Map presents them.
func Traverse(root ast.Node, dir int) TreeSeq {
	if root == nil {
		return TreeSeq{}
	}
	if dir == TopDownDir {
		return newSeq(topDown(root))
	}
	return newSeq(depthFirst(root))
}

// topDown is an iterative pre-order walk: pop a node, push its children in
// reverse order, emit the node.
func topDown(root ast.Node) TreeGenerator {
	stack := arraystack.New()
	stack.Push(TreeNode{Node: root})
	return func() (TreeNode, bool) {
		top, ok := stack.Pop()
		if !ok {
			return TreeNode{}, false
		}
		tn := top.(TreeNode)
		pushChildren(stack, tn, func(ch TreeNode) interface{} { return ch })
		return tn, true
	}
}

type frame struct {
	tn       TreeNode
	expanded bool
}

// depthFirst is an iterative post-order walk: a node is emitted on its
// second visit, after all of its children have been pushed and emitted.
func depthFirst(root ast.Node) TreeGenerator {
	stack := arraystack.New()
	stack.Push(frame{tn: TreeNode{Node: root}})
	return func() (TreeNode, bool) {
		for {
			top, ok := stack.Pop()
			if !ok {
				return TreeNode{}, false
			}
			f := top.(frame)
			if f.expanded || len(ast.Children(f.tn.Node)) == 0 {
				return f.tn, true
			}
			stack.Push(frame{tn: f.tn, expanded: true})
			pushChildren(stack, f.tn, func(ch TreeNode) interface{} { return frame{tn: ch} })
		}
	}
}

func pushChildren(stack *arraystack.Stack, parent TreeNode, wrap func(TreeNode) interface{}) {
	children := ast.Children(parent.Node)
	for i := len(children) - 1; i >= 0; i-- {
		stack.Push(wrap(TreeNode{Node: children[i], Depth: parent.Depth + 1, parent: parent.Node}))
	}
}

// newSeq creates a sequence and pre-fetches its first node.
func newSeq(gen TreeGenerator) TreeSeq {
	seq := TreeSeq{gen: gen}
	seq.Next()
	return seq
}

// drain turns a sequence into a generator, starting with its current node.
func drain(seq TreeSeq) TreeGenerator {
	first := true
	return func() (TreeNode, bool) {
		if seq.Done() {
			return TreeNode{}, false
		}
		if first {
			first = false
			return seq.node, true
		}
		node := seq.Next()
		return node, !seq.Done()
	}
}

// Break stops a traversing sequence.
func (seq *TreeSeq) Break() {
	seq.gen = nil
}

// Done returns true if a traversing sequence is stopped or exhausted.
func (seq *TreeSeq) Done() bool {
	return seq.gen == nil
}

// First returns the first node of a tree traversal.
func (seq TreeSeq) First() (TreeNode, TreeSeq) {
	return seq.node, seq
}

// Next returns the next node of a tree traversal.
func (seq *TreeSeq) Next() TreeNode {
	if seq.Done() {
		return TreeNode{}
	}
	node, ok := seq.gen()
	if !ok {
		seq.gen = nil
		seq.node = TreeNode{}
		return seq.node
	}
	seq.node = node
	return node
}

// List returns the remaining nodes of a tree walk.
func (seq TreeSeq) List() []ast.Node {
	var nodes []ast.Node
	for node, T := seq.First(); !T.Done(); node = T.Next() {
		nodes = append(nodes, node.Node)
	}
	return nodes
}

// A NodeFilter filters nodes from a sequence of tree traversal nodes.
type NodeFilter func(node TreeNode) bool

// IsLeaf is a filter for tree nodes which only accepts nodes without children.
func IsLeaf() NodeFilter {
	return func(node TreeNode) bool {
		return len(ast.Children(node.Node)) == 0
	}
}

// OfKind is a filter for tree nodes of the given kinds.
func OfKind(kinds ...ast.Kind) NodeFilter {
	return func(node TreeNode) bool {
		for _, k := range kinds {
			if node.Node.Kind() == k {
				return true
			}
		}
		return false
	}
}

// Where applies a filter to a sequence of tree nodes.
func (seq TreeSeq) Where(filt NodeFilter) TreeSeq {
	inner := drain(seq)
	return newSeq(func() (TreeNode, bool) {
		for {
			node, ok := inner()
			if !ok || filt(node) {
				return node, ok
			}
		}
	})
}

// NodeMapper is a function returning a tree node from an input tree node.
type NodeMapper func(node TreeNode) TreeNode

// Print prints a node to the tracer and returns the input node.
func Print() NodeMapper {
	return func(node TreeNode) TreeNode {
		tracer().Debugf("tree node = %s", node)
		return node
	}
}

// Map applies a mapper to all nodes of a sequence.
func (seq TreeSeq) Map(mapper NodeMapper) TreeSeq {
	inner := drain(seq)
	return newSeq(func() (TreeNode, bool) {
		node, ok := inner()
		if !ok {
			return node, false
		}
		return mapper(node), true
	})
}
