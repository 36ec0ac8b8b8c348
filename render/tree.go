package render

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"io"
	"strings"

	"github.com/npillmayer/gtfo/ast"
	"github.com/npillmayer/gtfo/ast/fp"
	"github.com/pterm/pterm"
)

// LeveledList lists the nodes of a tree in pre-order, one entry per node,
// with the node's depth as its level.
func LeveledList(n ast.Node) pterm.LeveledList {
	var ll pterm.LeveledList
	for node, T := fp.Traverse(n, fp.TopDownDir).First(); !T.Done(); node = T.Next() {
		ll = append(ll, pterm.LeveledListItem{
			Level: node.Depth,
			Text:  label(node.Node),
		})
	}
	return ll
}

// Tree creates a pterm tree for a syntax tree.
func Tree(n ast.Node) pterm.TreeNode {
	ll := LeveledList(n)
	tracer().Debugf("|ll| = %d", len(ll))
	return pterm.NewTreeFromLeveledList(ll)
}

// PrintTree prints a syntax tree to the terminal.
func PrintTree(n ast.Node) {
	if n == nil {
		pterm.Println("<nil>")
		return
	}
	pterm.DefaultTree.WithRoot(Tree(n)).Render()
}

// WriteTree writes an indented outline of a syntax tree, without any
// terminal styling.
func WriteTree(w io.Writer, n ast.Node) error {
	var b strings.Builder
	for _, item := range LeveledList(n) {
		b.WriteString(strings.Repeat("  ", item.Level))
		b.WriteString(item.Text)
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// label is the text of a tree view line: the kind, the text of leaves and
// the options, if any.
func label(n ast.Node) string {
	var b strings.Builder
	b.WriteString(n.Kind().String())
	if k := n.Kind(); k.IsAtom() || k == ast.BottomKind {
		b.WriteByte(' ')
		b.WriteString(Render(n))
	}
	if e, ok := n.(*ast.Error); ok {
		b.WriteString(" ")
		b.WriteString(quote([]rune(e.Message)))
	}
	if n.Options().Len() > 0 {
		b.WriteByte(' ')
		b.WriteString(n.Options().String())
	}
	return b.String()
}
