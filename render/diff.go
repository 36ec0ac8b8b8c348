package render

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/npillmayer/gtfo/ast"
)

// Diff renders two trees and returns a character diff of the two texts.
// Deleted text is marked [-like this-], inserted text {+like this+}.
// Diff returns "" if both renderings are equal.
func Diff(a, b ast.Node) string {
	return DiffText(Render(a), Render(b))
}

// DiffText is Diff on already rendered text.
func DiffText(from, to string) string {
	if from == to {
		return ""
	}
	dmp := diffpatch.New()
	multiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := dmp.DiffMain(from, to, multiLine)
	diffs = dmp.DiffCleanupSemantic(diffs)
	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			b.WriteString("{+" + d.Text + "+}")
		case diffpatch.DiffDelete:
			b.WriteString("[-" + d.Text + "-]")
		case diffpatch.DiffEqual:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}
