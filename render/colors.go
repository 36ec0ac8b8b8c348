package render

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/gtfo/ast"
)

// Colors is a table of syntax highlighting functions, one per node kind.
// Only leaf-like kinds are highlighted; composite syntax stays uncolored.
type Colors struct {
	Default func(string, ...any) string
	Map     map[ast.Kind]func(string, ...any) string
}

// NewColors creates the default color table.
//
// Whether escape sequences are emitted at all is decided by package color
// (see color.NoColor).
func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[ast.Kind]func(string, ...any) string{},
	}
	colors.Map[ast.IdentifierKind] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[ast.SymbolKind] = color.RGB(128, 168, 196).SprintfFunc()
	colors.Map[ast.OperatorKind] = color.RGB(255, 0, 196).SprintfFunc()
	colors.Map[ast.TextKind] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[ast.IntegerKind] = color.RGB(128, 216, 236).SprintfFunc()
	colors.Map[ast.DecimalKind] = color.RGB(128, 216, 236).SprintfFunc()
	colors.Map[ast.CommentKind] = color.BlueString
	colors.Map[ast.BottomKind] = color.RGB(168, 0, 196).SprintfFunc()
	colors.Map[ast.ErrorKind] = color.RedString
	for k, f := range colors.Map {
		f := f
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

// Color highlights s as text of kind k. A nil table does not color.
func (c *Colors) Color(k ast.Kind, s string) string {
	if c == nil {
		return s
	}
	return c.Get(k)(s)
}

// Get returns the highlighting function for kind k.
func (c *Colors) Get(k ast.Kind) func(string, ...any) string {
	f := c.Map[k]
	if f == nil {
		if c.Default == nil {
			return colorDefault
		}
		return c.Default
	}
	return f
}
