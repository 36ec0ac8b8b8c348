package render

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/npillmayer/gtfo/ast"
)

// Fprint writes the rendering of n to w, followed by a newline. If no
// colors have been configured and w is a terminal, output is highlighted
// with NewColors().
func Fprint(w io.Writer, n ast.Node, opts ...Option) error {
	opts = terminalOptions(w, opts)
	_, err := io.WriteString(w, Render(n, opts...)+"\n")
	return err
}

func terminalOptions(w io.Writer, opts []Option) []Option {
	if newRenderer(opts).colorsSet {
		return opts
	}
	f, ok := w.(*os.File)
	if !ok {
		return opts
	}
	if isatty.IsTerminal(f.Fd()) {
		tracer().Debugf("output is a terminal, highlighting syntax")
		return append(opts, WithColors(NewColors()))
	}
	return opts
}
