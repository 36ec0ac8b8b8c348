package render

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"
)

var escaper = strings.NewReplacer("\n", `\n`, "\t", `\t`, `\`, `\\`)

// quote renders a text literal. Newline, tab and backslash are escaped.
// Single quotes delimit the text, unless it contains a single quote but no
// double quote; then double quotes are used. The delimiter is escaped
// within the text.
func quote(value []rune) string {
	s := escaper.Replace(string(value))
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
	}
	return `'` + strings.ReplaceAll(s, `'`, `\'`) + `'`
}

// keywords splits a selector at colons. The segment after the last colon
// is dropped, so "frobWith:using:" yields [frobWith using].
func keywords(selector string) []string {
	parts := strings.Split(selector, ":")
	return parts[:len(parts)-1]
}
