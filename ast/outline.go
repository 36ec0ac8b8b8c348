package ast

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/cnf/structhash"
)

// Outline is a plain-data description of a tree: variant names, atom values
// as strings, options and children. Outlines are used to compare and hash
// trees, and to dump them for debugging.
type Outline struct {
	Kind     string            `yaml:"kind"`
	Payload  []string          `yaml:"payload,omitempty"`
	Options  map[string]string `yaml:"options,omitempty"`
	Children []Outline         `yaml:"children,omitempty"`
}

// OutlineOf creates the outline of a tree. A nil node has an empty outline.
func OutlineOf(n Node) Outline {
	if n == nil {
		return Outline{}
	}
	o := Outline{
		Kind:    n.Kind().String(),
		Payload: payload(n),
	}
	if opts := n.Options(); opts.Len() > 0 {
		o.Options = make(map[string]string, opts.Len())
		for _, e := range opts.Entries() {
			o.Options[e.Key] = fmt.Sprint(e.Value)
		}
	}
	for _, ch := range Children(n) {
		o.Children = append(o.Children, OutlineOf(ch))
	}
	return o
}

func payload(n Node) []string {
	switch a := n.(type) {
	case *Identifier:
		return []string{a.Label, a.Modifier}
	case *Symbol:
		return []string{a.Label}
	case *Operator:
		return []string{a.Label}
	case *Text:
		return []string{a.UTF8String()}
	case *Integer:
		return []string{a.Value.String()}
	case *Decimal:
		return []string{strconv.FormatFloat(a.Value, 'g', -1, 64)}
	case *Comment:
		return []string{a.Text}
	case *Fragment:
		return []string{a.Text}
	case *Error:
		return []string{fmt.Sprint(a.Subject), a.Message}
	}
	return nil
}

// Fingerprint returns a hash of the outline of a tree. Structurally equal
// trees have equal fingerprints.
func Fingerprint(n Node) string {
	h, err := structhash.Hash(OutlineOf(n), 1)
	if err != nil {
		tracer().Errorf("cannot fingerprint %s node: %v", kindOf(n), err)
		return ""
	}
	return h
}

// Equal is true if two trees are structurally equal: same variants, same
// atom values, same options, in the same shape.
func Equal(a, b Node) bool {
	fa, fb := Fingerprint(a), Fingerprint(b)
	if fa == "" || fb == "" {
		return reflect.DeepEqual(OutlineOf(a), OutlineOf(b))
	}
	return fa == fb
}

func kindOf(n Node) Kind {
	if n == nil {
		return NoKind
	}
	return n.Kind()
}
