package ast

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Enveloped is implemented by the bracketing variants. Shape depends on
// the variant only.
type Enveloped interface {
	Node
	Shape() string
	Elements() []Node
}

// Parens groups expressions in ( … ).
type Parens struct {
	meta
	Exprs []Node
}

// NewParens creates a parenthesized group. The slice is copied.
func NewParens(exprs []Node, opts ...Option) *Parens {
	return &Parens{meta: newMeta(opts), Exprs: mustAll(ParensKind, "Exprs", exprs)}
}

func (n *Parens) Kind() Kind         { return ParensKind }
func (n *Parens) Shape() string      { return "()" }
func (n *Parens) Elements() []Node   { return n.Exprs }
func (n *Parens) Map(fn Mapper) Node { return &Parens{meta: n.copy(), Exprs: mapAll(fn, n.Exprs)} }

// Brackets groups expressions in [ … ].
type Brackets struct {
	meta
	Exprs []Node
}

// NewBrackets creates a bracketed group. The slice is copied.
func NewBrackets(exprs []Node, opts ...Option) *Brackets {
	return &Brackets{meta: newMeta(opts), Exprs: mustAll(BracketsKind, "Exprs", exprs)}
}

func (n *Brackets) Kind() Kind       { return BracketsKind }
func (n *Brackets) Shape() string    { return "[]" }
func (n *Brackets) Elements() []Node { return n.Exprs }
func (n *Brackets) Map(fn Mapper) Node {
	return &Brackets{meta: n.copy(), Exprs: mapAll(fn, n.Exprs)}
}

// Braces groups expressions in { … }. With option SourceKey = ModuleSource
// it stands for the body of a module and has no visible braces.
type Braces struct {
	meta
	Exprs []Node
}

// NewBraces creates a braced group. The slice is copied.
func NewBraces(exprs []Node, opts ...Option) *Braces {
	return &Braces{meta: newMeta(opts), Exprs: mustAll(BracesKind, "Exprs", exprs)}
}

func (n *Braces) Kind() Kind         { return BracesKind }
func (n *Braces) Shape() string      { return "{}" }
func (n *Braces) Elements() []Node   { return n.Exprs }
func (n *Braces) Map(fn Mapper) Node { return &Braces{meta: n.copy(), Exprs: mapAll(fn, n.Exprs)} }

// AngleBars groups expressions in <| … |>.
type AngleBars struct {
	meta
	Exprs []Node
}

// NewAngleBars creates an angle-bar group. The slice is copied.
func NewAngleBars(exprs []Node, opts ...Option) *AngleBars {
	return &AngleBars{meta: newMeta(opts), Exprs: mustAll(AngleBarsKind, "Exprs", exprs)}
}

func (n *AngleBars) Kind() Kind       { return AngleBarsKind }
func (n *AngleBars) Shape() string    { return "<||>" }
func (n *AngleBars) Elements() []Node { return n.Exprs }
func (n *AngleBars) Map(fn Mapper) Node {
	return &AngleBars{meta: n.copy(), Exprs: mapAll(fn, n.Exprs)}
}

// AngleBrackets groups expressions in <[ … ]>.
type AngleBrackets struct {
	meta
	Exprs []Node
}

// NewAngleBrackets creates an angle-bracket group. The slice is copied.
func NewAngleBrackets(exprs []Node, opts ...Option) *AngleBrackets {
	return &AngleBrackets{meta: newMeta(opts), Exprs: mustAll(AngleBracketsKind, "Exprs", exprs)}
}

func (n *AngleBrackets) Kind() Kind       { return AngleBracketsKind }
func (n *AngleBrackets) Shape() string    { return "<[]>" }
func (n *AngleBrackets) Elements() []Node { return n.Exprs }
func (n *AngleBrackets) Map(fn Mapper) Node {
	return &AngleBrackets{meta: n.copy(), Exprs: mapAll(fn, n.Exprs)}
}

// NewEnvelope creates the envelope variant for a shape, or nil for an
// unknown shape.
func NewEnvelope(shape string, exprs []Node, opts ...Option) Enveloped {
	switch shape {
	case "()":
		return NewParens(exprs, opts...)
	case "[]":
		return NewBrackets(exprs, opts...)
	case "{}":
		return NewBraces(exprs, opts...)
	case "<||>":
		return NewAngleBars(exprs, opts...)
	case "<[]>":
		return NewAngleBrackets(exprs, opts...)
	}
	tracer().Errorf("unknown envelope shape %q", shape)
	return nil
}
