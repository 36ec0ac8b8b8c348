package ast

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"math/big"
)

// Atoms are terminal nodes holding primitive values. They are fixed points
// of Map: mapping an atom returns the very same atom, whatever the mapper.
// Fields of atoms must not be modified after construction.

// Identifier is a name, optionally followed by a postfix modifier
// like '?' or '!'. Selectors ("frobWith:using:") are identifiers, too.
type Identifier struct {
	meta
	Label    string
	Modifier string
}

// NewIdentifier creates an identifier without modifier.
func NewIdentifier(label string, opts ...Option) *Identifier {
	return &Identifier{meta: newMeta(opts), Label: label}
}

// NewModifiedIdentifier creates an identifier with a postfix modifier.
func NewModifiedIdentifier(label, modifier string, opts ...Option) *Identifier {
	return &Identifier{meta: newMeta(opts), Label: label, Modifier: modifier}
}

func (n *Identifier) Kind() Kind      { return IdentifierKind }
func (n *Identifier) Map(Mapper) Node { return n }

// Symbol is a symbol literal, written as .label
type Symbol struct {
	meta
	Label string
}

// NewSymbol creates a symbol.
func NewSymbol(label string, opts ...Option) *Symbol {
	return &Symbol{meta: newMeta(opts), Label: label}
}

func (n *Symbol) Kind() Kind      { return SymbolKind }
func (n *Symbol) Map(Mapper) Node { return n }

// Operator is an operator symbol like '+' or '++'.
type Operator struct {
	meta
	Label string
}

// NewOperator creates an operator.
func NewOperator(label string, opts ...Option) *Operator {
	return &Operator{meta: newMeta(opts), Label: label}
}

func (n *Operator) Kind() Kind      { return OperatorKind }
func (n *Operator) Map(Mapper) Node { return n }

// Text is a text literal, holding a sequence of Unicode code points.
type Text struct {
	meta
	Value []rune
}

// NewText creates a text literal from a Go string.
func NewText(s string, opts ...Option) *Text {
	return &Text{meta: newMeta(opts), Value: []rune(s)}
}

// NewTextFromRunes creates a text literal from code points. The slice is copied.
func NewTextFromRunes(value []rune, opts ...Option) *Text {
	v := make([]rune, len(value))
	copy(v, value)
	return &Text{meta: newMeta(opts), Value: v}
}

// UTF8String returns the text as a Go string.
func (n *Text) UTF8String() string {
	return string(n.Value)
}

func (n *Text) Kind() Kind      { return TextKind }
func (n *Text) Map(Mapper) Node { return n }

// Integer is an arbitrary precision integer literal. Option SourceBaseKey
// records the base the literal was written in.
type Integer struct {
	meta
	Value *big.Int
}

// NewInteger creates an integer literal from an int64.
func NewInteger(v int64, opts ...Option) *Integer {
	return &Integer{meta: newMeta(opts), Value: big.NewInt(v)}
}

// NewBigInteger creates an integer literal. v is copied; nil is taken as 0.
func NewBigInteger(v *big.Int, opts ...Option) *Integer {
	value := new(big.Int)
	if v != nil {
		value.Set(v)
	}
	return &Integer{meta: newMeta(opts), Value: value}
}

func (n *Integer) Kind() Kind      { return IntegerKind }
func (n *Integer) Map(Mapper) Node { return n }

// Decimal is a floating point literal. Option AsKey = Scientific records
// exponential notation in the source.
type Decimal struct {
	meta
	Value float64
}

// NewDecimal creates a decimal literal.
func NewDecimal(v float64, opts ...Option) *Decimal {
	return &Decimal{meta: newMeta(opts), Value: v}
}

func (n *Decimal) Kind() Kind      { return DecimalKind }
func (n *Decimal) Map(Mapper) Node { return n }

// Comment holds the text of a comment, without comment delimiters.
// Option SourceKey = InlineSource marks an inline comment.
type Comment struct {
	meta
	Text string
}

// NewComment creates a comment.
func NewComment(text string, opts ...Option) *Comment {
	return &Comment{meta: newMeta(opts), Text: text}
}

func (n *Comment) Kind() Kind      { return CommentKind }
func (n *Comment) Map(Mapper) Node { return n }

// Fragment is a piece of already rendered source text. Folds which compute
// text (see package render) replace children by fragments.
type Fragment struct {
	meta
	Text string
}

// NewFragment creates a fragment.
func NewFragment(text string, opts ...Option) *Fragment {
	return &Fragment{meta: newMeta(opts), Text: text}
}

func (n *Fragment) Kind() Kind      { return FragmentKind }
func (n *Fragment) Map(Mapper) Node { return n }
