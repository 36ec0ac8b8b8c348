package ast

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "fmt"

// Kind is the type tag of a node variant. The set of kinds is closed.
type Kind int8

// Kinds of nodes. Atoms come first, then envelopes, then the other composites.
const (
	NoKind Kind = iota
	IdentifierKind
	SymbolKind
	OperatorKind
	TextKind
	IntegerKind
	DecimalKind
	CommentKind
	FragmentKind
	ParensKind
	BracketsKind
	BracesKind
	AngleBarsKind
	AngleBracketsKind
	ExpressionKind
	ComplexKind
	BlockKind
	AssignKind
	MessageSendKind
	SymbolLookupKind
	SubscriptKind
	PrefixExpressionKind
	InfixExpressionKind
	MethodKind
	ListKind
	DictionaryKind
	PairKind
	BottomKind
	ErrorKind
	kindCount // sentinel
)

var kindNames = [...]string{
	NoKind:               "<none>",
	IdentifierKind:       "Identifier",
	SymbolKind:           "Symbol",
	OperatorKind:         "Operator",
	TextKind:             "Text",
	IntegerKind:          "Integer",
	DecimalKind:          "Decimal",
	CommentKind:          "Comment",
	FragmentKind:         "Fragment",
	ParensKind:           "Parens",
	BracketsKind:         "Brackets",
	BracesKind:           "Braces",
	AngleBarsKind:        "AngleBars",
	AngleBracketsKind:    "AngleBrackets",
	ExpressionKind:       "Expression",
	ComplexKind:          "Complex",
	BlockKind:            "Block",
	AssignKind:           "Assign",
	MessageSendKind:      "MessageSend",
	SymbolLookupKind:     "SymbolLookup",
	SubscriptKind:        "Subscript",
	PrefixExpressionKind: "PrefixExpression",
	InfixExpressionKind:  "InfixExpression",
	MethodKind:           "Method",
	ListKind:             "List",
	DictionaryKind:       "Dictionary",
	PairKind:             "Pair",
	BottomKind:           "Bottom",
	ErrorKind:            "Error",
}

// String returns the variant name of a kind, e.g. "MessageSend".
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// IsAtom is true for kinds without children.
func (k Kind) IsAtom() bool {
	return k >= IdentifierKind && k <= FragmentKind
}

// IsEnvelope is true for the bracketing kinds Parens … AngleBrackets.
func (k Kind) IsEnvelope() bool {
	return k >= ParensKind && k <= AngleBracketsKind
}

// Kinds returns all valid kinds in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount-1)
	for k := IdentifierKind; k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// KindFromString looks up a kind by its variant name.
// It returns NoKind for unknown names.
func KindFromString(name string) Kind {
	for k := IdentifierKind; k < kindCount; k++ {
		if kindNames[k] == name {
			return k
		}
	}
	return NoKind
}
