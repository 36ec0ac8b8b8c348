package ast

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "fmt"

// SpanKey is the option key under which a parser records the input span of
// a node.
const SpanKey = "span"

// Span is a small type for capturing the run of input a node was parsed
// from. A span denotes a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull is true for the zero span.
func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span covering s and other. Null spans are
// neutral.
func (s Span) Extend(other Span) Span {
	if s.IsNull() {
		return other
	}
	if other.IsNull() {
		return s
	}
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

// At creates an option entry for SpanKey.
func At(from, to uint64) Option {
	return Opt(SpanKey, Span{from, to})
}

// Span returns the span recorded in the options, if any.
func (o Options) Span() (Span, bool) {
	v, ok := o.Get(SpanKey)
	if !ok {
		return Span{}, false
	}
	s, ok := v.(Span)
	return s, ok
}

// SpanOf returns the input span of a tree. Nodes without a recorded span
// cover the spans of their children; the result is the null span if no node
// of the tree has one.
func SpanOf(n Node) Span {
	if n == nil {
		return Span{}
	}
	if s, ok := n.Options().Span(); ok {
		return s
	}
	var s Span
	for _, ch := range Children(n) {
		s = s.Extend(SpanOf(ch))
	}
	return s
}
