package ast

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Composite nodes rebuild themselves on Map: the result is a new node of the
// same variant, holding the mapped children and a copy of the options.

// Expression is a sequence of juxtaposed terms, e.g. one line of code.
type Expression struct {
	meta
	Terms []Node
}

// NewExpression creates an expression from its terms. The slice is copied.
func NewExpression(terms []Node, opts ...Option) *Expression {
	return &Expression{meta: newMeta(opts), Terms: mustAll(ExpressionKind, "Terms", terms)}
}

func (n *Expression) Kind() Kind { return ExpressionKind }
func (n *Expression) Map(fn Mapper) Node {
	return &Expression{meta: n.copy(), Terms: mapAll(fn, n.Terms)}
}

// Complex is a complex number literal. Real is nil for a pure imaginary
// literal like 3j.
type Complex struct {
	meta
	Real      Node
	Imaginary Node
}

// NewComplex creates a complex literal re + im j. re may be nil.
func NewComplex(re, im Node, opts ...Option) *Complex {
	return &Complex{
		meta:      newMeta(opts),
		Real:      re,
		Imaginary: must(ComplexKind, "Imaginary", im),
	}
}

func (n *Complex) Kind() Kind { return ComplexKind }
func (n *Complex) Map(fn Mapper) Node {
	return &Complex{
		meta:      n.copy(),
		Real:      mapOptional(fn, n.Real),
		Imaginary: mapChild(fn, n.Imaginary),
	}
}

// Block is a program body: the top-level module or the body of a lambda.
type Block struct {
	meta
	Exprs []Node
}

// NewBlock creates a block. The slice is copied.
func NewBlock(exprs []Node, opts ...Option) *Block {
	return &Block{meta: newMeta(opts), Exprs: mustAll(BlockKind, "Exprs", exprs)}
}

func (n *Block) Kind() Kind         { return BlockKind }
func (n *Block) Map(fn Mapper) Node { return &Block{meta: n.copy(), Exprs: mapAll(fn, n.Exprs)} }

// Assign binds a value to an identifier.
type Assign struct {
	meta
	Ident Node
	Value Node
}

// NewAssign creates an assignment ident = value.
func NewAssign(ident, value Node, opts ...Option) *Assign {
	return &Assign{
		meta:  newMeta(opts),
		Ident: must(AssignKind, "Ident", ident),
		Value: must(AssignKind, "Value", value),
	}
}

func (n *Assign) Kind() Kind { return AssignKind }
func (n *Assign) Map(fn Mapper) Node {
	return &Assign{meta: n.copy(), Ident: mapChild(fn, n.Ident), Value: mapChild(fn, n.Value)}
}

// MessageSend sends a keyword message to a receiver. The selector is
// colon-delimited, one keyword per argument, e.g. "frobWith:using:".
type MessageSend struct {
	meta
	Receiver Node
	Selector Node
	Args     []Node
}

// NewMessageSend creates a message send. The argument slice is copied.
func NewMessageSend(receiver, selector Node, args []Node, opts ...Option) *MessageSend {
	return &MessageSend{
		meta:     newMeta(opts),
		Receiver: must(MessageSendKind, "Receiver", receiver),
		Selector: must(MessageSendKind, "Selector", selector),
		Args:     mustAll(MessageSendKind, "Args", args),
	}
}

func (n *MessageSend) Kind() Kind { return MessageSendKind }
func (n *MessageSend) Map(fn Mapper) Node {
	return &MessageSend{
		meta:     n.copy(),
		Receiver: mapChild(fn, n.Receiver),
		Selector: mapChild(fn, n.Selector),
		Args:     mapAll(fn, n.Args),
	}
}

// SymbolLookup looks up a symbol in a receiver, as in a.b
type SymbolLookup struct {
	meta
	Receiver Node
	Symbol   Node
}

// NewSymbolLookup creates a symbol lookup.
func NewSymbolLookup(receiver, symbol Node, opts ...Option) *SymbolLookup {
	return &SymbolLookup{
		meta:     newMeta(opts),
		Receiver: must(SymbolLookupKind, "Receiver", receiver),
		Symbol:   must(SymbolLookupKind, "Symbol", symbol),
	}
}

func (n *SymbolLookup) Kind() Kind { return SymbolLookupKind }
func (n *SymbolLookup) Map(fn Mapper) Node {
	return &SymbolLookup{meta: n.copy(), Receiver: mapChild(fn, n.Receiver), Symbol: mapChild(fn, n.Symbol)}
}

// Subscript indexes a receiver, as in a[i]
type Subscript struct {
	meta
	Receiver  Node
	Subscript Node
}

// NewSubscript creates a subscript expression.
func NewSubscript(receiver, subscript Node, opts ...Option) *Subscript {
	return &Subscript{
		meta:      newMeta(opts),
		Receiver:  must(SubscriptKind, "Receiver", receiver),
		Subscript: must(SubscriptKind, "Subscript", subscript),
	}
}

func (n *Subscript) Kind() Kind { return SubscriptKind }
func (n *Subscript) Map(fn Mapper) Node {
	return &Subscript{meta: n.copy(), Receiver: mapChild(fn, n.Receiver), Subscript: mapChild(fn, n.Subscript)}
}

// PrefixExpression applies a prefix operator, as in -x
type PrefixExpression struct {
	meta
	Oper Node
	Expr Node
}

// NewPrefixExpression creates a prefix expression.
func NewPrefixExpression(oper, expr Node, opts ...Option) *PrefixExpression {
	return &PrefixExpression{
		meta: newMeta(opts),
		Oper: must(PrefixExpressionKind, "Oper", oper),
		Expr: must(PrefixExpressionKind, "Expr", expr),
	}
}

func (n *PrefixExpression) Kind() Kind { return PrefixExpressionKind }
func (n *PrefixExpression) Map(fn Mapper) Node {
	return &PrefixExpression{meta: n.copy(), Oper: mapChild(fn, n.Oper), Expr: mapChild(fn, n.Expr)}
}

// InfixExpression applies a binary operator, as in a + b
type InfixExpression struct {
	meta
	Oper  Node
	LExpr Node
	RExpr Node
}

// NewInfixExpression creates an infix expression lexpr oper rexpr.
func NewInfixExpression(oper, lexpr, rexpr Node, opts ...Option) *InfixExpression {
	return &InfixExpression{
		meta:  newMeta(opts),
		Oper:  must(InfixExpressionKind, "Oper", oper),
		LExpr: must(InfixExpressionKind, "LExpr", lexpr),
		RExpr: must(InfixExpressionKind, "RExpr", rexpr),
	}
}

func (n *InfixExpression) Kind() Kind { return InfixExpressionKind }
func (n *InfixExpression) Map(fn Mapper) Node {
	return &InfixExpression{
		meta:  n.copy(),
		Oper:  mapChild(fn, n.Oper),
		LExpr: mapChild(fn, n.LExpr),
		RExpr: mapChild(fn, n.RExpr),
	}
}

// Method is a method literal: keyword parameters and a body,
// rendered as (kw: arg, …) => body
type Method struct {
	meta
	Selector Node
	Args     []Node
	Block    Node
}

// NewMethod creates a method literal. The argument slice is copied.
func NewMethod(selector Node, args []Node, block Node, opts ...Option) *Method {
	return &Method{
		meta:     newMeta(opts),
		Selector: must(MethodKind, "Selector", selector),
		Args:     mustAll(MethodKind, "Args", args),
		Block:    must(MethodKind, "Block", block),
	}
}

func (n *Method) Kind() Kind { return MethodKind }
func (n *Method) Map(fn Mapper) Node {
	return &Method{
		meta:     n.copy(),
		Selector: mapChild(fn, n.Selector),
		Args:     mapAll(fn, n.Args),
		Block:    mapChild(fn, n.Block),
	}
}

// List is a list literal.
type List struct {
	meta
	Items []Node
}

// NewList creates a list literal. The slice is copied.
func NewList(items []Node, opts ...Option) *List {
	return &List{meta: newMeta(opts), Items: mustAll(ListKind, "Items", items)}
}

func (n *List) Kind() Kind         { return ListKind }
func (n *List) Map(fn Mapper) Node { return &List{meta: n.copy(), Items: mapAll(fn, n.Items)} }

// Dictionary is a dictionary literal. Its items are usually Pairs.
type Dictionary struct {
	meta
	Items []Node
}

// NewDictionary creates a dictionary literal. The slice is copied.
func NewDictionary(items []Node, opts ...Option) *Dictionary {
	return &Dictionary{meta: newMeta(opts), Items: mustAll(DictionaryKind, "Items", items)}
}

func (n *Dictionary) Kind() Kind { return DictionaryKind }
func (n *Dictionary) Map(fn Mapper) Node {
	return &Dictionary{meta: n.copy(), Items: mapAll(fn, n.Items)}
}

// Pair is a key/value entry of a dictionary.
type Pair struct {
	meta
	Key   Node
	Value Node
}

// NewPair creates a dictionary entry.
func NewPair(key, value Node, opts ...Option) *Pair {
	return &Pair{
		meta:  newMeta(opts),
		Key:   must(PairKind, "Key", key),
		Value: must(PairKind, "Value", value),
	}
}

func (n *Pair) Kind() Kind { return PairKind }
func (n *Pair) Map(fn Mapper) Node {
	return &Pair{meta: n.copy(), Key: mapChild(fn, n.Key), Value: mapChild(fn, n.Value)}
}

// Bottom is the undefined value, a placeholder. It has no children.
type Bottom struct {
	meta
}

// NewBottom creates a placeholder node.
func NewBottom(opts ...Option) *Bottom {
	return &Bottom{meta: newMeta(opts)}
}

func (n *Bottom) Kind() Kind      { return BottomKind }
func (n *Bottom) Map(Mapper) Node { return n }

// Error captures a parse failure. Consumed is the input consumed so far,
// Encountered the unexpected node. Subject and Message are payload and are
// not visited by Map.
type Error struct {
	meta
	Subject     interface{}
	Message     string
	Consumed    Node
	Encountered Node
}

// NewError creates an error node. Use Bottom for absent sub-nodes.
func NewError(subject interface{}, message string, consumed, encountered Node, opts ...Option) *Error {
	return &Error{
		meta:        newMeta(opts),
		Subject:     subject,
		Message:     message,
		Consumed:    must(ErrorKind, "Consumed", consumed),
		Encountered: must(ErrorKind, "Encountered", encountered),
	}
}

func (n *Error) Kind() Kind { return ErrorKind }
func (n *Error) Map(fn Mapper) Node {
	return &Error{
		meta:        n.copy(),
		Subject:     n.Subject,
		Message:     n.Message,
		Consumed:    mapChild(fn, n.Consumed),
		Encountered: mapChild(fn, n.Encountered),
	}
}
