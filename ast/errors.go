package ast

import "errors"

var (
	// ErrMissingChild is the panic value (wrapped) when a node is constructed
	// without one of its mandatory children.
	ErrMissingChild = errors.New("missing child node")

	// ErrNilNode is the panic value (wrapped) when a mapper returns nil.
	ErrNilNode = errors.New("nil node")

	// ErrUnhandledKind is returned by DispatchStrict for incomplete handler tables.
	ErrUnhandledKind = errors.New("no handler for node kind")
)
