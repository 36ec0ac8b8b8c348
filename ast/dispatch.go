package ast

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// Handler computes a node from a node of a given kind.
type Handler func(Node) Node

// Handlers is a table of handlers, keyed by node kind. Lookup is by exact
// kind; there is no fallback to a more general handler.
type Handlers map[Kind]Handler

// Dispatch creates a mapper from a handler table. Nodes of kinds without a
// registered handler are returned unchanged.
//
// The result is suitable as argument for FoldUp and RewriteDown.
func Dispatch(h Handlers) Mapper {
	return func(n Node) Node {
		if n == nil {
			panic("nil node as mapper input")
		}
		if handler, ok := h[n.Kind()]; ok && handler != nil {
			return handler(n)
		}
		return n
	}
}

// DispatchStrict is like Dispatch, but returns an error wrapping
// ErrUnhandledKind if h does not cover every kind.
func DispatchStrict(h Handlers) (Mapper, error) {
	if missing := h.Missing(); len(missing) > 0 {
		tracer().Infof("handler table misses %d kinds", len(missing))
		return nil, fmt.Errorf("%w: %v", ErrUnhandledKind, missing)
	}
	return Dispatch(h), nil
}

// Missing returns the kinds among kinds for which no handler is registered,
// in ascending order and without duplicates. If kinds is empty, all kinds
// are checked.
func (h Handlers) Missing(kinds ...Kind) []Kind {
	if len(kinds) == 0 {
		kinds = Kinds()
	}
	set := treeset.NewWith(kindComparator)
	for _, k := range kinds {
		if handler, ok := h[k]; !ok || handler == nil {
			set.Add(k)
		}
	}
	missing := make([]Kind, 0, set.Size())
	for _, v := range set.Values() {
		missing = append(missing, v.(Kind))
	}
	return missing
}

// Merge returns a new table containing the handlers of h, overridden by
// those of other.
func (h Handlers) Merge(other Handlers) Handlers {
	merged := make(Handlers, len(h)+len(other))
	for k, handler := range h {
		merged[k] = handler
	}
	for k, handler := range other {
		merged[k] = handler
	}
	return merged
}

func kindComparator(k1, k2 interface{}) int {
	return utils.IntComparator(int(k1.(Kind)), int(k2.(Kind)))
}
