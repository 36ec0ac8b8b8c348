package ast

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
)

// Well-known option keys and values, set by the parser and read by the renderer.
const (
	SourceKey     = "source"     // where a grouping or comment came from
	SourceBaseKey = "sourceBase" // numeric base an integer was written in
	AsKey         = "as"         // notation a decimal was written in

	ModuleSource = "module"     // value for SourceKey: top-level module body
	InlineSource = "inline"     // value for SourceKey: inline comment #- … -#
	Scientific   = "scientific" // value for AsKey
)

// Options is an immutable map of rendering and parsing metadata attached to
// a node. The zero value is an empty option set.
//
// Keys are kept in sorted order, so iteration and printing are deterministic.
type Options struct {
	m *treemap.Map // string → interface{}, nil if empty
}

// Option is a single key/value entry for constructing Options.
type Option struct {
	Key   string
	Value interface{}
}

// Opt creates an option entry.
func Opt(key string, value interface{}) Option {
	return Option{Key: key, Value: value}
}

// Source creates an option entry for SourceKey.
func Source(source string) Option {
	return Opt(SourceKey, source)
}

// SourceBase creates an option entry for SourceBaseKey.
func SourceBase(base int) Option {
	return Opt(SourceBaseKey, base)
}

// As creates an option entry for AsKey.
func As(notation string) Option {
	return Opt(AsKey, notation)
}

// NewOptions creates an option set from a list of entries. Later entries
// override earlier ones with the same key.
func NewOptions(opts ...Option) Options {
	return Options{}.With(opts...)
}

// With returns a copy of o with the given entries added. o is not modified.
func (o Options) With(opts ...Option) Options {
	if len(opts) == 0 {
		return o.clone()
	}
	c := o.clone()
	if c.m == nil {
		c.m = treemap.NewWithStringComparator()
	}
	for _, opt := range opts {
		c.m.Put(opt.Key, opt.Value)
	}
	return c
}

// clone creates an independent copy. Every node owns its own option set.
func (o Options) clone() Options {
	if o.m == nil || o.m.Size() == 0 {
		return Options{}
	}
	m := treemap.NewWithStringComparator()
	it := o.m.Iterator()
	for it.Next() {
		m.Put(it.Key(), it.Value())
	}
	return Options{m: m}
}

// Len returns the number of entries.
func (o Options) Len() int {
	if o.m == nil {
		return 0
	}
	return o.m.Size()
}

// Get returns the value for key.
func (o Options) Get(key string) (interface{}, bool) {
	if o.m == nil {
		return nil, false
	}
	return o.m.Get(key)
}

// Has is true if an entry for key exists.
func (o Options) Has(key string) bool {
	_, found := o.Get(key)
	return found
}

// GetString returns the value for key if it is a string, "" otherwise.
func (o Options) GetString(key string) string {
	if v, ok := o.Get(key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// GetInt returns the value for key if it is an integer.
func (o Options) GetInt(key string) (int, bool) {
	v, ok := o.Get(key)
	if !ok {
		return 0, false
	}
	switch i := v.(type) {
	case int:
		return i, true
	case int8:
		return int(i), true
	case int16:
		return int(i), true
	case int32:
		return int(i), true
	case int64:
		return int(i), true
	case uint8:
		return int(i), true
	case uint16:
		return int(i), true
	case uint32:
		return int(i), true
	}
	return 0, false
}

// Keys returns the option keys in sorted order.
func (o Options) Keys() []string {
	if o.m == nil {
		return nil
	}
	keys := make([]string, 0, o.m.Size())
	for _, k := range o.m.Keys() {
		keys = append(keys, k.(string))
	}
	return keys
}

// Entries returns all entries, sorted by key.
func (o Options) Entries() []Option {
	if o.m == nil {
		return nil
	}
	entries := make([]Option, 0, o.m.Size())
	it := o.m.Iterator()
	for it.Next() {
		entries = append(entries, Option{Key: it.Key().(string), Value: it.Value()})
	}
	return entries
}

func (o Options) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, e := range o.Entries() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%v", e.Key, e.Value)
	}
	b.WriteByte('}')
	return b.String()
}
