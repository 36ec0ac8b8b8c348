/*
Package fp provides sequences over tree walks of GTFO syntax trees.

A sequence is created by Traverse, either top-down (pre-order) or
depth-first (post-order, children before their parent). Sequences may be
filtered and mapped, and are consumed with the idiom

    for node, T := seq.First(); !T.Done(); node = T.Next() {
        …
    }

Sequences are lazy and synchronous: each call to Next advances the walk by
one node. A sequence is consumed only once.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fp

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gtfo.ast'.
func tracer() tracing.Trace {
	return tracing.Select("gtfo.ast")
}
