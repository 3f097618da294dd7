/*
Package rope offers a persistent, immutable string enhancement to ease
handling of large, frequently edited texts.

Ropes (sometimes called cords) organize fragments of immutable text
internally in a balanced tree-structure. This speeds up frequent
string-operations like concatenation, insertion and deletion, especially
for long strings, since every operation shares untouched structure with
its predecessor instead of copying the whole text.

From Wikipedia:
In computer programming, a rope, or cord, is a data structure composed of
smaller strings that is used to efficiently store and manipulate a very long
string. For example, a text editing program may use a rope to represent the
text being edited, so that operations such as insertion, deletion, and
random access can be done efficiently. Ropes are preferable when the data is
large and modified often.

_________________________________________________________________________

Every value of type Rope is immutable: every operation below returns a new
Rope, sharing subtrees with the receiver rather than copying them. Two Ropes
may be used concurrently by independent goroutines precisely because neither
can be mutated in place.

BSD 3-Clause License

Please refer to the License file in the repository root.
*/
package rope

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer returns the shared core tracer used for rope-level diagnostics.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
