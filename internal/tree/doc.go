/*
Package tree implements the balanced B-tree of string leaves that backs a
persistent rope: construction, rebalancing, the history-aware descent used
for locating an index, and the mutating operations (insert, delete, split,
concat) that rebuild only the spine touched by an edit.

Every node produced by this package is immutable; mutation always returns a
new node while sharing untouched subtrees with its predecessor. The package
is not part of the public API of the enclosing module — see the top-level
rope package for the exported surface.

# BSD License

Please refer to the License file for details.
*/
package tree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer returns the shared core tracer used for descent and mutation
// diagnostics.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		tracer().Errorf("internal invariant violated: %s", msg)
		panic(msg)
	}
}
