// Package layout implements an incremental layout engine over an externally
// owned tree.
//
// The host owns the tree and exposes it through a [TreeAdapter]. Every entry
// carries a [Node] describing how it wants to be sized (fixed, percentage,
// fill, fit-content) and how it stacks its children. An [Engine] computes the
// [Area] of every node, caches it by node id, and after [Engine.Invalidate]
// recomputes only the subtree below the best recomputation root chosen by
// [Engine.FindBestRoot].
//
// Nodes whose natural size cannot be derived from sizing rules alone, such as
// text, report it through an optional [Measurer].
//
// The engine performs no locking. The host serializes tree mutation,
// invalidation and measurement.
package layout

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'layout.engine'.
func tracer() tracing.Trace {
	return tracing.Select("layout.engine")
}
