package layout

import "cmp"

// TreeAdapter is the view of the host's tree that the engine needs. All
// engine state is keyed by ID; the engine never holds references into host
// memory.
//
// Answers must stay consistent for the duration of one FindBestRoot and
// Measure pair. A cycle in ParentOf is a programming error in the host and
// leads to undefined behavior.
type TreeAdapter[ID cmp.Ordered] interface {
	// ChildrenOf returns the children of id in layout order. It returns nil
	// for leaves and unknown ids.
	ChildrenOf(id ID) []ID

	// ParentOf returns the parent of id, or false for a root.
	ParentOf(id ID) (ID, bool)

	// Height returns the distance of id from its root (roots are 0).
	Height(id ID) (int, bool)

	// GetNode returns a snapshot of the sizing rules of id, or false if the
	// node no longer exists.
	GetNode(id ID) (Node, bool)

	// IsNodeValid reports whether id still names a live node.
	IsNodeValid(id ID) bool

	// ClosestCommonParent returns the deepest node that is an ancestor of,
	// or equal to, both a and b.
	ClosestCommonParent(a, b ID) (ID, bool)
}
