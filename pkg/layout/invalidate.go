package layout

import (
	"cmp"
	"slices"
)

// widening is a dirty node on the way to its recomputation root. resized is
// set when the node's own size may have changed, which is what can affect
// its parent.
type widening[ID cmp.Ordered] struct {
	id      ID
	resized bool
}

// FindBestRoot reconciles the dirty set into a single recomputation root and
// returns it. Measure restarts from this root; nodes above and beside it
// keep their cached areas.
//
// Every dirty node is widened to its parent while the parent's layout
// depends on it: the parent is fit-content, aligns its children away from
// the start, or has other children whose slots may move. Widening climbs
// further only through fit-content parents, whose own size follows their
// children. Absolute nodes widen to the parent that places them and stop
// there, and so does a node that switches between stacked, fill and
// absolute placement, unless the parent is fit-content. The resulting roots are folded pairwise through
// ClosestCommonParent, shallowest first. Ids the adapter reports as invalid
// are dropped.
//
// With nothing dirty it returns the previous root, or false if there was no
// previous Measure.
func (e *Engine[ID]) FindBestRoot(adapter TreeAdapter[ID]) (ID, bool) {
	e.reconciled = true
	if len(e.dirty) == 0 {
		if e.hasCandidate {
			return e.candidate, true
		}
		return e.lastRoot, e.hasRoot
	}
	if len(e.results) == 0 {
		// Nothing cached yet, the next pass is a full one.
		e.hasCandidate = false
		return e.lastRoot, e.hasRoot
	}

	tops := e.widen(adapter)
	if len(tops) == 0 {
		e.hasCandidate = false
		return e.lastRoot, e.hasRoot
	}

	root, ok := e.fold(tops, adapter)
	if !ok {
		tracer().Debugf("dirty nodes share no ancestor, falling back to a full pass")
		e.hasCandidate = false
		e.fullNext = true
		return e.lastRoot, e.hasRoot
	}

	// Restart from a node that has a cached slot.
	for {
		if _, cached := e.results[root]; cached {
			break
		}
		parent, ok := adapter.ParentOf(root)
		if !ok {
			break
		}
		root = parent
	}

	e.markPending(root, adapter)
	e.candidate, e.hasCandidate = root, true
	tracer().Debugf("recomputation root %v covers %d dirty nodes", root, len(e.dirty))
	return root, true
}

// widen grows the dirty set to every parent whose layout depends on a
// dirty child and returns the topmost dirty nodes.
func (e *Engine[ID]) widen(adapter TreeAdapter[ID]) []ID {
	work := make([]widening[ID], 0, len(e.dirty))
	seen := make(map[ID]bool, len(e.dirty)) // id -> queued as resized
	for _, id := range sortedKeys(e.dirty) {
		work = append(work, widening[ID]{id: id, resized: true})
		seen[id] = true
	}

	var tops []ID
	for len(work) > 0 {
		w := work[0]
		work = work[1:]

		if !adapter.IsNodeValid(w.id) {
			tracer().Debugf("dropping invalidated node %v, no longer in the tree", w.id)
			delete(e.dirty, w.id)
			continue
		}
		if !w.resized {
			tops = append(tops, w.id)
			continue
		}
		parent, ok := adapter.ParentOf(w.id)
		if !ok {
			tops = append(tops, w.id)
			continue
		}

		cnode, cok := adapter.GetNode(w.id)
		pnode, pok := adapter.GetNode(parent)
		var resized bool
		switch {
		case !cok || !pok || e.placementChanged(w.id, cnode, pnode.Direction):
			// The slot of the node comes from its parent.
			resized = !pok || pnode.IsInnerSized()
		case cnode.Position.IsAbsolute():
			// The parent places absolute children but never sizes around
			// them, so it is relaid without widening further.
			resized = false
		case e.affectsParent(parent, pnode, adapter):
			resized = pnode.IsInnerSized()
		default:
			tops = append(tops, w.id)
			continue
		}
		if queued, ok := seen[parent]; ok && (queued || !resized) {
			continue
		}
		seen[parent] = resized
		e.dirty[parent] = struct{}{}
		work = append(work, widening[ID]{id: parent, resized: resized})
	}
	return dedupe(tops)
}

// affectsParent reports whether a size change of a stacked child can change
// the layout of parent or of any sibling.
func (e *Engine[ID]) affectsParent(parent ID, pnode Node, adapter TreeAdapter[ID]) bool {
	if pnode.DependsOnChildren() {
		return true
	}
	return len(adapter.ChildrenOf(parent)) > 1
}

// placementChanged reports whether the parent would compute the slot of id
// differently than in the pass that cached it. Nodes without a cache entry
// count as changed.
func (e *Engine[ID]) placementChanged(id ID, node Node, dir Direction) bool {
	ln, ok := e.results[id]
	if !ok {
		return true
	}
	return ln.placement != placementOf(node, dir)
}

// fold reduces tops to their closest common parent, starting from the
// shallowest node.
func (e *Engine[ID]) fold(tops []ID, adapter TreeAdapter[ID]) (ID, bool) {
	depth := func(id ID) int {
		if h, ok := adapter.Height(id); ok {
			return h
		}
		return int(^uint(0) >> 1)
	}
	slices.SortFunc(tops, func(a, b ID) int {
		if c := cmp.Compare(depth(a), depth(b)); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	root := tops[0]
	for _, id := range tops[1:] {
		if id == root {
			continue
		}
		common, ok := adapter.ClosestCommonParent(root, id)
		if !ok {
			return root, false
		}
		root = common
	}
	return root, true
}

// markPending records every node on the path from a dirty node up to root,
// so the pass descends into them even when their slot is unchanged.
func (e *Engine[ID]) markPending(root ID, adapter TreeAdapter[ID]) {
	e.pending[root] = struct{}{}
	for id := range e.dirty {
		for cur := id; cur != root; {
			if _, ok := e.pending[cur]; ok {
				break
			}
			e.pending[cur] = struct{}{}
			parent, ok := adapter.ParentOf(cur)
			if !ok {
				break
			}
			cur = parent
		}
	}
}

func sortedKeys[ID cmp.Ordered](m map[ID]struct{}) []ID {
	keys := make([]ID, 0, len(m))
	for id := range m {
		keys = append(keys, id)
	}
	slices.Sort(keys)
	return keys
}

func dedupe[ID cmp.Ordered](ids []ID) []ID {
	slices.Sort(ids)
	return slices.Compact(ids)
}
