package layout

import "cmp"

// Engine computes and caches the layout of a tree keyed by node ids of type
// ID. The zero value is not usable; create engines with New.
//
// An Engine is not safe for concurrent use. Independent engines share no
// state and may run on different goroutines.
type Engine[ID cmp.Ordered] struct {
	cfg config

	results map[ID]LayoutNode
	dirty   map[ID]struct{}
	pending map[ID]struct{} // dirty nodes and their ancestors up to candidate

	candidate    ID
	hasCandidate bool
	reconciled   bool
	fullNext     bool // dirty nodes could not be folded into one root

	lastRoot   ID
	hasRoot    bool
	rootArea   Area
	generation uint64

	stats Stats
}

// New creates an Engine with an empty cache and no root.
func New[ID cmp.Ordered](opts ...Option) *Engine[ID] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Engine[ID]{
		cfg:     cfg,
		results: make(map[ID]LayoutNode),
		dirty:   make(map[ID]struct{}),
		pending: make(map[ID]struct{}),
	}
}

// Invalidate marks id as needing a new layout. It only records the id;
// nothing is recomputed until the next Measure. Unknown ids are dropped
// when the dirty set is reconciled.
//
// The host must invalidate every node whose Node changed, and the parent of
// every node that was inserted or removed.
func (e *Engine[ID]) Invalidate(id ID) {
	e.dirty[id] = struct{}{}
	e.reconciled = false
}

// IsDirty reports whether id was invalidated since the last Measure.
func (e *Engine[ID]) IsDirty(id ID) bool {
	_, ok := e.dirty[id]
	return ok
}

// AreaOf returns the cached area of id.
func (e *Engine[ID]) AreaOf(id ID) (Area, bool) {
	ln, ok := e.results[id]
	return ln.Area, ok
}

// LayoutOf returns the full cached result of id.
func (e *Engine[ID]) LayoutOf(id ID) (LayoutNode, bool) {
	ln, ok := e.results[id]
	return ln, ok
}

// Len returns the number of cached entries.
func (e *Engine[ID]) Len() int {
	return len(e.results)
}

// Stats returns the counters of the most recent Measure call.
func (e *Engine[ID]) Stats() Stats {
	return e.stats
}

// Remove forgets everything cached for id. Hosts call it when a node leaves
// the tree.
func (e *Engine[ID]) Remove(id ID) {
	delete(e.results, id)
	delete(e.dirty, id)
	delete(e.pending, id)
	if e.hasCandidate && e.candidate == id {
		e.hasCandidate = false
		e.reconciled = false
	}
}

// Prune drops the cache entries of all ids the adapter no longer considers
// valid and returns how many were dropped.
func (e *Engine[ID]) Prune(adapter TreeAdapter[ID]) int {
	var dropped int
	for id := range e.results {
		if !adapter.IsNodeValid(id) {
			e.Remove(id)
			dropped++
		}
	}
	if dropped > 0 {
		tracer().Debugf("pruned %d stale layout entries", dropped)
	}
	return dropped
}

// Reset clears the cache and all invalidation state.
func (e *Engine[ID]) Reset() {
	clear(e.results)
	e.clearDirty()
	e.hasRoot = false
	e.rootArea = Area{}
	e.stats = Stats{Generation: e.generation}
}

// isStale reports whether id must be laid out again in the current pass.
func (e *Engine[ID]) isStale(id ID) bool {
	if _, ok := e.dirty[id]; ok {
		return true
	}
	_, ok := e.pending[id]
	return ok
}

// reusable returns the cached entry of id if it was computed for the same
// slot size and parent size and nothing below it changed since.
func (e *Engine[ID]) reusable(id ID, slot, parent Size) (LayoutNode, bool) {
	if e.isStale(id) {
		return LayoutNode{}, false
	}
	ln, ok := e.results[id]
	if !ok || ln.Available.Size != slot || ln.ParentInner.Size != parent {
		return LayoutNode{}, false
	}
	return ln, true
}

func (e *Engine[ID]) clearDirty() {
	clear(e.dirty)
	clear(e.pending)
	e.hasCandidate = false
	e.reconciled = false
	e.fullNext = false
}

// Measure lays out the tree and returns the area of rootID.
//
// rootArea is the space available to rootID. If nothing was invalidated
// since the previous call with the same root and root area, Measure returns
// the cached result without walking the tree. Otherwise it restarts from the
// recomputation root chosen by FindBestRoot (calling it if the host did
// not), reusing cached results of clean subtrees whose slot did not change.
// The first pass, a different root or a different root area lay out the
// whole tree.
//
// measurer may be nil.
func (e *Engine[ID]) Measure(rootID ID, rootArea Area, measurer Measurer[ID], adapter TreeAdapter[ID]) Area {
	full := e.cfg.fullRecompute || len(e.results) == 0 || !e.hasRoot ||
		e.lastRoot != rootID || e.rootArea != rootArea

	if !full && len(e.dirty) == 0 {
		e.stats = Stats{Generation: e.generation}
		ln := e.results[rootID]
		return ln.Area
	}
	if !full && !e.reconciled {
		e.FindBestRoot(adapter)
	}
	full = full || e.fullNext
	if !full && len(e.dirty) == 0 {
		// Every invalidated id left the tree.
		e.clearDirty()
		e.stats = Stats{Generation: e.generation}
		ln := e.results[rootID]
		return ln.Area
	}

	start, available, parent := rootID, rootArea, rootArea
	var pl placement
	if !full && e.hasCandidate && e.candidate != rootID {
		if ln, ok := e.results[e.candidate]; ok {
			start, available, parent, pl = e.candidate, ln.Available, ln.ParentInner, ln.placement
		} else {
			full = true
		}
	}

	node, ok := adapter.GetNode(start)
	if !ok {
		tracer().Errorf("layout root %v is not part of the tree", start)
		e.clearDirty()
		e.stats = Stats{Generation: e.generation}
		return Area{}
	}

	e.generation++
	p := &pass[ID]{
		e:          e,
		adapter:    adapter,
		measurer:   measurer,
		rootSize:   rootArea.Size,
		force:      full,
		generation: e.generation,
		sizes:      make(map[sizeKey[ID]]Size),
	}
	tracer().Debugf("layout pass %d from %v (full=%v, dirty=%d)", e.generation, start, full, len(e.dirty))
	p.commitNode(start, node, available, parent, pl, true)

	e.clearDirty()
	e.lastRoot, e.hasRoot, e.rootArea = rootID, true, rootArea
	p.stats.Generation = e.generation
	e.stats = p.stats

	ln := e.results[rootID]
	return ln.Area
}
