// Package memtree is an in-memory tree host for the layout engine.
//
// A Tree stores layout nodes in an arena keyed by id and implements
// [layout.TreeAdapter]. It is the host used by the benchmark harness and the
// CLI, and a reference for embedding the engine into other trees.
package memtree

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/grindlemire/go-layout/pkg/layout"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'layout.memtree'.
func tracer() tracing.Trace {
	return tracing.Select("layout.memtree")
}

var (
	// ErrUnknownNode is returned for ids that are not part of the tree.
	ErrUnknownNode = errors.New("unknown node")
	// ErrDuplicateNode is returned when adding an id that is already present.
	ErrDuplicateNode = errors.New("duplicate node")
)

// slot is one arena entry. Removed slots are reused by later inserts.
type slot[ID cmp.Ordered] struct {
	id       ID
	node     layout.Node
	parent   int32 // arena index, -1 for roots
	depth    int
	children []ID
}

// Tree is an arena-backed tree of layout nodes.
//
// A Tree is not safe for concurrent use.
type Tree[ID cmp.Ordered] struct {
	arena []slot[ID]
	free  []int32
	index map[ID]int32
}

// New creates an empty Tree.
func New[ID cmp.Ordered]() *Tree[ID] {
	return &Tree[ID]{index: make(map[ID]int32)}
}

// Len returns the number of nodes in the tree.
func (t *Tree[ID]) Len() int {
	return len(t.index)
}

// AddRoot inserts id as a new root.
func (t *Tree[ID]) AddRoot(id ID, node layout.Node) error {
	if _, ok := t.index[id]; ok {
		return fmt.Errorf("failed to add root %v: %w", id, ErrDuplicateNode)
	}
	t.insert(slot[ID]{id: id, node: node, parent: -1})
	return nil
}

// Add appends id as the last child of parent.
func (t *Tree[ID]) Add(id, parent ID, node layout.Node) error {
	if _, ok := t.index[id]; ok {
		return fmt.Errorf("failed to add %v: %w", id, ErrDuplicateNode)
	}
	p, ok := t.index[parent]
	if !ok {
		return fmt.Errorf("failed to add %v below %v: %w", id, parent, ErrUnknownNode)
	}
	t.insert(slot[ID]{id: id, node: node, parent: p, depth: t.arena[p].depth + 1})
	t.arena[p].children = append(t.arena[p].children, id)
	return nil
}

func (t *Tree[ID]) insert(s slot[ID]) {
	var i int32
	if n := len(t.free); n > 0 {
		i = t.free[n-1]
		t.free = t.free[:n-1]
		t.arena[i] = s
	} else {
		i = int32(len(t.arena))
		t.arena = append(t.arena, s)
	}
	t.index[s.id] = i
}

// SetNode replaces the layout node of id. The caller is responsible for
// invalidating id in the engine.
func (t *Tree[ID]) SetNode(id ID, node layout.Node) error {
	i, ok := t.index[id]
	if !ok {
		return fmt.Errorf("failed to update %v: %w", id, ErrUnknownNode)
	}
	t.arena[i].node = node
	return nil
}

// Remove detaches id from its parent and drops its whole subtree. It returns
// the removed ids, parents before children, so the caller can forget them
// in the engine.
func (t *Tree[ID]) Remove(id ID) ([]ID, error) {
	i, ok := t.index[id]
	if !ok {
		return nil, fmt.Errorf("failed to remove %v: %w", id, ErrUnknownNode)
	}
	if p := t.arena[i].parent; p >= 0 {
		t.arena[p].children = slices.DeleteFunc(t.arena[p].children, func(c ID) bool { return c == id })
	}

	var removed []ID
	stack := []ID{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		ci := t.index[cur]
		removed = append(removed, cur)
		for j := len(t.arena[ci].children) - 1; j >= 0; j-- {
			stack = append(stack, t.arena[ci].children[j])
		}
		t.arena[ci] = slot[ID]{}
		delete(t.index, cur)
		t.free = append(t.free, ci)
	}
	tracer().Debugf("removed %d nodes below and including %v", len(removed), id)
	return removed, nil
}

// Walk calls fn for id and its descendants in depth-first order, parents
// before children. Walking stops early when fn returns false.
func (t *Tree[ID]) Walk(id ID, fn func(id ID, depth int) bool) {
	if _, ok := t.index[id]; !ok {
		return
	}
	stack := []ID{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		s := &t.arena[t.index[cur]]
		if !fn(cur, s.depth) {
			return
		}
		for j := len(s.children) - 1; j >= 0; j-- {
			stack = append(stack, s.children[j])
		}
	}
}

// --- layout.TreeAdapter -----------------------------------------------------

// ChildrenOf returns the children of id in insertion order.
func (t *Tree[ID]) ChildrenOf(id ID) []ID {
	if i, ok := t.index[id]; ok {
		return t.arena[i].children
	}
	return nil
}

// ParentOf returns the parent of id, or false for roots and unknown ids.
func (t *Tree[ID]) ParentOf(id ID) (ID, bool) {
	var zero ID
	i, ok := t.index[id]
	if !ok || t.arena[i].parent < 0 {
		return zero, false
	}
	return t.arena[t.arena[i].parent].id, true
}

// Height returns the depth of id below its root.
func (t *Tree[ID]) Height(id ID) (int, bool) {
	i, ok := t.index[id]
	if !ok {
		return 0, false
	}
	return t.arena[i].depth, true
}

// GetNode returns the layout node of id.
func (t *Tree[ID]) GetNode(id ID) (layout.Node, bool) {
	i, ok := t.index[id]
	if !ok {
		return layout.Node{}, false
	}
	return t.arena[i].node, true
}

// IsNodeValid reports whether id is part of the tree.
func (t *Tree[ID]) IsNodeValid(id ID) bool {
	_, ok := t.index[id]
	return ok
}

// ClosestCommonParent returns the deepest node that is an ancestor of, or
// equal to, both a and b. It fails for unknown ids and for nodes in
// different trees.
func (t *Tree[ID]) ClosestCommonParent(a, b ID) (ID, bool) {
	var zero ID
	ia, ok := t.index[a]
	if !ok {
		return zero, false
	}
	ib, ok := t.index[b]
	if !ok {
		return zero, false
	}
	for t.arena[ia].depth > t.arena[ib].depth {
		ia = t.arena[ia].parent
	}
	for t.arena[ib].depth > t.arena[ia].depth {
		ib = t.arena[ib].parent
	}
	for ia != ib {
		ia, ib = t.arena[ia].parent, t.arena[ib].parent
		if ia < 0 || ib < 0 {
			tracer().Debugf("%v and %v have no common parent", a, b)
			return zero, false
		}
	}
	return t.arena[ia].id, true
}

var _ layout.TreeAdapter[int] = (*Tree[int])(nil)
