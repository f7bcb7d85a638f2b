package layout

import (
	"slices"
	"testing"
)

// testTree is a minimal TreeAdapter for testing the layout algorithm. Hosts
// normally keep their own structure; this one keeps parent and children
// links in maps keyed by int ids.
type testTree struct {
	nodes    map[int]Node
	parent   map[int]int
	children map[int][]int
}

func newTestTree() *testTree {
	return &testTree{
		nodes:    make(map[int]Node),
		parent:   make(map[int]int),
		children: make(map[int][]int),
	}
}

// add inserts id below parent. A negative parent makes id a root.
func (t *testTree) add(id, parent int, n Node) *testTree {
	t.nodes[id] = n
	if parent >= 0 {
		t.parent[id] = parent
		t.children[parent] = append(t.children[parent], id)
	}
	return t
}

// set replaces the node of id.
func (t *testTree) set(id int, n Node) {
	t.nodes[id] = n
}

// remove detaches id and drops its whole subtree.
func (t *testTree) remove(id int) {
	if p, ok := t.parent[id]; ok {
		t.children[p] = slices.DeleteFunc(t.children[p], func(c int) bool { return c == id })
	}
	var drop func(int)
	drop = func(n int) {
		for _, c := range t.children[n] {
			drop(c)
		}
		delete(t.nodes, n)
		delete(t.parent, n)
		delete(t.children, n)
	}
	drop(id)
}

func (t *testTree) ChildrenOf(id int) []int { return t.children[id] }

func (t *testTree) ParentOf(id int) (int, bool) {
	p, ok := t.parent[id]
	return p, ok
}

func (t *testTree) Height(id int) (int, bool) {
	if _, ok := t.nodes[id]; !ok {
		return 0, false
	}
	h := 0
	for p, ok := t.parent[id]; ok; p, ok = t.parent[p] {
		h++
	}
	return h, true
}

func (t *testTree) GetNode(id int) (Node, bool) {
	n, ok := t.nodes[id]
	return n, ok
}

func (t *testTree) IsNodeValid(id int) bool {
	_, ok := t.nodes[id]
	return ok
}

func (t *testTree) ClosestCommonParent(a, b int) (int, bool) {
	ha, ok := t.Height(a)
	if !ok {
		return 0, false
	}
	hb, ok := t.Height(b)
	if !ok {
		return 0, false
	}
	for ha > hb {
		a = t.parent[a]
		ha--
	}
	for hb > ha {
		b = t.parent[b]
		hb--
	}
	for a != b {
		pa, oka := t.parent[a]
		pb, okb := t.parent[b]
		if !oka || !okb {
			return 0, false
		}
		a, b = pa, pb
	}
	return a, true
}

// ids returns all node ids in ascending order.
func (t *testTree) ids() []int {
	ids := make([]int, 0, len(t.nodes))
	for id := range t.nodes {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

var _ TreeAdapter[int] = (*testTree)(nil)

func TestTestTree_ClosestCommonParent(t *testing.T) {
	//     1
	//    / \
	//   2   3
	//  / \
	// 4   5
	tree := newTestTree().
		add(1, -1, NewNode()).
		add(2, 1, NewNode()).
		add(3, 1, NewNode()).
		add(4, 2, NewNode()).
		add(5, 2, NewNode())

	type tc struct {
		a, b   int
		expect int
		ok     bool
	}

	tests := map[string]tc{
		"siblings":          {a: 4, b: 5, expect: 2, ok: true},
		"cousins":           {a: 4, b: 3, expect: 1, ok: true},
		"ancestor and self": {a: 2, b: 5, expect: 2, ok: true},
		"same node":         {a: 3, b: 3, expect: 3, ok: true},
		"unknown node":      {a: 4, b: 42, ok: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := tree.ClosestCommonParent(tt.a, tt.b)
			if ok != tt.ok {
				t.Fatalf("ClosestCommonParent(%d, %d) ok = %v, want %v", tt.a, tt.b, ok, tt.ok)
			}
			if ok && got != tt.expect {
				t.Errorf("ClosestCommonParent(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.expect)
			}
		})
	}
}

func TestTestTree_Remove(t *testing.T) {
	tree := newTestTree().
		add(1, -1, NewNode()).
		add(2, 1, NewNode()).
		add(3, 2, NewNode()).
		add(4, 1, NewNode())

	tree.remove(2)

	if tree.IsNodeValid(2) || tree.IsNodeValid(3) {
		t.Error("remove should drop the whole subtree")
	}
	if got := tree.ChildrenOf(1); !slices.Equal(got, []int{4}) {
		t.Errorf("ChildrenOf(1) = %v, want [4]", got)
	}
}
