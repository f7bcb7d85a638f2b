package layout

import "testing"

// buildTree creates a tree with the specified branching factor and depth.
// Total nodes = sum of (branching^i) for i from 0 to depth.
func buildTree(branching, depth int) (*testTree, int) {
	tree := newTestTree()
	tree.add(1, -1, fixed(1000, 1000, WithDirection(Horizontal)))
	next := 2
	var addChildren func(parent int, dir Direction, remaining int)
	addChildren = func(parent int, dir Direction, remaining int) {
		// Alternate direction at each level
		childDir := Vertical
		if dir == Vertical {
			childDir = Horizontal
		}
		for i := 0; i < branching; i++ {
			id := next
			next++
			tree.add(id, parent, NewNode(WithSize(Fill(), Fill()), WithDirection(childDir)))
			if remaining > 0 {
				addChildren(id, childDir, remaining-1)
			}
		}
	}
	if depth > 0 {
		addChildren(1, Horizontal, depth-1)
	}
	return tree, next - 1
}

// firstLeaf follows the first child down to a leaf.
func firstLeaf(tree *testTree) int {
	id := 1
	for len(tree.ChildrenOf(id)) > 0 {
		id = tree.ChildrenOf(id)[0]
	}
	return id
}

func TestBuildTree(t *testing.T) {
	tree, n := buildTree(3, 2)
	if n != 13 {
		t.Errorf("buildTree(3, 2) = %d nodes, want 13", n)
	}
	if got := len(tree.ids()); got != n {
		t.Errorf("tree holds %d nodes, want %d", got, n)
	}
}

func benchmarkFull(b *testing.B, branching, depth int) {
	tree, n := buildTree(branching, depth)
	b.Logf("Node count: %d", n)
	area := NewArea(0, 0, 1000, 1000)
	e := New[int](WithFullRecompute())
	e.Measure(1, area, nil, tree)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Invalidate(1)
		e.Measure(1, area, nil, tree)
	}
}

// BenchmarkMeasure_13Nodes: branching=3, depth=2 = 1 + 3 + 9 = 13 nodes
func BenchmarkMeasure_13Nodes(b *testing.B) {
	benchmarkFull(b, 3, 2)
}

// BenchmarkMeasure_121Nodes: branching=3, depth=4 = 1 + 3 + 9 + 27 + 81 = 121 nodes
func BenchmarkMeasure_121Nodes(b *testing.B) {
	benchmarkFull(b, 3, 4)
}

// BenchmarkMeasure_IncrementalVsFull compares relayout after a single leaf
// changed with a full pass over the same tree. Every level is a fill row or
// column, so the leaf widens only to its parent.
func BenchmarkMeasure_IncrementalVsFull(b *testing.B) {
	tree, _ := buildTree(3, 5)
	leaf := firstLeaf(tree)
	area := NewArea(0, 0, 1000, 1000)

	b.Run("full", func(b *testing.B) {
		e := New[int](WithFullRecompute())
		e.Measure(1, area, nil, tree)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			e.Invalidate(leaf)
			e.Measure(1, area, nil, tree)
		}
	})

	b.Run("incremental", func(b *testing.B) {
		e := New[int]()
		e.Measure(1, area, nil, tree)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			e.Invalidate(leaf)
			e.Measure(1, area, nil, tree)
		}
	})
}

// BenchmarkMeasure_Allocations reports allocations of a full pass over a
// flat row of 1000 fixed children.
func BenchmarkMeasure_Allocations(b *testing.B) {
	tree := newTestTree().add(1, -1, fixed(10000, 1000, WithDirection(Horizontal)))
	for i := 0; i < 999; i++ {
		tree.add(i+2, 1, fixed(10, 100))
	}
	area := NewArea(0, 0, 10000, 1000)
	e := New[int](WithFullRecompute())
	e.Measure(1, area, nil, tree)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		e.Measure(1, area, nil, tree)
	}
}

// BenchmarkNewNode benchmarks node creation with options.
func BenchmarkNewNode(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = NewNode(WithSize(Fill(), Pixels(10)), WithPadding(EdgeAll(1)))
	}
}
