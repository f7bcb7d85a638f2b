package memtree

import (
	"errors"
	"testing"

	"github.com/grindlemire/go-layout/pkg/layout"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sample builds
//
//	1
//	├─ 2
//	│  ├─ 4
//	│  └─ 5
//	│     └─ 6
//	└─ 3
func sample(t *testing.T) *Tree[int] {
	t.Helper()
	tr := New[int]()
	require.NoError(t, tr.AddRoot(1, layout.NewNode()))
	for _, e := range [][2]int{{2, 1}, {3, 1}, {4, 2}, {5, 2}, {6, 5}} {
		require.NoError(t, tr.Add(e[0], e[1], layout.NewNode()))
	}
	return tr
}

func TestTree_Structure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "layout.memtree")
	defer teardown()

	tr := sample(t)

	assert.Equal(t, 6, tr.Len())
	assert.Equal(t, []int{2, 3}, tr.ChildrenOf(1))
	assert.Nil(t, tr.ChildrenOf(3))
	assert.Nil(t, tr.ChildrenOf(99))

	p, ok := tr.ParentOf(6)
	assert.True(t, ok)
	assert.Equal(t, 5, p)
	_, ok = tr.ParentOf(1)
	assert.False(t, ok, "roots have no parent")

	h, ok := tr.Height(6)
	assert.True(t, ok)
	assert.Equal(t, 3, h)
}

func TestTree_Errors(t *testing.T) {
	tr := sample(t)

	err := tr.Add(2, 1, layout.NewNode())
	assert.True(t, errors.Is(err, ErrDuplicateNode))

	err = tr.Add(7, 99, layout.NewNode())
	assert.True(t, errors.Is(err, ErrUnknownNode))

	err = tr.SetNode(99, layout.NewNode())
	assert.True(t, errors.Is(err, ErrUnknownNode))

	_, err = tr.Remove(99)
	assert.True(t, errors.Is(err, ErrUnknownNode))
}

func TestTree_ClosestCommonParent(t *testing.T) {
	type tc struct {
		a, b   int
		expect int
		ok     bool
	}

	tests := map[string]tc{
		"siblings":           {a: 4, b: 5, expect: 2, ok: true},
		"different depths":   {a: 6, b: 3, expect: 1, ok: true},
		"ancestor":           {a: 2, b: 6, expect: 2, ok: true},
		"self":               {a: 6, b: 6, expect: 6, ok: true},
		"unknown":            {a: 6, b: 99, ok: false},
		"separate trees":     {a: 6, b: 100, ok: false},
		"separate tree root": {a: 100, b: 1, ok: false},
	}

	tr := sample(t)
	require.NoError(t, tr.AddRoot(100, layout.NewNode()))

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := tr.ClosestCommonParent(tt.a, tt.b)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.expect, got)
			}
		})
	}
}

func TestTree_RemoveReusesSlots(t *testing.T) {
	tr := sample(t)

	removed, err := tr.Remove(2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 5, 6}, removed)
	assert.Equal(t, 2, tr.Len())
	assert.Equal(t, []int{3}, tr.ChildrenOf(1))
	assert.False(t, tr.IsNodeValid(6))

	arena := len(tr.arena)
	require.NoError(t, tr.Add(7, 3, layout.NewNode()))
	assert.Equal(t, arena, len(tr.arena), "freed slots are reused")
	h, _ := tr.Height(7)
	assert.Equal(t, 2, h)
}

func TestTree_Walk(t *testing.T) {
	tr := sample(t)

	var order []int
	tr.Walk(1, func(id, depth int) bool {
		order = append(order, id)
		return true
	})
	assert.Equal(t, []int{1, 2, 4, 5, 6, 3}, order)

	order = order[:0]
	tr.Walk(1, func(id, depth int) bool {
		order = append(order, id)
		return id != 4
	})
	assert.Equal(t, []int{1, 2, 4}, order)
}

func TestTree_WithEngine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "layout.memtree")
	defer teardown()

	tr := New[string]()
	fixed := layout.NewNode(layout.WithSize(layout.Pixels(100), layout.Pixels(100)))
	require.NoError(t, tr.AddRoot("root", layout.NewNode(layout.WithSize(layout.Pixels(800), layout.Pixels(600)))))
	require.NoError(t, tr.Add("column", "root", layout.NewNode()))
	require.NoError(t, tr.Add("a", "column", fixed))
	require.NoError(t, tr.Add("b", "column", fixed))

	e := layout.New[string]()
	e.Measure("root", layout.NewArea(0, 0, 800, 600), nil, tr)

	col, ok := e.AreaOf("column")
	require.True(t, ok)
	assert.Equal(t, layout.NewArea(0, 0, 100, 200), col)

	removed, err := tr.Remove("b")
	require.NoError(t, err)
	for _, id := range removed {
		e.Remove(id)
	}
	e.Invalidate("column")
	e.Measure("root", layout.NewArea(0, 0, 800, 600), nil, tr)

	col, _ = e.AreaOf("column")
	assert.Equal(t, layout.NewArea(0, 0, 100, 100), col)
	assert.Equal(t, 3, e.Len())
}
