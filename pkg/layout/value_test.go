package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue_Resolve(t *testing.T) {
	type tc struct {
		value  Value
		parent float64
		root   float64
		expect float64
		ok     bool
	}

	tests := map[string]tc{
		"pixels":              {value: Pixels(42), parent: 100, root: 1000, expect: 42, ok: true},
		"negative pixels":     {value: Pixels(-5), parent: 100, root: 1000, expect: -5, ok: true},
		"percentage":          {value: Percentage(50), parent: 200, root: 1000, expect: 100, ok: true},
		"root percentage":     {value: RootPercentage(25), parent: 200, root: 1000, expect: 250, ok: true},
		"fill is unresolved":  {value: Fill(), parent: 200, root: 1000, ok: false},
		"inner is unresolved": {value: Inner(), parent: 200, root: 1000, ok: false},
		"auto is unresolved":  {value: Auto(), parent: 200, root: 1000, ok: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := tt.value.resolve(tt.parent, tt.root)
			if ok != tt.ok {
				t.Fatalf("resolve() ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.expect {
				t.Errorf("resolve() = %g, want %g", got, tt.expect)
			}
		})
	}
}

func TestValue_Kinds(t *testing.T) {
	assert.True(t, Inner().IsInner())
	assert.True(t, Auto().IsInner(), "auto sizes to content")
	assert.True(t, Value{}.IsAuto(), "zero value is auto")
	assert.False(t, Pixels(0).IsInner())

	assert.True(t, Fill().IsFill())
	assert.True(t, FillMinimum().IsFill())
	assert.True(t, Flex(3).IsFill())
	assert.False(t, Percentage(100).IsFill())

	assert.Equal(t, 1.0, Fill().weight())
	assert.Equal(t, 3.0, Flex(3).weight())
	assert.Equal(t, 0.0, Flex(-2).weight(), "negative weights count as zero")
	assert.Equal(t, 0.0, Pixels(10).weight())
}

func TestValue_String(t *testing.T) {
	type tc struct {
		value  Value
		expect string
	}

	tests := map[string]tc{
		"pixels":          {value: Pixels(10), expect: "10px"},
		"percentage":      {value: Percentage(50), expect: "50%"},
		"root percentage": {value: RootPercentage(12.5), expect: "12.5%root"},
		"fill":            {value: Fill(), expect: "fill"},
		"fill minimum":    {value: FillMinimum(), expect: "fill-min"},
		"flex":            {value: Flex(2), expect: "flex(2)"},
		"inner":           {value: Inner(), expect: "inner"},
		"auto":            {value: Auto(), expect: "auto"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expect, tt.value.String())
		})
	}
}

func TestNewNode_Defaults(t *testing.T) {
	n := NewNode()

	assert.Equal(t, Inner(), n.Width)
	assert.Equal(t, Inner(), n.Height)
	assert.Equal(t, Vertical, n.Direction)
	assert.False(t, n.Position.IsAbsolute())
	assert.True(t, n.IsInnerSized())
}

func TestNewNode_Options(t *testing.T) {
	n := NewNode(
		WithSize(Pixels(100), Percentage(50)),
		WithDirection(Horizontal),
		WithMainAlignment(AlignCenter),
		WithCrossAlignment(AlignEnd),
		WithSpacing(4),
		WithPadding(EdgeAll(2)),
		WithMargin(EdgeSymmetric(1, 3)),
		WithOffset(0, -20),
		WithPosition(Absolute(5, 6)),
		WithMinWidth(Pixels(10)),
		WithMaxHeight(Pixels(90)),
	)

	assert.Equal(t, Pixels(100), n.Width)
	assert.Equal(t, Percentage(50), n.Height)
	assert.Equal(t, Horizontal, n.Direction)
	assert.Equal(t, AlignCenter, n.MainAlignment)
	assert.Equal(t, AlignEnd, n.CrossAlignment)
	assert.Equal(t, 4.0, n.Spacing)
	assert.Equal(t, EdgeAll(2), n.Padding)
	assert.Equal(t, EdgeSymmetric(1, 3), n.Margin)
	assert.Equal(t, Point{X: 0, Y: -20}, n.offset())
	assert.Equal(t, Point{X: 5, Y: 6}, n.Position.Offset())
	assert.Equal(t, Pixels(10), n.MinWidth)
	assert.Equal(t, Pixels(90), n.MaxHeight)
	assert.False(t, n.IsInnerSized())
}

func TestNode_DependsOnChildren(t *testing.T) {
	type tc struct {
		node   Node
		expect bool
	}

	sized := []NodeOption{WithSize(Pixels(10), Pixels(10))}

	tests := map[string]tc{
		"fixed start aligned": {
			node:   NewNode(sized...),
			expect: false,
		},
		"fit-content width": {
			node:   NewNode(WithHeight(Pixels(10))),
			expect: true,
		},
		"centered main axis": {
			node:   NewNode(append(sized, WithMainAlignment(AlignCenter))...),
			expect: true,
		},
		"end aligned cross axis": {
			node:   NewNode(append(sized, WithCrossAlignment(AlignEnd))...),
			expect: true,
		},
		"space between on cross axis behaves as start": {
			node:   NewNode(append(sized, WithCrossAlignment(AlignSpaceBetween))...),
			expect: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expect, tt.node.DependsOnChildren())
		})
	}
}

func TestNode_HasFillMain(t *testing.T) {
	n := NewNode(WithSize(Fill(), Pixels(10)))

	assert.True(t, n.HasFillMain(Horizontal))
	assert.False(t, n.HasFillMain(Vertical))

	n.Position = Absolute(0, 0)
	assert.False(t, n.HasFillMain(Horizontal), "absolute nodes do not take part in stacking")
}

func TestClamp(t *testing.T) {
	type tc struct {
		v, lo, hi float64
		expect    float64
	}

	tests := map[string]tc{
		"within range":      {v: 5, lo: 0, hi: 10, expect: 5},
		"below minimum":     {v: -1, lo: 0, hi: 10, expect: 0},
		"above maximum":     {v: 11, lo: 0, hi: 10, expect: 10},
		"min wins over max": {v: 5, lo: 8, hi: 3, expect: 8},
		"unbounded maximum": {v: 1e9, lo: 0, hi: 1e18, expect: 1e9},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expect, clamp(tt.v, tt.lo, tt.hi))
		})
	}
}
