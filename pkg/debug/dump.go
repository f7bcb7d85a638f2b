package debug

import (
	"cmp"
	"fmt"

	"github.com/grindlemire/go-layout/pkg/layout"
	tp "github.com/xlab/treeprint"
)

// Results is the part of the engine a dump reads from.
type Results[ID cmp.Ordered] interface {
	LayoutOf(id ID) (layout.LayoutNode, bool)
	IsDirty(id ID) bool
}

// Dump renders the cached layout of the subtree at root as an indented
// tree, one line per node:
//
//	.
//	└── 1 0,0 400x300
//	    ├── 2 0,0 400x100
//	    │   └── 4 0,0 50x100
//	    └── 3 0,105 104x34 inner=100x30
//
// Nodes without a cache entry are shown as "(none)" and dirty nodes carry
// a trailing "*". Inner sizes are printed when they differ from the inner
// area.
func Dump[ID cmp.Ordered](results Results[ID], adapter layout.TreeAdapter[ID], root ID) string {
	p := tp.New()
	dump(p, results, adapter, root)
	return p.String()
}

func dump[ID cmp.Ordered](p tp.Tree, results Results[ID], adapter layout.TreeAdapter[ID], id ID) {
	children := adapter.ChildrenOf(id)
	if len(children) == 0 {
		p.AddNode(label(results, id))
		return
	}
	branch := p.AddBranch(label(results, id))
	for _, ch := range children {
		dump(branch, results, adapter, ch)
	}
}

func label[ID cmp.Ordered](results Results[ID], id ID) string {
	l, ok := results.LayoutOf(id)
	if !ok {
		return fmt.Sprintf("%v (none)", id)
	}
	s := fmt.Sprintf("%v %s", id, l.Area)
	if l.InnerSizes != l.InnerArea.Size && l.InnerSizes != (layout.Size{}) {
		s += fmt.Sprintf(" inner=%gx%g", l.InnerSizes.Width, l.InnerSizes.Height)
	}
	if results.IsDirty(id) {
		s += " *"
	}
	return s
}

// LogLayout writes the dump of root to the debug log.
func LogLayout[ID cmp.Ordered](results Results[ID], adapter layout.TreeAdapter[ID], root ID) {
	if !Enabled() {
		return
	}
	Log("layout of %v:\n%s", root, Dump(results, adapter, root))
}
