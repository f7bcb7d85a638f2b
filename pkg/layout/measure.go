package layout

import (
	"cmp"
	"math"
)

// sizeKey identifies a non-committing size computation within one pass.
// The size of a node depends on its slot and its parent's content size,
// never on its position.
type sizeKey[ID cmp.Ordered] struct {
	id     ID
	slot   Size
	parent Size
}

// pass holds the state of one Measure call.
type pass[ID cmp.Ordered] struct {
	e          *Engine[ID]
	adapter    TreeAdapter[ID]
	measurer   Measurer[ID]
	rootSize   Size
	force      bool // lay out every node, ignoring cached results
	generation uint64

	sizes map[sizeKey[ID]]Size
	stats Stats
}

// item holds intermediate placement state for one child.
// It lives only for the duration of one arrange call.
type item[ID cmp.Ordered] struct {
	id     ID
	node   Node
	weight float64 // fill weight on the main axis, 0 for other rules
	slot   Size    // slot handed to the child
	main   float64 // outer main axis size (margin included)
	cross  float64 // outer cross axis size (margin included)
}

// commitNode lays out id within available, stores the result and recurses
// into the children. Clean nodes whose slot and parent area did not change
// keep their cached result, and so does their whole subtree.
func (p *pass[ID]) commitNode(id ID, node Node, available, parent Area, pl placement, root bool) {
	if !root && !p.force && !p.e.isStale(id) {
		if ln, ok := p.e.results[id]; ok && ln.Available == available && ln.ParentInner == parent {
			p.stats.Skipped++
			if ln.placement != pl {
				// The parent changed direction.
				ln.placement = pl
				p.e.results[id] = ln
			}
			return
		}
	}
	p.stats.Visited++
	ln := p.layoutNode(id, node, available, parent, true)
	ln.Generation = p.generation
	ln.placement = pl
	p.e.results[id] = ln
}

// sizeOf returns the border box size id would get in a slot of the given
// size, without writing to the cache. Results are memoised for the pass.
func (p *pass[ID]) sizeOf(id ID, node Node, slot, parent Size) Size {
	if !p.force {
		if ln, ok := p.e.reusable(id, slot, parent); ok {
			return ln.Area.Size
		}
	}
	key := sizeKey[ID]{id: id, slot: slot, parent: parent}
	if s, ok := p.sizes[key]; ok {
		return s
	}
	p.stats.Sized++
	s := p.layoutNode(id, node, Area{Size: slot}, Area{Size: parent}, false).Area.Size
	p.sizes[key] = s
	return s
}

// layoutNode computes the layout of a single node. The available area is
// the slot allocated by the parent (before this node's margin); parent is
// the parent's content area. With commit set, children are laid out and
// stored as well; otherwise children are only sized as far as fit-content
// axes require.
func (p *pass[ID]) layoutNode(id ID, node Node, available, parent Area, commit bool) LayoutNode {
	// 1. Resolve own size from the sizing rules
	slot := available.Size.Sub(node.Margin.Total())
	width, innerW := p.resolveAxis(node.Width, node.MinWidth, node.MaxWidth,
		slot.Width, parent.Size.Width, p.rootSize.Width)
	height, innerH := p.resolveAxis(node.Height, node.MinHeight, node.MaxHeight,
		slot.Height, parent.Size.Height, p.rootSize.Height)

	area := Area{
		Origin: available.Origin.Add(node.Margin.TopLeft()),
		Size:   Size{Width: width, Height: height}.Clamp(),
	}

	// 2. Let the host override the result
	measured := false
	if p.measurer != nil {
		if override, ok := p.measurer.Measure(id, node, area, parent, available); ok {
			area = override
			area.Size = area.Size.Clamp()
			measured = true
			p.stats.Measured++
		}
	}

	inner := area.Inset(node.Padding)
	var children []ID
	if commit || innerW || innerH {
		children = p.adapter.ChildrenOf(id)
	}

	// 3. Fit-content axes follow the children
	var content Size
	if len(children) > 0 && !measured && (innerW || innerH) {
		content = p.arrange(node, children, inner, false)
		if innerW {
			area.Size.Width = p.constrain(content.Width+node.Padding.Horizontal(),
				node.MinWidth, node.MaxWidth, parent.Size.Width, p.rootSize.Width)
		}
		if innerH {
			area.Size.Height = p.constrain(content.Height+node.Padding.Vertical(),
				node.MinHeight, node.MaxHeight, parent.Size.Height, p.rootSize.Height)
		}
		inner = area.Inset(node.Padding)
	} else if len(children) == 0 && !measured {
		// A fit-content node without children has no content.
		if innerW {
			area.Size.Width = p.constrain(node.Padding.Horizontal(),
				node.MinWidth, node.MaxWidth, parent.Size.Width, p.rootSize.Width)
		}
		if innerH {
			area.Size.Height = p.constrain(node.Padding.Vertical(),
				node.MinHeight, node.MaxHeight, parent.Size.Height, p.rootSize.Height)
		}
		inner = area.Inset(node.Padding)
	}

	// 4. Place and store children within the final content area
	if commit && len(children) > 0 {
		content = p.arrange(node, children, inner, true)
	}

	return LayoutNode{
		Area:        area,
		InnerArea:   inner,
		InnerSizes:  content,
		Margin:      node.Margin,
		Available:   available,
		ParentInner: parent,
	}
}

// resolveAxis resolves one axis of a node. Fill rules take the whole slot;
// the parent has already narrowed the slot to the node's share. Fit-content
// rules provisionally take the slot as well and report inner so the caller
// can replace the length once the children are known.
func (p *pass[ID]) resolveAxis(rule, minRule, maxRule Value, slot, parent, root float64) (length float64, inner bool) {
	switch {
	case rule.IsFill():
		length = slot
	case rule.IsInner():
		length, inner = slot, true
	default:
		length, _ = rule.resolve(parent, root)
	}
	return p.constrain(length, minRule, maxRule, parent, root), inner
}

// constrain applies min/max constraints and clamps to zero. Constraints that
// cannot be resolved without context (auto, fill, inner) are ignored.
func (p *pass[ID]) constrain(length float64, minRule, maxRule Value, parent, root float64) float64 {
	minVal, ok := minRule.resolve(parent, root)
	if !ok {
		minVal = 0
	}
	maxVal, ok := maxRule.resolve(parent, root)
	if !ok {
		maxVal = math.Inf(1)
	}
	return max(0, clamp(length, minVal, maxVal))
}

// arrange sizes the children of a node within its content area and, with
// commit set, positions and stores them. It returns the content size: the
// sum of the stacked children's outer main sizes plus spacing, and the
// largest outer cross size.
func (p *pass[ID]) arrange(node Node, children []ID, inner Area, commit bool) Size {
	dir := node.Direction
	innerMain := inner.Size.Main(dir)
	innerCross := inner.Size.Cross(dir)

	stacked := make([]item[ID], 0, len(children))
	var absolute []item[ID]
	for _, cid := range children {
		cn, ok := p.adapter.GetNode(cid)
		if !ok {
			// Removed while we were walking: skip it.
			if commit {
				p.e.Remove(cid)
			}
			continue
		}
		if cn.Position.IsAbsolute() {
			absolute = append(absolute, item[ID]{id: cid, node: cn})
			continue
		}
		stacked = append(stacked, item[ID]{id: cid, node: cn, weight: cn.mainRule(dir).weight()})
	}

	// Phase 1: main sizes of the children that do not fill
	consumed := 0.0
	totalWeight := 0.0
	for i := range stacked {
		it := &stacked[i]
		if it.node.mainRule(dir).IsFill() {
			totalWeight += it.weight
			continue
		}
		it.slot = sizeOn(dir, innerMain, innerCross)
		sz := p.sizeOf(it.id, it.node, it.slot, inner.Size)
		it.main = sz.Main(dir) + it.node.Margin.Main(dir)
		consumed += it.main
	}

	// Phase 2: distribute what is left among the fill children
	spacing := node.Spacing * float64(max(0, len(stacked)-1))
	remaining := max(0, innerMain-consumed-spacing)
	p.distribute(stacked, dir, remaining, totalWeight, innerCross)

	// Phase 3: cross sizes. FillMinimum children of a parent that is
	// fit-content on the cross axis match the largest sibling instead.
	fitCross := node.crossRule(dir).IsInner()
	maxCross := 0.0
	var deferred []int
	for i := range stacked {
		it := &stacked[i]
		if fitCross && it.node.crossRule(dir).Unit == UnitFillMinimum {
			deferred = append(deferred, i)
			continue
		}
		p.measureItem(it, dir, inner.Size)
		maxCross = max(maxCross, it.cross)
	}
	for _, i := range deferred {
		it := &stacked[i]
		it.slot = it.slot.WithCross(dir, maxCross)
		p.measureItem(it, dir, inner.Size)
	}

	contentMain := spacing
	contentCross := 0.0
	for i := range stacked {
		contentMain += stacked[i].main
		contentCross = max(contentCross, stacked[i].cross)
	}
	content := sizeOn(dir, contentMain, contentCross)
	if !commit {
		return content
	}

	// Phase 4: position along both axes and recurse
	free := innerMain - contentMain
	cursor := inner.Origin.Main(dir) + alignOffset(node.MainAlignment, free, len(stacked))
	gap := node.Spacing + alignSpacing(node.MainAlignment, free, len(stacked))
	scroll := node.offset()

	for i := range stacked {
		it := &stacked[i]
		crossPos := inner.Origin.Cross(dir) + crossOffset(node.CrossAlignment, innerCross, it.cross)
		origin := pointOn(dir, cursor, crossPos).Add(scroll)
		p.commitNode(it.id, it.node, Area{Origin: origin, Size: it.slot}, inner, placementOf(it.node, dir), false)
		cursor += it.main + gap
	}
	for i := range absolute {
		it := &absolute[i]
		origin := inner.Origin.Add(it.node.Position.Offset()).Add(scroll)
		p.commitNode(it.id, it.node, Area{Origin: origin, Size: inner.Size}, inner, placement{absolute: true}, false)
	}

	return content
}

// measureItem sizes a child in its slot and records its outer sizes.
func (p *pass[ID]) measureItem(it *item[ID], dir Direction, parent Size) {
	sz := p.sizeOf(it.id, it.node, it.slot, parent)
	it.main = sz.Main(dir) + it.node.Margin.Main(dir)
	it.cross = sz.Cross(dir) + it.node.Margin.Cross(dir)
}

// distribute hands out the remaining main axis space to the fill children
// in proportion to their weights and sets their slots. With pixel snapping
// every share is whole and leftover units go to the earliest children.
func (p *pass[ID]) distribute(stacked []item[ID], dir Direction, remaining, totalWeight, innerCross float64) {
	if totalWeight <= 0 {
		for i := range stacked {
			if stacked[i].node.mainRule(dir).IsFill() {
				stacked[i].slot = sizeOn(dir, 0, innerCross)
			}
		}
		return
	}

	assigned := 0.0
	for i := range stacked {
		it := &stacked[i]
		if !it.node.mainRule(dir).IsFill() {
			continue
		}
		share := remaining * it.weight / totalWeight
		if p.e.cfg.pixelSnapping {
			share = math.Floor(share)
		}
		assigned += share
		it.slot = sizeOn(dir, share, innerCross)
	}

	if !p.e.cfg.pixelSnapping {
		return
	}
	leftover := math.Floor(remaining) - assigned
	for i := range stacked {
		if leftover < 1 {
			break
		}
		it := &stacked[i]
		if !it.node.mainRule(dir).IsFill() || it.weight == 0 {
			continue
		}
		it.slot = it.slot.WithMain(dir, it.slot.Main(dir)+1)
		leftover--
	}
}
