package layout

import "cmp"

// Measurer lets the host report a custom size for nodes whose natural size
// cannot be derived from sizing rules, such as text.
//
// area is the area the engine proposes for the node, parentSize the content
// area of the parent and availableParentArea the slot the parent handed down.
// Returning false keeps the engine's result. A returned area replaces it
// verbatim, and children are laid out inside it.
//
// While the engine sizes fit-content ancestors it calls Measure with a
// provisional origin; only the size of the result is used then.
type Measurer[ID cmp.Ordered] interface {
	Measure(id ID, node Node, area, parentSize, availableParentArea Area) (Area, bool)
}

// MeasurerFunc adapts a function to the Measurer interface.
type MeasurerFunc[ID cmp.Ordered] func(id ID, node Node, area, parentSize, availableParentArea Area) (Area, bool)

// Measure calls f.
func (f MeasurerFunc[ID]) Measure(id ID, node Node, area, parentSize, availableParentArea Area) (Area, bool) {
	return f(id, node, area, parentSize, availableParentArea)
}

// NoMeasurer never overrides the engine's result.
type NoMeasurer[ID cmp.Ordered] struct{}

// Measure always returns false.
func (NoMeasurer[ID]) Measure(ID, Node, Area, Area, Area) (Area, bool) {
	return Area{}, false
}
