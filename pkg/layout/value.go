package layout

import "fmt"

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto           Unit = iota // Fit-content for width/height, unconstrained for min/max
	UnitPixels                     // Absolute length
	UnitPercentage                 // Percentage of the parent's content size
	UnitRootPercentage             // Percentage of the root area
	UnitFill                       // Equal share of the leftover main axis space
	UnitFillMinimum                // Fill, but only as wide as the widest sibling in a fit-content parent
	UnitFlex                       // Weighted share of the leftover main axis space
	UnitInner                      // Fit-content
)

// Value is a sizing rule for one axis.
type Value struct {
	Amount float64
	Unit   Unit
}

// Auto returns the zero Value. Widths and heights treat it like Inner;
// minimum and maximum constraints treat it as absent.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Pixels returns a Value representing an absolute length.
func Pixels(v float64) Value {
	return Value{Amount: v, Unit: UnitPixels}
}

// Percentage returns a Value relative to the parent's content size.
// The value is on a 0-100 scale (50.0 = 50%).
func Percentage(p float64) Value {
	return Value{Amount: p, Unit: UnitPercentage}
}

// RootPercentage returns a Value relative to the root area given to
// [Engine.Measure]. The value is on a 0-100 scale.
func RootPercentage(p float64) Value {
	return Value{Amount: p, Unit: UnitRootPercentage}
}

// Fill returns a Value that takes an equal share of the space left over on
// the parent's main axis. On the cross axis it takes the whole content extent.
func Fill() Value {
	return Value{Amount: 1, Unit: UnitFill}
}

// FillMinimum behaves like Fill, except on the cross axis of a fit-content
// parent, where it matches the largest sibling instead of growing the parent.
func FillMinimum() Value {
	return Value{Amount: 1, Unit: UnitFillMinimum}
}

// Flex returns a fill Value with weight w. Fill is Flex(1).
func Flex(w float64) Value {
	return Value{Amount: w, Unit: UnitFlex}
}

// Inner returns a Value whose size is derived from the node's children.
func Inner() Value {
	return Value{Unit: UnitInner}
}

// IsInner reports whether the size is derived from children.
func (v Value) IsInner() bool {
	return v.Unit == UnitInner || v.Unit == UnitAuto
}

// IsFill reports whether the value takes a share of the leftover space.
func (v Value) IsFill() bool {
	return v.Unit == UnitFill || v.Unit == UnitFillMinimum || v.Unit == UnitFlex
}

// IsAuto reports whether v is the zero Value.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// weight returns the fill weight of v. Non-positive weights count as zero.
func (v Value) weight() float64 {
	if !v.IsFill() {
		return 0
	}
	return max(0, v.Amount)
}

// resolve computes the length for rules that do not depend on siblings or
// children. ok is false for Auto, Inner and the fill rules.
func (v Value) resolve(parent, root float64) (length float64, ok bool) {
	switch v.Unit {
	case UnitPixels:
		return v.Amount, true
	case UnitPercentage:
		return parent * v.Amount / 100.0, true
	case UnitRootPercentage:
		return root * v.Amount / 100.0, true
	default:
		return 0, false
	}
}

// String returns a compact representation such as "50%" or "fill".
func (v Value) String() string {
	switch v.Unit {
	case UnitPixels:
		return fmt.Sprintf("%gpx", v.Amount)
	case UnitPercentage:
		return fmt.Sprintf("%g%%", v.Amount)
	case UnitRootPercentage:
		return fmt.Sprintf("%g%%root", v.Amount)
	case UnitFill:
		return "fill"
	case UnitFillMinimum:
		return "fill-min"
	case UnitFlex:
		return fmt.Sprintf("flex(%g)", v.Amount)
	case UnitInner:
		return "inner"
	default:
		return "auto"
	}
}
