// Package textmeasure sizes text leaves for the layout engine.
//
// A [Measurer] holds the text of every leaf that displays some and reports
// its natural size on the fit-content axes: the widest line and the number
// of lines times the line height. When the width is fixed by the sizing
// rules, text is wrapped at spaces to fit it. Glyph advances and kerning
// come from an OpenType font; the default is Go Regular.
package textmeasure

import (
	"cmp"
	"fmt"
	"math"

	"github.com/grindlemire/go-layout/pkg/layout"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// tracer traces with key 'layout.text'.
func tracer() tracing.Trace {
	return tracing.Select("layout.text")
}

// maxCached bounds the number of remembered text sizes.
const maxCached = 1000

type config struct {
	ttf  []byte
	size float64
}

// Option configures a Measurer.
type Option func(*config)

// WithFont uses the given TrueType or OpenType font data.
func WithFont(ttf []byte) Option {
	return func(c *config) {
		c.ttf = ttf
	}
}

// WithSize sets the font size in pixels per em. The default is 16.
func WithSize(px float64) Option {
	return func(c *config) {
		c.size = px
	}
}

type sizeKey struct {
	text     string
	maxWidth fixed.Int26_6
}

// Measurer implements [layout.Measurer] for text leaves.
//
// A Measurer is not safe for concurrent use.
type Measurer[ID cmp.Ordered] struct {
	face  face
	texts map[ID]string
	sizes map[sizeKey]layout.Size
}

// New parses the font and returns an empty Measurer.
func New[ID cmp.Ordered](opts ...Option) (*Measurer[ID], error) {
	cfg := config{ttf: goregular.TTF, size: 16}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.size <= 0 {
		return nil, fmt.Errorf("invalid font size %g", cfg.size)
	}
	f, err := sfnt.Parse(cfg.ttf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return &Measurer[ID]{
		face: face{
			font:    f,
			ppem:    fixed.Int26_6(math.Round(cfg.size * 64)),
			hinting: font.HintingNone,
		},
		texts: make(map[ID]string),
		sizes: make(map[sizeKey]layout.Size),
	}, nil
}

// SetText sets the text displayed by id. The caller invalidates id in the
// engine when the text changes.
func (m *Measurer[ID]) SetText(id ID, text string) {
	m.texts[id] = text
}

// Text returns the text of id.
func (m *Measurer[ID]) Text(id ID) (string, bool) {
	s, ok := m.texts[id]
	return s, ok
}

// Delete forgets the text of id.
func (m *Measurer[ID]) Delete(id ID) {
	delete(m.texts, id)
}

// LineHeight returns the height of one line of text.
func (m *Measurer[ID]) LineHeight() float64 {
	return toFloat(m.face.lineHeight())
}

// TextWidth returns the width of s on a single line.
func (m *Measurer[ID]) TextWidth(s string) float64 {
	return toFloat(m.face.width(s))
}

// Measure reports the size of the text of id on the axes whose sizing rule
// is fit-content and keeps the proposed size on the others. Ids without text
// and nodes sized by rules on both axes are left to the engine.
func (m *Measurer[ID]) Measure(id ID, node layout.Node, area, parentSize, available layout.Area) (layout.Area, bool) {
	text, ok := m.texts[id]
	if !ok {
		return layout.Area{}, false
	}
	innerW, innerH := node.Width.IsInner(), node.Height.IsInner()
	if !innerW && !innerH {
		return layout.Area{}, false
	}

	maxWidth := fixed.Int26_6(-1)
	if !innerW {
		maxWidth = fixed.Int26_6(math.Max(0, area.Width()-node.Padding.Horizontal()) * 64)
	}
	size := m.textSize(text, maxWidth)

	result := area
	if innerW {
		result.Size.Width = size.Width + node.Padding.Horizontal()
	}
	if innerH {
		result.Size.Height = size.Height + node.Padding.Vertical()
	}
	return result, true
}

func (m *Measurer[ID]) textSize(text string, maxWidth fixed.Int26_6) layout.Size {
	key := sizeKey{text: text, maxWidth: maxWidth}
	if s, ok := m.sizes[key]; ok {
		return s
	}
	lines := m.face.wrap(text, maxWidth)
	var widest fixed.Int26_6
	for _, l := range lines {
		widest = max(widest, m.face.width(l))
	}
	s := layout.Size{
		Width:  toFloat(widest),
		Height: toFloat(m.face.lineHeight()) * float64(len(lines)),
	}
	if len(m.sizes) >= maxCached {
		tracer().Debugf("text size cache full, clearing %d entries", len(m.sizes))
		clear(m.sizes)
	}
	m.sizes[key] = s
	return s
}

var _ layout.Measurer[int] = (*Measurer[int])(nil)
