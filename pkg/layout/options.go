package layout

// config holds engine settings applied by Options.
type config struct {
	pixelSnapping bool
	fullRecompute bool
}

func defaultConfig() config {
	return config{pixelSnapping: true}
}

// Option is a functional option for configuring an Engine.
type Option func(*config)

// WithPixelSnapping controls how leftover space is split among fill nodes.
// When enabled (the default) every share is a whole number of units and
// the remaining units go one at a time to the earliest fill nodes. When
// disabled shares are exact fractions.
func WithPixelSnapping(enabled bool) Option {
	return func(c *config) {
		c.pixelSnapping = enabled
	}
}

// WithFullRecompute makes every Measure call lay out the whole tree from the
// root, ignoring cached results. Useful as a baseline when comparing the
// cost of incremental passes.
func WithFullRecompute() Option {
	return func(c *config) {
		c.fullRecompute = true
	}
}
