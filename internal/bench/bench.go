package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/grindlemire/go-layout/pkg/layout"
	"github.com/grindlemire/go-layout/pkg/memtree"
	"golang.org/x/sync/errgroup"
)

// Mode selects what a run measures.
type Mode int

const (
	// NoCache times a full layout on an empty engine.
	NoCache Mode = iota
	// InvalidatedCache times the repair after one node changed.
	InvalidatedCache
)

func (m Mode) String() string {
	switch m {
	case NoCache:
		return "not cached"
	case InvalidatedCache:
		return "cached"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// RootArea is the area every benchmark tree is laid out in.
var RootArea = layout.NewArea(0, 0, 1000, 1000)

// Config describes one benchmark tree.
type Config struct {
	Depth int  // Levels including the root, at least 1
	Wide  int  // Children per branch node
	Mode  Mode // What the timed pass measures
}

// Size returns the number of nodes in the tree.
func (c Config) Size() int {
	acc, prev := 1, 1
	for i := 0; i < c.Depth-1; i++ {
		prev *= c.Wide
		acc += prev
	}
	return acc
}

// Name identifies the configuration in reports.
func (c Config) Name() string {
	return fmt.Sprintf("size=%d depth=%d wide=%d mode=%s", c.Size(), c.Depth, c.Wide, c.Mode)
}

func (c Config) validate() error {
	if c.Depth < 1 {
		return fmt.Errorf("invalid depth %d", c.Depth)
	}
	if c.Wide < 1 {
		return fmt.Errorf("invalid width %d", c.Wide)
	}
	return nil
}

// DefaultSuite returns the standard set of configurations, from wide and
// flat trees to narrow and deep ones.
func DefaultSuite() []Config {
	return []Config{
		{Depth: 2, Wide: 1000, Mode: NoCache},
		{Depth: 2, Wide: 10000, Mode: NoCache},
		{Depth: 2, Wide: 100000, Mode: NoCache},
		{Depth: 12, Wide: 2, Mode: NoCache},
		{Depth: 14, Wide: 2, Mode: NoCache},
		{Depth: 17, Wide: 2, Mode: NoCache},
		{Depth: 5, Wide: 15, Mode: NoCache},
		{Depth: 5, Wide: 15, Mode: InvalidatedCache},
		{Depth: 7, Wide: 5, Mode: NoCache},
		{Depth: 7, Wide: 5, Mode: InvalidatedCache},
	}
}

// Fixture is a built benchmark tree.
type Fixture struct {
	Tree *memtree.Tree[int]
	Root int

	// Mid is the node resized in InvalidatedCache mode: the middle child of
	// the last branch built at half the depth, or the root for trees too
	// shallow to have one.
	Mid int
}

// Build creates the tree for c. The root takes the whole root area and
// every other node is a 100x100 vertical box. Ids are assigned depth
// first, starting with 0 for the root.
func Build(c Config) (*Fixture, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	b := &builder{
		cfg:  c,
		tree: memtree.New[int](),
	}
	root := layout.NewNode(
		layout.WithSize(layout.Percentage(100), layout.Percentage(100)),
		layout.WithDirection(layout.Vertical),
	)
	if err := b.tree.AddRoot(b.next(), root); err != nil {
		return nil, err
	}
	if err := b.branch(0, 0); err != nil {
		return nil, err
	}
	return &Fixture{Tree: b.tree, Root: 0, Mid: b.mid}, nil
}

type builder struct {
	cfg  Config
	tree *memtree.Tree[int]
	ids  int
	mid  int
}

func (b *builder) next() int {
	id := b.ids
	b.ids++
	return id
}

func (b *builder) branch(parent, level int) error {
	if level >= b.cfg.Depth-1 {
		return nil
	}
	box := layout.NewNode(
		layout.WithSize(layout.Pixels(100), layout.Pixels(100)),
		layout.WithDirection(layout.Vertical),
	)
	for i := 0; i < b.cfg.Wide; i++ {
		id := b.next()
		if level == b.cfg.Depth/2 && i == b.cfg.Wide/2 {
			b.mid = id
		}
		if err := b.tree.Add(id, parent, box); err != nil {
			return err
		}
		if err := b.branch(id, level+1); err != nil {
			return err
		}
	}
	return nil
}

// Result is the outcome of one run.
type Result struct {
	Config  Config
	Nodes   int
	Visited int
	Skipped int
	Elapsed time.Duration
}

func (r Result) String() string {
	return fmt.Sprintf("%s: %v (visited %d, skipped %d)", r.Config.Name(), r.Elapsed, r.Visited, r.Skipped)
}

// Prepare builds the tree for c and an engine in the state the timed pass
// starts from.
func Prepare(c Config) (*Fixture, *layout.Engine[int], error) {
	f, err := Build(c)
	if err != nil {
		return nil, nil, err
	}
	var opts []layout.Option
	if c.Mode == NoCache {
		opts = append(opts, layout.WithFullRecompute())
	}
	e := layout.New[int](opts...)
	if c.Mode == InvalidatedCache {
		e.FindBestRoot(f.Tree)
		e.Measure(f.Root, RootArea, nil, f.Tree)
		resized := layout.NewNode(
			layout.WithSize(layout.Inner(), layout.Pixels(10)),
			layout.WithDirection(layout.Vertical),
		)
		if err := f.Tree.SetNode(f.Mid, resized); err != nil {
			return nil, nil, err
		}
		e.Invalidate(f.Mid)
	}
	return f, e, nil
}

// Pass is the timed part of a run.
func Pass(f *Fixture, e *layout.Engine[int]) layout.Area {
	e.FindBestRoot(f.Tree)
	return e.Measure(f.Root, RootArea, nil, f.Tree)
}

// Run builds c and times a single layout pass.
func Run(c Config) (Result, error) {
	f, e, err := Prepare(c)
	if err != nil {
		return Result{}, fmt.Errorf("failed to build %s: %w", c.Name(), err)
	}
	start := time.Now()
	Pass(f, e)
	elapsed := time.Since(start)

	st := e.Stats()
	tracer().Infof("%s took %v", c.Name(), elapsed)
	return Result{
		Config:  c,
		Nodes:   f.Tree.Len(),
		Visited: st.Visited,
		Skipped: st.Skipped,
		Elapsed: elapsed,
	}, nil
}

// RunSuite runs every configuration, at most parallel at a time, and
// returns the results in the order of cfgs. A parallel value below 1 runs
// them one after another.
func RunSuite(ctx context.Context, cfgs []Config, parallel int) ([]Result, error) {
	if parallel < 1 {
		parallel = 1
	}
	results := make([]Result, len(cfgs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i, c := range cfgs {
		i, c := i, c
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := Run(c)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
