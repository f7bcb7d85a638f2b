package main

import (
	"flag"
	"fmt"

	"github.com/grindlemire/go-layout/internal/bench"
	"github.com/grindlemire/go-layout/pkg/debug"
)

// runOne implements the run subcommand.
func runOne(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	depth := fs.Int("depth", 5, "Levels in the tree including the root")
	wide := fs.Int("wide", 15, "Children per branch node")
	mode := fs.String("mode", "uncached", "cached or uncached")

	if err := fs.Parse(args); err != nil {
		return err
	}

	m, err := parseMode(*mode)
	if err != nil {
		return err
	}

	r, err := bench.Run(bench.Config{Depth: *depth, Wide: *wide, Mode: m})
	if err != nil {
		return err
	}
	fmt.Println(r)
	debug.Log("%s", r)
	return nil
}

func parseMode(s string) (bench.Mode, error) {
	switch s {
	case "uncached", "none":
		return bench.NoCache, nil
	case "cached", "invalidated":
		return bench.InvalidatedCache, nil
	default:
		return 0, fmt.Errorf("unknown mode %q", s)
	}
}
