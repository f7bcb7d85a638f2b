package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/grindlemire/go-layout/internal/bench"
	"github.com/grindlemire/go-layout/pkg/debug"
)

// maxDumpSize keeps dumps readable.
const maxDumpSize = 5000

// runTree implements the tree subcommand. It lays out a synthetic tree and
// prints the area of every node.
func runTree(args []string) error {
	fs := flag.NewFlagSet("tree", flag.ExitOnError)
	depth := fs.Int("depth", 3, "Levels in the tree including the root")
	wide := fs.Int("wide", 2, "Children per branch node")
	out := fs.String("out", "", "Write the dump to this file instead of stdout")

	if err := fs.Parse(args); err != nil {
		return err
	}

	c := bench.Config{Depth: *depth, Wide: *wide}
	if c.Size() > maxDumpSize {
		return fmt.Errorf("tree of %d nodes is too large to print", c.Size())
	}
	f, e, err := bench.Prepare(c)
	if err != nil {
		return err
	}
	bench.Pass(f, e)
	dump := debug.Dump[int](e, f.Tree, f.Root)
	debug.LogLayout[int](e, f.Tree, f.Root)

	if *out == "" {
		fmt.Print(dump)
		return nil
	}
	if err := os.WriteFile(*out, []byte(dump), 0644); err != nil {
		return fmt.Errorf("writing dump: %w", err)
	}
	return nil
}
