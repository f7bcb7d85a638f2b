package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"github.com/grindlemire/go-layout/internal/bench"
	"github.com/grindlemire/go-layout/pkg/debug"
)

// quickLimit is the largest tree size the -quick suite keeps.
const quickLimit = 20000

// runSuite implements the suite subcommand.
func runSuite(args []string) error {
	fs := flag.NewFlagSet("suite", flag.ExitOnError)
	parallel := fs.Int("parallel", 1, "Configurations to run at the same time")
	quick := fs.Bool("quick", false, "Skip trees larger than 20000 nodes")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfgs := bench.DefaultSuite()
	if *quick {
		kept := cfgs[:0]
		for _, c := range cfgs {
			if c.Size() <= quickLimit {
				kept = append(kept, c)
			}
		}
		cfgs = kept
	}
	if *parallel > runtime.NumCPU() {
		*parallel = runtime.NumCPU()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := bench.RunSuite(ctx, cfgs, *parallel)
	if err != nil {
		return err
	}
	for _, r := range results {
		fmt.Println(r)
		debug.Log("%s", r)
	}
	return nil
}
