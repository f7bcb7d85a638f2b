// Package main provides a CLI for timing the layout engine.
//
// Usage:
//
//	layoutbench run [options]     Time one layout pass over a synthetic tree
//	layoutbench suite [options]   Run the standard benchmark suite
//	layoutbench tree [options]    Print the computed layout of a small tree
//	layoutbench help              Show help
//
// Examples:
//
//	layoutbench run -depth 5 -wide 15 -mode cached
//	layoutbench suite -parallel 4
//	layoutbench tree -depth 3 -wide 2
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/grindlemire/go-layout/pkg/debug"
	"github.com/npillmayer/schuko/tracing"
)

const version = "0.1.0"

const usage = `layoutbench - benchmarks for the incremental layout engine

Usage:
  layoutbench <command> [options]

Commands:
  run         Time one layout pass over a synthetic tree
  suite       Run the standard benchmark suite
  tree        Print the computed layout of a synthetic tree
  version     Print version information
  help        Show this help message

Examples:
  layoutbench run -depth 5 -wide 15               Full layout of 54241 nodes
  layoutbench run -depth 5 -wide 15 -mode cached  Repair after one node changed
  layoutbench suite                               Run every standard configuration
  layoutbench suite -quick -parallel 4            Skip the largest trees
  layoutbench tree -depth 3 -wide 2 -out tree.txt Write the layout dump to a file

Environment:
  LAYOUT_TRACE  Trace level: error, info or debug
  LAYOUT_DEBUG  Path of a debug log that receives results and layout dumps
`

var traceKeys = []string{"layout.engine", "layout.memtree", "layout.text", "layout.bench"}

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	setTraceLevel(os.Getenv("LAYOUT_TRACE"))
	if _, err := debug.InitFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	defer debug.Close()

	var err error
	switch command {
	case "run":
		err = runOne(args)
	case "suite":
		err = runSuite(args)
	case "tree":
		err = runTree(args)
	case "version":
		fmt.Printf("layoutbench version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		debug.Close()
		os.Exit(1)
	}
}

func setTraceLevel(level string) {
	if level == "" {
		return
	}
	l := tracing.LevelError
	switch strings.ToLower(level) {
	case "debug":
		l = tracing.LevelDebug
	case "info":
		l = tracing.LevelInfo
	}
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(l)
	}
}
