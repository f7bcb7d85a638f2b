// Package bench builds synthetic trees and times layout passes over them.
//
// A [Config] describes a tree by depth and fan-out. In [NoCache] mode every
// run lays out a fresh engine; in [InvalidatedCache] mode the tree is laid
// out once, a node in the middle of it is resized and only the timed pass
// repairs the cache. The difference between the two is the work the
// incremental cache saves.
package bench

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'layout.bench'.
func tracer() tracing.Trace {
	return tracing.Select("layout.bench")
}
