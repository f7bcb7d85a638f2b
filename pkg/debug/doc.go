// Package debug dumps computed layouts and writes them to an optional
// debug log.
//
// When the LAYOUT_DEBUG environment variable is set to a file path,
// InitFromEnv opens that file and Log appends timestamped messages to it.
// Otherwise, logging is a no-op.
package debug
