package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "LAYOUT_DEBUG"

var (
	logFile *os.File
	mu      sync.Mutex
)

// Init opens the debug log at path, creating parent directories as needed.
// Messages are appended to existing content.
func Init(path string) error {
	if path == "" {
		return fmt.Errorf("failed to open debug log: empty path")
	}
	mu.Lock()
	defer mu.Unlock()

	// Ensure directory exists
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}
	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	return nil
}

// InitFromEnv calls Init with the path in LAYOUT_DEBUG. It does nothing and
// reports false when the variable is unset.
func InitFromEnv() (bool, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return false, nil
	}
	if err := Init(path); err != nil {
		return false, err
	}
	return true, nil
}

// Enabled reports whether a debug log is open.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return logFile != nil
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Log writes a message to the debug log with a timestamp. Without an open
// log it does nothing.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if logFile == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(logFile, "[%s] %s\n", timestamp, msg)
	logFile.Sync()
}
