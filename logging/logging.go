// Package logging routes the standard logger to a per-tool file under a log directory
// Tools log nothing unless debug is enabled, so terminal output stays clean
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	// DefaultDir is where tools place their log files
	DefaultDir = "logs"

	// MaxSize is the size at which an existing log is rotated aside on startup
	MaxSize = 10 * 1024 * 1024
)

// Setup points the standard logger at dir/name when debug is set and returns the
// open file for the caller to close; otherwise logs are discarded and nil is returned
func Setup(dir, name string, debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "log dir %s: %v\n", dir, err)
		log.SetOutput(io.Discard)
		return nil
	}

	path := filepath.Join(dir, name)
	rotate(path)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log file %s: %v\n", path, err)
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	return f
}

// rotate renames an oversized log to name-<timestamp>.log
func rotate(path string) {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= MaxSize {
		return
	}
	ext := filepath.Ext(path)
	base := path[:len(path)-len(ext)]
	rotated := fmt.Sprintf("%s-%s%s", base, time.Now().Format("20060102-150405"), ext)
	if err := os.Rename(path, rotated); err != nil {
		fmt.Fprintf(os.Stderr, "log rotate %s: %v\n", path, err)
	}
}
