// Package logging provides the process-wide zerolog logger.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu     sync.Mutex
	root   zerolog.Logger
	inited bool
)

// Get returns the root logger, initializing it from the environment on first
// use. Level comes from FRESHNESS_LOG (debug, info, warn, error; default warn)
// so normal CLI output stays clean unless diagnostics are asked for.
func Get() *zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if !inited {
		setup(os.Getenv("FRESHNESS_LOG"), os.Stderr)
	}
	return &root
}

// Init configures the root logger explicitly, replacing any earlier setup.
func Init(level string, w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	setup(level, w)
}

func setup(level string, w io.Writer) {
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	root = zerolog.New(cw).Level(parseLevel(level)).With().Timestamp().Logger()
	inited = true
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}
