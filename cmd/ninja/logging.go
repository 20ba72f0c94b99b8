package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ninja-killers/internal/config"
	"github.com/vovakirdan/ninja-killers/internal/storage"
)

// newLogger builds the process logger. Logs go to the configured file, or
// to fallback when none is set. The returned closer is nil for fallback.
func newLogger(s config.Settings, fallback io.Writer) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", s.LogLevel, err)
	}

	var (
		w      io.Writer = fallback
		closer io.Closer
	)
	if s.LogFile != "" {
		path, err := storage.ExpandHome(s.LogFile)
		if err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}

	l := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "ninja",
		ReportTimestamp: true,
	})
	return l, closer, nil
}
