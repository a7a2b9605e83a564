package logging

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

// DefaultFile is the log written next to the config when no path is given.
const DefaultFile = "combobox.log"

// Init points slog and the standard log package at path. The terminal
// belongs to the UI, so nothing is ever logged to stdout or stderr. The
// returned closer releases the file.
func Init(path string, debug bool) (io.Closer, error) {
	if path == "" {
		path = DefaultFile
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	slog.SetDefault(New(file, debug))

	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return file, nil
}

// New builds the text logger used across the app.
func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
