package infra

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// SetupLogger creates logDir if needed and returns a logger writing to both a
// dated file (vyapar_YYYYMMDD.log) and the console. In production the console
// writer is skipped and the file gets plain JSON lines.
func SetupLogger(logDir, env string) (zerolog.Logger, error) {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return zerolog.Nop(), fmt.Errorf("create log dir %s: %w", logDir, err)
	}

	name := fmt.Sprintf("vyapar_%s.log", time.Now().Format("20060102"))
	f, err := os.OpenFile(filepath.Join(logDir, name), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("open log file %s: %w", name, err)
	}

	var w io.Writer = f
	if env != "production" {
		console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
		w = zerolog.MultiLevelWriter(console, f)
	}

	return zerolog.New(w).With().Timestamp().Logger(), nil
}
