package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
)

// New returns a key/value text logger writing to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// LogStandardFatal is for failures before a logger exists or after it can no
// longer be trusted. It exits with status 1.
func LogStandardFatal(msg string, err error) {
	log.SetOutput(os.Stderr)
	log.Fatalf("%s: %v", msg, err)
}
