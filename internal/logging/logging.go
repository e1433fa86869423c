// Package logging provides the structured logger shared by firmatactl's
// subcommands.
package logging

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

// New builds a colorized, human-readable slog.Logger writing to stderr.
// firmatactl's subcommands report everything through it, decoded packets
// included; they write nothing to stdout.
func New(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
	})
	return slog.New(handler)
}
