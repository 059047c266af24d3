// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/roadnet/internal/config"
)

// newLogger builds the process logger from a validated config. It does not set
// the global logger.
func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	// config.New limits LogLevel to names slog itself understands.
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
