package main

import (
	"fmt"
	"os"

	"github.com/ardanlabs/connect4/cmd/connect/game"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// newLogger returns a logger that appends to the log file when debug is
// on. Otherwise nothing is logged so the game owns the terminal.
func newLogger(debug bool, path string, cfg game.Config) (zerolog.Logger, func(), error) {
	if !debug {
		return zerolog.Nop(), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0664)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}

	logger := zerolog.New(f).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Str("game", uuid.NewString()).
		Int("columns", cfg.Columns).
		Int("rows", cfg.Rows).
		Int("win_length", cfg.WinLength).
		Logger()

	return logger, func() { f.Close() }, nil
}
