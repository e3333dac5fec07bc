package game

import "fmt"

// Default board settings.
const (
	DefaultColumns   = 7
	DefaultRows      = 6
	DefaultWinLength = 4

	// maxDimension keeps a board small enough to fit a terminal.
	maxDimension = 64
)

// Config represents the settings a board is constructed with. They can't
// change for the life of the board.
type Config struct {
	Columns   int `json:"columns"`
	Rows      int `json:"rows"`
	WinLength int `json:"winLength"`
}

// DefaultConfig returns the classic 7x6 connect four settings.
func DefaultConfig() Config {
	return Config{
		Columns:   DefaultColumns,
		Rows:      DefaultRows,
		WinLength: DefaultWinLength,
	}
}

// Validate checks the config can be used to construct a board.
func (cfg Config) Validate() error {
	check := func(name string, v int) error {
		if v < 1 || v > maxDimension {
			return fmt.Errorf("%s must be between 1 and %d, got %d: %w", name, maxDimension, v, ErrInvalidConfig)
		}
		return nil
	}

	if err := check("columns", cfg.Columns); err != nil {
		return err
	}

	if err := check("rows", cfg.Rows); err != nil {
		return err
	}

	if err := check("win length", cfg.WinLength); err != nil {
		return err
	}

	return nil
}

// Winnable reports whether a run of the win length fits on the board at
// all. When it doesn't, a game can only end in a draw.
func (cfg Config) Winnable() bool {
	return cfg.WinLength <= max(cfg.Columns, cfg.Rows)
}
