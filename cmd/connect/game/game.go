// Package game provides the connect four board, its markers and the
// detection of a winning line.
package game

import "fmt"

// Grid holds markers indexed by column and then row. Row 0 is the top of
// the board.
type Grid [][]Marker

// NewGrid constructs a grid of empty cells.
func NewGrid(columns int, rows int) Grid {
	g := make(Grid, columns)
	for col := range g {
		g[col] = make([]Marker, rows)
	}

	return g
}

// Columns returns the number of columns in the grid.
func (g Grid) Columns() int {
	return len(g)
}

// Rows returns the number of rows in the grid.
func (g Grid) Rows() int {
	if len(g) == 0 {
		return 0
	}

	return len(g[0])
}

// At returns the marker in the specified cell.
func (g Grid) At(column int, row int) Marker {
	return g[column][row]
}

// Clone makes a deep copy of the grid.
func (g Grid) Clone() Grid {
	c := make(Grid, len(g))
	for col := range g {
		c[col] = make([]Marker, len(g[col]))
		copy(c[col], g[col])
	}

	return c
}

// =============================================================================

// Move represents a marker that was placed on the board.
type Move struct {
	Column int
	Row    int
	Marker Marker
	Winner Marker
}

// HasWinner reports whether the move produced a winning line.
func (m Move) HasWinner() bool {
	return !m.Winner.IsZero()
}

// Board represents the game board and all its state.
type Board struct {
	cfg      Config
	cells    Grid
	lastMove Move
	moves    int
	win      Win
	won      bool
}

// New contructs an empty game board.
func New(cfg Config) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	board := Board{
		cfg:   cfg,
		cells: NewGrid(cfg.Columns, cfg.Rows),
	}

	return &board, nil
}

// Insert drops the marker into the specified zero based column. The marker
// lands in the lowest empty cell. After the marker is placed the board is
// checked for a winner, which is reported on the returned move. Ending the
// game is left to the caller.
func (b *Board) Insert(column int, marker Marker) (Move, error) {
	if _, exists := markers[marker.name]; !exists {
		return Move{}, fmt.Errorf("insert %s: %w", marker, ErrInvalidMarker)
	}

	if column < 0 || column >= b.cfg.Columns {
		return Move{}, fmt.Errorf("column %d: %w", column+1, ErrOutOfRange)
	}

	cells := b.cells[column]
	if !cells[0].IsZero() {
		return Move{}, fmt.Errorf("column %d: %w", column+1, ErrColumnFull)
	}

	// Walk the column from the bottom up to find the empty cell.
	row := b.cfg.Rows - 1
	for !cells[row].IsZero() {
		row--
	}

	cells[row] = marker
	b.moves++

	move := Move{
		Column: column,
		Row:    row,
		Marker: marker,
	}

	if win, won := Scan(b.cells, b.cfg.WinLength); won {
		move.Winner = win.Marker
		b.win = win
		b.won = true
	}

	b.lastMove = move

	return move, nil
}

// Config returns the settings the board was constructed with.
func (b *Board) Config() Config {
	return b.cfg
}

// Columns returns the number of columns.
func (b *Board) Columns() int {
	return b.cfg.Columns
}

// Rows returns the number of rows.
func (b *Board) Rows() int {
	return b.cfg.Rows
}

// WinLength returns the run length needed to win.
func (b *Board) WinLength() int {
	return b.cfg.WinLength
}

// At returns the marker in the specified cell.
func (b *Board) At(column int, row int) Marker {
	return b.cells[column][row]
}

// Cells returns a copy of the grid.
func (b *Board) Cells() Grid {
	return b.cells.Clone()
}

// Moves returns the number of markers placed so far.
func (b *Board) Moves() int {
	return b.moves
}

// LastMove returns the most recent successful move.
func (b *Board) LastMove() (Move, bool) {
	return b.lastMove, b.moves > 0
}

// Win returns the winning run recorded by the most recent insert that
// produced one.
func (b *Board) Win() (Win, bool) {
	return b.win, b.won
}

// Full reports whether every column is full.
func (b *Board) Full() bool {
	for _, cells := range b.cells {
		if cells[0].IsZero() {
			return false
		}
	}

	return true
}

// Open reports whether the column still has an empty cell.
func (b *Board) Open(column int) bool {
	if column < 0 || column >= b.cfg.Columns {
		return false
	}

	return b.cells[column][0].IsZero()
}
