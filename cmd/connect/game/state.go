package game

// State represents the state of the board for any UI to display.
type State struct {
	Config       Config
	Cells        Grid
	LastMove     Move
	Moves        int
	Winner       Marker
	WinningCells []Coord
	Draw         bool
	GameOver     bool
}

// ToState captures a copy of the board that is safe to hand out.
func (b *Board) ToState() State {
	state := State{
		Config:   b.cfg,
		Cells:    b.cells.Clone(),
		LastMove: b.lastMove,
		Moves:    b.moves,
	}

	switch {
	case b.won:
		state.Winner = b.win.Marker
		state.WinningCells = b.win.Cells()
		state.GameOver = true

	case b.Full():
		state.Draw = true
		state.GameOver = true
	}

	return state
}
