package game

// View is read-only access to the cells of a board.
type View interface {
	Columns() int
	Rows() int
	At(column int, row int) Marker
}

// Win describes the run that won the game.
type Win struct {
	Marker Marker
	Line   Line
	Start  int
	Length int
}

// Cells returns the coordinates of the winning run.
func (w Win) Cells() []Coord {
	if w.Length == 0 {
		return nil
	}

	return w.Line.Cells[w.Start : w.Start+w.Length]
}

// Scan looks for the first run of a single player's markers at least
// winLength long. Lines are checked in the order produced by Lines. The
// view is never modified.
func Scan(v View, winLength int) (Win, bool) {
	for _, line := range Lines(v.Columns(), v.Rows()) {
		if len(line.Cells) < winLength {
			continue
		}

		for _, run := range Runs(line.Markers(v)) {
			if run.Marker.IsZero() || run.Length < winLength {
				continue
			}

			win := Win{
				Marker: run.Marker,
				Line:   line,
				Start:  run.Start,
				Length: run.Length,
			}

			return win, true
		}
	}

	return Win{}, false
}

// Winner returns the winning marker, or the empty marker when nobody has
// won.
func Winner(v View, winLength int) Marker {
	win, _ := Scan(v, winLength)
	return win.Marker
}
