package game

// Family identifies one of the four groups of lines a grid is scanned in.
type Family int

// Set of line families in the order they are scanned.
const (
	FamilyColumn Family = iota
	FamilyRow
	FamilyPositiveDiagonal
	FamilyNegativeDiagonal
)

// String returns the name of the family.
func (f Family) String() string {
	switch f {
	case FamilyColumn:
		return "column"
	case FamilyRow:
		return "row"
	case FamilyPositiveDiagonal:
		return "positive diagonal"
	case FamilyNegativeDiagonal:
		return "negative diagonal"
	}

	return "unknown"
}

// Coord addresses a single cell. Row 0 is the top of the board.
type Coord struct {
	Column int
	Row    int
}

// Line represents an ordered set of cells taken from a grid: one column,
// one row or one diagonal.
type Line struct {
	Family Family
	Index  int
	Cells  []Coord
}

// Markers reads the markers under the line's cells.
func (l Line) Markers(v View) []Marker {
	markers := make([]Marker, len(l.Cells))
	for i, c := range l.Cells {
		markers[i] = v.At(c.Column, c.Row)
	}

	return markers
}

// Lines returns every line of a grid with the specified dimensions in scan
// order: columns bottom to top, rows left to right, then diagonals running
// bottom-left to top-right, then diagonals running top-left to
// bottom-right. Within each diagonal family every cell belongs to exactly
// one line, including the short lines in the corners.
func Lines(columns int, rows int) []Line {
	if columns <= 0 || rows <= 0 {
		return nil
	}

	diagonals := columns + rows - 1
	lines := make([]Line, 0, columns+rows+2*diagonals)

	for col := range columns {
		cells := make([]Coord, 0, rows)
		for row := rows - 1; row >= 0; row-- {
			cells = append(cells, Coord{Column: col, Row: row})
		}
		lines = append(lines, Line{Family: FamilyColumn, Index: col, Cells: cells})
	}

	for row := range rows {
		cells := make([]Coord, 0, columns)
		for col := range columns {
			cells = append(cells, Coord{Column: col, Row: row})
		}
		lines = append(lines, Line{Family: FamilyRow, Index: row, Cells: cells})
	}

	// Positive diagonals hold column+row constant, so the row climbs
	// towards the top as the column grows.
	for i := range diagonals {
		var cells []Coord
		for col := range columns {
			if row := i - col; row >= 0 && row < rows {
				cells = append(cells, Coord{Column: col, Row: row})
			}
		}
		lines = append(lines, Line{Family: FamilyPositiveDiagonal, Index: i, Cells: cells})
	}

	// Negative diagonals hold row-column constant.
	for i := range diagonals {
		var cells []Coord
		for col := range columns {
			if row := i - columns + col + 1; row >= 0 && row < rows {
				cells = append(cells, Coord{Column: col, Row: row})
			}
		}
		lines = append(lines, Line{Family: FamilyNegativeDiagonal, Index: i, Cells: cells})
	}

	return lines
}

// =============================================================================

// Run represents a maximal sequence of identical markers inside a line.
type Run struct {
	Marker Marker
	Start  int
	Length int
}

// Runs groups consecutive equal markers.
func Runs(markers []Marker) []Run {
	var runs []Run

	for i, m := range markers {
		if n := len(runs); n > 0 && runs[n-1].Marker == m {
			runs[n-1].Length++
			continue
		}
		runs = append(runs, Run{Marker: m, Start: i, Length: 1})
	}

	return runs
}
