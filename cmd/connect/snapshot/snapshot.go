// Package snapshot draws a picture of a board.
package snapshot

import (
	"fmt"
	"io"

	"github.com/ardanlabs/connect4/cmd/connect/game"
	"github.com/fogleman/gg"
)

const (
	cellSize = 40
	radius   = 15
	margin   = 10
)

// Size returns the width and height in pixels of the image for a board of
// the specified dimensions.
func Size(columns int, rows int) (int, int) {
	return columns*cellSize + 2*margin, rows*cellSize + 2*margin
}

// Center returns the pixel at the center of a cell.
func Center(col int, row int) (int, int) {
	return margin + col*cellSize + cellSize/2, margin + row*cellSize + cellSize/2
}

// Encode writes the board to w as a PNG.
func Encode(w io.Writer, state game.State) error {
	dc := draw(state)

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}

	return nil
}

// Save writes the board to a PNG file.
func Save(path string, state game.State) error {
	dc := draw(state)

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save png: %w", err)
	}

	return nil
}

func draw(state game.State) *gg.Context {
	cols := state.Cells.Columns()
	rows := state.Cells.Rows()
	width, height := Size(cols, rows)

	dc := gg.NewContext(width, height)
	dc.SetRGB(0.1, 0.25, 0.65)
	dc.Clear()

	for col := range cols {
		for row := range rows {
			x, y := Center(col, row)

			switch state.Cells.At(col, row) {
			case game.Markers.Red:
				dc.SetRGB(1, 0, 0)
			case game.Markers.Yellow:
				dc.SetRGB(1, 1, 0)
			default:
				dc.SetRGB(0.85, 0.85, 0.85)
			}

			dc.DrawCircle(float64(x), float64(y), radius)
			dc.Fill()
		}
	}

	// Ring the cells of the winning line.
	dc.SetRGB(1, 1, 1)
	dc.SetLineWidth(3)
	for _, c := range state.WinningCells {
		x, y := Center(c.Column, c.Row)
		dc.DrawCircle(float64(x), float64(y), radius+2)
		dc.Stroke()
	}

	return dc
}
