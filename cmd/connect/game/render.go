package game

import (
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Render writes the board as text: a header of 1 based column numbers and
// then every row from the top down, followed by a blank line. Cells are
// separated by two spaces and padded to the width of the widest header.
func Render(w io.Writer, v View) error {
	cols := v.Columns()
	width := runewidth.StringWidth(strconv.Itoa(cols))

	var data strings.Builder

	line := make([]string, cols)
	writeLine := func() {
		data.WriteString(strings.TrimRight(strings.Join(line, "  "), " "))
		data.WriteString("\n")
	}

	for col := range cols {
		line[col] = runewidth.FillRight(strconv.Itoa(col+1), width)
	}
	writeLine()

	for row := range v.Rows() {
		for col := range cols {
			line[col] = runewidth.FillRight(string(v.At(col, row).Symbol()), width)
		}
		writeLine()
	}

	data.WriteString("\n")

	_, err := io.WriteString(w, data.String())
	return err
}
