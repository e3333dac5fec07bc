package board

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
)

// pollEvents starts a goroutine to handle terminal events.
func (b *Board) pollEvents() chan struct{} {
	quit := make(chan struct{})

	go func() {
		defer close(quit)

		defer func() {
			if r := recover(); r != nil {
				b.screen.Fini()
				fmt.Fprintln(os.Stderr, r)
				debug.PrintStack()
			}
		}()

		for {
			switch ev := b.screen.PollEvent().(type) {
			case nil:

				// The screen was shut down.
				return

			case *tcell.EventResize:
				b.screen.Sync()
				b.drawInit()

			case *tcell.EventKey:
				if b.handleKey(ev) {
					return
				}
			}
		}
	}()

	return quit
}

// handleKey applies a key press to the board. It returns true when the
// player wants to quit.
func (b *Board) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true

	case tcell.KeyRune:
		switch r := ev.Rune(); {
		case r == 'q':
			return true

		case r == 'n':
			b.newGame()

		case r == ' ':
			b.userTurn()

		// A digit picks the column and drops straight away.
		case r >= '1' && r <= '9':
			col := int(r - '1')
			if b.gameOver || col >= b.cfg.Columns {
				b.screen.Beep()
				return false
			}
			b.inputCol = col
			b.userTurn()
		}

	case tcell.KeyLeft:
		b.movePlayerPiece(dirLeft)

	case tcell.KeyRight:
		b.movePlayerPiece(dirRight)

	case tcell.KeyEnter, tcell.KeyDown:
		b.userTurn()
	}

	return false
}
