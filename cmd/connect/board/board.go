// Package board handles the full screen game board and all interactions.
package board

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ardanlabs/connect4/cmd/connect/game"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog"
)

const (
	cellWidth  = 4
	cellHeight = 2
	padTop     = 4
	padLeft    = 1
	dropDelay  = 60 * time.Millisecond
)

const (
	hozTopRune = '━'
	hozBotRune = '▅'
	verRune    = '┃'
	space      = ' '
)

const (
	dirLeft  = "left"
	dirRight = "right"
)

const tieMsg = "Tie Game"

// Board represents the game board on the screen and all its state.
type Board struct {
	log           zerolog.Logger
	screen        tcell.Screen
	style         tcell.Style
	cfg           game.Config
	game          *game.Board
	dropDelay     time.Duration
	inputCol      int
	currentTurn   game.Marker
	lastWinner    game.Marker
	lastWinnerMsg string
	message       string
	gameOver      bool
}

// NewScreen constructs and initializes the terminal screen.
func NewScreen() (tcell.Screen, error) {
	tcell.SetEncodingFallback(tcell.EncodingFallbackASCII)

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}

	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("screen init: %w", err)
	}

	return screen, nil
}

// New contructs a game board and renders it on the initialized screen.
func New(log zerolog.Logger, screen tcell.Screen, cfg game.Config) (*Board, error) {
	g, err := game.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	style := tcell.StyleDefault
	style = style.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)

	board := Board{
		log:         log,
		screen:      screen,
		style:       style,
		cfg:         cfg,
		game:        g,
		dropDelay:   dropDelay,
		inputCol:    cfg.Columns / 2,
		currentTurn: game.Markers.Red,
	}

	board.drawInit()

	return &board, nil
}

// Shutdown tears down the game board.
func (b *Board) Shutdown() {
	b.screen.Fini()
}

// Run starts a goroutine to handle terminal events. The returned channel
// is closed when the player quits.
func (b *Board) Run() chan struct{} {
	return b.pollEvents()
}

// State returns the state of the current game.
func (b *Board) State() game.State {
	return b.game.ToState()
}

// =============================================================================

func (b *Board) boardWidth() int {
	return b.cfg.Columns*cellWidth + 1
}

func (b *Board) boardHeight() int {
	return b.cfg.Rows * cellHeight
}

// cellPos returns the screen position of the center of a cell. Row -1 is
// the selector line above the board.
func cellPos(col int, row int) (int, int) {
	return padLeft + col*cellWidth + cellWidth/2, padTop + row*cellHeight + 1
}

func (b *Board) newGame() {
	g, err := game.New(b.cfg)
	if err != nil {
		b.message = err.Error()
		b.drawPanel()
		return
	}

	b.game = g
	b.inputCol = b.cfg.Columns / 2
	b.gameOver = false
	b.message = ""

	if !b.lastWinner.IsZero() {
		b.currentTurn = b.lastWinner
	}

	b.log.Info().Str("first", b.currentTurn.String()).Msg("new game")

	b.drawInit()
}

func (b *Board) drawInit() {
	b.screen.Clear()
	b.drawEmptyGameBoard()
	b.applyBoardState()
	b.screen.Show()
}

func (b *Board) drawEmptyGameBoard() {
	width := b.boardWidth()
	height := b.boardHeight()

	style := b.style.Foreground(tcell.ColorGrey)

	for h := 0; h <= height; h++ {
		for w := 0; w < width; w++ {

			// Clear the entire line.
			b.screen.SetContent(w+padLeft, h+padTop, space, nil, style)

			if h%cellHeight == 0 {

				// These are the '━' characters creating each row.
				b.screen.SetContent(w+padLeft, h+padTop, hozTopRune, nil, style)

				if h == height {

					// These are the '▅' characters creating the bottom row.
					b.screen.SetContent(w+padLeft, h+padTop, hozBotRune, nil, style)
				}
			}

			if w%cellWidth == 0 {

				// These are the '┃' characters creating each column.
				b.screen.SetContent(w+padLeft, h+padTop, verRune, nil, style)
			}
		}
	}

	b.print(padLeft, 1, "Connect Four", b.style)

	for col := range b.cfg.Columns {
		x, _ := cellPos(col, 0)
		b.print(x, padTop+height+1, strconv.Itoa(col+1), style)
	}

	b.print(b.panelX(), padTop-1, "<n> new game   <q> quit game", b.style)
}

func (b *Board) applyBoardState() {
	cells := b.game.Cells()
	for col := range cells {
		for row := range cells[col] {
			b.drawPiece(col, row, cells[col][row], false)
		}
	}

	if win, won := b.game.Win(); won {
		for _, c := range win.Cells() {
			b.drawPiece(c.Column, c.Row, win.Marker, true)
		}
	}

	b.drawPanel()

	if b.gameOver {
		b.drawModal()
		return
	}

	b.drawSelector()
}

func (b *Board) markerStyle(marker game.Marker) tcell.Style {
	switch marker {
	case game.Markers.Red:
		return b.style.Foreground(tcell.ColorRed).Bold(true)
	case game.Markers.Yellow:
		return b.style.Foreground(tcell.ColorYellow).Bold(true)
	}

	return b.style
}

func (b *Board) drawPiece(col int, row int, marker game.Marker, highlight bool) {
	x, y := cellPos(col, row)

	if marker.IsZero() {
		b.screen.SetContent(x, y, space, nil, b.style)
		return
	}

	style := b.markerStyle(marker)
	if highlight {
		style = style.Reverse(true)
	}

	b.screen.SetContent(x, y, marker.Symbol(), nil, style)
}

func (b *Board) clearSelector() {
	for col := range b.cfg.Columns {
		x, y := cellPos(col, -1)
		b.screen.SetContent(x, y, space, nil, b.style)
	}
}

func (b *Board) drawSelector() {
	b.clearSelector()

	x, y := cellPos(b.inputCol, -1)
	b.screen.SetContent(x, y, b.currentTurn.Symbol(), nil, b.markerStyle(b.currentTurn))
}

func (b *Board) panelX() int {
	return padLeft + b.boardWidth() + 3
}

func (b *Board) drawPanel() {
	x := b.panelX()

	turn := "Turn:        " + label(b.currentTurn)
	if b.gameOver {
		turn = "Turn:        -"
	}

	b.printLine(x, padTop+1, turn)
	b.printLine(x, padTop+2, "Last Winner: "+b.lastWinnerMsg)
	b.printLine(x, padTop+4, b.message)
}

func label(marker game.Marker) string {
	return fmt.Sprintf("%s (%c)", marker, marker.Symbol())
}

func (b *Board) movePlayerPiece(direction string) {
	if b.gameOver {
		return
	}

	switch {
	case direction == dirLeft && b.inputCol == 0:
		return
	case direction == dirRight && b.inputCol == b.cfg.Columns-1:
		return
	}

	switch direction {
	case dirLeft:
		b.inputCol--
	case dirRight:
		b.inputCol++
	}

	b.drawSelector()
	b.screen.Show()
}

// userTurn drops the current player's marker in the selected column.
func (b *Board) userTurn() {
	if b.gameOver {
		b.screen.Beep()
		return
	}

	move, err := b.game.Insert(b.inputCol, b.currentTurn)
	if err != nil {
		b.log.Info().Err(err).Str("player", b.currentTurn.String()).Msg("rejected move")

		b.message = fmt.Sprintf("column %d is full", b.inputCol+1)
		b.drawPanel()
		b.screen.Beep()
		b.screen.Show()
		return
	}

	b.log.Debug().
		Str("player", move.Marker.String()).
		Int("column", move.Column+1).
		Int("row", move.Row+1).
		Msg("move")

	b.message = ""
	b.dropPiece(move)

	switch {
	case move.HasWinner():
		b.showWinner(move.Winner)

	case b.game.Full():
		b.showWinner(game.Markers.Empty)

	default:
		b.currentTurn = b.currentTurn.Opponent()
		b.inputCol = b.cfg.Columns / 2
		b.drawSelector()
		b.drawPanel()
	}

	b.screen.Show()
}

// dropPiece animates the marker falling down to its row.
func (b *Board) dropPiece(move game.Move) {
	b.clearSelector()

	for row := 0; row < move.Row; row++ {
		b.drawPiece(move.Column, row, move.Marker, false)
		b.screen.Show()

		if b.dropDelay > 0 {
			time.Sleep(b.dropDelay)
		}

		b.drawPiece(move.Column, row, game.Markers.Empty, false)
	}

	b.drawPiece(move.Column, move.Row, move.Marker, false)
}

// showWinner ends the game. The empty marker means a tie.
func (b *Board) showWinner(marker game.Marker) {
	switch {
	case marker.IsZero():
		b.lastWinnerMsg = tieMsg
	default:
		b.lastWinner = marker
		b.lastWinnerMsg = label(marker)
	}

	b.gameOver = true

	b.log.Info().Str("winner", b.lastWinnerMsg).Int("moves", b.game.Moves()).Msg("game over")

	if win, won := b.game.Win(); won {
		for _, c := range win.Cells() {
			b.drawPiece(c.Column, c.Row, win.Marker, true)
		}
	}

	b.clearSelector()
	b.drawPanel()
	b.drawModal()
}

// drawModal displays the result in a box over the board.
func (b *Board) drawModal() {
	msg := b.lastWinnerMsg + " won"
	if b.lastWinnerMsg == tieMsg {
		msg = tieMsg
	}

	width := max(runewidth.StringWidth(msg)+4, 16)
	x := b.panelX()
	y := padTop + 6

	b.drawBox(x, y, x+width, y+5)
	b.print(x+(width-runewidth.StringWidth(msg))/2, y+2, msg, b.style)
	b.print(x+2, y+3, "<n> play again", b.style.Foreground(tcell.ColorGrey))
}

// drawBox draws an empty box on the screen.
func (b *Board) drawBox(x int, y int, width int, height int) {
	style := b.style.Foreground(tcell.ColorGray)

	for h := y; h < height; h++ {
		for w := x; w < width; w++ {
			b.screen.SetContent(w, h, space, nil, b.style)
		}
	}

	for h := y; h < height; h++ {
		for w := x; w < width; w++ {
			if h == y {
				b.screen.SetContent(w, h, '▀', nil, style)
			}
			if h == height-1 {
				b.screen.SetContent(w, h, '▄', nil, style)
			}
			if w == x || w == width-1 {
				b.screen.SetContent(w, h, '█', nil, style)
			}
		}
	}
}

// printLine prints the string and clears the rest of the line.
func (b *Board) printLine(x int, y int, str string) {
	screenWidth, _ := b.screen.Size()

	end := b.print(x, y, str, b.style)
	for ; end < screenWidth; end++ {
		b.screen.SetContent(end, y, space, nil, b.style)
	}
}

// print places the string on the screen and returns the column after it.
func (b *Board) print(x int, y int, str string, style tcell.Style) int {
	for _, c := range str {
		var comb []rune
		w := runewidth.RuneWidth(c)
		if w == 0 {
			comb = []rune{c}
			c = ' '
			w = 1
		}
		b.screen.SetContent(x, y, c, comb, style)
		x += w
	}

	return x
}
