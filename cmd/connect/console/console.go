// Package console plays a game of connect four over a line oriented
// terminal: the board is printed, the current player types a column.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ardanlabs/connect4/cmd/connect/game"
	"github.com/rs/zerolog"
)

// ErrQuit is returned when the players leave before the game is over.
var ErrQuit = errors.New("quit")

// Result represents how a game ended.
type Result struct {
	Winner game.Marker
	Draw   bool
	Moves  int
	Final  game.State
}

// Console provides the turn taking loop.
type Console struct {
	log zerolog.Logger
	in  *bufio.Scanner
	out io.Writer
}

// New constructs a console reading moves from in and printing to out.
func New(log zerolog.Logger, in io.Reader, out io.Writer) *Console {
	return &Console{
		log: log,
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Play runs turns on the board until a player wins, the board is full or
// the input ends. The first marker moves first. Bad input never switches
// the player.
func (c *Console) Play(ctx context.Context, b *game.Board, first game.Marker) (Result, error) {
	turn := first

	for {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		if err := game.Render(c.out, b); err != nil {
			return Result{}, fmt.Errorf("render: %w", err)
		}

		fmt.Fprintf(c.out, "%s's turn: ", turn)

		token, err := c.readLine()
		if err != nil {
			return Result{}, err
		}

		if isQuit(token) {
			c.log.Info().Str("player", turn.String()).Msg("quit")
			return Result{}, ErrQuit
		}

		// ---------------------------------------------------------------------
		// Apply the player's column choice

		column, err := ParseColumn(token)
		if errors.Is(err, game.ErrInvalidInput) {
			c.log.Info().Err(err).Str("player", turn.String()).Msg("invalid input")
			fmt.Fprintf(c.out, "Sorry, you need a number from 1 to %d.\n\n", b.Columns())
			continue
		}

		var move game.Move
		if err == nil {
			move, err = b.Insert(column, turn)
		}

		switch {
		case errors.Is(err, game.ErrColumnFull):
			c.log.Info().Err(err).Str("player", turn.String()).Msg("rejected move")
			fmt.Fprint(c.out, "Sorry, the column is full!\n\n")
			continue

		case errors.Is(err, game.ErrOutOfRange):
			c.log.Info().Err(err).Str("player", turn.String()).Msg("rejected move")
			fmt.Fprint(c.out, "Sorry, you can't put a marker there.\n\n")
			continue

		case err != nil:
			return Result{}, fmt.Errorf("insert: %w", err)
		}

		c.log.Debug().
			Str("player", turn.String()).
			Int("column", move.Column+1).
			Int("row", move.Row+1).
			Msg("move")

		// ---------------------------------------------------------------------
		// Check if the game is over

		switch {
		case move.HasWinner():
			if err := game.Render(c.out, b); err != nil {
				return Result{}, fmt.Errorf("render: %w", err)
			}
			fmt.Fprintf(c.out, "%s won!\n", move.Winner)

			c.log.Info().Str("winner", move.Winner.String()).Int("moves", b.Moves()).Msg("game over")

			return c.result(b), nil

		case b.Full():
			if err := game.Render(c.out, b); err != nil {
				return Result{}, fmt.Errorf("render: %w", err)
			}
			fmt.Fprint(c.out, "It's a draw!\n")

			c.log.Info().Bool("draw", true).Int("moves", b.Moves()).Msg("game over")

			return c.result(b), nil
		}

		turn = turn.Opponent()
	}
}

func (c *Console) readLine() (string, error) {
	if c.in.Scan() {
		return c.in.Text(), nil
	}

	if err := c.in.Err(); err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}

	// The input ended without an answer.
	fmt.Fprintln(c.out)

	return "", ErrQuit
}

func (c *Console) result(b *game.Board) Result {
	state := b.ToState()

	return Result{
		Winner: state.Winner,
		Draw:   state.Draw,
		Moves:  state.Moves,
		Final:  state,
	}
}
