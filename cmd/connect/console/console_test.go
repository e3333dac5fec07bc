package console_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ardanlabs/connect4/cmd/connect/console"
	"github.com/ardanlabs/connect4/cmd/connect/game"
	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
)

func play(t *testing.T, cfg game.Config, input string) (console.Result, string, *game.Board, error) {
	t.Helper()

	b, err := game.New(cfg)
	if err != nil {
		t.Fatalf("new board: %v", err)
	}

	var out bytes.Buffer
	c := console.New(zerolog.Nop(), strings.NewReader(input), &out)

	result, err := c.Play(context.Background(), b, game.Markers.Red)

	return result, out.String(), b, err
}

// =============================================================================

func TestPlayTranscript(t *testing.T) {
	cfg := game.Config{Columns: 2, Rows: 2, WinLength: 2}

	result, out, _, err := play(t, cfg, "1\n2\n1\n")
	if err != nil {
		t.Fatalf("play: %v", err)
	}

	want := "" +
		"1  2\n.  .\n.  .\n\n" +
		"Red's turn: " +
		"1  2\n.  .\nX  .\n\n" +
		"Yellow's turn: " +
		"1  2\n.  .\nX  O\n\n" +
		"Red's turn: " +
		"1  2\nX  .\nX  O\n\n" +
		"Red won!\n"

	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("transcript mismatch (-want +got):\n%s", diff)
	}

	if result.Winner != game.Markers.Red || result.Draw || result.Moves != 3 {
		t.Fatalf("unexpected result %+v", result)
	}

	if !result.Final.GameOver {
		t.Fatal("expected the final state to be game over")
	}
}

func TestPlayHorizontalWin(t *testing.T) {
	result, out, _, err := play(t, game.DefaultConfig(), "1\n1\n2\n2\n3\n3\n4\n")
	if err != nil {
		t.Fatalf("play: %v", err)
	}

	if result.Winner != game.Markers.Red {
		t.Fatalf("expected Red, got %s", result.Winner)
	}

	if !strings.HasSuffix(out, "X  X  X  X  .  .  .\n\nRed won!\n") {
		t.Fatalf("unexpected ending:\n%s", out)
	}
}

func TestPlayRetriesSamePlayer(t *testing.T) {
	_, out, b, err := play(t, game.DefaultConfig(), "abc\n8\n0\n1.5\n1\n")
	if !errors.Is(err, console.ErrQuit) {
		t.Fatalf("expected ErrQuit at the end of input, got %v", err)
	}

	if n := strings.Count(out, "Sorry, you need a number from 1 to 7."); n != 2 {
		t.Fatalf("expected 2 invalid input messages, got %d", n)
	}

	if n := strings.Count(out, "Sorry, you can't put a marker there."); n != 2 {
		t.Fatalf("expected 2 rejected move messages, got %d", n)
	}

	if n := strings.Count(out, "Red's turn: "); n != 5 {
		t.Fatalf("expected Red to be asked 5 times, got %d", n)
	}

	if n := strings.Count(out, "Yellow's turn: "); n != 1 {
		t.Fatalf("expected Yellow to be asked once, got %d", n)
	}

	if got := b.At(0, 5); got != game.Markers.Red {
		t.Fatalf("expected Red in the first column, got %s", got)
	}
}

func TestPlayColumnFull(t *testing.T) {
	cfg := game.Config{Columns: 3, Rows: 2, WinLength: 3}

	_, out, b, err := play(t, cfg, "1\n1\n1\n")
	if !errors.Is(err, console.ErrQuit) {
		t.Fatalf("expected ErrQuit, got %v", err)
	}

	if !strings.Contains(out, "Sorry, the column is full!") {
		t.Fatalf("expected a full column message:\n%s", out)
	}

	if b.Moves() != 2 {
		t.Fatalf("expected 2 moves, got %d", b.Moves())
	}

	if n := strings.Count(out, "Red's turn: "); n != 3 {
		t.Fatalf("expected Red to be asked 3 times, got %d", n)
	}
}

func TestPlayDraw(t *testing.T) {
	cfg := game.Config{Columns: 2, Rows: 1, WinLength: 2}

	result, out, _, err := play(t, cfg, "1\n2\n")
	if err != nil {
		t.Fatalf("play: %v", err)
	}

	if !result.Draw || !result.Winner.IsZero() {
		t.Fatalf("expected a draw, got %+v", result)
	}

	if !strings.HasSuffix(out, "X  O\n\nIt's a draw!\n") {
		t.Fatalf("unexpected ending:\n%s", out)
	}
}

func TestPlayQuit(t *testing.T) {
	_, _, b, err := play(t, game.DefaultConfig(), "4\nQuit\n")
	if !errors.Is(err, console.ErrQuit) {
		t.Fatalf("expected ErrQuit, got %v", err)
	}

	if b.Moves() != 1 {
		t.Fatalf("expected 1 move, got %d", b.Moves())
	}
}

func TestPlayCanceled(t *testing.T) {
	b, err := game.New(game.DefaultConfig())
	if err != nil {
		t.Fatalf("new board: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	c := console.New(zerolog.Nop(), strings.NewReader("1\n"), &out)

	if _, err := c.Play(ctx, b, game.Markers.Red); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	if b.Moves() != 0 {
		t.Fatalf("expected no moves, got %d", b.Moves())
	}
}

func TestPlayLogsMoves(t *testing.T) {
	b, err := game.New(game.Config{Columns: 2, Rows: 2, WinLength: 2})
	if err != nil {
		t.Fatalf("new board: %v", err)
	}

	var logs bytes.Buffer
	log := zerolog.New(&logs).Level(zerolog.DebugLevel)

	var out bytes.Buffer
	c := console.New(log, strings.NewReader("x\n1\n2\n1\n"), &out)

	if _, err := c.Play(context.Background(), b, game.Markers.Red); err != nil {
		t.Fatalf("play: %v", err)
	}

	for _, want := range []string{`"message":"invalid input"`, `"message":"move"`, `"winner":"Red"`} {
		if !strings.Contains(logs.String(), want) {
			t.Fatalf("expected %s in logs:\n%s", want, logs.String())
		}
	}
}
