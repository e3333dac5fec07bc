package game_test

import (
	"testing"

	"github.com/ardanlabs/connect4/cmd/connect/game"
	"github.com/google/go-cmp/cmp"
)

type cell struct {
	col, row int
	marker   game.Marker
}

func grid(columns, rows int, cells ...cell) game.Grid {
	g := game.NewGrid(columns, rows)
	for _, c := range cells {
		g[c.col][c.row] = c.marker
	}

	return g
}

// =============================================================================

func TestWinnerEmptyBoards(t *testing.T) {
	dims := []struct{ cols, rows int }{
		{1, 1}, {7, 6}, {3, 10}, {10, 3}, {64, 64},
	}

	for _, d := range dims {
		for _, winLength := range []int{1, 2, 4, 100} {
			if w := game.Winner(game.NewGrid(d.cols, d.rows), winLength); !w.IsZero() {
				t.Fatalf("%dx%d win %d: expected no winner, got %s", d.cols, d.rows, winLength, w)
			}
		}
	}
}

func TestWinnerDiagonals(t *testing.T) {
	tests := []struct {
		name   string
		grid   game.Grid
		want   game.Marker
		family game.Family
	}{
		{
			name: "increasing row index",
			grid: grid(7, 6,
				cell{0, 2, red}, cell{1, 3, red}, cell{2, 4, red}, cell{3, 5, red},
			),
			want:   red,
			family: game.FamilyNegativeDiagonal,
		},
		{
			name: "decreasing row index",
			grid: grid(7, 6,
				cell{3, 5, yellow}, cell{4, 4, yellow}, cell{5, 3, yellow}, cell{6, 2, yellow},
			),
			want:   yellow,
			family: game.FamilyPositiveDiagonal,
		},
		{
			name: "top corner",
			grid: grid(7, 6,
				cell{3, 0, red}, cell{4, 1, red}, cell{5, 2, red}, cell{6, 3, red},
			),
			want:   red,
			family: game.FamilyNegativeDiagonal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			win, won := game.Scan(tt.grid, 4)
			if !won {
				t.Fatal("expected a winner")
			}

			if win.Marker != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, win.Marker)
			}

			if win.Line.Family != tt.family {
				t.Fatalf("expected %s, got %s", tt.family, win.Line.Family)
			}

			if win.Length != 4 {
				t.Fatalf("expected a run of 4, got %d", win.Length)
			}
		})
	}
}

func TestWinnerNoFalsePositive(t *testing.T) {
	tests := []struct {
		name string
		grid game.Grid
	}{
		{
			name: "row bounded by opponent",
			grid: grid(7, 6,
				cell{0, 5, yellow}, cell{1, 5, red}, cell{2, 5, red}, cell{3, 5, red}, cell{4, 5, yellow},
			),
		},
		{
			name: "column bounded by empty",
			grid: grid(7, 6,
				cell{2, 5, yellow}, cell{2, 4, red}, cell{2, 3, red}, cell{2, 2, red},
			),
		},
		{
			name: "diagonal bounded by empty",
			grid: grid(7, 6,
				cell{1, 4, red}, cell{2, 3, red}, cell{3, 2, red},
			),
		},
		{
			name: "broken row",
			grid: grid(7, 6,
				cell{0, 5, red}, cell{1, 5, red}, cell{2, 5, yellow}, cell{3, 5, red}, cell{4, 5, red},
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := game.Winner(tt.grid, 4); !w.IsZero() {
				t.Fatalf("expected no winner, got %s", w)
			}
		})
	}
}

func TestWinnerLongerRun(t *testing.T) {
	g := grid(7, 6,
		cell{1, 5, red}, cell{2, 5, red}, cell{3, 5, red}, cell{4, 5, red}, cell{5, 5, red},
	)

	win, won := game.Scan(g, 4)
	if !won || win.Marker != red {
		t.Fatalf("expected Red, got %s", win.Marker)
	}

	if win.Start != 1 || win.Length != 5 {
		t.Fatalf("expected a run of 5 from 1, got %d from %d", win.Length, win.Start)
	}
}

func TestWinnerScanOrder(t *testing.T) {

	// Both players have a line. That can't happen in a real game but the
	// columns are scanned before the rows.
	g := grid(7, 6,
		cell{6, 5, yellow}, cell{6, 4, yellow}, cell{6, 3, yellow}, cell{6, 2, yellow},
		cell{0, 5, red}, cell{1, 5, red}, cell{2, 5, red}, cell{3, 5, red},
	)

	if w := game.Winner(g, 4); w != yellow {
		t.Fatalf("expected Yellow from the column scan, got %s", w)
	}
}

func TestWinnerIdempotent(t *testing.T) {
	g := grid(7, 6,
		cell{2, 5, yellow}, cell{3, 5, yellow}, cell{4, 5, yellow}, cell{5, 5, yellow},
		cell{2, 4, red}, cell{3, 4, red},
	)
	before := g.Clone()

	first, firstWon := game.Scan(g, 4)
	second, secondWon := game.Scan(g, 4)

	if firstWon != secondWon {
		t.Fatalf("expected the same result, got %v then %v", firstWon, secondWon)
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("results differ (-first +second):\n%s", diff)
	}

	if diff := cmp.Diff(before, g); diff != "" {
		t.Fatalf("scan changed the grid (-before +after):\n%s", diff)
	}
}
