// Command connect plays connect four for two players on the terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ardanlabs/connect4/cmd/connect/board"
	"github.com/ardanlabs/connect4/cmd/connect/console"
	"github.com/ardanlabs/connect4/cmd/connect/game"
	"github.com/ardanlabs/connect4/cmd/connect/snapshot"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"
)

func main() {
	if err := run(context.Background(), os.Args, os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, args []string, in io.Reader, out io.Writer) error {

	// A missing .env file is fine, the flags have defaults.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	cmd := &cli.Command{
		Name:      "connect",
		Usage:     "play connect four for two players in the terminal",
		Writer:    out,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "columns",
				Usage:   "number of columns on the board",
				Value:   game.DefaultColumns,
				Sources: cli.EnvVars("CONNECT_COLUMNS"),
			},
			&cli.IntFlag{
				Name:    "rows",
				Usage:   "number of rows on the board",
				Value:   game.DefaultRows,
				Sources: cli.EnvVars("CONNECT_ROWS"),
			},
			&cli.IntFlag{
				Name:    "win-length",
				Usage:   "markers in a line needed to win",
				Value:   game.DefaultWinLength,
				Sources: cli.EnvVars("CONNECT_WIN_LENGTH"),
			},
			&cli.BoolFlag{
				Name:    "tui",
				Usage:   "play on a full screen board",
				Sources: cli.EnvVars("CONNECT_TUI"),
			},
			&cli.StringFlag{
				Name:    "snapshot",
				Usage:   "write the final board to this PNG file",
				Sources: cli.EnvVars("CONNECT_SNAPSHOT"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "write debug logs to the log file",
				Sources: cli.EnvVars("CONNECT_DEBUG"),
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "file the debug logs are appended to",
				Value:   "connect.log",
				Sources: cli.EnvVars("CONNECT_LOG_FILE"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := game.Config{
				Columns:   int(cmd.Int("columns")),
				Rows:      int(cmd.Int("rows")),
				WinLength: int(cmd.Int("win-length")),
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, closeLog, err := newLogger(cmd.Bool("debug"), cmd.String("log-file"), cfg)
			if err != nil {
				return err
			}
			defer closeLog()

			if !cfg.Winnable() {
				logger.Warn().Msg("win length is longer than the board, the game can only end in a draw")
			}

			if cmd.Bool("tui") {
				return gaming(logger, cfg, cmd.String("snapshot"))
			}

			return playing(ctx, logger, cfg, in, out, cmd.String("snapshot"))
		},
	}

	return cmd.Run(ctx, args)
}

// =============================================================================

func playing(ctx context.Context, logger zerolog.Logger, cfg game.Config, in io.Reader, out io.Writer, snapshotPath string) error {
	b, err := game.New(cfg)
	if err != nil {
		return fmt.Errorf("new game: %w", err)
	}

	c := console.New(logger, in, out)

	result, err := c.Play(ctx, b, game.Markers.Red)
	switch {
	case errors.Is(err, console.ErrQuit):
		logger.Info().Int("moves", b.Moves()).Msg("players quit")
		return nil

	case err != nil:
		return fmt.Errorf("play: %w", err)
	}

	if snapshotPath != "" {
		if err := snapshot.Save(snapshotPath, result.Final); err != nil {
			return err
		}
	}

	return nil
}

func gaming(logger zerolog.Logger, cfg game.Config, snapshotPath string) error {

	// -------------------------------------------------------------------------
	// Create the board and initialize the display

	screen, err := board.NewScreen()
	if err != nil {
		return err
	}

	b, err := board.New(logger, screen, cfg)
	if err != nil {
		screen.Fini()
		return fmt.Errorf("new board: %w", err)
	}
	defer b.Shutdown()

	// -------------------------------------------------------------------------
	// Start handling board input

	<-b.Run()

	if snapshotPath != "" {
		if err := snapshot.Save(snapshotPath, b.State()); err != nil {
			return err
		}
	}

	return nil
}
