// Command knightboard answers questions about a knight moving on terrain boards.
//
// Boards come from a catalog directory (YAML or plain text files, see
// boards/) or from a single file passed with --file. Subcommands list boards,
// draw them, list legal moves, validate move sequences and search for paths.
// The mcp subcommand serves the same queries to AI agents over MCP stdio.
//
// Flags control the catalog directory, the board, the longest path size cap,
// colored output and debug logging. A .env file in the working directory is
// loaded first, so KNIGHTBOARD_* variables can live there.
package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/wricardo/knightboard/game/service"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "knightboard"
)

// Defaults for the global flags
const (
	defaultBoardDir = "boards"
)

// main loads the environment, builds the command tree and runs it.
func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		// Only log if it's not a "file not found" error
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(os.Stdout).Run(ctx, os.Args); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

// newApp builds the command tree writing its output to out.
func newApp(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:    AppName,
		Usage:   "knight movement queries on terrain boards",
		Version: Version,
		Writer:  out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "board-dir",
				Value:   defaultBoardDir,
				Usage:   "directory containing board files",
				Sources: cli.EnvVars("KNIGHTBOARD_DIR"),
			},
			&cli.StringFlag{
				Name:  "file",
				Usage: "load a single board file instead of the catalog",
			},
			&cli.IntFlag{
				Name:  "size",
				Usage: "board size for --file text boards, 0 infers it from the layout",
			},
			&cli.StringFlag{
				Name:    "board",
				Aliases: []string{"b"},
				Usage:   "catalog board id, the default board when empty",
				Sources: cli.EnvVars("KNIGHTBOARD_BOARD"),
			},
			&cli.IntFlag{
				Name:    "max-longest-size",
				Value:   service.DefaultMaxLongestSize,
				Usage:   "largest board dimension accepted by the longest command",
				Sources: cli.EnvVars("KNIGHTBOARD_MAX_LONGEST_SIZE"),
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "draw the knight without ANSI colors",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Before: setupLogging,
		Action: showAction(out),
		Commands: []*cli.Command{
			boardsCommand(out),
			showCommand(out),
			movesCommand(out),
			validateCommand(out),
			pathCommand(out),
			longestCommand(out),
			mcpCommand(),
		},
	}
}

// setupLogging applies the --debug flag to the standard logger.
func setupLogging(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if cmd.Bool("debug") {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	} else {
		log.SetFlags(log.LstdFlags)
	}
	return ctx, nil
}
