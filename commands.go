package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/mark3labs/mcp-go/server"
	"github.com/urfave/cli/v3"

	"github.com/wricardo/knightboard/game/board"
	"github.com/wricardo/knightboard/game/config"
	"github.com/wricardo/knightboard/game/pathfind"
	"github.com/wricardo/knightboard/game/service"
	"github.com/wricardo/knightboard/transport/mcp"
)

// openService builds the catalog and query service the global flags describe.
// It returns the board id queries should use; with --file that is the
// catalog default, which is the loaded file. When the board directory is
// missing, $HOME/knightboard.txt stands in for --file if it exists.
func openService(cmd *cli.Command, color bool) (service.QueryService, string, error) {
	var (
		catalog *config.Manager
		boardID = cmd.String("board")
		err     error
	)

	file := cmd.String("file")
	if file == "" {
		file = homeBoardFallback(cmd.String("board-dir"))
	}

	if file != "" {
		catalog, err = config.NewManager("")
		if err != nil {
			return nil, "", err
		}
		b, err := catalog.LoadFile(file, int(cmd.Int("size")))
		if err != nil {
			return nil, "", fmt.Errorf("failed to load %s: %w", file, err)
		}
		catalog.SetDefaultBoard(b)
		boardID = ""
	} else {
		catalog, err = config.NewManager(cmd.String("board-dir"))
		if err != nil {
			return nil, "", err
		}
	}

	renderer := board.Renderer{Color: color && !cmd.Bool("no-color")}
	svc := service.NewQueryService(catalog,
		service.WithRenderer(renderer),
		service.WithMaxLongestSize(int(cmd.Int("max-longest-size"))),
	)
	return svc, boardID, nil
}

// homeBoardFallback returns the home directory board when dir does not exist
// and the home board does, and "" otherwise.
func homeBoardFallback(dir string) string {
	if dir == "" {
		return ""
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		return ""
	}
	path, err := board.DefaultBoardPath()
	if err != nil {
		return ""
	}
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	log.Printf("Board directory %s not found, using %s", dir, path)
	return path
}

func parsePositions(args []string) ([]board.Position, error) {
	positions := make([]board.Position, 0, len(args))
	for _, arg := range args {
		p, err := board.ParsePosition(arg)
		if err != nil {
			return nil, err
		}
		positions = append(positions, p)
	}
	return positions, nil
}

func expectArgs(cmd *cli.Command, n int, usage string) ([]board.Position, error) {
	if cmd.Args().Len() != n {
		return nil, fmt.Errorf("%s: expected %s, got %d arguments", cmd.Name, usage, cmd.Args().Len())
	}
	return parsePositions(cmd.Args().Slice())
}

func boardsCommand(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "boards",
		Usage: "list the boards of the catalog",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			svc, _, err := openService(cmd, false)
			if err != nil {
				return err
			}
			infos, err := svc.ListBoards(ctx)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tSIZE\tPORTALS\tFILE")
			for _, info := range infos {
				portals := "-"
				if info.Portals != nil {
					portals = fmt.Sprintf("%s %s", info.Portals.A, info.Portals.B)
				}
				fmt.Fprintf(tw, "%s\t%s\t%dx%d\t%s\t%s\n",
					info.BoardID, info.Name, info.Size, info.Size, portals, info.Filename)
			}
			return tw.Flush()
		},
	}
}

func showCommand(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "draw the board",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "at",
				Usage: "place the knight at `ROW,COL`",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return renderShow(ctx, cmd, out, cmd.String("at"))
		},
	}
}

func showAction(out io.Writer) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		return renderShow(ctx, cmd, out, "")
	}
}

func renderShow(ctx context.Context, cmd *cli.Command, out io.Writer, at string) error {
	svc, boardID, err := openService(cmd, true)
	if err != nil {
		return err
	}

	var knight *board.Position
	if at != "" {
		p, err := board.ParsePosition(at)
		if err != nil {
			return err
		}
		knight = &p
	}

	info, err := svc.DescribeBoard(ctx, boardID)
	if err != nil {
		return err
	}
	drawing, err := svc.RenderBoard(ctx, boardID, knight)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s (%dx%d)\n", info.BoardID, info.Size, info.Size)
	if info.Portals != nil {
		fmt.Fprintf(out, "portals: %s <-> %s\n", info.Portals.A, info.Portals.B)
	}
	for _, w := range info.Warnings {
		fmt.Fprintf(out, "warning: %s\n", w)
	}
	fmt.Fprintln(out)
	fmt.Fprint(out, drawing)
	return nil
}

func movesCommand(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "moves",
		Usage:     "list the legal moves out of a cell",
		ArgsUsage: "ROW,COL",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			positions, err := expectArgs(cmd, 1, "one position")
			if err != nil {
				return err
			}
			svc, boardID, err := openService(cmd, false)
			if err != nil {
				return err
			}

			res, err := svc.LegalMoves(ctx, boardID, positions[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "moves from %s [%s]", res.From, res.Terrain)
			if res.Redirected {
				fmt.Fprint(out, " via teleport")
			}
			fmt.Fprintln(out)
			for _, e := range res.Moves {
				fmt.Fprintf(out, "%s cost %d\n", e.To, e.Weight)
			}
			return nil
		},
	}
}

func validateCommand(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "check that every step of a sequence is a legal move",
		ArgsUsage: "ROW,COL ROW,COL [ROW,COL...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "trace",
				Usage: "draw the board before every step",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			steps, err := parsePositions(cmd.Args().Slice())
			if err != nil {
				return err
			}
			svc, boardID, err := openService(cmd, true)
			if err != nil {
				return err
			}

			trace := cmd.Bool("trace")
			res, err := svc.ValidateSequence(ctx, boardID, steps, trace)
			if err != nil {
				return err
			}

			if trace {
				fmt.Fprint(out, res.Trace)
			} else {
				for _, step := range res.Steps {
					verdict := "valid"
					if !step.Valid {
						verdict = "not valid"
					}
					fmt.Fprintf(out, "Step %d: %s -> %s [%s]\n", step.Index, step.From, step.To, verdict)
				}
			}
			if res.Valid {
				fmt.Fprintln(out, "sequence is valid")
			} else {
				fmt.Fprintln(out, "sequence is not valid")
			}
			return nil
		},
	}
}

func pathCommand(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "path",
		Usage:     "find a path between two cells",
		ArgsUsage: "FROM TO",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "algo",
				Value: string(service.AlgorithmHops),
				Usage: "search to run: any, hops or cost",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			positions, err := expectArgs(cmd, 2, "FROM and TO")
			if err != nil {
				return err
			}
			svc, boardID, err := openService(cmd, false)
			if err != nil {
				return err
			}

			res, err := service.FindPath(ctx, svc, service.Algorithm(cmd.String("algo")), boardID, positions[0], positions[1])
			if err != nil {
				return err
			}

			if !res.Found {
				fmt.Fprintf(out, "no path from %s to %s\n", res.Begin, res.End)
				return nil
			}
			fmt.Fprintln(out, pathfind.Path(res.Path))
			fmt.Fprintf(out, "hops: %d cost: %d\n", res.Hops, res.Cost)
			return nil
		},
	}
}

func longestCommand(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "longest",
		Usage: "length of the longest simple path on a small board",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			svc, boardID, err := openService(cmd, false)
			if err != nil {
				return err
			}
			res, err := svc.FindLongestSimplePath(ctx, boardID)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "longest simple path: %d moves\n", res.Length)
			return nil
		},
	}
}

// mcpCommand serves the queries over MCP stdio. Logs go to stderr so stdout
// carries only protocol messages.
func mcpCommand() *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "serve board queries over MCP stdio",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log.SetOutput(os.Stderr)

			svc, boardID, err := openService(cmd, false)
			if err != nil {
				return err
			}

			srv := mcp.NewServer(svc, mcp.WithDefaultBoard(boardID))
			log.Printf("Starting %s v%s MCP stdio server", AppName, Version)
			if err := server.ServeStdio(srv.GetMCPServer()); err != nil {
				return fmt.Errorf("MCP stdio server error: %w", err)
			}
			return nil
		},
	}
}
