// Command analyze prints quick, human-readable heuristics about the boards in
// a catalog directory. It summarizes dimensions, terrain counts and portals,
// and highlights cells a knight can never reach or never leave.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/wricardo/knightboard/game/board"
	"github.com/wricardo/knightboard/game/config"
	"github.com/wricardo/knightboard/game/pathfind"
	"github.com/wricardo/knightboard/game/service"
)

// maxListed caps the number of cells printed per warning
const maxListed = 5

// longestLimit is the largest board dimension analyzed for the longest path
const longestLimit = 4

// BoardStats is the analysis of one board.
type BoardStats struct {
	Landable    int
	Start       board.Position
	Reachable   int
	Unreachable []board.Position
	DeadEnds    []board.Position
	Longest     int // -1 when the board is too large to search
}

func main() {
	dir := "boards"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	manager, err := config.NewManager(dir)
	if err != nil {
		fmt.Printf("Error opening catalog: %v\n", err)
		os.Exit(1)
	}

	infos, err := manager.ListBoards()
	if err != nil {
		fmt.Printf("Error listing boards: %v\n", err)
		os.Exit(1)
	}

	for _, info := range infos {
		fmt.Printf("\n=== Analyzing %s ===\n", info.Filename)
		b, err := manager.LoadBoard(info.BoardID)
		if err != nil {
			fmt.Printf("Error loading board: %v\n", err)
			continue
		}
		report(os.Stdout, b)
	}
}

// analyze floods the board from its first landable cell and looks for dead ends.
func analyze(g *board.Grid) BoardStats {
	stats := BoardStats{Longest: -1}
	found := false
	for _, p := range g.Positions() {
		if !g.Terrain(p).Landable() {
			continue
		}
		stats.Landable++
		if !found {
			stats.Start = p
			found = true
		}
		if len(g.LegalMoves(p)) == 0 {
			stats.DeadEnds = append(stats.DeadEnds, p)
		}
	}
	if !found {
		return stats
	}

	stats.Reachable = pathfind.Reachable(g, stats.Start).Size()
	stats.Unreachable = pathfind.Unreachable(g, stats.Start)

	if g.Size() <= longestLimit {
		if n, err := pathfind.LongestSimplePath(g); err == nil {
			stats.Longest = n
		}
	}
	return stats
}

func report(w io.Writer, b *service.Board) {
	g := b.Grid
	stats := analyze(g)

	fmt.Fprintf(w, "Name: %s\n", b.Config.Name)
	fmt.Fprintf(w, "Grid Size: %d x %d\n", g.Size(), g.Size())
	counts := g.Count()
	for _, t := range board.Terrains() {
		if n := counts[t]; n > 0 {
			fmt.Fprintf(w, "%s: %d\n", t, n)
		}
	}
	if pp, ok := g.Portals(); ok {
		fmt.Fprintf(w, "Portals: %s <-> %s\n", pp.A, pp.B)
	}

	if stats.Landable == 0 {
		fmt.Fprintf(w, "⚠️  CRITICAL: the board has no landable cell\n")
		return
	}

	fmt.Fprintf(w, "Reachable from %s: %d of %d landable cells\n", stats.Start, stats.Reachable, stats.Landable)
	if len(stats.Unreachable) > 0 {
		fmt.Fprintf(w, "⚠️  WARNING: %d cells are unreachable from %s!\n", len(stats.Unreachable), stats.Start)
		listCells(w, "Unreachable", g, stats.Unreachable)
	} else {
		fmt.Fprintf(w, "✅ Every landable cell is reachable\n")
	}

	if len(stats.DeadEnds) > 0 {
		fmt.Fprintf(w, "⚠️  WARNING: %d cells have no legal move out!\n", len(stats.DeadEnds))
		listCells(w, "Dead end", g, stats.DeadEnds)
	} else {
		fmt.Fprintf(w, "✅ Every landable cell has a legal move\n")
	}

	if stats.Longest >= 0 {
		fmt.Fprintf(w, "Longest simple path: %d moves\n", stats.Longest)
	}
}

func listCells(w io.Writer, label string, g *board.Grid, cells []board.Position) {
	for i, p := range cells {
		if i == maxListed {
			fmt.Fprintf(w, "   ... and %d more\n", len(cells)-maxListed)
			break
		}
		fmt.Fprintf(w, "   %s: %s - '%c'\n", label, p, g.Terrain(p).Glyph())
	}
}
