package pathfind

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/wricardo/knightboard/game/board"
)

var (
	// ErrNoPath is returned when the target cannot be reached from the start.
	ErrNoPath = errors.New("pathfind: no path between the given cells")
	// ErrOutOfBounds is the board package's sentinel, shared so callers can test either.
	ErrOutOfBounds = board.ErrOutOfBounds
	// ErrBoardTooLarge is returned when a board has more cells than a Mask can hold.
	ErrBoardTooLarge = errors.New("pathfind: board too large for a cell mask")
)

// Board is the read-only view every search runs against. *board.Grid implements it.
type Board interface {
	board.View
	Area() int
	InBounds(p board.Position) bool
	Partner(p board.Position) (board.Position, bool)
	LegalMoves(origin board.Position) []board.Edge
	IsLegalStep(begin, end board.Position) bool
}

// Path is an ordered list of cells from start to target, both included
type Path []board.Position

// Hops is the number of moves in the path.
func (p Path) Hops() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

func (p Path) String() string {
	parts := make([]string, len(p))
	for i, pos := range p {
		parts[i] = pos.String()
	}
	return strings.Join(parts, " -> ")
}

// PathCost sums the landing cost of every move. Stepping from a portal to its
// partner is free, matching how portal moves are weighted during search.
func PathCost(g Board, p Path) int {
	total := 0
	for i := 1; i < len(p); i++ {
		if isPortalTransit(g, p[i-1], p[i]) {
			continue
		}
		total += g.Terrain(p[i]).Cost()
	}
	return total
}

func isPortalTransit(g Board, from, to board.Position) bool {
	partner, ok := g.Partner(from)
	return ok && partner == to
}

func checkEndpoints(g Board, begin, end board.Position) error {
	if !g.InBounds(begin) {
		return fmt.Errorf("%w: start %s", ErrOutOfBounds, begin)
	}
	if !g.InBounds(end) {
		return fmt.Errorf("%w: target %s", ErrOutOfBounds, end)
	}
	return nil
}

// reconstruct walks the predecessor chain back from end. parents must map
// begin to itself and must contain end.
func reconstruct(g Board, parents map[board.Position]board.Position, begin, end board.Position) Path {
	var path Path
	for at := parents[end]; at != begin; at = parents[at] {
		path = append(path, at)
	}
	path = append(path, begin)
	slices.Reverse(path)
	return expandPortalHops(g, append(path, end))
}

// expandPortalHops inserts the partner portal after every portal the path
// leaves for some other cell. Moves out of a portal are enumerated from its
// partner, so the explicit hop is what makes each step individually legal.
func expandPortalHops(g Board, p Path) Path {
	out := make(Path, 0, len(p))
	for i, at := range p {
		out = append(out, at)
		if i == len(p)-1 {
			break
		}
		if partner, ok := g.Partner(at); ok && p[i+1] != partner {
			out = append(out, partner)
		}
	}
	return out
}
