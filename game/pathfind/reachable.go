package pathfind

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"github.com/wricardo/knightboard/game/board"
)

// Reachable returns every cell a knight starting at begin can reach,
// begin included. An off-board start yields an empty set.
func Reachable(g Board, begin board.Position) mapset.Set[board.Position] {
	seen := mapset.New[board.Position]()
	if !g.InBounds(begin) {
		return seen
	}

	seen.Put(begin)
	frontier := queue.New[board.Position]()
	frontier.Enqueue(begin)
	for !frontier.Empty() {
		cur := frontier.Dequeue()
		for _, e := range g.LegalMoves(cur) {
			if seen.Has(e.To) {
				continue
			}
			seen.Put(e.To)
			frontier.Enqueue(e.To)
		}
	}
	return seen
}

// Unreachable lists the landable cells that cannot be reached from begin, in
// row-major order.
func Unreachable(g Board, begin board.Position) []board.Position {
	seen := Reachable(g, begin)
	var out []board.Position
	for idx := 0; idx < g.Area(); idx++ {
		p := board.PositionFromIndex(idx, g.Size())
		if g.Terrain(p).Landable() && !seen.Has(p) {
			out = append(out, p)
		}
	}
	return out
}
