package pathfind

import (
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/queue"
	"github.com/zyedidia/generic/stack"

	"github.com/wricardo/knightboard/game/board"
)

// FindAnyPath returns some path from begin to end using depth-first search.
// The path is valid but not necessarily short.
func FindAnyPath(g Board, begin, end board.Position) (Path, error) {
	if err := checkEndpoints(g, begin, end); err != nil {
		return nil, err
	}
	if begin == end {
		return Path{begin, end}, nil
	}

	parents := map[board.Position]board.Position{begin: begin}
	frontier := stack.New[board.Position]()
	frontier.Push(begin)

	for frontier.Size() > 0 {
		cur := frontier.Peek()
		if cur == end {
			break
		}
		frontier.Pop()

		for _, e := range g.LegalMoves(cur) {
			if _, seen := parents[e.To]; seen {
				continue
			}
			parents[e.To] = cur
			frontier.Push(e.To)
		}
	}

	if _, ok := parents[end]; !ok {
		return nil, ErrNoPath
	}
	return reconstruct(g, parents, begin, end), nil
}

// FindShortestPathByHops returns a path with the fewest moves, using
// breadth-first search. Ties are broken by move enumeration order.
func FindShortestPathByHops(g Board, begin, end board.Position) (Path, error) {
	if err := checkEndpoints(g, begin, end); err != nil {
		return nil, err
	}
	if begin == end {
		return Path{begin, end}, nil
	}

	parents := map[board.Position]board.Position{begin: begin}
	frontier := queue.New[board.Position]()
	frontier.Enqueue(begin)

	for !frontier.Empty() {
		cur := frontier.Dequeue()
		if cur == end {
			break
		}

		for _, e := range g.LegalMoves(cur) {
			if _, seen := parents[e.To]; seen {
				continue
			}
			parents[e.To] = cur
			frontier.Enqueue(e.To)
		}
	}

	if _, ok := parents[end]; !ok {
		return nil, ErrNoPath
	}
	return reconstruct(g, parents, begin, end), nil
}

type costItem struct {
	pos  board.Position
	dist int
}

// FindShortestPathByCost returns the cheapest path under terrain cost and its
// total. A cell's distance is fixed the first time it is discovered; since
// every move into a cell costs that cell's terrain, the first discovery comes
// from the cheapest settled neighbour. The two portals are joined directly at
// no cost.
func FindShortestPathByCost(g Board, begin, end board.Position) (Path, int, error) {
	if err := checkEndpoints(g, begin, end); err != nil {
		return nil, 0, err
	}
	if begin == end {
		return Path{begin, end}, 0, nil
	}
	if g.Terrain(begin) == board.Teleport && g.Terrain(end) == board.Teleport {
		return Path{begin, end}, 0, nil
	}

	dist := map[board.Position]int{begin: 0}
	parents := map[board.Position]board.Position{begin: begin}
	frontier := heap.New(func(a, b costItem) bool { return a.dist < b.dist })
	frontier.Push(costItem{pos: begin})

	for frontier.Size() > 0 {
		cur, _ := frontier.Peek()
		if cur.pos == end {
			break
		}
		frontier.Pop()

		for _, e := range g.LegalMoves(cur.pos) {
			if _, seen := dist[e.To]; seen {
				continue
			}
			d := cur.dist + e.Weight
			dist[e.To] = d
			parents[e.To] = cur.pos
			frontier.Push(costItem{pos: e.To, dist: d})
		}
	}

	total, ok := dist[end]
	if !ok {
		return nil, 0, ErrNoPath
	}
	return reconstruct(g, parents, begin, end), total, nil
}
