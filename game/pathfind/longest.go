package pathfind

import (
	"fmt"
	"math/bits"

	"github.com/wricardo/knightboard/game/board"
)

// MaxMaskCells is the largest board area a Mask can describe.
const MaxMaskCells = 64

// Mask is a set of cells keyed by row-major index
type Mask uint64

// FullMask contains every cell of a board with n cells.
func FullMask(n int) Mask {
	if n >= MaxMaskCells {
		return ^Mask(0)
	}
	return Mask(1)<<n - 1
}

func (m Mask) Has(idx int) bool     { return m&(1<<idx) != 0 }
func (m Mask) With(idx int) Mask    { return m | 1<<idx }
func (m Mask) Without(idx int) Mask { return m &^ (1 << idx) }
func (m Mask) Len() int             { return bits.OnesCount64(uint64(m)) }

func (m Mask) only(idx int) bool { return m == Mask(0).With(idx) }

func maskOf(idx ...int) Mask {
	var m Mask
	for _, i := range idx {
		m = m.With(i)
	}
	return m
}

// noPredecessor marks an end cell that no allowed cell can step into.
const noPredecessor = -1

// longestPathSolver memoizes longest(end, mask) over one board. The memo
// holds one table per end cell, allocated up front; a missing mask means the
// state has not been solved yet.
type longestPathSolver struct {
	g    Board
	size int
	memo []map[Mask]int8
}

func newLongestPathSolver(g Board) (*longestPathSolver, error) {
	if g.Area() > MaxMaskCells {
		return nil, fmt.Errorf("%w: %d cells, at most %d", ErrBoardTooLarge, g.Area(), MaxMaskCells)
	}
	memo := make([]map[Mask]int8, g.Area())
	for i := range memo {
		memo[i] = make(map[Mask]int8)
	}
	return &longestPathSolver{g: g, size: g.Size(), memo: memo}, nil
}

// solved counts the memoized states.
func (s *longestPathSolver) solved() int {
	n := 0
	for _, m := range s.memo {
		n += len(m)
	}
	return n
}

// longest is 0 when mask holds only end. Otherwise it drops end from mask and
// takes, over every move out of end into the remaining cells, the neighbour's
// own result plus one; noPredecessor when no such move exists.
func (s *longestPathSolver) longest(end board.Position, mask Mask) int {
	endIdx := end.Index(s.size)
	if mask.only(endIdx) {
		return 0
	}

	if v, ok := s.memo[endIdx][mask]; ok {
		return int(v)
	}

	best := noPredecessor
	rest := mask.Without(endIdx)
	for _, e := range s.g.LegalMoves(end) {
		if !rest.Has(e.To.Index(s.size)) {
			continue
		}
		best = max(best, s.longest(e.To, rest)+1)
	}

	s.memo[endIdx][mask] = int8(best)
	return best
}

// LongestSimplePath runs the bitmask recurrence once per end cell, with every
// other cell of the board in the mask, and returns the largest result. Moves
// are enumerated from every cell, rock and barrier included, so the value is
// the recurrence's score rather than a count of moves a knight could replay.
// It is never below 0. The search is exponential in the board area; callers
// should keep boards small.
func LongestSimplePath(g Board) (int, error) {
	s, err := newLongestPathSolver(g)
	if err != nil {
		return 0, err
	}

	full := FullMask(g.Area())
	best := 0
	for idx := 0; idx < g.Area(); idx++ {
		end := board.PositionFromIndex(idx, s.size)
		best = max(best, s.longest(end, full.Without(idx)))
	}
	return best, nil
}

// LongestPathEndingAt is LongestSimplePath restricted to paths that finish on end.
func LongestPathEndingAt(g Board, end board.Position) (int, error) {
	if !g.InBounds(end) {
		return 0, fmt.Errorf("%w: %s", ErrOutOfBounds, end)
	}
	s, err := newLongestPathSolver(g)
	if err != nil {
		return 0, err
	}
	idx := end.Index(s.size)
	return max(s.longest(end, FullMask(g.Area()).Without(idx)), 0), nil
}

// LongestPathWithin is LongestPathEndingAt where every other cell of the path
// must come from allowed.
func LongestPathWithin(g Board, end board.Position, allowed []board.Position) (int, error) {
	if !g.InBounds(end) {
		return 0, fmt.Errorf("%w: %s", ErrOutOfBounds, end)
	}
	s, err := newLongestPathSolver(g)
	if err != nil {
		return 0, err
	}

	idx := make([]int, 0, len(allowed))
	for _, p := range allowed {
		if !g.InBounds(p) {
			return 0, fmt.Errorf("%w: allowed cell %s", ErrOutOfBounds, p)
		}
		idx = append(idx, p.Index(s.size))
	}
	mask := maskOf(idx...).Without(end.Index(s.size))
	return max(s.longest(end, mask), 0), nil
}
