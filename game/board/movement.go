package board

// OriginKind tells MovesFrom whether the origin may still redirect through a portal
type OriginKind int

const (
	// Direct origins on a teleport cell enumerate moves from the partner portal.
	Direct OriginKind = iota
	// TeleportRedirected origins never redirect again.
	TeleportRedirected
)

func (k OriginKind) String() string {
	if k == TeleportRedirected {
		return "teleport-redirected"
	}
	return "direct"
}

// knightOffsets is the fixed candidate order; searches depend on it for determinism.
var knightOffsets = [8]Position{
	{-2, -1}, {-2, +1},
	{-1, -2}, {-1, +2},
	{+1, -2}, {+1, +2},
	{+2, -1}, {+2, +1},
}

// LegalMoves returns the legal destinations from origin with their costs.
func (g *Grid) LegalMoves(origin Position) []Edge {
	return g.MovesFrom(origin, Direct)
}

// MovesFrom enumerates the knight moves from origin. A Direct origin standing
// on a portal yields the moves of the partner portal instead, minus the origin
// itself.
func (g *Grid) MovesFrom(origin Position, kind OriginKind) []Edge {
	if !g.InBounds(origin) {
		return nil
	}

	if kind == Direct && g.Terrain(origin) == Teleport {
		if partner, ok := g.Partner(origin); ok {
			redirected := g.MovesFrom(partner, TeleportRedirected)
			out := redirected[:0]
			for _, e := range redirected {
				if e.To != origin {
					out = append(out, e)
				}
			}
			return out
		}
	}

	edges := make([]Edge, 0, len(knightOffsets))
	for _, off := range knightOffsets {
		to := Position{Row: origin.Row + off.Row, Col: origin.Col + off.Col}
		if g.IsLegalStep(origin, to) {
			edges = append(edges, Edge{To: to, Weight: g.Terrain(to).Cost()})
		}
	}
	return edges
}

// IsLegalStep reports whether a single move from begin to end is allowed:
// either a jump between the two portals, or an in-bounds knight move onto
// landable terrain that does not pass over a barrier.
func (g *Grid) IsLegalStep(begin, end Position) bool {
	if !g.InBounds(begin) || !g.InBounds(end) {
		return false
	}

	if begin != end && g.Terrain(begin) == Teleport && g.Terrain(end) == Teleport {
		return true
	}

	dr, dc := abs(end.Row-begin.Row), abs(end.Col-begin.Col)
	if !(dr == 2 && dc == 1) && !(dr == 1 && dc == 2) {
		return false
	}
	if !g.Terrain(end).Landable() {
		return false
	}
	return !g.crossesBarrier(begin, end, dr == 2)
}

// crossesBarrier scans the bounding span of the long leg: the rows between
// begin and end along begin's column, or the columns along begin's row.
// The span includes begin and the corner cell, so the check is not symmetric.
func (g *Grid) crossesBarrier(begin, end Position, vertical bool) bool {
	if vertical {
		lo, hi := minmax(begin.Row, end.Row)
		for r := lo; r <= hi; r++ {
			if g.Terrain(Position{Row: r, Col: begin.Col}) == Barrier {
				return true
			}
		}
		return false
	}

	lo, hi := minmax(begin.Col, end.Col)
	for c := lo; c <= hi; c++ {
		if g.Terrain(Position{Row: begin.Row, Col: c}) == Barrier {
			return true
		}
	}
	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func minmax(a, b int) (int, int) {
	if a < b {
		return a, b
	}
	return b, a
}
