package board

import "fmt"

// Grid is an immutable N×N terrain board. It is safe for concurrent readers.
type Grid struct {
	size    int
	cells   []Terrain
	portals *PortalPair
}

// NewGrid builds a size×size board that is Clear except for the given cells.
func NewGrid(size int, cells map[Position]Terrain) (*Grid, error) {
	if size < MinBoardSize || size > MaxBoardSize {
		return nil, fmt.Errorf("%w: %d not in [%d,%d]", ErrBadSize, size, MinBoardSize, MaxBoardSize)
	}

	g := &Grid{size: size, cells: make([]Terrain, size*size)}
	for p, t := range cells {
		if !g.InBounds(p) {
			return nil, fmt.Errorf("%w: %s on a %dx%d board", ErrOutOfBounds, p, size, size)
		}
		if !t.valid() {
			return nil, fmt.Errorf("%w: %d at %s", ErrUnknownTerrain, t, p)
		}
		g.cells[p.Index(size)] = t
	}

	if err := g.bindPortals(); err != nil {
		return nil, err
	}
	return g, nil
}

// bindPortals enforces the zero-or-two teleport invariant.
func (g *Grid) bindPortals() error {
	var found []Position
	for idx, t := range g.cells {
		if t == Teleport {
			found = append(found, PositionFromIndex(idx, g.size))
		}
	}

	switch len(found) {
	case 0:
		g.portals = nil
	case 2:
		g.portals = &PortalPair{A: found[0], B: found[1]}
	default:
		return fmt.Errorf("%w: found %d", ErrPortalCount, len(found))
	}
	return nil
}

// Size is the board dimension N.
func (g *Grid) Size() int { return g.size }

// Area is the number of cells, N².
func (g *Grid) Area() int { return len(g.cells) }

func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.size && p.Col >= 0 && p.Col < g.size
}

// Terrain returns the terrain at p. Callers must check InBounds first.
func (g *Grid) Terrain(p Position) Terrain {
	return g.cells[p.Index(g.size)]
}

// Portals returns the teleport pair, if the board has one.
func (g *Grid) Portals() (PortalPair, bool) {
	if g.portals == nil {
		return PortalPair{}, false
	}
	return *g.portals, true
}

// Partner returns the other portal when p is a teleport cell.
func (g *Grid) Partner(p Position) (Position, bool) {
	if g.portals == nil {
		return Position{}, false
	}
	return g.portals.Partner(p)
}

// Count tallies cells per terrain kind.
func (g *Grid) Count() map[Terrain]int {
	counts := make(map[Terrain]int)
	for _, t := range g.cells {
		counts[t]++
	}
	return counts
}

// Positions returns every cell position in row-major order.
func (g *Grid) Positions() []Position {
	out := make([]Position, len(g.cells))
	for idx := range g.cells {
		out[idx] = PositionFromIndex(idx, g.size)
	}
	return out
}
