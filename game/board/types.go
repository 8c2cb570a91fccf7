package board

import (
	"fmt"
	"strconv"
	"strings"
)

// Terrain is the kind of ground a cell is made of
type Terrain uint8

const (
	Clear Terrain = iota
	Water
	Rock
	Barrier
	Teleport
	Lava

	// Validation constants
	MinBoardSize = 1
	MaxBoardSize = 128
)

// terrainSpec is the single source of truth for every terrain kind
type terrainSpec struct {
	glyph    rune
	name     string
	cost     int
	landable bool
}

var terrainTable = [...]terrainSpec{
	Clear:    {'.', "clear", 1, true},
	Water:    {'W', "water", 2, true},
	Rock:     {'R', "rock", 1, false},
	Barrier:  {'B', "barrier", 1, false},
	Teleport: {'T', "teleport", 1, true},
	Lava:     {'L', "lava", 5, true},
}

// Terrains lists every terrain kind in declaration order.
func Terrains() []Terrain {
	out := make([]Terrain, len(terrainTable))
	for i := range terrainTable {
		out[i] = Terrain(i)
	}
	return out
}

func (t Terrain) valid() bool { return int(t) < len(terrainTable) }

// Cost is the weight of a move that lands on this terrain.
func (t Terrain) Cost() int {
	if !t.valid() {
		return 0
	}
	return terrainTable[t].cost
}

// Landable reports whether a knight may finish a move on this terrain.
func (t Terrain) Landable() bool {
	return t.valid() && terrainTable[t].landable
}

// Glyph is the single character used for this terrain in layouts.
func (t Terrain) Glyph() rune {
	if !t.valid() {
		return '?'
	}
	return terrainTable[t].glyph
}

func (t Terrain) String() string {
	if !t.valid() {
		return "terrain(" + strconv.Itoa(int(t)) + ")"
	}
	return terrainTable[t].name
}

func (t Terrain) MarshalText() ([]byte, error) {
	if !t.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTerrain, t)
	}
	return []byte(t.String()), nil
}

func (t *Terrain) UnmarshalText(text []byte) error {
	name := strings.ToLower(string(text))
	for i, entry := range terrainTable {
		if entry.name == name {
			*t = Terrain(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownTerrain, text)
}

// TerrainFromGlyph maps a layout character to its terrain.
func TerrainFromGlyph(r rune) (Terrain, error) {
	for i, entry := range terrainTable {
		if entry.glyph == r {
			return Terrain(i), nil
		}
	}
	return Clear, fmt.Errorf("%w: %q", ErrUnknownTerrain, r)
}

// Position is a cell coordinate, row first
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Index flattens the position into row-major order on an n×n board.
func (p Position) Index(n int) int { return p.Row*n + p.Col }

// PositionFromIndex is the inverse of Index.
func PositionFromIndex(idx, n int) Position {
	return Position{Row: idx / n, Col: idx % n}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// ParsePosition reads "r,c", optionally wrapped in parentheses.
func ParsePosition(s string) (Position, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(trimmed, "(")
	trimmed = strings.TrimSuffix(trimmed, ")")

	parts := strings.Split(trimmed, ",")
	if len(parts) != 2 {
		return Position{}, fmt.Errorf("%w: %q, expected row,col", ErrBadPosition, s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Position{}, fmt.Errorf("%w: %q: %v", ErrBadPosition, s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Position{}, fmt.Errorf("%w: %q: %v", ErrBadPosition, s, err)
	}
	return Position{Row: row, Col: col}, nil
}

// Edge is a legal move to To costing Weight
type Edge struct {
	To     Position `json:"to"`
	Weight int      `json:"weight"`
}

// PortalPair holds the two teleport cells of a board
type PortalPair struct {
	A Position `json:"a"`
	B Position `json:"b"`
}

// Partner returns the other end of the pair and whether p is a portal at all.
func (pp PortalPair) Partner(p Position) (Position, bool) {
	switch p {
	case pp.A:
		return pp.B, true
	case pp.B:
		return pp.A, true
	}
	return Position{}, false
}
