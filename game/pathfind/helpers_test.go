package pathfind

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wricardo/knightboard/game/board"
)

func pos(r, c int) board.Position { return board.Position{Row: r, Col: c} }

func clearGrid(t *testing.T, size int) *board.Grid {
	t.Helper()
	g, err := board.NewGrid(size, nil)
	require.NoError(t, err)
	return g
}

func gridWith(t *testing.T, size int, cells map[board.Position]board.Terrain) *board.Grid {
	t.Helper()
	g, err := board.NewGrid(size, cells)
	require.NoError(t, err)
	return g
}

var (
	portalA = pos(11, 26)
	portalB = pos(23, 27)
)

// cruiseGrid is a 32x32 board with a barrier column at col 8 (rows 0-5), a
// barrier row at row 10 (cols 20-25), a rock block, lava and water patches,
// and portals at portalA and portalB.
func cruiseGrid(t *testing.T) *board.Grid {
	t.Helper()
	cells := map[board.Position]board.Terrain{
		portalA:    board.Teleport,
		portalB:    board.Teleport,
		pos(9, 3):  board.Rock,
		pos(9, 4):  board.Rock,
		pos(10, 3): board.Rock,
		pos(10, 4): board.Rock,
	}
	for r := 0; r <= 5; r++ {
		cells[pos(r, 8)] = board.Barrier
	}
	for c := 20; c <= 25; c++ {
		cells[pos(10, c)] = board.Barrier
	}
	for r := 0; r <= 4; r++ {
		for c := 12; c <= 14; c++ {
			cells[pos(r, c)] = board.Lava
		}
	}
	for r := 14; r <= 16; r++ {
		for c := 0; c <= 5; c++ {
			cells[pos(r, c)] = board.Water
		}
	}
	return gridWith(t, 32, cells)
}

// requireValidPath checks the endpoints and that every move is legal.
func requireValidPath(t *testing.T, g Board, p Path, begin, end board.Position) {
	t.Helper()
	require.GreaterOrEqual(t, len(p), 2)
	require.Equal(t, begin, p[0])
	require.Equal(t, end, p[len(p)-1])
	require.True(t, IsValidSequence(g, p), "path %s is not a valid sequence", p)
}
