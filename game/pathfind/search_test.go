package pathfind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wricardo/knightboard/game/board"
)

type finder struct {
	name string
	find func(g Board, begin, end board.Position) (Path, error)
}

var finders = []finder{
	{"any", FindAnyPath},
	{"hops", FindShortestPathByHops},
	{"cost", func(g Board, begin, end board.Position) (Path, error) {
		p, _, err := FindShortestPathByCost(g, begin, end)
		return p, err
	}},
}

func TestFindShortestPathByHops_ClearBoard(t *testing.T) {
	g := clearGrid(t, 8)

	tests := []struct {
		name     string
		from, to board.Position
		want     Path
	}{
		{"one move", pos(0, 0), pos(2, 1), Path{pos(0, 0), pos(2, 1)}},
		{"two moves", pos(0, 0), pos(4, 0), Path{pos(0, 0), pos(2, 1), pos(4, 0)}},
		{"three moves", pos(0, 0), pos(6, 1), Path{pos(0, 0), pos(2, 1), pos(4, 0), pos(6, 1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindShortestPathByHops(g, tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFind_SameCell(t *testing.T) {
	g := cruiseGrid(t)
	for _, f := range finders {
		t.Run(f.name, func(t *testing.T) {
			for _, p := range []board.Position{pos(0, 0), portalA, pos(31, 31)} {
				got, err := f.find(g, p, p)
				require.NoError(t, err)
				assert.Equal(t, Path{p, p}, got)
			}
		})
	}
}

func TestFind_OutOfBounds(t *testing.T) {
	g := clearGrid(t, 8)
	for _, f := range finders {
		t.Run(f.name, func(t *testing.T) {
			_, err := f.find(g, pos(-1, 0), pos(2, 1))
			assert.ErrorIs(t, err, ErrOutOfBounds)
			_, err = f.find(g, pos(0, 0), pos(8, 8))
			assert.ErrorIs(t, err, board.ErrOutOfBounds)
		})
	}
}

func TestFind_Unreachable(t *testing.T) {
	// the centre of a 3x3 board has no knight moves at all
	g := clearGrid(t, 3)
	for _, f := range finders {
		t.Run(f.name, func(t *testing.T) {
			_, err := f.find(g, pos(0, 0), pos(1, 1))
			assert.ErrorIs(t, err, ErrNoPath)
			_, err = f.find(g, pos(1, 1), pos(0, 0))
			assert.ErrorIs(t, err, ErrNoPath)
		})
	}
}

func TestFind_WalledOff(t *testing.T) {
	// (0,0) can only move to (1,2) and (2,1); rocks there cut it off
	g := gridWith(t, 6, map[board.Position]board.Terrain{
		pos(1, 2): board.Rock,
		pos(2, 1): board.Rock,
	})
	for _, f := range finders {
		t.Run(f.name, func(t *testing.T) {
			_, err := f.find(g, pos(0, 0), pos(5, 5))
			assert.ErrorIs(t, err, ErrNoPath)
		})
	}
}

func TestFind_ClearBoardProperties(t *testing.T) {
	g := clearGrid(t, 8)
	starts := []board.Position{pos(0, 0), pos(3, 4), pos(7, 7)}

	for _, begin := range starts {
		for _, end := range g.Positions() {
			if end == begin {
				continue
			}

			dfs, err := FindAnyPath(g, begin, end)
			require.NoError(t, err)
			bfs, err := FindShortestPathByHops(g, begin, end)
			require.NoError(t, err)
			cheapest, cost, err := FindShortestPathByCost(g, begin, end)
			require.NoError(t, err)

			requireValidPath(t, g, dfs, begin, end)
			requireValidPath(t, g, bfs, begin, end)
			requireValidPath(t, g, cheapest, begin, end)

			assert.LessOrEqual(t, bfs.Hops(), dfs.Hops(), "%s -> %s", begin, end)
			assert.Equal(t, bfs.Hops(), cheapest.Hops(), "%s -> %s", begin, end)
			assert.Equal(t, bfs.Hops(), cost, "%s -> %s", begin, end)
		}
	}
}

func TestFindShortestPathByCost_AvoidsLava(t *testing.T) {
	g := gridWith(t, 8, map[board.Position]board.Terrain{pos(2, 1): board.Lava})
	begin, end := pos(0, 0), pos(4, 0)

	bfs, err := FindShortestPathByHops(g, begin, end)
	require.NoError(t, err)
	assert.Equal(t, Path{pos(0, 0), pos(2, 1), pos(4, 0)}, bfs)
	assert.Equal(t, 6, PathCost(g, bfs))

	cheapest, cost, err := FindShortestPathByCost(g, begin, end)
	require.NoError(t, err)
	requireValidPath(t, g, cheapest, begin, end)
	assert.Equal(t, 4, cost)
	assert.Equal(t, 4, cheapest.Hops())
	assert.Equal(t, cost, PathCost(g, cheapest))
	assert.NotContains(t, cheapest, pos(2, 1))
}

func TestFindShortestPathByCost_PortalPair(t *testing.T) {
	g := cruiseGrid(t)

	got, cost, err := FindShortestPathByCost(g, portalA, portalB)
	require.NoError(t, err)
	assert.Equal(t, Path{portalA, portalB}, got)
	assert.Equal(t, 0, cost)

	got, cost, err = FindShortestPathByCost(g, portalB, portalA)
	require.NoError(t, err)
	assert.Equal(t, Path{portalB, portalA}, got)
	assert.Equal(t, 0, cost)
}

func TestFind_PortalToPortalDetour(t *testing.T) {
	g := cruiseGrid(t)

	searches := map[string]func(Board, board.Position, board.Position) (Path, error){
		"dfs": FindAnyPath,
		"bfs": FindShortestPathByHops,
	}
	for name, find := range searches {
		t.Run(name, func(t *testing.T) {
			got, err := find(g, portalA, portalB)
			require.NoError(t, err)
			require.Len(t, got, 4, "path %s", got)
			assert.Equal(t, portalA, got[0])
			assert.Equal(t, portalB, got[1])
			assert.Equal(t, portalB, got[3])
			assert.NotEqual(t, portalA, got[2])
			requireValidPath(t, g, got, portalA, portalB)
		})
	}
}

func TestFind_ThroughPortal(t *testing.T) {
	g := cruiseGrid(t)
	end := pos(25, 28)
	want := Path{portalA, portalB, end}

	bfs, err := FindShortestPathByHops(g, portalA, end)
	require.NoError(t, err)
	assert.Equal(t, want, bfs)

	cheapest, cost, err := FindShortestPathByCost(g, portalA, end)
	require.NoError(t, err)
	assert.Equal(t, want, cheapest)
	assert.Equal(t, 1, cost)
	assert.Equal(t, 1, PathCost(g, cheapest))

	dfs, err := FindAnyPath(g, portalA, end)
	require.NoError(t, err)
	requireValidPath(t, g, dfs, portalA, end)
}

func TestFind_CruiseBoardPaths(t *testing.T) {
	g := cruiseGrid(t)

	pairs := []struct{ begin, end board.Position }{
		{pos(0, 0), pos(31, 31)},
		{pos(0, 7), pos(1, 9)},
		{pos(0, 0), portalA},
		{pos(5, 7), portalB},
		{pos(30, 1), pos(2, 13)},
		{pos(9, 22), pos(11, 23)},
	}

	for _, pair := range pairs {
		t.Run(pair.begin.String()+"->"+pair.end.String(), func(t *testing.T) {
			dfs, err := FindAnyPath(g, pair.begin, pair.end)
			require.NoError(t, err)
			bfs, err := FindShortestPathByHops(g, pair.begin, pair.end)
			require.NoError(t, err)
			cheapest, cost, err := FindShortestPathByCost(g, pair.begin, pair.end)
			require.NoError(t, err)

			requireValidPath(t, g, dfs, pair.begin, pair.end)
			requireValidPath(t, g, bfs, pair.begin, pair.end)
			requireValidPath(t, g, cheapest, pair.begin, pair.end)

			assert.Equal(t, cost, PathCost(g, cheapest))
			assert.LessOrEqual(t, cost, PathCost(g, bfs))
			assert.LessOrEqual(t, cost, PathCost(g, dfs))
		})
	}
}

func TestPath_String(t *testing.T) {
	p := Path{pos(0, 0), pos(2, 1)}
	assert.Equal(t, "(0,0) -> (2,1)", p.String())
	assert.Equal(t, 1, p.Hops())
	assert.Equal(t, 0, Path(nil).Hops())
}

func TestExpandPortalHops(t *testing.T) {
	g := cruiseGrid(t)

	// entering a portal and leaving it for a neighbour of the partner
	in := Path{pos(13, 25), portalA, pos(25, 28)}
	assert.Equal(t, Path{pos(13, 25), portalA, portalB, pos(25, 28)}, expandPortalHops(g, in))

	// an explicit portal jump is left alone
	jump := Path{portalA, portalB}
	assert.Equal(t, jump, expandPortalHops(g, jump))

	// ending on a portal needs nothing
	end := Path{pos(13, 25), portalA}
	assert.Equal(t, end, expandPortalHops(g, end))
}
