package pathfind

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wricardo/knightboard/game/board"
)

func TestReachable(t *testing.T) {
	g := clearGrid(t, 3)

	ring := Reachable(g, pos(0, 0))
	assert.Equal(t, 8, ring.Size())
	assert.False(t, ring.Has(pos(1, 1)))
	assert.True(t, ring.Has(pos(0, 0)))

	centre := Reachable(g, pos(1, 1))
	assert.Equal(t, 1, centre.Size())

	assert.Equal(t, 0, Reachable(g, pos(-1, 0)).Size())
	assert.Equal(t, []board.Position{pos(1, 1)}, Unreachable(g, pos(0, 0)))
}

func TestReachable_PortalsJoinRegions(t *testing.T) {
	// (0,0) is boxed in except through the portal pair
	g := gridWith(t, 6, map[board.Position]board.Terrain{
		pos(0, 0): board.Teleport,
		pos(1, 2): board.Rock,
		pos(2, 1): board.Rock,
		pos(5, 5): board.Teleport,
	})

	seen := Reachable(g, pos(0, 0))
	assert.True(t, seen.Has(pos(3, 4)), "moves out of (0,0) come from (5,5)")
	assert.True(t, seen.Has(pos(5, 5)))
	assert.False(t, seen.Has(pos(1, 2)))

	p, err := FindShortestPathByHops(g, pos(0, 0), pos(3, 4))
	assert.NoError(t, err)
	assert.Equal(t, Path{pos(0, 0), pos(5, 5), pos(3, 4)}, p)
}
