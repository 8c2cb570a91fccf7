// Package pathfind answers path queries for a knight on a terrain board.
//
// Every function takes a Board (implemented by *board.Grid) and allocates its
// own search state, so concurrent queries against one board are safe.
//
//   - CheckSequence / IsValidSequence: validate a list of moves.
//   - FindAnyPath: depth-first, any path.
//   - FindShortestPathByHops: breadth-first, fewest moves.
//   - FindShortestPathByCost: cheapest path under terrain cost.
//   - LongestSimplePath: memoized bitmask search over boards of at most 64 cells.
//   - Reachable: the flood-fill set of cells reachable from a start.
//
// The searches share one path reconstruction. Start and target equal gives
// the two-element path [p, p]. When a path leaves a portal for any cell other
// than its partner, the partner is inserted after it, so every path between
// two distinct cells satisfies IsValidSequence. An unreachable target yields
// ErrNoPath.
//
// Moves out of a portal are enumerated from its partner, so a portal is never
// offered its partner as a move. Between the two portals FindAnyPath and
// FindShortestPathByHops therefore return a detour such as [A, B, n, B]; only
// FindShortestPathByCost joins them directly as [A, B].
package pathfind
