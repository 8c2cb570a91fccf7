package service

import (
	"time"

	"github.com/wricardo/knightboard/game/board"
	"github.com/wricardo/knightboard/game/pathfind"
)

// BoardInfo provides information about a catalog board
type BoardInfo struct {
	Filename    string             `json:"filename"`
	BoardID     string             `json:"board_id"` // The identifier to pass to queries
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Size        int                `json:"size"`
	Portals     *board.PortalPair  `json:"portals,omitempty"`
	Terrain     map[string]int     `json:"terrain,omitempty"`
	Layout      []string           `json:"layout,omitempty"`
	LoadedAt    time.Time          `json:"loaded_at,omitempty"`
	Warnings    []string           `json:"warnings,omitempty"`
	Reachable   *ReachabilityStats `json:"reachable,omitempty"`
}

// ReachabilityStats summarises how connected the landable cells are
type ReachabilityStats struct {
	From        board.Position   `json:"from"`
	Reachable   int              `json:"reachable"`
	Landable    int              `json:"landable"`
	Unreachable []board.Position `json:"unreachable,omitempty"`
}

// MovesResult lists the legal moves out of a cell
type MovesResult struct {
	QueryID    string         `json:"query_id"`
	BoardID    string         `json:"board_id"`
	From       board.Position `json:"from"`
	Terrain    board.Terrain  `json:"terrain"`
	Redirected bool           `json:"redirected,omitempty"` // moves were taken from the partner portal
	Moves      []board.Edge   `json:"moves"`
}

// SequenceResult contains the verdict on a move sequence
type SequenceResult struct {
	QueryID string               `json:"query_id"`
	BoardID string               `json:"board_id"`
	Valid   bool                 `json:"valid"`
	Steps   []pathfind.StepCheck `json:"steps"`
	Trace   string               `json:"trace,omitempty"`
}

// PathResult contains the result of a path search. Found is false when the
// target cannot be reached; Path is then empty.
type PathResult struct {
	QueryID   string           `json:"query_id"`
	BoardID   string           `json:"board_id"`
	Algorithm Algorithm        `json:"algorithm"`
	Begin     board.Position   `json:"begin"`
	End       board.Position   `json:"end"`
	Found     bool             `json:"found"`
	Path      []board.Position `json:"path,omitempty"`
	Hops      int              `json:"hops"`
	Cost      int              `json:"cost"`
	Elapsed   time.Duration    `json:"elapsed_ns"`
}

// LongestPathResult contains the longest simple path length on a board
type LongestPathResult struct {
	QueryID string        `json:"query_id"`
	BoardID string        `json:"board_id"`
	Size    int           `json:"size"`
	Length  int           `json:"length"`
	Elapsed time.Duration `json:"elapsed_ns"`
}
