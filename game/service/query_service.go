package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wricardo/knightboard/game/board"
	"github.com/wricardo/knightboard/game/pathfind"
)

var (
	ErrBoardNotFound   = errors.New("board not found")
	ErrUnknownAlgo     = errors.New("unknown path algorithm")
	ErrOutOfBounds     = board.ErrOutOfBounds
	ErrBoardTooLarge   = pathfind.ErrBoardTooLarge
	ErrSequenceTooLong = errors.New("sequence has too many steps")
)

// QueryService defines every query a driver can run against a board
type QueryService interface {
	// Boards
	ListBoards(ctx context.Context) ([]*BoardInfo, error)
	DescribeBoard(ctx context.Context, boardID string) (*BoardInfo, error)
	RenderBoard(ctx context.Context, boardID string, knight *board.Position) (string, error)

	// Moves
	LegalMoves(ctx context.Context, boardID string, from board.Position) (*MovesResult, error)
	ValidateSequence(ctx context.Context, boardID string, steps []board.Position, trace bool) (*SequenceResult, error)

	// Paths
	FindAnyPath(ctx context.Context, boardID string, begin, end board.Position) (*PathResult, error)
	FindShortestPathByHops(ctx context.Context, boardID string, begin, end board.Position) (*PathResult, error)
	FindShortestPathByCost(ctx context.Context, boardID string, begin, end board.Position) (*PathResult, error)
	FindLongestSimplePath(ctx context.Context, boardID string) (*LongestPathResult, error)
}

// BoardCatalog resolves board ids to loaded boards
type BoardCatalog interface {
	LoadBoard(id string) (*Board, error)
	ListBoards() ([]*BoardInfo, error)
	GetDefault() *Board
}

// Board is a loaded, immutable board ready for queries
type Board struct {
	ID       string
	Source   string
	Config   *board.BoardConfig
	Grid     *board.Grid
	LoadedAt time.Time
}

// Algorithm selects a path search
type Algorithm string

const (
	AlgorithmAny  Algorithm = "any"
	AlgorithmHops Algorithm = "hops"
	AlgorithmCost Algorithm = "cost"
)

// Algorithms lists the accepted algorithm names.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmAny, AlgorithmHops, AlgorithmCost}
}

// FindPath dispatches to the search named by algo.
func FindPath(ctx context.Context, svc QueryService, algo Algorithm, boardID string, begin, end board.Position) (*PathResult, error) {
	switch algo {
	case AlgorithmAny:
		return svc.FindAnyPath(ctx, boardID, begin, end)
	case AlgorithmHops, "":
		return svc.FindShortestPathByHops(ctx, boardID, begin, end)
	case AlgorithmCost:
		return svc.FindShortestPathByCost(ctx, boardID, begin, end)
	}
	return nil, fmt.Errorf("%w: %q, want one of %v", ErrUnknownAlgo, algo, Algorithms())
}
