package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wricardo/knightboard/game/board"
	"github.com/wricardo/knightboard/game/pathfind"
)

const (
	// DefaultMaxLongestSize bounds the board dimension accepted by the longest
	// path query. A 4x4 board answers at once; an open 5x5 board takes seconds.
	DefaultMaxLongestSize = 5
	// DefaultMaxSequenceSteps bounds the number of steps a sequence may carry.
	DefaultMaxSequenceSteps = 4096
)

// queryServiceImpl implements the QueryService interface
type queryServiceImpl struct {
	catalog        BoardCatalog
	renderer       board.Renderer
	maxLongestSize int
	maxSteps       int
}

// Option configures the query service
type Option func(*queryServiceImpl)

// WithRenderer sets the renderer used for boards and sequence traces.
func WithRenderer(r board.Renderer) Option {
	return func(s *queryServiceImpl) { s.renderer = r }
}

// WithMaxLongestSize caps the board dimension for FindLongestSimplePath.
func WithMaxLongestSize(n int) Option {
	return func(s *queryServiceImpl) {
		if n > 0 {
			s.maxLongestSize = n
		}
	}
}

// WithMaxSequenceSteps caps the length of sequences accepted by ValidateSequence.
func WithMaxSequenceSteps(n int) Option {
	return func(s *queryServiceImpl) {
		if n > 0 {
			s.maxSteps = n
		}
	}
}

// NewQueryService creates a new query service over a board catalog
func NewQueryService(catalog BoardCatalog, opts ...Option) QueryService {
	s := &queryServiceImpl{
		catalog:        catalog,
		maxLongestSize: DefaultMaxLongestSize,
		maxSteps:       DefaultMaxSequenceSteps,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// resolve loads a board by id, falling back to the catalog default for an empty id
func (s *queryServiceImpl) resolve(ctx context.Context, boardID string) (*Board, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if boardID == "" {
		if b := s.catalog.GetDefault(); b != nil {
			return b, nil
		}
		return nil, fmt.Errorf("%w: no default board", ErrBoardNotFound)
	}

	b, err := s.catalog.LoadBoard(boardID)
	if err != nil {
		if errors.Is(err, ErrBoardNotFound) {
			// Provide helpful error message with available options
			infos, listErr := s.catalog.ListBoards()
			if listErr == nil && len(infos) > 0 {
				ids := make([]string, 0, len(infos))
				for _, info := range infos {
					ids = append(ids, info.BoardID)
				}
				return nil, fmt.Errorf("%w: %q, available boards: %s", ErrBoardNotFound, boardID, strings.Join(ids, ", "))
			}
			return nil, fmt.Errorf("%w: %q", ErrBoardNotFound, boardID)
		}
		return nil, fmt.Errorf("failed to load board %s: %w", boardID, err)
	}
	return b, nil
}

func checkInBounds(g *board.Grid, positions ...board.Position) error {
	for _, p := range positions {
		if !g.InBounds(p) {
			return fmt.Errorf("%w: %s on a %dx%d board", ErrOutOfBounds, p, g.Size(), g.Size())
		}
	}
	return nil
}

// ListBoards returns every valid board of the catalog
func (s *queryServiceImpl) ListBoards(ctx context.Context) ([]*BoardInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.catalog.ListBoards()
}

// DescribeBoard returns the board summary plus layout and reachability
func (s *queryServiceImpl) DescribeBoard(ctx context.Context, boardID string) (*BoardInfo, error) {
	b, err := s.resolve(ctx, boardID)
	if err != nil {
		return nil, err
	}

	info := Describe(b, "")
	info.Layout = b.Grid.Layout()
	info.Reachable = reachability(b.Grid)
	if info.Reachable != nil && len(info.Reachable.Unreachable) > 0 {
		info.Warnings = append(info.Warnings,
			fmt.Sprintf("%d landable cells cannot be reached from %s", len(info.Reachable.Unreachable), info.Reachable.From))
	}
	return info, nil
}

// RenderBoard draws the board, optionally with the knight on it
func (s *queryServiceImpl) RenderBoard(ctx context.Context, boardID string, knight *board.Position) (string, error) {
	b, err := s.resolve(ctx, boardID)
	if err != nil {
		return "", err
	}
	if knight != nil {
		if err := checkInBounds(b.Grid, *knight); err != nil {
			return "", err
		}
	}
	return s.renderer.RenderString(b.Grid, knight), nil
}

// LegalMoves lists the weighted moves out of a cell
func (s *queryServiceImpl) LegalMoves(ctx context.Context, boardID string, from board.Position) (*MovesResult, error) {
	b, err := s.resolve(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if err := checkInBounds(b.Grid, from); err != nil {
		return nil, err
	}

	terrain := b.Grid.Terrain(from)
	_, portal := b.Grid.Partner(from)
	moves := b.Grid.LegalMoves(from)
	if moves == nil {
		moves = []board.Edge{}
	}

	return &MovesResult{
		QueryID:    uuid.NewString(),
		BoardID:    b.ID,
		From:       from,
		Terrain:    terrain,
		Redirected: portal && terrain == board.Teleport,
		Moves:      moves,
	}, nil
}

// ValidateSequence checks every consecutive pair of steps. Off-board steps
// are not an error here; they make the sequence invalid.
func (s *queryServiceImpl) ValidateSequence(ctx context.Context, boardID string, steps []board.Position, trace bool) (*SequenceResult, error) {
	b, err := s.resolve(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if len(steps) > s.maxSteps {
		return nil, fmt.Errorf("%w: %d steps, limit %d", ErrSequenceTooLong, len(steps), s.maxSteps)
	}

	var opts []pathfind.SequenceOption
	var sb strings.Builder
	if trace {
		opts = append(opts, pathfind.WithTrace(&sb, s.renderer))
	}
	report := pathfind.CheckSequence(b.Grid, steps, opts...)

	result := &SequenceResult{
		QueryID: uuid.NewString(),
		BoardID: b.ID,
		Valid:   report.Valid,
		Steps:   report.Steps,
		Trace:   sb.String(),
	}
	log.Printf("[SEQUENCE] query=%s board=%s steps=%d valid=%t", result.QueryID, b.ID, len(steps), result.Valid)
	return result, nil
}

// FindAnyPath runs the depth-first search
func (s *queryServiceImpl) FindAnyPath(ctx context.Context, boardID string, begin, end board.Position) (*PathResult, error) {
	return s.runPath(ctx, boardID, AlgorithmAny, begin, end, func(g *board.Grid) (pathfind.Path, int, error) {
		p, err := pathfind.FindAnyPath(g, begin, end)
		return p, pathfind.PathCost(g, p), err
	})
}

// FindShortestPathByHops runs the breadth-first search
func (s *queryServiceImpl) FindShortestPathByHops(ctx context.Context, boardID string, begin, end board.Position) (*PathResult, error) {
	return s.runPath(ctx, boardID, AlgorithmHops, begin, end, func(g *board.Grid) (pathfind.Path, int, error) {
		p, err := pathfind.FindShortestPathByHops(g, begin, end)
		return p, pathfind.PathCost(g, p), err
	})
}

// FindShortestPathByCost runs the terrain-cost search
func (s *queryServiceImpl) FindShortestPathByCost(ctx context.Context, boardID string, begin, end board.Position) (*PathResult, error) {
	return s.runPath(ctx, boardID, AlgorithmCost, begin, end, func(g *board.Grid) (pathfind.Path, int, error) {
		return pathfind.FindShortestPathByCost(g, begin, end)
	})
}

type searchFunc func(g *board.Grid) (pathfind.Path, int, error)

func (s *queryServiceImpl) runPath(ctx context.Context, boardID string, algo Algorithm, begin, end board.Position, search searchFunc) (*PathResult, error) {
	b, err := s.resolve(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if err := checkInBounds(b.Grid, begin, end); err != nil {
		return nil, err
	}

	result := &PathResult{
		QueryID:   uuid.NewString(),
		BoardID:   b.ID,
		Algorithm: algo,
		Begin:     begin,
		End:       end,
	}

	start := time.Now()
	path, cost, err := search(b.Grid)
	result.Elapsed = time.Since(start)

	switch {
	case errors.Is(err, pathfind.ErrNoPath):
		// unreachable is an answer, not a failure
	case err != nil:
		return nil, fmt.Errorf("%s search: %w", algo, err)
	default:
		result.Found = true
		result.Path = path
		result.Hops = path.Hops()
		result.Cost = cost
	}

	log.Printf("[PATH] query=%s board=%s algo=%s %s->%s found=%t hops=%d cost=%d",
		result.QueryID, b.ID, algo, begin, end, result.Found, result.Hops, result.Cost)
	return result, nil
}

// FindLongestSimplePath runs the bitmask search over the whole board
func (s *queryServiceImpl) FindLongestSimplePath(ctx context.Context, boardID string) (*LongestPathResult, error) {
	b, err := s.resolve(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if b.Grid.Size() > s.maxLongestSize {
		return nil, fmt.Errorf("%w: board is %dx%d, longest path is limited to %dx%d",
			ErrBoardTooLarge, b.Grid.Size(), b.Grid.Size(), s.maxLongestSize, s.maxLongestSize)
	}

	start := time.Now()
	length, err := pathfind.LongestSimplePath(b.Grid)
	if err != nil {
		return nil, err
	}

	result := &LongestPathResult{
		QueryID: uuid.NewString(),
		BoardID: b.ID,
		Size:    b.Grid.Size(),
		Length:  length,
		Elapsed: time.Since(start),
	}
	log.Printf("[LONGEST] query=%s board=%s size=%d length=%d elapsed=%s",
		result.QueryID, b.ID, result.Size, length, result.Elapsed)
	return result, nil
}

// Describe summarises a loaded board for listings.
func Describe(b *Board, filename string) *BoardInfo {
	info := &BoardInfo{
		Filename: filename,
		BoardID:  b.ID,
		Size:     b.Grid.Size(),
		LoadedAt: b.LoadedAt,
		Terrain:  make(map[string]int),
	}
	if b.Config != nil {
		info.Name = b.Config.Name
		info.Description = b.Config.Description
	}
	if pp, ok := b.Grid.Portals(); ok {
		info.Portals = &pp
	}
	for t, n := range b.Grid.Count() {
		info.Terrain[t.String()] = n
	}
	return info
}

// reachability floods from the first landable cell in row-major order.
func reachability(g *board.Grid) *ReachabilityStats {
	landable := 0
	var from *board.Position
	for _, p := range g.Positions() {
		if g.Terrain(p).Landable() {
			landable++
			if from == nil {
				first := p
				from = &first
			}
		}
	}
	if from == nil {
		return nil
	}

	seen := pathfind.Reachable(g, *from)
	return &ReachabilityStats{
		From:        *from,
		Reachable:   seen.Size(),
		Landable:    landable,
		Unreachable: pathfind.Unreachable(g, *from),
	}
}
