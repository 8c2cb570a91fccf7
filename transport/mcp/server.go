package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/wricardo/knightboard/game/board"
	"github.com/wricardo/knightboard/game/service"
)

// Version is reported to MCP clients during initialization.
const Version = "1.0.0"

var errMissingArgument = errors.New("missing argument")

// Server exposes the query service as MCP tools
type Server struct {
	svc          service.QueryService
	mcpServer    *server.MCPServer
	defaultBoard string
}

// Option configures a Server
type Option func(*Server)

// WithDefaultBoard makes id the board used by tools called without a "board"
// argument. Without it the catalog default applies.
func WithDefaultBoard(id string) Option {
	return func(s *Server) {
		s.defaultBoard = id
	}
}

// NewServer creates an MCP server backed by svc
func NewServer(svc service.QueryService, opts ...Option) *Server {
	s := &Server{svc: svc}
	for _, opt := range opts {
		opt(s)
	}
	s.initMCPServer()
	return s
}

// GetMCPServer returns the underlying MCP server for serving
func (s *Server) GetMCPServer() *server.MCPServer {
	return s.mcpServer
}

func (s *Server) initMCPServer() {
	s.mcpServer = server.NewMCPServer(
		"Knightboard",
		Version,
		server.WithToolCapabilities(true),
		server.WithInstructions(`Knightboard - MCP Interface

Answers questions about a knight moving on square boards with terrain.

Positions are written "row,col", zero based, row 0 at the top.

AVAILABLE TOOLS:
- list_boards: List the boards of the catalog
- show_board: Draw a board, optionally with the knight on it
- legal_moves: Weighted moves out of a cell
- validate_sequence: Check that every step of a knight tour is a legal move
- find_path: Path between two cells (algorithm any, hops or cost)
- longest_path: Length of the longest simple path on a small board
- rules: Movement and terrain rules

Every board tool accepts an optional "board" id; without it the default board is used.`),
	)

	s.registerTools()
}

func boardProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Board id from list_boards (optional, defaults to the default board)",
	}
}

func positionProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description + ` as "row,col"`,
	}
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "list_boards",
		Description: "List every board of the catalog with its size and terrain counts",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleListBoards)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "show_board",
		Description: "Draw a board with one glyph per cell, optionally placing the knight (K)",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"board": boardProperty(),
				"at":    positionProperty("Knight position (optional)"),
			},
		},
	}, s.handleShowBoard)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "legal_moves",
		Description: "List the legal knight moves out of a cell with the terrain cost of each destination",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"board": boardProperty(),
				"from":  positionProperty("Origin cell"),
			},
			Required: []string{"from"},
		},
	}, s.handleLegalMoves)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "validate_sequence",
		Description: "Check whether every consecutive pair of positions is a legal knight move",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"board": boardProperty(),
				"steps": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": `Positions in visiting order, each "row,col"`,
				},
				"trace": map[string]interface{}{
					"type":        "boolean",
					"description": "Include the board drawn before every step",
				},
			},
			Required: []string{"steps"},
		},
	}, s.handleValidateSequence)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "find_path",
		Description: "Find a path between two cells. any: depth first, hops: fewest moves, cost: cheapest terrain",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"board": boardProperty(),
				"from":  positionProperty("Start cell"),
				"to":    positionProperty("Target cell"),
				"algorithm": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"any", "hops", "cost"},
					"description": "Search to run (default hops)",
				},
			},
			Required: []string{"from", "to"},
		},
	}, s.handleFindPath)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "longest_path",
		Description: "Length in moves of the longest simple knight path on a small board",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"board": boardProperty(),
			},
		},
	}, s.handleLongestPath)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "rules",
		Description: "Get the movement and terrain rules",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleRules)
}

// Tool handlers

func (s *Server) handleListBoards(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	infos, err := s.svc.ListBoards(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatBoardList(infos)), nil
}

func (s *Server) handleShowBoard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	boardID := s.boardArg(args)

	var at *board.Position
	if _, ok := args["at"]; ok {
		p, err := positionArg(args, "at")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		at = &p
	}

	info, err := s.svc.DescribeBoard(ctx, boardID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	drawing, err := s.svc.RenderBoard(ctx, boardID, at)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatBoard(info, drawing)), nil
}

func (s *Server) handleLegalMoves(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	boardID := s.boardArg(args)

	from, err := positionArg(args, "from")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res, err := s.svc.LegalMoves(ctx, boardID, from)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatMoves(res)), nil
}

func (s *Server) handleValidateSequence(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	boardID := s.boardArg(args)
	trace, _ := args["trace"].(bool)

	steps, err := positionsArg(args, "steps")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res, err := s.svc.ValidateSequence(ctx, boardID, steps, trace)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatSequence(res)), nil
}

func (s *Server) handleFindPath(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	boardID := s.boardArg(args)
	algo, _ := args["algorithm"].(string)

	from, err := positionArg(args, "from")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	to, err := positionArg(args, "to")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res, err := service.FindPath(ctx, s.svc, service.Algorithm(algo), boardID, from, to)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatPath(res)), nil
}

func (s *Server) handleLongestPath(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	boardID := s.boardArg(args)

	res, err := s.svc.FindLongestSimplePath(ctx, boardID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatLongest(res)), nil
}

func (s *Server) handleRules(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(rulesText()), nil
}

// Argument helpers

func (s *Server) boardArg(args map[string]interface{}) string {
	if id, _ := args["board"].(string); id != "" {
		return id
	}
	return s.defaultBoard
}

func arguments(request mcp.CallToolRequest) map[string]interface{} {
	if args, ok := request.Params.Arguments.(map[string]interface{}); ok {
		return args
	}
	return map[string]interface{}{}
}

// positionArg accepts "r,c", "(r,c)", [r, c] or {"row": r, "col": c}
func positionArg(args map[string]interface{}, key string) (board.Position, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return board.Position{}, fmt.Errorf("%w: %s", errMissingArgument, key)
	}
	p, err := toPosition(raw)
	if err != nil {
		return board.Position{}, fmt.Errorf("%s: %w", key, err)
	}
	return p, nil
}

func positionsArg(args map[string]interface{}, key string) ([]board.Position, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return nil, fmt.Errorf("%w: %s", errMissingArgument, key)
	}

	var items []interface{}
	switch v := raw.(type) {
	case []interface{}:
		items = v
	case string:
		// "0,0 1,2 2,4" is accepted as a shorthand
		for _, field := range strings.Fields(v) {
			items = append(items, field)
		}
	default:
		return nil, fmt.Errorf("%s: expected an array of positions", key)
	}

	steps := make([]board.Position, 0, len(items))
	for i, item := range items {
		p, err := toPosition(item)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", key, i, err)
		}
		steps = append(steps, p)
	}
	return steps, nil
}

func toPosition(raw interface{}) (board.Position, error) {
	switch v := raw.(type) {
	case string:
		return board.ParsePosition(v)
	case []interface{}:
		if len(v) != 2 {
			return board.Position{}, fmt.Errorf("%w: expected [row, col]", board.ErrBadPosition)
		}
		r, rok := v[0].(float64)
		c, cok := v[1].(float64)
		if !rok || !cok {
			return board.Position{}, fmt.Errorf("%w: expected numbers", board.ErrBadPosition)
		}
		return board.Position{Row: int(r), Col: int(c)}, nil
	case map[string]interface{}:
		r, rok := v["row"].(float64)
		c, cok := v["col"].(float64)
		if !rok || !cok {
			return board.Position{}, fmt.Errorf("%w: expected row and col", board.ErrBadPosition)
		}
		return board.Position{Row: int(r), Col: int(c)}, nil
	}
	return board.Position{}, fmt.Errorf("%w: unsupported value %v", board.ErrBadPosition, raw)
}
