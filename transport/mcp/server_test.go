package mcp

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/wricardo/knightboard/game/config"
	"github.com/wricardo/knightboard/game/service"
)

var testBoards = map[string]string{
	"open.yaml": `name: Open
description: Open board
size: 8
layout: |
  ........
  ........
  ........
  ........
  ........
  ........
  ........
  ........
`,
	"ring.txt": "...\n...\n...\n",
	"portal.yaml": `name: Portal
size: 6
layout: |
  T . . . . .
  . R . . . .
  . . R . . .
  . . . . . .
  . . . . . .
  . . . . . T
`,
}

func setupServer(t *testing.T, opts ...Option) *Server {
	t.Helper()
	dir := t.TempDir()
	for name, content := range testBoards {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write board: %v", err)
		}
	}

	catalog, err := config.NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create catalog: %v", err)
	}
	return NewServer(service.NewQueryService(catalog), opts...)
}

type toolHandler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)

func callTool(t *testing.T, handler toolHandler, args map[string]any) (string, bool) {
	t.Helper()
	var req mcp.CallToolRequest
	req.Params.Arguments = args

	result, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("Handler returned protocol error: %v", err)
	}
	if len(result.Content) == 0 {
		t.Fatal("Expected content in result")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("Expected text content, got %T", result.Content[0])
	}
	return text.Text, result.IsError
}

func TestNewServer(t *testing.T) {
	s := setupServer(t)
	if s.GetMCPServer() == nil {
		t.Fatal("Expected MCP server to be initialized")
	}
}

func TestServer_DefaultBoard(t *testing.T) {
	s := setupServer(t, WithDefaultBoard("ring"))

	text, isErr := callTool(t, s.handleShowBoard, map[string]any{})
	if isErr || !strings.Contains(text, "Board: ring") {
		t.Errorf("Expected the configured default board, got:\n%s", text)
	}

	text, isErr = callTool(t, s.handleLegalMoves, map[string]any{"from": "1,1"})
	if isErr || !strings.Contains(text, "(no legal moves)") {
		t.Errorf("Expected the ring centre to have no moves, got:\n%s", text)
	}

	text, isErr = callTool(t, s.handleShowBoard, map[string]any{"board": "open"})
	if isErr || !strings.Contains(text, "Board: open (Open)") {
		t.Errorf("Expected an explicit board to win, got:\n%s", text)
	}
}

func TestServer_ListBoards(t *testing.T) {
	s := setupServer(t)

	text, isErr := callTool(t, s.handleListBoards, nil)
	if isErr {
		t.Fatalf("Unexpected tool error: %s", text)
	}
	for _, want := range []string{"Available Boards (3)", "• open (Open)", "• ring", "Portals: (0,0) <-> (5,5)", "rock 2, teleport 2"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected %q in:\n%s", want, text)
		}
	}
}

func TestServer_ShowBoard(t *testing.T) {
	s := setupServer(t)

	tests := []struct {
		name    string
		args    map[string]any
		want    string
		wantErr bool
	}{
		{"default board", map[string]any{}, "Board: open (Open)", false},
		{"knight", map[string]any{"board": "ring", "at": "1,1"}, ". K .", false},
		{"unreachable warning", map[string]any{"board": "ring"}, "Warning: 1 landable cells", false},
		{"bad position", map[string]any{"board": "ring", "at": "one,two"}, "malformed position", true},
		{"off board", map[string]any{"board": "ring", "at": "3,0"}, "out of bounds", true},
		{"unknown board", map[string]any{"board": "nope"}, "board not found", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, isErr := callTool(t, s.handleShowBoard, tt.args)
			if isErr != tt.wantErr {
				t.Fatalf("IsError = %v, want %v: %s", isErr, tt.wantErr, text)
			}
			if !strings.Contains(text, tt.want) {
				t.Errorf("Expected %q in:\n%s", tt.want, text)
			}
		})
	}
}

func TestServer_LegalMoves(t *testing.T) {
	s := setupServer(t)

	tests := []struct {
		name    string
		args    map[string]any
		want    []string
		wantErr bool
	}{
		{"string position", map[string]any{"from": "0,0"}, []string{"- (1,2) cost 1", "- (2,1) cost 1"}, false},
		{"array position", map[string]any{"from": []any{float64(0), float64(0)}}, []string{"- (1,2) cost 1"}, false},
		{"object position", map[string]any{"from": map[string]any{"row": float64(7), "col": float64(7)}}, []string{"- (5,6) cost 1"}, false},
		{"teleport", map[string]any{"board": "portal", "from": "0,0"}, []string{"partner portal", "- (3,4) cost 1", "- (4,3) cost 1"}, false},
		{"no moves", map[string]any{"board": "ring", "from": "1,1"}, []string{"(no legal moves)"}, false},
		{"missing from", map[string]any{}, []string{"missing argument: from"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, isErr := callTool(t, s.handleLegalMoves, tt.args)
			if isErr != tt.wantErr {
				t.Fatalf("IsError = %v, want %v: %s", isErr, tt.wantErr, text)
			}
			for _, want := range tt.want {
				if !strings.Contains(text, want) {
					t.Errorf("Expected %q in:\n%s", want, text)
				}
			}
		})
	}
}

func TestServer_ValidateSequence(t *testing.T) {
	s := setupServer(t)

	tests := []struct {
		name    string
		args    map[string]any
		want    []string
		wantErr bool
	}{
		{
			name: "valid",
			args: map[string]any{"steps": []any{"0,0", "1,2", "2,0"}},
			want: []string{"Sequence is VALID (2 moves)", "1. (0,0) -> (1,2) ✓", "2. (1,2) -> (2,0) ✓"},
		},
		{
			name: "invalid middle step",
			args: map[string]any{"steps": []any{"0,0", "1,1", "2,3"}},
			want: []string{"Sequence is NOT VALID", "1. (0,0) -> (1,1) ✗", "2. (1,1) -> (2,3) ✓"},
		},
		{
			name: "shorthand string",
			args: map[string]any{"steps": "0,0 2,1"},
			want: []string{"Sequence is VALID (1 moves)"},
		},
		{
			name: "single position",
			args: map[string]any{"steps": []any{"0,0"}},
			want: []string{"NOT VALID", "at least two positions"},
		},
		{
			name: "trace",
			args: map[string]any{"board": "ring", "steps": []any{"0,0", "1,2"}, "trace": true},
			want: []string{"K . .", "Step 1: (0,0) -> (1,2) [valid]"},
		},
		{
			name:    "bad step",
			args:    map[string]any{"steps": []any{"0,0", "x"}},
			want:    []string{"steps[1]"},
			wantErr: true,
		},
		{
			name:    "missing steps",
			args:    map[string]any{},
			want:    []string{"missing argument: steps"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, isErr := callTool(t, s.handleValidateSequence, tt.args)
			if isErr != tt.wantErr {
				t.Fatalf("IsError = %v, want %v: %s", isErr, tt.wantErr, text)
			}
			for _, want := range tt.want {
				if !strings.Contains(text, want) {
					t.Errorf("Expected %q in:\n%s", want, text)
				}
			}
		})
	}
}

func TestServer_FindPath(t *testing.T) {
	s := setupServer(t)

	tests := []struct {
		name    string
		args    map[string]any
		want    []string
		wantErr bool
	}{
		{
			name: "default algorithm is hops",
			args: map[string]any{"from": "0,0", "to": "6,1"},
			want: []string{"Path (hops) on open", "(0,0) -> (2,1) -> (4,0) -> (6,1)", "Hops: 3, Cost: 3"},
		},
		{
			name: "cost",
			args: map[string]any{"board": "portal", "from": "0,0", "to": "5,5", "algorithm": "cost"},
			want: []string{"Path (cost)", "(0,0) -> (5,5)", "Hops: 1, Cost: 0"},
		},
		{
			name: "any",
			args: map[string]any{"from": "0,0", "to": "2,1", "algorithm": "any"},
			want: []string{"Path (any)", "(0,0) -> (2,1)"},
		},
		{
			name: "unreachable",
			args: map[string]any{"board": "ring", "from": "0,0", "to": "1,1"},
			want: []string{"No path from (0,0) to (1,1) on ring"},
		},
		{
			name:    "unknown algorithm",
			args:    map[string]any{"from": "0,0", "to": "2,1", "algorithm": "astar"},
			want:    []string{"unknown path algorithm"},
			wantErr: true,
		},
		{
			name:    "missing target",
			args:    map[string]any{"from": "0,0"},
			want:    []string{"missing argument: to"},
			wantErr: true,
		},
		{
			name:    "out of bounds",
			args:    map[string]any{"from": "0,0", "to": "8,8"},
			want:    []string{"out of bounds"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, isErr := callTool(t, s.handleFindPath, tt.args)
			if isErr != tt.wantErr {
				t.Fatalf("IsError = %v, want %v: %s", isErr, tt.wantErr, text)
			}
			for _, want := range tt.want {
				if !strings.Contains(text, want) {
					t.Errorf("Expected %q in:\n%s", want, text)
				}
			}
		})
	}
}

func TestServer_LongestPath(t *testing.T) {
	s := setupServer(t)

	text, isErr := callTool(t, s.handleLongestPath, map[string]any{"board": "ring"})
	if isErr {
		t.Fatalf("Unexpected tool error: %s", text)
	}
	if !strings.Contains(text, "Longest simple path on ring (3x3): 6 moves") {
		t.Errorf("Unexpected text %q", text)
	}

	text, isErr = callTool(t, s.handleLongestPath, map[string]any{})
	if !isErr || !strings.Contains(text, "too large") {
		t.Errorf("Expected a too large error for the 8x8 default, got %q", text)
	}
}

func TestServer_Rules(t *testing.T) {
	s := setupServer(t)

	text, isErr := callTool(t, s.handleRules, nil)
	if isErr {
		t.Fatalf("Unexpected tool error: %s", text)
	}
	for _, want := range []string{"• L lava: 5", "• W water: 2", "• R rock: not landable"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected %q in:\n%s", want, text)
		}
	}
}
