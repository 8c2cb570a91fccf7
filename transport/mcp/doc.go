// Package mcp provides the Model Context Protocol driver for knightboard.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Tool definitions for every board query
//   - Text formatting of query results
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - list_boards: List catalog boards with size, portals and terrain counts
//   - show_board: Draw a board, optionally with the knight on it
//   - legal_moves: Weighted moves out of a cell
//   - validate_sequence: Judge every step of a move sequence, with optional trace
//   - find_path: Path between two cells by any, hops or cost
//   - longest_path: Longest simple path length on a small board
//   - rules: Movement and terrain rules
//
// Positions are passed as "row,col" strings; [row, col] arrays and
// {"row": r, "col": c} objects are accepted too. Every board tool takes an
// optional board id and falls back to the catalog default.
//
// Usage:
//
//	srv := mcp.NewServer(queryService)
//	if err := server.ServeStdio(srv.GetMCPServer()); err != nil {
//		log.Fatal(err)
//	}
//
// Query failures (unknown board, out of bounds, bad position) are returned as
// tool errors, never as protocol errors.
package mcp
