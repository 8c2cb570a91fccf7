// Package service provides the query layer for knightboard.
//
// The service package implements:
//   - Board resolution by id, with a catalog default
//   - Legal move listing and sequence validation
//   - Path searches by depth, hop count and terrain cost
//   - The longest simple path query, capped by board size
//
// Core Interfaces:
//
// QueryService is the interface every driver (CLI, MCP) talks to.
// BoardCatalog resolves board ids to loaded boards; config.Manager is the
// file backed implementation.
//
// Architecture:
//
// The service layer sits between the drivers and the board and pathfind
// packages. Boards are immutable once loaded, so queries share them without
// locking. Every result carries a query id used in the log lines.
//
// Usage:
//
//	catalog, err := config.NewManager("boards")
//	if err != nil {
//		log.Fatal(err)
//	}
//	svc := service.NewQueryService(catalog)
//
//	res, err := svc.FindShortestPathByCost(ctx, "cruise",
//		board.Position{Row: 0, Col: 0}, board.Position{Row: 31, Col: 31})
//
// Unreachable targets are reported with Found false, not as an error.
package service
