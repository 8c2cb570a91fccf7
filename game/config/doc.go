// Package config provides the board catalog for knightboard.
//
// The config package handles:
//   - Loading boards from YAML and plain text files
//   - Board validation through the board package
//   - Default board management
//   - Board discovery and listing
//
// Board Format:
//
// Boards live in a directory, one per file. The board id is the file name
// without its extension. YAML files carry a name, a description, the size and
// a literal layout block:
//
//	name: Classic
//	description: Open 8x8 board
//	size: 8
//	layout: |
//	  . . . . . . . .
//	  . . . . . . . .
//
// Plain .txt files hold only the layout; their size is inferred.
//
// Usage:
//
//	manager, err := config.NewManager("boards")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load a specific board
//	b, err := manager.LoadBoard("cruise")
//
//	// Get the default board (classic, else the first valid one, else an open 8x8)
//	fallback := manager.GetDefault()
//
//	// List available boards
//	boards, err := manager.ListBoards()
//
// Loaded boards are immutable and cached; RefreshCache drops the cache.
package config
