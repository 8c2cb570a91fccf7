// Package board models the knight's terrain grid and its movement rules.
//
// A Grid is an N×N board of Terrain cells built once, either from a map of
// non-clear cells (NewGrid) or from a text layout (Parse, LoadFile), and never
// mutated afterwards. Layouts use one glyph per cell:
//
//	.  clear     cost 1
//	W  water     cost 2
//	R  rock      not landable
//	B  barrier   not landable, blocks moves that pass over it
//	T  teleport  cost 1, exactly zero or two per board
//	L  lava      cost 5
//
// Movement:
//
// IsLegalStep decides a single move. LegalMoves lists the weighted moves out
// of a cell; on a teleport cell it lists the moves out of the partner portal
// instead, one level deep. The enumeration order is fixed, which makes every
// search built on top of it deterministic.
//
// Usage:
//
//	g, err := board.LoadFile("knightboard.txt", 32)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, e := range g.LegalMoves(board.Position{Row: 0, Col: 0}) {
//		fmt.Println(e.To, e.Weight)
//	}
//
// Board catalogs store a BoardConfig per YAML file, with the layout as a
// literal block.
package board
