package mcp

import (
	"fmt"
	"strings"

	"github.com/wricardo/knightboard/game/board"
	"github.com/wricardo/knightboard/game/pathfind"
	"github.com/wricardo/knightboard/game/service"
)

func formatBoardList(infos []*service.BoardInfo) string {
	if len(infos) == 0 {
		return "No boards available"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Available Boards (%d):\n\n", len(infos))
	for _, info := range infos {
		fmt.Fprintf(&b, "• %s", info.BoardID)
		if info.Name != "" && info.Name != info.BoardID {
			fmt.Fprintf(&b, " (%s)", info.Name)
		}
		b.WriteString("\n")
		if info.Description != "" {
			fmt.Fprintf(&b, "  %s\n", info.Description)
		}
		fmt.Fprintf(&b, "  Grid: %dx%d", info.Size, info.Size)
		if info.Portals != nil {
			fmt.Fprintf(&b, ", Portals: %s <-> %s", info.Portals.A, info.Portals.B)
		}
		b.WriteString("\n")
		if terrain := formatTerrainCounts(info.Terrain); terrain != "" {
			fmt.Fprintf(&b, "  Terrain: %s\n", terrain)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// formatTerrainCounts lists the non-clear terrain counts in table order
func formatTerrainCounts(counts map[string]int) string {
	var parts []string
	for _, t := range board.Terrains() {
		if t == board.Clear {
			continue
		}
		if n := counts[t.String()]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", t, n))
		}
	}
	return strings.Join(parts, ", ")
}

func formatBoard(info *service.BoardInfo, drawing string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Board: %s", info.BoardID)
	if info.Name != "" && info.Name != info.BoardID {
		fmt.Fprintf(&b, " (%s)", info.Name)
	}
	fmt.Fprintf(&b, "\nGrid: %dx%d\n", info.Size, info.Size)
	if info.Portals != nil {
		fmt.Fprintf(&b, "Portals: %s <-> %s\n", info.Portals.A, info.Portals.B)
	}
	if info.Reachable != nil {
		fmt.Fprintf(&b, "Reachable from %s: %d of %d landable cells\n",
			info.Reachable.From, info.Reachable.Reachable, info.Reachable.Landable)
	}
	for _, w := range info.Warnings {
		fmt.Fprintf(&b, "Warning: %s\n", w)
	}
	b.WriteString("\n")
	b.WriteString(drawing)
	b.WriteString("\nLegend: . clear, W water (2), L lava (5), T teleport, R rock, B barrier, K knight\n")
	return b.String()
}

func formatMoves(res *service.MovesResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Moves from %s [%s] on %s:", res.From, res.Terrain, res.BoardID)
	if res.Redirected {
		b.WriteString(" (teleport, moves taken from the partner portal)")
	}
	b.WriteString("\n")
	if len(res.Moves) == 0 {
		b.WriteString("(no legal moves)\n")
		return b.String()
	}
	for _, e := range res.Moves {
		fmt.Fprintf(&b, "- %s cost %d\n", e.To, e.Weight)
	}
	return b.String()
}

func formatSequence(res *service.SequenceResult) string {
	var b strings.Builder
	if res.Trace != "" {
		b.WriteString(res.Trace)
		b.WriteString("\n")
	}
	if res.Valid {
		fmt.Fprintf(&b, "Sequence is VALID (%d moves)\n", len(res.Steps))
	} else {
		fmt.Fprintf(&b, "Sequence is NOT VALID\n")
	}
	if len(res.Steps) == 0 {
		b.WriteString("A sequence needs at least two positions\n")
	}
	for _, step := range res.Steps {
		status := "✓"
		if !step.Valid {
			status = "✗"
		}
		fmt.Fprintf(&b, "%d. %s -> %s %s\n", step.Index, step.From, step.To, status)
	}
	return b.String()
}

func formatPath(res *service.PathResult) string {
	if !res.Found {
		return fmt.Sprintf("No path from %s to %s on %s (%s)\n", res.Begin, res.End, res.BoardID, res.Algorithm)
	}
	return fmt.Sprintf("Path (%s) on %s:\n%s\nHops: %d, Cost: %d\n",
		res.Algorithm, res.BoardID, pathfind.Path(res.Path), res.Hops, res.Cost)
}

func formatLongest(res *service.LongestPathResult) string {
	return fmt.Sprintf("Longest simple path on %s (%dx%d): %d moves\n", res.BoardID, res.Size, res.Size, res.Length)
}

func rulesText() string {
	var b strings.Builder
	b.WriteString(`Knightboard Rules

MOVEMENT:
• The knight moves two cells along one axis and one along the other
• It may not land on rock (R) or barrier (B) cells
• A move may not pass over a barrier on its two-cell leg
• A move between the two teleport cells is always legal, and landing on one
  continues from the other

TERRAIN COSTS:
`)
	for _, t := range board.Terrains() {
		if t.Landable() {
			fmt.Fprintf(&b, "• %c %s: %d\n", t.Glyph(), t, t.Cost())
		} else {
			fmt.Fprintf(&b, "• %c %s: not landable\n", t.Glyph(), t)
		}
	}
	return b.String()
}
