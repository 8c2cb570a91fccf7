package board

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	knightGlyph = "K"
	ansiRed     = "\x1b[31m"
	ansiReset   = "\x1b[0m"
)

// View is the read access a Renderer needs
type View interface {
	Size() int
	Terrain(p Position) Terrain
}

// Renderer draws a board as text, one glyph per cell
type Renderer struct {
	// Color wraps the knight in ANSI red.
	Color bool
}

// Render writes g to w, marking knight with K when it is non-nil.
func (r Renderer) Render(w io.Writer, g View, knight *Position) error {
	bw := bufio.NewWriter(w)
	cells := make([]string, g.Size())
	for row := 0; row < g.Size(); row++ {
		for col := 0; col < g.Size(); col++ {
			p := Position{Row: row, Col: col}
			if knight != nil && *knight == p {
				cells[col] = r.knight()
				continue
			}
			cells[col] = string(g.Terrain(p).Glyph())
		}
		if _, err := fmt.Fprintln(bw, strings.Join(cells, " ")); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// RenderString returns the rendering as a string.
func (r Renderer) RenderString(g View, knight *Position) string {
	var sb strings.Builder
	// strings.Builder never fails
	_ = r.Render(&sb, g, knight)
	return sb.String()
}

func (r Renderer) knight() string {
	if r.Color {
		return ansiRed + knightGlyph + ansiReset
	}
	return knightGlyph
}

// Layout returns the board as rows of glyphs without separators, the form
// stored in board config files.
func (g *Grid) Layout() []string {
	rows := make([]string, g.Size())
	var sb strings.Builder
	for row := 0; row < g.Size(); row++ {
		sb.Reset()
		for col := 0; col < g.Size(); col++ {
			sb.WriteRune(g.Terrain(Position{Row: row, Col: col}).Glyph())
		}
		rows[row] = sb.String()
	}
	return rows
}
