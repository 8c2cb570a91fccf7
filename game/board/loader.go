package board

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// DefaultBoardFile is the file name looked up in the home directory when no board is given.
const DefaultBoardFile = "knightboard.txt"

// DefaultBoardPath returns $HOME/knightboard.txt.
func DefaultBoardPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, DefaultBoardFile), nil
}

// Parse reads a text layout: one row per line, one terrain glyph per
// non-space character, so ". W ." and ".W." describe the same row. Cells the
// text leaves out stay Clear. A size of zero or less infers the dimension
// from the text.
func Parse(r io.Reader, size int) (*Grid, error) {
	var rows [][]rune
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		rows = append(rows, tokens(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}

	if size <= 0 {
		size = inferSize(rows)
	}
	if size < MinBoardSize || size > MaxBoardSize {
		return nil, fmt.Errorf("%w: %d not in [%d,%d]", ErrBadSize, size, MinBoardSize, MaxBoardSize)
	}

	cells := make(map[Position]Terrain)
	for row, line := range rows {
		if len(line) == 0 {
			continue
		}
		if row >= size {
			return nil, fmt.Errorf("%w: row %d on a %dx%d board", ErrTooManyRows, row+1, size, size)
		}
		if len(line) > size {
			return nil, fmt.Errorf("%w: row %d has %d cells, board is %d wide", ErrTooManyColumns, row+1, len(line), size)
		}
		for col, glyph := range line {
			t, err := TerrainFromGlyph(glyph)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", row+1, col+1, err)
			}
			if t != Clear {
				cells[Position{Row: row, Col: col}] = t
			}
		}
	}

	return NewGrid(size, cells)
}

// ParseString is Parse over an in-memory layout.
func ParseString(layout string, size int) (*Grid, error) {
	return Parse(strings.NewReader(layout), size)
}

// LoadFile parses the layout stored at path.
func LoadFile(path string, size int) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open board file: %w", err)
	}
	defer f.Close()

	g, err := Parse(f, size)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return g, nil
}

func tokens(line string) []rune {
	var out []rune
	for _, r := range line {
		if !unicode.IsSpace(r) {
			out = append(out, r)
		}
	}
	return out
}

// inferSize is the larger of the last non-empty row and the widest row.
func inferSize(rows [][]rune) int {
	size := 0
	for i, line := range rows {
		if len(line) == 0 {
			continue
		}
		size = max(size, i+1, len(line))
	}
	return size
}
