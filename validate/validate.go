// Command validate provides a small CLI that validates the board files in the
// ../boards directory. It checks:
//   - YAML structure and required fields (name, size, layout)
//   - Layout glyphs, row and column counts against the declared size
//   - Teleport cells coming in exactly one pair
//   - Presence of at least one landable cell
//   - Connectivity: landable cells a knight cannot reach are reported as warnings
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wricardo/knightboard/game/board"
	"github.com/wricardo/knightboard/game/pathfind"
)

// ValidationResult captures the outcome of validating a single file.
type ValidationResult struct {
	File     string
	Valid    bool
	Errors   []string
	Warnings []string
	Info     []string
}

// boardPatterns are the file globs checked in the board directory
var boardPatterns = []string{"*.yaml", "*.yml", "*.txt"}

func (r *ValidationResult) fail(format string, args ...interface{}) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// validateBoard loads and validates a single board file.
func validateBoard(filePath string) ValidationResult {
	result := ValidationResult{
		File:  filepath.Base(filePath),
		Valid: true,
	}

	name, g, ok := loadGrid(filePath, &result)
	if !ok {
		return result
	}

	landable := 0
	var start *board.Position
	for _, p := range g.Positions() {
		if g.Terrain(p).Landable() {
			landable++
			if start == nil {
				first := p
				start = &first
			}
		}
	}
	if start == nil {
		result.fail("Board has no landable cell")
		return result
	}

	result.Info = append(result.Info, fmt.Sprintf("✓ Name: %s", name))
	result.Info = append(result.Info, fmt.Sprintf("✓ Grid: %dx%d", g.Size(), g.Size()))
	if pp, ok := g.Portals(); ok {
		result.Info = append(result.Info, fmt.Sprintf("✓ Portals: %s <-> %s", pp.A, pp.B))
	}

	// Connectivity validation - every landable cell should be reachable from the first one
	unreachable := pathfind.Unreachable(g, *start)
	if len(unreachable) > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Connectivity: %d/%d landable cells unreachable from %s", len(unreachable), landable, *start))
		for i, p := range unreachable {
			if i == 5 {
				result.Warnings = append(result.Warnings, fmt.Sprintf("... and %d more", len(unreachable)-5))
				break
			}
			result.Warnings = append(result.Warnings, fmt.Sprintf("Unreachable: %s", p))
		}
	} else {
		result.Info = append(result.Info, fmt.Sprintf("✓ Connectivity: all %d landable cells reachable", landable))
	}

	return result
}

// loadGrid parses the file as a YAML board config or a plain text layout,
// recording every problem on result.
func loadGrid(filePath string, result *ValidationResult) (string, *board.Grid, bool) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		result.fail("Failed to read file: %v", err)
		return "", nil, false
	}

	ext := strings.ToLower(filepath.Ext(filePath))
	if ext != ".yaml" && ext != ".yml" {
		g, err := board.ParseString(string(data), 0)
		if err != nil {
			result.fail("Invalid layout: %v", err)
			return "", nil, false
		}
		return strings.TrimSuffix(result.File, filepath.Ext(result.File)), g, true
	}

	cfg, err := board.ParseBoardConfig(data)
	if err != nil {
		result.fail("Invalid board config: %v", err)
		return "", nil, false
	}

	g, err := cfg.Grid()
	if err != nil {
		result.fail("Invalid layout: %v", err)
		return "", nil, false
	}
	return cfg.Name, g, true
}

// findBoards lists the board files of dir in pattern order.
func findBoards(dir string) ([]string, error) {
	var files []string
	for _, pattern := range boardPatterns {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		files = append(files, matches...)
	}
	return files, nil
}

// main scans ../boards (or the directory given as argument) and validates
// each board file, printing a concise report and exiting with non-zero status
// if any are invalid.
func main() {
	boardDir := "../boards"
	if len(os.Args) > 1 {
		boardDir = os.Args[1]
	}

	files, err := findBoards(boardDir)
	if err != nil {
		fmt.Printf("Error finding board files: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Printf("No board files found in %s\n", boardDir)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateBoard(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Info {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				fmt.Println("  ❌ " + err)
			}
		}
		for _, w := range result.Warnings {
			fmt.Println("  ⚠️  " + w)
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All boards are valid!")
	} else {
		fmt.Println("❌ Some boards have errors")
		os.Exit(1)
	}
}
