package pathfind

import (
	"fmt"
	"io"

	"github.com/wricardo/knightboard/game/board"
)

// StepCheck is the verdict on one move of a sequence. Index counts moves
// from 1; the move from steps[0] to steps[1] is move 1.
type StepCheck struct {
	Index int            `json:"index"`
	From  board.Position `json:"from"`
	To    board.Position `json:"to"`
	Valid bool           `json:"valid"`
}

// SequenceReport holds every step verdict and their conjunction
type SequenceReport struct {
	Steps []StepCheck `json:"steps"`
	Valid bool        `json:"valid"`
}

// SequenceOption configures CheckSequence
type SequenceOption func(*sequenceConfig)

type sequenceConfig struct {
	trace    io.Writer
	renderer board.Renderer
}

// WithTrace prints the board with the knight on it before every step, then
// the step verdict, and finally the board at the last position.
func WithTrace(w io.Writer, r board.Renderer) SequenceOption {
	return func(c *sequenceConfig) {
		c.trace = w
		c.renderer = r
	}
}

// CheckSequence judges every consecutive pair of steps. All pairs are checked
// even after an invalid one. Fewer than two steps is never valid.
func CheckSequence(g Board, steps []board.Position, opts ...SequenceOption) SequenceReport {
	var cfg sequenceConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	report := SequenceReport{Valid: len(steps) >= 2}
	for i := 1; i < len(steps); i++ {
		from, to := steps[i-1], steps[i]
		ok := g.IsLegalStep(from, to)
		report.Steps = append(report.Steps, StepCheck{Index: i, From: from, To: to, Valid: ok})
		report.Valid = report.Valid && ok

		if cfg.trace != nil {
			traceBoard(cfg, g, from)
			fmt.Fprintf(cfg.trace, "Step %d: %s -> %s %s\n", i, from, to, verdict(ok))
		}
	}

	if cfg.trace != nil && len(steps) > 0 {
		traceBoard(cfg, g, steps[len(steps)-1])
	}
	return report
}

// IsValidSequence reports whether every move of steps is legal.
func IsValidSequence(g Board, steps []board.Position) bool {
	return CheckSequence(g, steps).Valid
}

func traceBoard(cfg sequenceConfig, g Board, knight board.Position) {
	var at *board.Position
	if g.InBounds(knight) {
		at = &knight
	}
	if err := cfg.renderer.Render(cfg.trace, g, at); err != nil {
		return
	}
	fmt.Fprintln(cfg.trace)
}

func verdict(ok bool) string {
	if ok {
		return "[valid]"
	}
	return "[not valid]"
}
