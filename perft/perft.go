// Package perft implements the recursive move-generation validator:
// count leaf positions reachable at a fixed depth, used to confirm
// the move generator agrees with known reference node counts.
package perft

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rookwood/corvid/board"
)

// Count recursively counts the leaf positions reachable from b at the
// given depth. At depth 0 it returns 1; otherwise it sums the count
// over every legal move, applying and reversing each with
// MakeMove/UndoMove rather than cloning the board.
func Count(b *board.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var sum uint64
	for _, m := range b.GenerateLegalMoves() {
		b.MakeMove(m)
		sum += Count(b, depth-1)
		b.UndoMove()
	}
	return sum
}

// Divide returns the node count contributed by each root move
// individually, keyed by the move's UCI string — the standard
// per-root-move breakdown used to localize a move-generation bug
// against a reference engine.
func Divide(b *board.Board, depth int) map[string]uint64 {
	out := make(map[string]uint64)
	if depth == 0 {
		return out
	}
	for _, m := range b.GenerateLegalMoves() {
		b.MakeMove(m)
		out[m.UCI()] = Count(b, depth-1)
		b.UndoMove()
	}
	return out
}

// Result summarizes a single Run call for reporting.
type Result struct {
	Depth    int
	Nodes    uint64
	Elapsed  time.Duration
	NodesPS  float64
}

// Run counts nodes at depth and reports timing, in the spirit of the
// classic "perft" CLI utility.
func Run(b *board.Board, depth int) Result {
	start := time.Now()
	nodes := Count(b, depth)
	elapsed := time.Since(start)
	var nps float64
	if elapsed > 0 {
		nps = float64(nodes) / elapsed.Seconds()
	}
	return Result{Depth: depth, Nodes: nodes, Elapsed: elapsed, NodesPS: nps}
}

// String renders r using thousands-separated numbers, matching the
// teacher's perft reporting format.
func (r Result) String() string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("d=%d nodes=%d rate=%.0fn/s (%.3fs elapsed)", r.Depth, r.Nodes, r.NodesPS, r.Elapsed.Seconds())
}
