// Package search implements iterative-deepening alpha-beta search
// over a board.Board: transposition table, null-move pruning, late
// move reductions, selective extensions, quiescence, and the move
// ordering heuristics (MVV-LVA, killers, history) that make alpha-beta
// converge quickly in practice.
package search

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rookwood/corvid/board"
	"github.com/rookwood/corvid/eval"
)

// MateValue is the score assigned to an immediate checkmate. Scores
// at or beyond mateScoreThreshold (within 1024 of it) encode a forced
// mate at a known distance rather than a material/positional
// evaluation.
const MateValue int32 = 30_000

// ScoreInfinite is the sentinel alpha-beta window bound: comfortably
// outside any score FindBestMove can otherwise return.
const ScoreInfinite int32 = 32_000

// maxPly bounds killer-table and repetition-history storage; a search
// this deep (combined with quiescence) exceeds anything a real time
// budget reaches.
const maxPly = 128

// nullMoveReduction is subtracted (plus one) from depth when searching
// the reduced-depth null-move verification search.
const nullMoveReduction = 2

// lmrMinDepth and lmrMinMoveIndex gate late-move reduction: only
// quiet moves at depth >= lmrMinDepth and ordered at or beyond
// lmrMinMoveIndex within their node are searched at reduced depth.
const (
	lmrMinDepth     = 3
	lmrMinMoveIndex = 4
)

// SearchConfig controls one FindBestMove call.
type SearchConfig struct {
	MaxDepth        uint8
	TimeLimitMs     int64
	UseAbsoluteTime bool
}

// Result is what FindBestMove reports once the search stops, either
// by exhausting MaxDepth or by running out of time.
type Result struct {
	Move  board.Move
	Score int32
	Nodes uint64
	Depth uint8
	PV    []board.Move
}

// Engine owns one transposition table plus the killer/history tables
// built up over the lifetime of a single FindBestMove call; all three
// are reset on entry, matching the "TT lives for one search" lifetime
// rule.
type Engine struct {
	tt *transpositionTable

	killers [maxPly][2]board.Move
	history [2][64][64]int32

	// history of Zobrist keys visited along the current search path,
	// indexed by ply from the search root, used to detect repetition
	// without needing the caller's game history.
	pathHashes [maxPly]uint64

	clock clock
	nodes uint64

	// Logger receives one line per completed iterative-deepening
	// depth, in UCI "info" style. Nil disables logging.
	Logger func(string)
}

// NewEngine allocates an Engine with a transposition table sized
// 2^hashSizePow entries.
func NewEngine(hashSizePow uint8) *Engine {
	return &Engine{
		tt: newTranspositionTable(hashSizePow),
	}
}

// FindBestMove runs iterative deepening from the current position of
// b up to cfg.MaxDepth or until the time budget derived from
// cfg.TimeLimitMs/cfg.UseAbsoluteTime expires, returning the best move
// found by the last fully completed iteration.
func (e *Engine) FindBestMove(b *board.Board, cfg SearchConfig) Result {
	e.tt.clear()
	e.killers = [maxPly][2]board.Move{}
	e.history = [2][64][64]int32{}
	e.nodes = 0

	maxDepth := cfg.MaxDepth
	if maxDepth == 0 {
		maxDepth = 6
	}
	budget := timeBudget(cfg.TimeLimitMs, cfg.UseAbsoluteTime)
	e.clock.start(budget, maxDepth)
	e.pathHashes[0] = b.ZobristKey()

	start := time.Now()
	var best Result
	var prevBest board.Move

	for depth := uint8(1); !e.clock.doneByDepth(depth); depth++ {
		var pv pvLine
		score, stopped := e.searchRoot(b, depth, prevBest, &pv)
		if stopped || len(pv.moves) == 0 {
			break
		}
		best = Result{
			Move:  pv.moves[0],
			Score: score,
			Nodes: e.nodes,
			Depth: depth,
			PV:    append([]board.Move(nil), pv.moves...),
		}
		prevBest = pv.moves[0]
		e.logInfo(best, time.Since(start))
		if abs(score) >= MateValue-int32(maxPly) {
			break
		}
	}
	return best
}

// searchRoot runs one iterative-deepening iteration: it orders the
// root moves (previous iteration's best move first) and alpha-beta
// searches each at depth-1 with a full window, tracking the best line
// into pv. stopped reports whether the clock expired mid-iteration, in
// which case the caller must discard this iteration's result.
func (e *Engine) searchRoot(b *board.Board, depth uint8, prevBest board.Move, pv *pvLine) (int32, bool) {
	moves := b.GenerateLegalMoves()
	if len(moves) == 0 {
		if b.IsInCheck(b.SideToMove()) {
			return -MateValue, false
		}
		return 0, false
	}

	ordered := orderMoves(moves, prevBest, [2]board.Move{}, &e.history, b.SideToMove())
	alpha, beta := -ScoreInfinite, ScoreInfinite
	bestScore := -ScoreInfinite
	var bestMove board.Move
	var bestChild pvLine

	for _, sm := range ordered {
		m := sm.move
		b.MakeMove(m)
		e.pathHashes[1] = b.ZobristKey()
		score, childPV, stopped := e.negamax(b, depth-1, 1, -beta, -alpha, m)
		score = -score
		b.UndoMove()
		if stopped {
			return 0, true
		}
		if score > bestScore {
			bestScore = score
			bestMove = m
			bestChild = childPV
		}
		if score > alpha {
			alpha = score
		}
	}
	pv.set(bestMove, bestChild)
	return bestScore, false
}

// logInfo emits one iterative-deepening progress line, matching the
// teacher's "info depth D score S nodes N nps V pv ..." format and
// thousands-separator number rendering.
func (e *Engine) logInfo(r Result, elapsed time.Duration) {
	if e.Logger == nil {
		return
	}
	nps := float64(0)
	if elapsed > 0 {
		nps = float64(r.Nodes) / elapsed.Seconds()
	}
	p := message.NewPrinter(language.English)
	pvStr := ""
	for i, m := range r.PV {
		if i > 0 {
			pvStr += " "
		}
		pvStr += m.UCI()
	}
	e.Logger(p.Sprintf("info depth %d score %s nodes %d nps %.0f pv %s",
		r.Depth, formatScoreUCI(r.Score), r.Nodes, nps, pvStr))
}

// formatScoreUCI renders a score as a UCI centipawn or mate score.
func formatScoreUCI(s int32) string {
	switch {
	case s >= MateValue-int32(maxPly):
		return fmt.Sprintf("mate %d", (MateValue-s+1)/2)
	case s <= -MateValue+int32(maxPly):
		return fmt.Sprintf("mate %d", -(MateValue+s+1)/2)
	default:
		return fmt.Sprintf("cp %d", s)
	}
}

// evaluate scores b from the side-to-move's perspective.
func evaluate(b *board.Board) int32 {
	return eval.Evaluate(b)
}
