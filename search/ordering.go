package search

import (
	"sort"

	"github.com/rookwood/corvid/board"
	"github.com/rookwood/corvid/piece"
)

// Move ordering scores. Buckets are spaced far enough apart that a
// move in one category always outranks every move in the next,
// regardless of the bonus added within a bucket.
const (
	scoreTTMove          = 1_000_000
	scoreCaptureBase     = 900_000
	scorePromotionBase   = 850_000
	scoreKillerPrimary   = 800_000
	scoreKillerSecondary = 795_000
)

// mvvLVAValue is indexed by piece.Type and gives the attacker/victim
// weight used by MVV-LVA ordering: higher-value victims and
// lower-value attackers sort first among captures.
var mvvLVAValue = [7]int32{
	piece.TypeNone: 0,
	piece.Pawn:     100,
	piece.Knight:   320,
	piece.Bishop:   330,
	piece.Rook:     500,
	piece.Queen:    900,
	piece.King:     20000,
}

// scoredMove pairs a candidate move with its ordering score so the
// move list can be sorted once per node rather than re-scored inside
// the search loop.
type scoredMove struct {
	move  board.Move
	score int32
}

// orderMoves scores every move in moves for a full search node and
// returns them sorted best-first. ttMove is the move stored for this
// position, if any (board.Move{} if none); killers holds this ply's
// two killer moves; history is the side-to-move's history table.
func orderMoves(moves []board.Move, ttMove board.Move, killers [2]board.Move, history *[2][64][64]int32, side piece.Color) []scoredMove {
	out := make([]scoredMove, len(moves))
	for i, m := range moves {
		out[i] = scoredMove{move: m, score: scoreMove(m, ttMove, killers, history, side)}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].score > out[j].score })
	return out
}

func scoreMove(m board.Move, ttMove board.Move, killers [2]board.Move, history *[2][64][64]int32, side piece.Color) int32 {
	if !ttMove.IsNone() && m == ttMove {
		return scoreTTMove
	}
	if m.IsCapture() {
		score := scoreCaptureBase + mvvLVAValue[m.Captured.Type()]*10 - mvvLVAValue[m.Moving.Type()]
		if m.IsPromotion() {
			score += mvvLVAValue[m.Promotion.Type()]
		}
		return score
	}
	if m.IsPromotion() {
		return scorePromotionBase + mvvLVAValue[m.Promotion.Type()]
	}
	if m == killers[0] {
		return scoreKillerPrimary
	}
	if m == killers[1] {
		return scoreKillerSecondary
	}
	return history[side][m.From][m.To]
}

// orderCaptures scores and sorts a capture-only move list for
// quiescence search: MVV-LVA plus promotion bonus, no TT/killer/
// history buckets since quiescence never consults them.
func orderCaptures(moves []board.Move) []board.Move {
	scored := make([]scoredMove, len(moves))
	for i, m := range moves {
		s := mvvLVAValue[m.Captured.Type()]*10 - mvvLVAValue[m.Moving.Type()]
		if m.IsPromotion() {
			s += mvvLVAValue[m.Promotion.Type()]
		}
		scored[i] = scoredMove{move: m, score: s}
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })
	out := make([]board.Move, len(scored))
	for i, sm := range scored {
		out[i] = sm.move
	}
	return out
}

// updateKillers demotes the existing primary killer to secondary and
// installs m as the new primary, unless m is already the primary.
func updateKillers(killers *[2]board.Move, m board.Move) {
	if killers[0] == m {
		return
	}
	killers[1] = killers[0]
	killers[0] = m
}
