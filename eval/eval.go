// Package eval implements the static position evaluator: tapered
// material and piece-square scoring, pawn structure, king safety, and
// piece activity, combined into a single centipawn score from the
// side-to-move's perspective.
package eval

import (
	"github.com/rookwood/corvid/board"
	"github.com/rookwood/corvid/piece"
)

// pair is a (midgame, endgame) score pair, blended by game phase.
type pair struct {
	mg, eg int32
}

func (p pair) add(o pair) pair { return pair{p.mg + o.mg, p.eg + o.eg} }
func (p pair) sub(o pair) pair { return pair{p.mg - o.mg, p.eg - o.eg} }
func (p pair) neg() pair       { return pair{-p.mg, -p.eg} }

// MaxPhase is the phase value of a position with full non-pawn,
// non-king material on the board.
const MaxPhase = 24

var phaseWeight = [7]int32{
	piece.TypeNone: 0,
	piece.Pawn:     0,
	piece.Knight:   1,
	piece.Bishop:   1,
	piece.Rook:     2,
	piece.Queen:    4,
	piece.King:     0,
}

// materialValue is each piece type's base centipawn value, equal in
// mg/eg (the tapered difference lives entirely in the piece-square
// tables).
var materialValue = [7]int32{
	piece.Pawn:   100,
	piece.Knight: 320,
	piece.Bishop: 330,
	piece.Rook:   500,
	piece.Queen:  900,
}

// Evaluate returns a signed centipawn score from the perspective of
// the side to move: positive means the side to move stands better.
func Evaluate(b *board.Board) int32 {
	score := evalSide(b, piece.White).sub(evalSide(b, piece.Black))
	phase := gamePhase(b)
	blended := (score.mg*phase + score.eg*(MaxPhase-phase)) / MaxPhase
	if b.SideToMove() == piece.Black {
		return -blended
	}
	return blended
}

func gamePhase(b *board.Board) int32 {
	var phase int32
	for _, c := range [2]piece.Color{piece.White, piece.Black} {
		for t := piece.Knight; t <= piece.Queen; t++ {
			phase += phaseWeight[t] * int32(b.PieceCount(c, t))
		}
	}
	if phase > MaxPhase {
		phase = MaxPhase
	}
	if phase < 0 {
		phase = 0
	}
	return phase
}

func evalSide(b *board.Board, c piece.Color) pair {
	var total pair
	total = total.add(materialAndPST(b, c))
	total = total.add(pawnStructure(b, c))
	total = total.add(kingSafety(b, c))
	total = total.add(pieceActivity(b, c))
	return total
}

func materialAndPST(b *board.Board, c piece.Color) pair {
	var total pair
	for t := piece.Pawn; t <= piece.King; t++ {
		for _, s := range b.PieceSquares(c, t) {
			total.mg += materialValue[t]
			total.eg += materialValue[t]
			mgTable, egTable := pstTables(t)
			idx := pstIndex(s, c)
			total.mg += mgTable[idx]
			total.eg += egTable[idx]
		}
	}
	return total
}
