package eval

import (
	"github.com/rookwood/corvid/board"
	"github.com/rookwood/corvid/piece"
	"github.com/rookwood/corvid/square"
)

const (
	doubledPawnPenalty  int32 = 10
	isolatedPawnPenalty int32 = 15
	backwardPawnPenalty int32 = 8
)

// passedPawnBonus scales with the pawn's relative rank (index 1 = own
// second rank, index 6 = one step from promotion; index 0 is never
// reached since no pawn stands on its own back rank).
var passedPawnBonusMG = [7]int32{0, 5, 10, 20, 35, 60, 100}
var passedPawnBonusEG = [7]int32{0, 10, 20, 40, 70, 120, 200}

// pawnStructure scores doubled, isolated, backward, and passed pawns
// for color c.
func pawnStructure(b *board.Board, c piece.Color) pair {
	pawns := b.PieceSquares(c, piece.Pawn)
	enemyPawns := b.PieceSquares(c.Opposite(), piece.Pawn)

	var fileCount [8]int
	for _, s := range pawns {
		fileCount[s.File()]++
	}

	var total pair
	for _, s := range pawns {
		f := s.File()
		if fileCount[f] > 1 {
			total.mg -= doubledPawnPenalty
			total.eg -= doubledPawnPenalty
		}
		if !hasFriendlyPawnOnAdjacentFile(fileCount, f) {
			total.mg -= isolatedPawnPenalty
			total.eg -= isolatedPawnPenalty
		} else if isBackward(b, pawns, s, c) {
			total.mg -= backwardPawnPenalty
			total.eg -= backwardPawnPenalty
		}
		if isPassed(s, c, enemyPawns) {
			rankIdx := relativeRank(s, c)
			total.mg += passedPawnBonusMG[rankIdx]
			total.eg += passedPawnBonusEG[rankIdx]
		}
	}
	return total
}

func hasFriendlyPawnOnAdjacentFile(fileCount [8]int, f square.Square) bool {
	if f > square.FileA && fileCount[f-1] > 0 {
		return true
	}
	if f < square.FileH && fileCount[f+1] > 0 {
		return true
	}
	return false
}

// isBackward reports whether the pawn on s has no friendly pawn behind
// it on an adjacent file, and either its advance square is controlled
// by an enemy pawn or an opposing pawn stands ahead of it on the same
// file.
func isBackward(b *board.Board, friendly []square.Square, s square.Square, c piece.Color) bool {
	dir := square.Square(1)
	if c == piece.Black {
		dir = -1
	}
	for _, fr := range friendly {
		if fr == s {
			continue
		}
		if (fr.File() == s.File()-1 || fr.File() == s.File()+1) && behindOrEqual(fr, s, c) {
			return false
		}
	}
	advance := square.New(s.File(), s.Rank()+dir)
	if advance.Rank() < square.Rank1 || advance.Rank() > square.Rank8 {
		return false
	}
	for _, e := range b.PieceSquares(c.Opposite(), piece.Pawn) {
		if e.File() == s.File() && !behindOrEqual(e, s, c) {
			return true
		}
		if (e.File() == s.File()-1 || e.File() == s.File()+1) && e.Rank() == advance.Rank()+dir {
			return true
		}
	}
	return false
}

func behindOrEqual(fr, s square.Square, c piece.Color) bool {
	if c == piece.White {
		return fr.Rank() <= s.Rank()
	}
	return fr.Rank() >= s.Rank()
}

// isPassed reports whether no enemy pawn sits on s's file or an
// adjacent file at or ahead of s (from c's perspective).
func isPassed(s square.Square, c piece.Color, enemyPawns []square.Square) bool {
	for _, e := range enemyPawns {
		if e.File() < s.File()-1 || e.File() > s.File()+1 {
			continue
		}
		if c == piece.White && e.Rank() > s.Rank() {
			return false
		}
		if c == piece.Black && e.Rank() < s.Rank() {
			return false
		}
	}
	return true
}

// IsPassedPawn reports whether the pawn of color c standing on s has
// no enemy pawn able to block or capture it on its way to promotion —
// used by the search package to decide on passed-pawn-push extensions.
func IsPassedPawn(b *board.Board, s square.Square, c piece.Color) bool {
	return isPassed(s, c, b.PieceSquares(c.Opposite(), piece.Pawn))
}

// relativeRank returns the pawn's distance from its own back rank,
// 1..6, used to index the passed-pawn bonus tables: a pawn on its
// second rank (the only rank it can start a game on) returns 1, and a
// pawn one step from promotion returns 6.
func relativeRank(s square.Square, c piece.Color) int {
	if c == piece.White {
		return int(s.Rank())
	}
	return int(square.Rank8) - int(s.Rank())
}
