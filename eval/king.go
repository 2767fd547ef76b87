package eval

import (
	"github.com/rookwood/corvid/board"
	"github.com/rookwood/corvid/piece"
	"github.com/rookwood/corvid/square"
)

const (
	missingShieldPenalty int32 = 12
	openFilePenalty      int32 = 18
	semiOpenFilePenalty  int32 = 9
	castledBonus         int32 = 30
	uncastledPenalty     int32 = 25
	nearbyMinorPenalty   int32 = 6
	nearbyMajorPenalty   int32 = 10
)

// kingSafety is midgame-weighted: the returned pair always has eg==0,
// since the blended score already tapers it out as material thins.
func kingSafety(b *board.Board, c piece.Color) pair {
	kings := b.PieceSquares(c, piece.King)
	if len(kings) == 0 {
		return pair{}
	}
	kingSq := kings[0]

	var mg int32
	mg += pawnShieldScore(b, kingSq, c)
	mg += openFileScore(b, kingSq, c)
	mg += castlingScore(b, kingSq, c)
	mg += nearbyAttackerScore(b, kingSq, c)

	return pair{mg: mg, eg: 0}
}

func pawnShieldScore(b *board.Board, kingSq square.Square, c piece.Color) int32 {
	var score int32
	dir := square.Square(1)
	if c == piece.Black {
		dir = -1
	}
	for df := -1; df <= 1; df++ {
		f := int(kingSq.File()) + df
		if f < 0 || f > 7 {
			continue
		}
		found := false
		for step := square.Square(1); step <= 2; step++ {
			r := kingSq.Rank() + dir*step
			if r < square.Rank1 || r > square.Rank8 {
				continue
			}
			s := square.New(square.Square(f), r)
			if b.PieceAt(s) == piece.New(piece.Pawn, c) {
				found = true
				break
			}
		}
		if !found {
			score -= missingShieldPenalty
		}
	}
	return score
}

func openFileScore(b *board.Board, kingSq square.Square, c piece.Color) int32 {
	var score int32
	friendly, enemy := fileHasPawn(b, kingSq.File(), c), fileHasPawn(b, kingSq.File(), c.Opposite())
	switch {
	case !friendly && !enemy:
		score -= openFilePenalty
	case !friendly && enemy:
		score -= semiOpenFilePenalty
	}
	return score
}

func fileHasPawn(b *board.Board, f square.Square, c piece.Color) bool {
	for _, s := range b.PieceSquares(c, piece.Pawn) {
		if s.File() == f {
			return true
		}
	}
	return false
}

func castlingScore(b *board.Board, kingSq square.Square, c piece.Color) int32 {
	homeRank := square.Rank1
	if c == piece.Black {
		homeRank = square.Rank8
	}
	castledFiles := map[square.Square]bool{square.FileC: true, square.FileG: true}
	if kingSq.Rank() == homeRank && castledFiles[kingSq.File()] {
		return castledBonus
	}
	if kingSq.Rank() == homeRank && kingSq.File() == square.FileE && b.FullMoveNumber() > 10 {
		return -uncastledPenalty
	}
	return 0
}

func nearbyAttackerScore(b *board.Board, kingSq square.Square, c piece.Color) int32 {
	them := c.Opposite()
	var score int32
	for _, t := range [2]piece.Type{piece.Knight, piece.Bishop} {
		for _, s := range b.PieceSquares(them, t) {
			if chebyshev(s, kingSq) <= 2 {
				score -= nearbyMinorPenalty
			}
		}
	}
	for _, t := range [2]piece.Type{piece.Rook, piece.Queen} {
		for _, s := range b.PieceSquares(them, t) {
			if chebyshev(s, kingSq) <= 2 {
				score -= nearbyMajorPenalty
			}
		}
	}
	return score
}

func chebyshev(a, b square.Square) int {
	df := int(a.File()) - int(b.File())
	dr := int(a.Rank()) - int(b.Rank())
	if df < 0 {
		df = -df
	}
	if dr < 0 {
		dr = -dr
	}
	if df > dr {
		return df
	}
	return dr
}
