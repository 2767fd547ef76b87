package eval

import (
	"github.com/rookwood/corvid/board"
	"github.com/rookwood/corvid/piece"
	"github.com/rookwood/corvid/square"
)

const (
	undevelopedMinorPenalty int32 = 10
	edgeKnightPenalty       int32 = 6
	rookOpenFileBonus       int32 = 20
	rookSemiOpenFileBonus   int32 = 10
	rookSeventhRankBonus    int32 = 20
	queenEnemyHalfBonus     int32 = 8
)

// pieceActivity scores minor-piece development, knight centralization,
// rook file/rank placement, and queen forwardness.
func pieceActivity(b *board.Board, c piece.Color) pair {
	var mg int32

	homeRank := square.Rank1
	if c == piece.Black {
		homeRank = square.Rank8
	}
	for _, t := range [2]piece.Type{piece.Knight, piece.Bishop} {
		for _, s := range b.PieceSquares(c, t) {
			if s.Rank() == homeRank {
				mg -= undevelopedMinorPenalty
			}
		}
	}
	for _, s := range b.PieceSquares(c, piece.Knight) {
		if s.File() == square.FileA || s.File() == square.FileH {
			mg -= edgeKnightPenalty
		}
	}

	seventhRank := square.Rank7
	if c == piece.Black {
		seventhRank = square.Rank2
	}
	for _, s := range b.PieceSquares(c, piece.Rook) {
		friendly, enemy := fileHasPawn(b, s.File(), c), fileHasPawn(b, s.File(), c.Opposite())
		switch {
		case !friendly && !enemy:
			mg += rookOpenFileBonus
		case !friendly && enemy:
			mg += rookSemiOpenFileBonus
		}
		if s.Rank() == seventhRank {
			mg += rookSeventhRankBonus
		}
	}

	for _, s := range b.PieceSquares(c, piece.Queen) {
		if inEnemyHalf(s, c) {
			mg += queenEnemyHalfBonus
		}
	}

	return pair{mg: mg, eg: 0}
}

func inEnemyHalf(s square.Square, c piece.Color) bool {
	if c == piece.White {
		return s.Rank() >= square.Rank5
	}
	return s.Rank() <= square.Rank4
}
