package board

import (
	"math/rand"

	"github.com/rookwood/corvid/piece"
	"github.com/rookwood/corvid/square"
)

var (
	zobristPiece      [2][pieceTypeCount][square.Total]uint64
	zobristCastle     [16]uint64
	zobristEPFile     [8]uint64
	zobristSideToMove uint64
)

func init() {
	r := rand.New(rand.NewSource(7))
	for c := piece.White; c <= piece.Black; c++ {
		for t := piece.Pawn; t <= piece.King; t++ {
			for s := square.Square(0); s < square.Total; s++ {
				zobristPiece[c][t][s] = r.Uint64()
			}
		}
	}
	for i := range zobristCastle {
		zobristCastle[i] = r.Uint64()
	}
	for f := range zobristEPFile {
		zobristEPFile[f] = r.Uint64()
	}
	zobristSideToMove = r.Uint64()
}

func zobristPieceKey(p piece.Piece, s square.Square) uint64 {
	return zobristPiece[p.Color()][p.Type()][s]
}

// computeHash derives the Zobrist key for b's current cells and state
// from scratch. It is used by FEN loading; incremental updates during
// make/unmake keep the key current without calling this again.
func (b *Board) computeHash() uint64 {
	var h uint64
	for s := square.Square(0); s < square.Total; s++ {
		if p := b.cells[s]; p != piece.None {
			h ^= zobristPieceKey(p, s)
		}
	}
	h ^= zobristCastle[b.castleRights]
	if b.epSquare != square.NoSquare {
		h ^= zobristEPFile[b.epSquare.File()]
	}
	if b.turn == piece.Black {
		h ^= zobristSideToMove
	}
	return h
}
