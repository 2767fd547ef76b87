package board

import (
	"math/bits"

	"github.com/rookwood/corvid/piece"
	"github.com/rookwood/corvid/square"
)

// bitboard is a 64-bit set of squares, one bit per square.Square index.
type bitboard uint64

func bit(s square.Square) bitboard {
	return bitboard(1) << uint(s)
}

func (bm bitboard) has(s square.Square) bool {
	return bm&bit(s) != 0
}

func (bm bitboard) lsb() square.Square {
	return square.Square(bits.TrailingZeros64(uint64(bm)))
}

func (bm bitboard) count() int {
	return bits.OnesCount64(uint64(bm))
}

// popLSB returns the lowest set square and the bitboard with it cleared.
func (bm bitboard) popLSB() (square.Square, bitboard) {
	s := bm.lsb()
	return s, bm &^ bit(s)
}

func reverse(bm bitboard) bitboard {
	return bitboard(bits.Reverse64(uint64(bm)))
}

var (
	maskFile [8]bitboard
	maskRank [8]bitboard

	maskDiag     [square.Total]bitboard // a1-h8 direction diagonals
	maskAntiDiag [square.Total]bitboard // a8-h1 direction diagonals

	knightAttacks [square.Total]bitboard
	kingAttacks   [square.Total]bitboard
	pawnAttacks   [2][square.Total]bitboard // [color][square] squares attacked by a pawn of that color standing on square

	castlePathEmpty  [4]bitboard     // squares that must be empty for O-O/O-O-O, indexed by castleRight bit position
	castlePathSafe   [4][]square.Square // squares (king origin + transit) that must be unattacked
	castleRookFrom   [4]square.Square
	castleRookTo     [4]square.Square
	castleKingFrom   [4]square.Square
	castleKingTo     [4]square.Square
)

func init() {
	for f := square.FileA; f <= square.FileH; f++ {
		var m bitboard
		for r := square.Rank1; r <= square.Rank8; r++ {
			m |= bit(square.New(f, r))
		}
		maskFile[f] = m
	}
	for r := square.Rank1; r <= square.Rank8; r++ {
		var m bitboard
		for f := square.FileA; f <= square.FileH; f++ {
			m |= bit(square.New(f, r))
		}
		maskRank[r] = m
	}

	for s := square.Square(0); s < square.Total; s++ {
		f, r := int(s.File()), int(s.Rank())
		var diag, anti bitboard
		for df, dr := f-min(f, r), r-min(f, r); df < 8 && dr < 8; df, dr = df+1, dr+1 {
			diag |= bit(square.New(square.Square(df), square.Square(dr)))
		}
		for df, dr := f-min(f, 7-r), r+min(f, 7-r); df < 8 && dr >= 0; df, dr = df+1, dr-1 {
			anti |= bit(square.New(square.Square(df), square.Square(dr)))
		}
		maskDiag[s] = diag
		maskAntiDiag[s] = anti
	}

	for s := square.Square(0); s < square.Total; s++ {
		cell := bit(s)
		var n bitboard
		n |= shiftNoWrap(cell, 2, 1)
		n |= shiftNoWrap(cell, 2, -1)
		n |= shiftNoWrap(cell, -2, 1)
		n |= shiftNoWrap(cell, -2, -1)
		n |= shiftNoWrap(cell, 1, 2)
		n |= shiftNoWrap(cell, 1, -2)
		n |= shiftNoWrap(cell, -1, 2)
		n |= shiftNoWrap(cell, -1, -2)
		knightAttacks[s] = n

		var k bitboard
		for df := -1; df <= 1; df++ {
			for dr := -1; dr <= 1; dr++ {
				if df == 0 && dr == 0 {
					continue
				}
				k |= shiftNoWrap(cell, df, dr)
			}
		}
		kingAttacks[s] = k

		pawnAttacks[piece.White][s] = shiftNoWrap(cell, -1, 1) | shiftNoWrap(cell, 1, 1)
		pawnAttacks[piece.Black][s] = shiftNoWrap(cell, -1, -1) | shiftNoWrap(cell, 1, -1)
	}

	castlePathEmpty[idxWK] = bit(square.F1) | bit(square.G1)
	castlePathEmpty[idxWQ] = bit(square.B1) | bit(square.C1) | bit(square.D1)
	castlePathEmpty[idxBK] = bit(square.F8) | bit(square.G8)
	castlePathEmpty[idxBQ] = bit(square.B8) | bit(square.C8) | bit(square.D8)

	castlePathSafe[idxWK] = []square.Square{square.E1, square.F1, square.G1}
	castlePathSafe[idxWQ] = []square.Square{square.E1, square.D1, square.C1}
	castlePathSafe[idxBK] = []square.Square{square.E8, square.F8, square.G8}
	castlePathSafe[idxBQ] = []square.Square{square.E8, square.D8, square.C8}

	castleKingFrom[idxWK], castleKingTo[idxWK] = square.E1, square.G1
	castleKingFrom[idxWQ], castleKingTo[idxWQ] = square.E1, square.C1
	castleKingFrom[idxBK], castleKingTo[idxBK] = square.E8, square.G8
	castleKingFrom[idxBQ], castleKingTo[idxBQ] = square.E8, square.C8

	castleRookFrom[idxWK], castleRookTo[idxWK] = square.H1, square.F1
	castleRookFrom[idxWQ], castleRookTo[idxWQ] = square.A1, square.D1
	castleRookFrom[idxBK], castleRookTo[idxBK] = square.H8, square.F8
	castleRookFrom[idxBQ], castleRookTo[idxBQ] = square.A8, square.D8
}

// shiftNoWrap returns the bit for the cell offset by (df,dr) files/ranks,
// or 0 if the destination falls off the board or wraps around an edge.
func shiftNoWrap(cell bitboard, df, dr int) bitboard {
	s := cell.lsb()
	f, r := int(s.File())+df, int(s.Rank())+dr
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return 0
	}
	return bit(square.New(square.Square(f), square.Square(r)))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// scanHit computes sliding attacks along mask from cell given the
// occupied bitboard, using the o^(o-2r) hyperbola-quintessence trick.
func scanHit(cell, occupied, mask bitboard) bitboard {
	blocker := occupied & mask
	return ((blocker - 2*cell) ^ reverse(reverse(blocker)-2*reverse(cell))) & mask
}

func bishopAttacksFrom(s square.Square, occupied bitboard) bitboard {
	cell := bit(s)
	return scanHit(cell, occupied, maskDiag[s]) | scanHit(cell, occupied, maskAntiDiag[s])
}

func rookAttacksFrom(s square.Square, occupied bitboard) bitboard {
	cell := bit(s)
	return scanHit(cell, occupied, maskFile[s.File()]) | scanHit(cell, occupied, maskRank[s.Rank()])
}

func queenAttacksFrom(s square.Square, occupied bitboard) bitboard {
	return bishopAttacksFrom(s, occupied) | rookAttacksFrom(s, occupied)
}
