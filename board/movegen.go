package board

import (
	"github.com/rookwood/corvid/piece"
	"github.com/rookwood/corvid/square"
)

var promotionTypes = [4]piece.Type{piece.Queen, piece.Rook, piece.Bishop, piece.Knight}

// GenerateLegalMoves returns every move legal from the current
// position: no move leaves the mover's own king in check.
func (b *Board) GenerateLegalMoves() []Move {
	pseudo := b.generatePseudoLegalMoves()
	legal := make([]Move, 0, len(pseudo))
	mover := b.turn
	for _, m := range pseudo {
		b.MakeMove(m)
		if !b.IsInCheck(mover) {
			legal = append(legal, m)
		}
		b.UndoMove()
	}
	return legal
}

// GenerateLegalCaptures returns the subset of legal moves that are
// captures or en-passant captures, used by quiescence search.
func (b *Board) GenerateLegalCaptures() []Move {
	all := b.GenerateLegalMoves()
	caps := make([]Move, 0, len(all))
	for _, m := range all {
		if m.IsCapture() {
			caps = append(caps, m)
		}
	}
	return caps
}

func (b *Board) generatePseudoLegalMoves() []Move {
	moves := make([]Move, 0, 48)
	us := b.turn
	for bm := b.sides[us]; bm != 0; {
		var s square.Square
		s, bm = bm.popLSB()
		p := b.cells[s]
		switch p.Type() {
		case piece.Pawn:
			b.genPawnMoves(s, us, &moves)
		case piece.Knight:
			b.genOffsetMoves(s, p, knightAttacks[s], &moves)
		case piece.King:
			b.genOffsetMoves(s, p, kingAttacks[s], &moves)
		case piece.Bishop:
			b.genSliderMoves(s, p, bishopAttacksFrom(s, b.occupied), &moves)
		case piece.Rook:
			b.genSliderMoves(s, p, rookAttacksFrom(s, b.occupied), &moves)
		case piece.Queen:
			b.genSliderMoves(s, p, queenAttacksFrom(s, b.occupied), &moves)
		}
	}
	b.genCastleMoves(us, &moves)
	return moves
}

func (b *Board) genOffsetMoves(from square.Square, p piece.Piece, targets bitboard, moves *[]Move) {
	targets &^= b.sides[p.Color()]
	for targets != 0 {
		var to square.Square
		to, targets = targets.popLSB()
		m := Move{From: from, To: to, Moving: p}
		if victim := b.cells[to]; victim != piece.None {
			m.Captured = victim
			m.Flags |= FlagCapture
		}
		*moves = append(*moves, m)
	}
}

func (b *Board) genSliderMoves(from square.Square, p piece.Piece, attacks bitboard, moves *[]Move) {
	b.genOffsetMoves(from, p, attacks, moves)
}

func (b *Board) genPawnMoves(from square.Square, us piece.Color, moves *[]Move) {
	p := piece.New(piece.Pawn, us)
	dir := square.Square(1)
	startRank, promoRank := square.Rank2, square.Rank8
	if us == piece.Black {
		dir = -1
		startRank, promoRank = square.Rank7, square.Rank1
	}

	one := square.New(from.File(), from.Rank()+dir)
	if !b.occupied.has(one) {
		b.addPawnAdvance(from, one, p, promoRank, moves)
		if from.Rank() == startRank {
			two := square.New(from.File(), from.Rank()+2*dir)
			if !b.occupied.has(two) {
				*moves = append(*moves, Move{From: from, To: two, Moving: p, Flags: FlagDoublePawnPush})
			}
		}
	}

	for _, to := range pawnCaptureTargets(from, us) {
		if victim := b.cells[to]; victim != piece.None && victim.Color() != us {
			m := Move{From: from, To: to, Moving: p, Captured: victim, Flags: FlagCapture}
			if to.Rank() == promoRank {
				for _, pt := range promotionTypes {
					pm := m
					pm.Promotion = piece.New(pt, us)
					pm.Flags |= FlagPromotion
					*moves = append(*moves, pm)
				}
			} else {
				*moves = append(*moves, m)
			}
		} else if to == b.epSquare && b.epSquare != square.NoSquare {
			*moves = append(*moves, Move{From: from, To: to, Moving: p, Captured: piece.New(piece.Pawn, us.Opposite()), Flags: FlagCapture | FlagEnPassant})
		}
	}
}

func (b *Board) addPawnAdvance(from, to square.Square, p piece.Piece, promoRank square.Square, moves *[]Move) {
	if to.Rank() == promoRank {
		for _, pt := range promotionTypes {
			*moves = append(*moves, Move{From: from, To: to, Moving: p, Promotion: piece.New(pt, p.Color()), Flags: FlagPromotion})
		}
		return
	}
	*moves = append(*moves, Move{From: from, To: to, Moving: p})
}

func pawnCaptureTargets(from square.Square, us piece.Color) []square.Square {
	var out []square.Square
	f, r := int(from.File()), int(from.Rank())
	dir := 1
	if us == piece.Black {
		dir = -1
	}
	for _, df := range [2]int{-1, 1} {
		nf, nr := f+df, r+dir
		if nf < 0 || nf > 7 || nr < 0 || nr > 7 {
			continue
		}
		out = append(out, square.New(square.Square(nf), square.Square(nr)))
	}
	return out
}

func (b *Board) genCastleMoves(us piece.Color, moves *[]Move) {
	them := us.Opposite()
	kingSq := b.getBitboard(us, piece.King)
	if kingSq == 0 {
		return
	}
	from := kingSq.lsb()

	tryCastle := func(idx int, right CastleRights, flag MoveFlag) {
		if !b.castleRights.has(right) {
			return
		}
		if b.occupied&castlePathEmpty[idx] != 0 {
			return
		}
		for _, sq := range castlePathSafe[idx] {
			if b.IsSquareAttacked(sq, them) {
				return
			}
		}
		*moves = append(*moves, Move{
			From:   from,
			To:     castleKingTo[idx],
			Moving: piece.New(piece.King, us),
			Flags:  flag,
		})
	}

	if us == piece.White {
		tryCastle(idxWK, CastleWhiteKingSide, FlagCastleKingSide)
		tryCastle(idxWQ, CastleWhiteQueenSide, FlagCastleQueenSide)
	} else {
		tryCastle(idxBK, CastleBlackKingSide, FlagCastleKingSide)
		tryCastle(idxBQ, CastleBlackQueenSide, FlagCastleQueenSide)
	}
}
