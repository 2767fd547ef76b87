package board

import (
	"strings"

	"github.com/rookwood/corvid/piece"
	"github.com/rookwood/corvid/square"
)

// MoveFlag is a bitset of special-move properties attached to a Move.
type MoveFlag uint8

const (
	FlagCapture MoveFlag = 1 << iota
	FlagDoublePawnPush
	FlagEnPassant
	FlagCastleKingSide
	FlagCastleQueenSide
	FlagPromotion
)

func (f MoveFlag) has(o MoveFlag) bool { return f&o != 0 }

// Move is a single ply. The zero value (Move{}) is the "no move"
// sentinel returned by search and TT lookups when nothing is stored.
type Move struct {
	From, To  square.Square
	Moving    piece.Piece
	Captured  piece.Piece // piece.None unless Flags.has(FlagCapture)
	Promotion piece.Piece // piece.None unless Flags.has(FlagPromotion)
	Flags     MoveFlag
}

// IsNone reports whether m is the zero-value sentinel.
func (m Move) IsNone() bool {
	return m.Moving == piece.None
}

// IsCapture reports whether m captures a piece (en passant included).
func (m Move) IsCapture() bool { return m.Flags.has(FlagCapture) }

// IsEnPassant reports whether m is an en-passant capture.
func (m Move) IsEnPassant() bool { return m.Flags.has(FlagEnPassant) }

// IsCastle reports whether m is a castling move in either direction.
func (m Move) IsCastle() bool {
	return m.Flags.has(FlagCastleKingSide) || m.Flags.has(FlagCastleQueenSide)
}

// IsPromotion reports whether m promotes a pawn.
func (m Move) IsPromotion() bool { return m.Flags.has(FlagPromotion) }

// IsDoublePawnPush reports whether m is a two-square pawn advance,
// i.e. the move that can create an en-passant target.
func (m Move) IsDoublePawnPush() bool { return m.Flags.has(FlagDoublePawnPush) }

// UCI renders the move in long algebraic notation as used by the UCI
// protocol: from-square, to-square, and a lowercase promotion letter
// if any (e.g. "e2e4", "a7a8q").
func (m Move) UCI() string {
	s := m.From.Notation() + m.To.Notation()
	if m.IsPromotion() {
		s += strings.ToLower(m.Promotion.SymbolAlgebra())
	}
	return s
}

func (m Move) String() string {
	return m.UCI()
}
