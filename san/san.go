// Package san renders chess moves in Standard Algebraic Notation.
package san

import (
	"strings"

	"github.com/rookwood/corvid/board"
	"github.com/rookwood/corvid/piece"
)

// Render produces the SAN string for m, played from the position b
// (before the move is made). Check/mate detection is performed on a
// temporary copy of b so the caller's board is left untouched.
func Render(b *board.Board, m board.Move) string {
	if m.IsCastle() {
		return castleNotation(m) + checkSuffix(b, m)
	}

	var sb strings.Builder
	sb.WriteString(m.Moving.SymbolAlgebra())
	sb.WriteString(disambiguation(b, m))
	if m.IsCapture() {
		if m.Moving.Type() == piece.Pawn {
			sb.WriteString(m.From.FileLetter())
		}
		sb.WriteByte('x')
	}
	sb.WriteString(m.To.Notation())
	if m.IsPromotion() {
		sb.WriteByte('=')
		sb.WriteString(m.Promotion.SymbolAlgebra())
	}
	sb.WriteString(checkSuffix(b, m))
	return sb.String()
}

func castleNotation(m board.Move) string {
	if m.Flags&board.FlagCastleKingSide != 0 {
		return "O-O"
	}
	return "O-O-O"
}

// disambiguation returns the minimal prefix needed to distinguish m
// from every other legal move of the same piece type and color
// reaching the same destination: the originating file if files are
// unique among the candidates, else the rank, else both.
func disambiguation(b *board.Board, m board.Move) string {
	if m.Moving.Type() == piece.Pawn || m.Moving.Type() == piece.King {
		return ""
	}

	var sameFile, sameRank, any bool
	for _, other := range b.GenerateLegalMoves() {
		if other.From == m.From || other.To != m.To || other.Moving != m.Moving {
			continue
		}
		any = true
		if other.From.File() == m.From.File() {
			sameFile = true
		}
		if other.From.Rank() == m.From.Rank() {
			sameRank = true
		}
	}
	if !any {
		return ""
	}
	switch {
	case !sameFile:
		return m.From.FileLetter()
	case !sameRank:
		return m.From.RankDigit()
	default:
		return m.From.Notation()
	}
}

func checkSuffix(b *board.Board, m board.Move) string {
	clone := b.Clone()
	clone.MakeMove(m)
	if !clone.IsInCheck(clone.SideToMove()) {
		return ""
	}
	if len(clone.GenerateLegalMoves()) == 0 {
		return "#"
	}
	return "+"
}
