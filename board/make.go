package board

import (
	"github.com/rookwood/corvid/piece"
	"github.com/rookwood/corvid/square"
)

// castleRightForRookSquare maps a rook's home square to the castling right it holds.
func castleRightForRookSquare(s square.Square) CastleRights {
	switch s {
	case square.A1:
		return CastleWhiteQueenSide
	case square.H1:
		return CastleWhiteKingSide
	case square.A8:
		return CastleBlackQueenSide
	case square.H8:
		return CastleBlackKingSide
	default:
		return 0
	}
}

// MakeMove applies m to the board, pushing an undo frame so it can
// later be reversed with UndoMove. Callers must only pass moves
// returned by GenerateLegalMoves for the current position.
func (b *Board) MakeMove(m Move) {
	frame := undoFrame{
		move:              m,
		captured:          m.Captured,
		prevCastleRights:  b.castleRights,
		prevEPSquare:      b.epSquare,
		prevHalfmoveClock: b.halfmoveClock,
		prevFullmoveNum:   b.fullmoveNumber,
		prevHash:          b.hash,
	}
	b.undo = append(b.undo, frame)

	mover := m.Moving
	color := mover.Color()

	if color == piece.Black {
		b.fullmoveNumber++
	}

	if mover.Type() == piece.Pawn || m.IsCapture() {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}

	b.hash ^= zobristCastle[b.castleRights]
	if b.epSquare != square.NoSquare {
		b.hash ^= zobristEPFile[b.epSquare.File()]
	}
	b.epSquare = square.NoSquare
	if m.IsDoublePawnPush() {
		dir := 1
		if color == piece.Black {
			dir = -1
		}
		b.epSquare = square.New(m.From.File(), m.From.Rank()+square.Square(dir))
		b.hash ^= zobristEPFile[b.epSquare.File()]
	}

	if m.IsEnPassant() {
		dir := -1
		if color == piece.Black {
			dir = 1
		}
		capSq := square.New(m.To.File(), m.To.Rank()+square.Square(dir))
		capPiece := b.cells[capSq]
		b.removePiece(capSq, capPiece)
		b.hash ^= zobristPieceKey(capPiece, capSq)
	} else if m.IsCapture() {
		b.removePiece(m.To, m.Captured)
		b.hash ^= zobristPieceKey(m.Captured, m.To)
	}

	if m.IsCastle() {
		idx := castleIndex(m)
		b.removePiece(castleRookFrom[idx], piece.New(piece.Rook, color))
		b.placePiece(castleRookTo[idx], piece.New(piece.Rook, color))
		b.hash ^= zobristPieceKey(piece.New(piece.Rook, color), castleRookFrom[idx])
		b.hash ^= zobristPieceKey(piece.New(piece.Rook, color), castleRookTo[idx])
	}

	b.removePiece(m.From, mover)
	b.hash ^= zobristPieceKey(mover, m.From)
	placed := mover
	if m.IsPromotion() {
		placed = m.Promotion
	}
	b.placePiece(m.To, placed)
	b.hash ^= zobristPieceKey(placed, m.To)

	if mover.Type() == piece.King {
		if color == piece.White {
			b.castleRights &^= CastleWhiteKingSide | CastleWhiteQueenSide
		} else {
			b.castleRights &^= CastleBlackKingSide | CastleBlackQueenSide
		}
	}
	b.castleRights &^= castleRightForRookSquare(m.From)
	b.castleRights &^= castleRightForRookSquare(m.To)
	b.hash ^= zobristCastle[b.castleRights]

	b.turn = b.turn.Opposite()
	b.hash ^= zobristSideToMove
}

// UndoMove reverses the most recent MakeMove call. It is a runtime
// error (panic) to call it with an empty undo stack.
func (b *Board) UndoMove() {
	n := len(b.undo)
	frame := b.undo[n-1]
	b.undo = b.undo[:n-1]
	m := frame.move

	b.turn = b.turn.Opposite()
	color := m.Moving.Color()

	placed := m.Moving
	if m.IsPromotion() {
		placed = m.Promotion
	}
	b.removePiece(m.To, placed)
	b.placePiece(m.From, m.Moving)

	if m.IsCastle() {
		idx := castleIndex(m)
		b.removePiece(castleRookTo[idx], piece.New(piece.Rook, color))
		b.placePiece(castleRookFrom[idx], piece.New(piece.Rook, color))
	}

	if m.IsEnPassant() {
		dir := -1
		if color == piece.Black {
			dir = 1
		}
		capSq := square.New(m.To.File(), m.To.Rank()+square.Square(dir))
		b.placePiece(capSq, frame.captured)
	} else if m.IsCapture() {
		b.placePiece(m.To, frame.captured)
	}

	b.castleRights = frame.prevCastleRights
	b.epSquare = frame.prevEPSquare
	b.halfmoveClock = frame.prevHalfmoveClock
	b.fullmoveNumber = frame.prevFullmoveNum
	b.hash = frame.prevHash
}

// MakeNullMove flips the side to move without moving a piece. It must
// not be called while the side to move is in check.
func (b *Board) MakeNullMove() {
	frame := undoFrame{
		prevCastleRights:  b.castleRights,
		prevEPSquare:      b.epSquare,
		prevHalfmoveClock: b.halfmoveClock,
		prevFullmoveNum:   b.fullmoveNumber,
		prevHash:          b.hash,
	}
	b.undo = append(b.undo, frame)

	if b.epSquare != square.NoSquare {
		b.hash ^= zobristEPFile[b.epSquare.File()]
	}
	b.epSquare = square.NoSquare
	b.turn = b.turn.Opposite()
	b.hash ^= zobristSideToMove
}

// UndoNullMove reverses the most recent MakeNullMove call.
func (b *Board) UndoNullMove() {
	n := len(b.undo)
	frame := b.undo[n-1]
	b.undo = b.undo[:n-1]

	b.turn = b.turn.Opposite()
	b.castleRights = frame.prevCastleRights
	b.epSquare = frame.prevEPSquare
	b.halfmoveClock = frame.prevHalfmoveClock
	b.fullmoveNumber = frame.prevFullmoveNum
	b.hash = frame.prevHash
}

func (b *Board) removePiece(s square.Square, p piece.Piece) {
	b.cells[s] = piece.None
	b.sides[p.Color()] &^= bit(s)
	b.types[p.Type()] &^= bit(s)
	b.occupied &^= bit(s)
}

func (b *Board) placePiece(s square.Square, p piece.Piece) {
	b.cells[s] = p
	b.sides[p.Color()] |= bit(s)
	b.types[p.Type()] |= bit(s)
	b.occupied |= bit(s)
}

func castleIndex(m Move) int {
	switch {
	case m.Flags.has(FlagCastleKingSide) && m.Moving.Color() == piece.White:
		return idxWK
	case m.Flags.has(FlagCastleQueenSide) && m.Moving.Color() == piece.White:
		return idxWQ
	case m.Flags.has(FlagCastleKingSide):
		return idxBK
	default:
		return idxBQ
	}
}
