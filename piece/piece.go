// Package piece provides the color and piece identities shared across
// the engine.
package piece

// Color is White or Black; Opposite is total.
type Color uint8

const (
	White Color = iota
	Black
)

// Opposite returns the other color.
func (c Color) Opposite() Color {
	return c ^ 1
}

func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Piece identifies a colored chess piece, or None for an empty square.
// Type derives as (Piece-1)%6+1 (Pawn=1..King=6) once None is excluded;
// Color derives as (Piece-1)/6.
type Piece uint8

const (
	None Piece = iota
	WhitePawn
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
)

// Type is a piece kind irrespective of color.
type Type uint8

const (
	TypeNone Type = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// New constructs the colored piece for the given type and color. It
// panics if t is TypeNone — callers must not construct a None piece
// this way.
func New(t Type, c Color) Piece {
	if t == TypeNone {
		panic("piece: New called with TypeNone")
	}
	if c == White {
		return Piece(t)
	}
	return Piece(t) + 6
}

// Type returns the piece's type. It panics if p is None: Type is only
// defined for occupied squares, per the data model's contract.
func (p Piece) Type() Type {
	if p == None {
		panic("piece: Type of None")
	}
	if p > WhiteKing {
		return Type(p - 6)
	}
	return Type(p)
}

// Color returns the piece's color. It panics if p is None.
func (p Piece) Color() Color {
	if p == None {
		panic("piece: Color of None")
	}
	if p > WhiteKing {
		return Black
	}
	return White
}

func (p Type) String() string {
	switch p {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return ""
	}
}

func (p Piece) String() string {
	if p == None {
		return ""
	}
	return p.Type().String()
}

// SymbolAlgebra is the SAN piece letter (empty for pawn), uppercase
// regardless of color — SAN never lowercases piece letters.
func (p Piece) SymbolAlgebra() string {
	if p == None || p.Type() == Pawn {
		return ""
	}
	return p.Type().symbolUpper()
}

func (t Type) symbolUpper() string {
	switch t {
	case Pawn:
		return "P"
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return ""
	}
}

// SymbolFEN is the piece's FEN letter: uppercase for White, lowercase
// for Black. Empty for None.
func (p Piece) SymbolFEN() string {
	if p == None {
		return ""
	}
	sym := p.Type().symbolUpper()
	if p.Color() == Black {
		return string(rune(sym[0]) | 0x20) // lowercase is +32 uppercase
	}
	return sym
}

// SymbolUnicode is the piece's Unicode chess glyph. Empty for None.
func (p Piece) SymbolUnicode() string {
	if p == None {
		return ""
	}
	switch p.Color() {
	case White:
		switch p.Type() {
		case Pawn:
			return "♙"
		case Knight:
			return "♘"
		case Bishop:
			return "♗"
		case Rook:
			return "♖"
		case Queen:
			return "♕"
		case King:
			return "♔"
		}
	case Black:
		switch p.Type() {
		case Pawn:
			return "♟"
		case Knight:
			return "♞"
		case Bishop:
			return "♝"
		case Rook:
			return "♜"
		case Queen:
			return "♛"
		case King:
			return "♚"
		}
	}
	return ""
}

// FromFENSymbol maps a single FEN piece letter to its Piece, or None
// plus false if the letter is not a recognized piece symbol.
func FromFENSymbol(c byte) (Piece, bool) {
	switch c {
	case 'P':
		return WhitePawn, true
	case 'N':
		return WhiteKnight, true
	case 'B':
		return WhiteBishop, true
	case 'R':
		return WhiteRook, true
	case 'Q':
		return WhiteQueen, true
	case 'K':
		return WhiteKing, true
	case 'p':
		return BlackPawn, true
	case 'n':
		return BlackKnight, true
	case 'b':
		return BlackBishop, true
	case 'r':
		return BlackRook, true
	case 'q':
		return BlackQueen, true
	case 'k':
		return BlackKing, true
	default:
		return None, false
	}
}
