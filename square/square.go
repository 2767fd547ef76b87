// Package square provides the board's square indexing and algebraic
// notation primitives.
package square

import (
	"errors"
)

// ErrInvalidNotation is returned when a two-character algebraic square
// notation cannot be parsed.
var ErrInvalidNotation = errors.New("invalid notation")

// Square is a board square in [0,63]. File = square%8 (0=a..7=h),
// Rank = square/8 (0=rank1..7=rank8).
type Square int8

// NoSquare is the sentinel for "no square" (e.g. no en-passant target).
const NoSquare Square = -1

// Total is the number of squares on the board.
const Total = 64

// File/rank named constants.
const (
	FileA Square = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	Rank1 Square = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// New builds a Square from a file and rank, both in [0,7]. It is the
// constructor satisfying New(File(s), Rank(s)) == s.
func New(file, rank Square) Square {
	return rank*8 + file
}

// File returns the square's file component, 0(a)..7(h).
func (s Square) File() Square {
	return s % 8
}

// Rank returns the square's rank component, 0(rank1)..7(rank8).
func (s Square) Rank() Square {
	return s / 8
}

// NewFromNotation parses a two-character algebraic square, e.g. "e4".
func NewFromNotation(n string) (Square, error) {
	if len(n) != 2 {
		return 0, ErrInvalidNotation
	}
	file := Square(n[0] - 'a')
	if file < 0 || file > FileH {
		return 0, ErrInvalidNotation
	}
	rank := Square(n[1] - '1')
	if rank < 0 || rank > Rank8 {
		return 0, ErrInvalidNotation
	}
	return New(file, rank), nil
}

// Notation renders the square in algebraic notation, e.g. "e4".
func (s Square) Notation() string {
	if s < 0 || s >= Total {
		return ""
	}
	return string(rune('a'+s.File())) + string(rune('1'+s.Rank()))
}

func (s Square) String() string {
	return s.Notation()
}

// FileLetter returns the single-character file letter, e.g. "e".
func (s Square) FileLetter() string {
	if s.File() < FileA || s.File() > FileH {
		return ""
	}
	return string(rune('a' + s.File()))
}

// RankDigit returns the single-character rank digit, e.g. "4".
func (s Square) RankDigit() string {
	if s.Rank() < Rank1 || s.Rank() > Rank8 {
		return ""
	}
	return string(rune('1' + s.Rank()))
}

// Named squares, A1..H8, rank-major (a1=0 .. h1=7, a2=8 .. h8=63).
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)
