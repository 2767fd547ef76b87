package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rookwood/corvid/piece"
	"github.com/rookwood/corvid/square"
)

// BoardOption configures a new Board in NewBoard.
type BoardOption func(*Board) error

// WithFEN loads the board from a 6-field FEN string. Malformed FEN is
// rejected with an error wrapping ErrInvalidFEN; NewBoard never
// returns a half-initialized board on failure.
func WithFEN(fen string) BoardOption {
	return func(b *Board) error {
		return b.LoadFEN(fen)
	}
}

// NewBoard constructs a Board, applying opts in order. With no
// options the board is left empty; callers almost always pass
// WithFEN.
func NewBoard(opts ...BoardOption) (*Board, error) {
	b := &Board{}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// LoadFEN parses a 6-field FEN string and repopulates the board:
// squares, castling rights, en-passant target, clocks, side to move.
// It recomputes the Zobrist key and clears the undo stack. On
// malformed input it returns an error wrapping ErrInvalidFEN and
// leaves the board in its pre-call state.
func (b *Board) LoadFEN(fen string) error {
	segments := strings.Split(fen, " ")
	if len(segments) != 6 {
		return fmt.Errorf("%w: expected 6 fields, got %d", ErrInvalidFEN, len(segments))
	}

	var nb Board

	rows := strings.Split(segments[0], "/")
	if len(rows) != 8 {
		return fmt.Errorf("%w: expected 8 ranks, got %d", ErrInvalidFEN, len(rows))
	}
	for i, row := range rows {
		rank := square.Rank8 - square.Square(i)
		file := square.FileA
		for _, c := range row {
			if file > square.FileH {
				return fmt.Errorf("%w: rank %q overflows the board", ErrInvalidFEN, row)
			}
			if c >= '1' && c <= '8' {
				file += square.Square(c - '0')
				continue
			}
			p, ok := piece.FromFENSymbol(byte(c))
			if !ok {
				return fmt.Errorf("%w: unrecognized symbol %q", ErrInvalidFEN, c)
			}
			nb.SetPieceAt(square.New(file, rank), p)
			file++
		}
		if file != square.FileH+1 {
			return fmt.Errorf("%w: rank %q does not cover 8 files", ErrInvalidFEN, row)
		}
	}
	if nb.getBitboard(piece.White, piece.King).count() != 1 || nb.getBitboard(piece.Black, piece.King).count() != 1 {
		return fmt.Errorf("%w: expected exactly one king per side", ErrInvalidFEN)
	}

	switch segments[1] {
	case "w":
		nb.turn = piece.White
	case "b":
		nb.turn = piece.Black
	default:
		return fmt.Errorf("%w: invalid side to move %q", ErrInvalidFEN, segments[1])
	}

	if segments[2] != "-" {
		if len(segments[2]) == 0 || len(segments[2]) > 4 {
			return fmt.Errorf("%w: invalid castling rights %q", ErrInvalidFEN, segments[2])
		}
		for _, c := range segments[2] {
			switch c {
			case 'K':
				nb.castleRights |= CastleWhiteKingSide
			case 'Q':
				nb.castleRights |= CastleWhiteQueenSide
			case 'k':
				nb.castleRights |= CastleBlackKingSide
			case 'q':
				nb.castleRights |= CastleBlackQueenSide
			default:
				return fmt.Errorf("%w: invalid castling rights %q", ErrInvalidFEN, segments[2])
			}
		}
	}

	nb.epSquare = square.NoSquare
	if segments[3] != "-" {
		ep, err := square.NewFromNotation(segments[3])
		if err != nil {
			return fmt.Errorf("%w: invalid en-passant square %q", ErrInvalidFEN, segments[3])
		}
		if ep.Rank() != square.Rank3 && ep.Rank() != square.Rank6 {
			return fmt.Errorf("%w: en-passant square %q not on rank 3 or 6", ErrInvalidFEN, segments[3])
		}
		nb.epSquare = ep
	}

	halfmove, err := strconv.ParseUint(segments[4], 10, 16)
	if err != nil {
		return fmt.Errorf("%w: invalid halfmove clock %q", ErrInvalidFEN, segments[4])
	}
	nb.halfmoveClock = uint16(halfmove)

	fullmove, err := strconv.ParseUint(segments[5], 10, 16)
	if err != nil || fullmove == 0 {
		return fmt.Errorf("%w: invalid fullmove number %q", ErrInvalidFEN, segments[5])
	}
	nb.fullmoveNumber = uint16(fullmove)

	nb.hash = nb.computeHash()
	nb.undo = nil

	*b = nb
	return nil
}

// FEN produces the canonical 6-field FEN of the current position.
func (b *Board) FEN() string {
	var sb strings.Builder
	for i := 0; i < 8; i++ {
		rank := square.Rank8 - square.Square(i)
		empty := 0
		for file := square.FileA; file <= square.FileH; file++ {
			p := b.cells[square.New(file, rank)]
			if p == piece.None {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.SymbolFEN())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if i != 7 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.turn == piece.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	if b.castleRights == 0 {
		sb.WriteByte('-')
	} else {
		if b.castleRights.has(CastleWhiteKingSide) {
			sb.WriteByte('K')
		}
		if b.castleRights.has(CastleWhiteQueenSide) {
			sb.WriteByte('Q')
		}
		if b.castleRights.has(CastleBlackKingSide) {
			sb.WriteByte('k')
		}
		if b.castleRights.has(CastleBlackQueenSide) {
			sb.WriteByte('q')
		}
	}

	sb.WriteByte(' ')
	if b.epSquare == square.NoSquare {
		sb.WriteByte('-')
	} else {
		sb.WriteString(b.epSquare.Notation())
	}

	fmt.Fprintf(&sb, " %d %d", b.halfmoveClock, b.fullmoveNumber)
	return sb.String()
}
