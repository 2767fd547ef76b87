package board

import (
	"testing"
)

func TestFENRoundTrip(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		fen  string
	}{
		{name: "start", fen: DefaultStartingPositionFEN},
		{name: "kiwipete", fen: "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"},
		{name: "position 3", fen: "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"},
		{name: "en passant target", fen: "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, err := NewBoard(WithFEN(tt.fen))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := b.FEN(); got != tt.fen {
				t.Errorf("FEN round trip: got=%s want=%s", got, tt.fen)
			}
		})
	}
}

func TestLoadFENRejectsMalformed(t *testing.T) {
	t.Parallel()
	tests := []string{
		"",
		"invalid fen",
		"8/8/8/8/8/8/8/8 w - - 0 1",                                        // no kings
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",         // bad side
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w ZZZZ - 0 1",         // bad castling
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1",        // bad ep square
		"rnbqkbnr/pppppppp/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",           // 7 ranks
		"rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",         // rank overflow
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0",           // 5 fields
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0",         // fullmove 0
	}
	for _, fen := range tests {
		fen := fen
		t.Run(fen, func(t *testing.T) {
			t.Parallel()
			if _, err := NewBoard(WithFEN(fen)); err == nil {
				t.Errorf("expected error for fen %q", fen)
			}
		})
	}
}

func TestMakeUndoMoveIsReversible(t *testing.T) {
	t.Parallel()
	b, err := NewBoard(WithFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantFEN := b.FEN()
	wantHash := b.ZobristKey()

	for _, m := range b.GenerateLegalMoves() {
		b.MakeMove(m)
		b.UndoMove()
		if got := b.FEN(); got != wantFEN {
			t.Fatalf("move %s: FEN not restored: got=%s want=%s", m.UCI(), got, wantFEN)
		}
		if got := b.ZobristKey(); got != wantHash {
			t.Fatalf("move %s: hash not restored: got=%x want=%x", m.UCI(), got, wantHash)
		}
		if got := b.UndoStackLen(); got != 0 {
			t.Fatalf("move %s: undo stack not drained: got=%d", m.UCI(), got)
		}
	}
}

func TestMakeUndoNullMoveIsReversible(t *testing.T) {
	t.Parallel()
	b, err := NewBoard(WithFEN(DefaultStartingPositionFEN))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantFEN := b.FEN()
	b.MakeNullMove()
	b.UndoNullMove()
	if got := b.FEN(); got != wantFEN {
		t.Errorf("null move not restored: got=%s want=%s", got, wantFEN)
	}
}

func TestGenerateLegalMovesNeverLeavesKingInCheck(t *testing.T) {
	t.Parallel()
	b, err := NewBoard(WithFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mover := b.SideToMove()
	for _, m := range b.GenerateLegalMoves() {
		b.MakeMove(m)
		if b.IsInCheck(mover) {
			t.Errorf("move %s leaves mover in check", m.UCI())
		}
		b.UndoMove()
	}
}

func TestStartingPositionMoveCount(t *testing.T) {
	t.Parallel()
	b, err := NewBoard(WithFEN(DefaultStartingPositionFEN))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(b.GenerateLegalMoves()); got != 20 {
		t.Errorf("unexpected legal move count from start: got=%d want=20", got)
	}
}

func TestCheckmateHasNoLegalMoves(t *testing.T) {
	t.Parallel()
	// Fool's mate final position, White to move, checkmated.
	b, err := NewBoard(WithFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := b.State(); got != StateCheckmate {
		t.Errorf("unexpected state: got=%v want=%v", got, StateCheckmate)
	}
}
