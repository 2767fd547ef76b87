package search

import (
	"testing"

	"github.com/rookwood/corvid/board"
)

func mustBoard(t *testing.T, fen string) *board.Board {
	t.Helper()
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		t.Fatalf("unexpected error loading fen %q: %v", fen, err)
	}
	return b
}

func TestFindBestMoveDetectsMateInOne(t *testing.T) {
	t.Parallel()
	b := mustBoard(t, "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	e := NewEngine(defaultHashTableSizePow)
	res := e.FindBestMove(b, SearchConfig{MaxDepth: 3})
	if got := res.Move.UCI(); got != "a1a8" {
		t.Errorf("best move=%s want=a1a8", got)
	}
	if res.Score < MateValue-3 {
		t.Errorf("score=%d want >= %d", res.Score, MateValue-3)
	}
}

func TestFindBestMoveScoresStalemateAsZero(t *testing.T) {
	t.Parallel()
	b := mustBoard(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if len(b.GenerateLegalMoves()) != 0 {
		t.Fatalf("expected no legal moves in stalemate position")
	}
	if b.IsInCheck(b.SideToMove()) {
		t.Fatalf("stalemate position must not be in check")
	}
	e := NewEngine(defaultHashTableSizePow)
	res := e.FindBestMove(b, SearchConfig{MaxDepth: 2})
	if res.Score != 0 {
		t.Errorf("score=%d want=0", res.Score)
	}
}

func TestFindBestMoveReturnsLegalRootMove(t *testing.T) {
	t.Parallel()
	b := mustBoard(t, board.DefaultStartingPositionFEN)
	e := NewEngine(defaultHashTableSizePow)
	res := e.FindBestMove(b, SearchConfig{MaxDepth: 3})
	found := false
	for _, m := range b.GenerateLegalMoves() {
		if m == res.Move {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("returned move %s is not a legal root move", res.Move.UCI())
	}
}

func TestFindBestMoveLeavesBoardUnchanged(t *testing.T) {
	t.Parallel()
	b := mustBoard(t, board.DefaultStartingPositionFEN)
	before := b.FEN()
	e := NewEngine(defaultHashTableSizePow)
	e.FindBestMove(b, SearchConfig{MaxDepth: 3})
	if after := b.FEN(); after != before {
		t.Errorf("board mutated by search: before=%q after=%q", before, after)
	}
}

func TestTimeBudgetFormula(t *testing.T) {
	t.Parallel()
	tests := []struct {
		limitMs  int64
		absolute bool
		want     int64 // milliseconds
	}{
		{limitMs: 0, want: 0},
		{limitMs: 1000, absolute: true, want: 1000},
		{limitMs: 1000, want: 1000},
		{limitMs: 9000, want: 300}, // min(9000-450, max(300,50)) = min(8550,300) = 300
	}
	for _, tc := range tests {
		got := timeBudget(tc.limitMs, tc.absolute)
		if got.Milliseconds() != tc.want {
			t.Errorf("timeBudget(%d,%v)=%v want=%dms", tc.limitMs, tc.absolute, got, tc.want)
		}
	}
}
