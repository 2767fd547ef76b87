package san

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

func findMove(t *testing.T, b *board.Board, uci string) board.Move {
	t.Helper()
	for _, m := range b.GenerateLegalMoves() {
		if m.UCI() == uci {
			return m
		}
	}
	t.Fatalf("move %s not found among legal moves", uci)
	return board.Move{}
}

func TestRenderPawnPush(t *testing.T) {
	t.Parallel()
	b := mustBoard(t, board.DefaultStartingPositionFEN)
	m := findMove(t, b, "e2e4")
	if got := Render(b, m); got != "e4" {
		t.Errorf("got=%s want=e4", got)
	}
}

func TestRenderKnightDevelopment(t *testing.T) {
	t.Parallel()
	b := mustBoard(t, board.DefaultStartingPositionFEN)
	m := findMove(t, b, "g1f3")
	if got := Render(b, m); got != "Nf3" {
		t.Errorf("got=%s want=Nf3", got)
	}
}

func TestRenderCastleKingSide(t *testing.T) {
	t.Parallel()
	b := mustBoard(t, "r1bqk2r/pppp1ppp/2n2n2/2b1p3/2B1P3/2N2N2/PPPP1PPP/R1BQK2R w KQkq - 4 4")
	m := findMove(t, b, "e1g1")
	if got := Render(b, m); got != "O-O" {
		t.Errorf("got=%s want=O-O", got)
	}
}

func TestRenderWithFileDisambiguation(t *testing.T) {
	t.Parallel()
	// Rooks on a1 and h1 can both reach d1 along the open first rank.
	b := mustBoard(t, "4k3/8/8/8/8/6K1/8/R6R w - - 0 1")
	m := findMove(t, b, "a1d1")
	if got := Render(b, m); got != "Rad1" {
		t.Errorf("got=%s want=Rad1", got)
	}
}

func TestRenderCheckmateSuffix(t *testing.T) {
	t.Parallel()
	// One move from fool's mate: Qh4# delivers checkmate.
	b := mustBoard(t, "rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq - 0 2")
	m := findMove(t, b, "d8h4")
	if got := Render(b, m); got != "Qh4#" {
		t.Errorf("got=%s want=Qh4#", got)
	}
}
