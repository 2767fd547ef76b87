package eval

import (
	"testing"

	"github.com/rookwood/corvid/board"
	"github.com/rookwood/corvid/piece"
)

func mustBoard(t *testing.T, fen string) *board.Board {
	t.Helper()
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		t.Fatalf("unexpected error loading fen %q: %v", fen, err)
	}
	return b
}

func TestEvaluateSymmetricStartingPosition(t *testing.T) {
	t.Parallel()
	b := mustBoard(t, board.DefaultStartingPositionFEN)
	if got := Evaluate(b); got != 0 {
		t.Errorf("starting position should be materially equal: got=%d", got)
	}
}

func TestEvaluateMaterialAdvantage(t *testing.T) {
	t.Parallel()
	// White is up a queen.
	b := mustBoard(t, "4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	if got := Evaluate(b); got <= 0 {
		t.Errorf("expected White to be scored ahead: got=%d", got)
	}
}

func TestEvaluateIsFromSideToMovePerspective(t *testing.T) {
	t.Parallel()
	// Same material imbalance, but Black to move: score sign should flip.
	white := mustBoard(t, "4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	black := mustBoard(t, "4k3/8/8/8/8/8/8/3QK3 b - - 0 1")
	if Evaluate(white) != -Evaluate(black) {
		t.Errorf("scores should be sign-flipped across side to move: white=%d black=%d", Evaluate(white), Evaluate(black))
	}
}

func TestGamePhaseClampedRange(t *testing.T) {
	t.Parallel()
	full := mustBoard(t, board.DefaultStartingPositionFEN)
	if got := gamePhase(full); got != MaxPhase {
		t.Errorf("full material should be at MaxPhase: got=%d want=%d", got, MaxPhase)
	}
	bare := mustBoard(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	if got := gamePhase(bare); got != 0 {
		t.Errorf("kings-only position should be at phase 0: got=%d", got)
	}
}

func TestPassedPawnBonusAddsEndgameValue(t *testing.T) {
	t.Parallel()
	b := mustBoard(t, "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	score := pawnStructure(b, piece.White)
	// A lone pawn is also isolated, so the passed bonus is measured on
	// top of the isolated-pawn penalty.
	if got := score.eg + isolatedPawnPenalty; got <= 0 {
		t.Errorf("lone passed pawn should add a positive endgame bonus over the isolated-pawn penalty: got=%v", score)
	}
}
