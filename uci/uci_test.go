package uci

import (
	"bytes"
	"strings"
	"testing"
)

func runCommands(t *testing.T, script string) string {
	t.Helper()
	var out bytes.Buffer
	iface := NewInterface(&out)
	if err := iface.Run(strings.NewReader(script)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return out.String()
}

func TestUCIHandshake(t *testing.T) {
	t.Parallel()
	out := runCommands(t, "uci\nquit\n")
	for _, want := range []string{"id name", "id author", "uciok"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q, got:\n%s", want, out)
		}
	}
}

func TestPositionMovesThenGoDepthOne(t *testing.T) {
	t.Parallel()
	out := runCommands(t, "position startpos moves e2e4 e7e5\ngo depth 1\nquit\n")
	if !strings.Contains(out, "bestmove ") {
		t.Errorf("expected a bestmove line, got:\n%s", out)
	}
}

func TestGoMovetimeReturnsPromptly(t *testing.T) {
	t.Parallel()
	script := "position startpos moves e2e4 e7e5 g1f3 b8c6 f1b5 a7a6 b5a4\ngo movetime 200\nquit\n"
	out := runCommands(t, script)
	if !strings.Contains(out, "bestmove ") {
		t.Errorf("expected a bestmove line, got:\n%s", out)
	}
}

func TestUnknownUCIMoveStopsApplyingFurtherMoves(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	iface := NewInterface(&out)
	iface.commandPosition(strings.Fields("startpos moves e2e4 zzzz e7e5"))
	if got := iface.board.FullMoveNumber(); got != 1 {
		t.Errorf("expected only the first move applied, fullmove=%d", got)
	}
	if iface.board.SideToMove() != 1 {
		t.Errorf("expected black to move after a single ply")
	}
}

func TestStalemateReportsNullBestMove(t *testing.T) {
	t.Parallel()
	out := runCommands(t, "position fen 7k/5Q2/6K1/8/8/8/8/8 b - - 0 1\ngo depth 2\nquit\n")
	if !strings.Contains(out, "bestmove 0000") {
		t.Errorf("expected bestmove 0000 for stalemate, got:\n%s", out)
	}
}
