package perft

import (
	"testing"

	"github.com/rookwood/corvid/board"
)

// Expected node counts from https://www.chessprogramming.org/Perft_Results.
func TestCount(t *testing.T) {
	t.Parallel()

	tests := map[string][]struct {
		depth     int
		wantNodes uint64
	}{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1": {
			{depth: 0, wantNodes: 1},
			{depth: 1, wantNodes: 20},
			{depth: 2, wantNodes: 400},
			{depth: 3, wantNodes: 8_902},
			{depth: 4, wantNodes: 197_281},
			{depth: 5, wantNodes: 4_865_609},
		},
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1": {
			{depth: 1, wantNodes: 48},
			{depth: 2, wantNodes: 2_039},
			{depth: 3, wantNodes: 97_862},
		},
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1": {
			{depth: 1, wantNodes: 14},
			{depth: 5, wantNodes: 674_624},
		},
	}

	for fen, cases := range tests {
		fen := fen
		for _, tc := range cases {
			tc := tc
			t.Run(fen, func(t *testing.T) {
				t.Parallel()
				b, err := board.NewBoard(board.WithFEN(fen))
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got := Count(b, tc.depth); got != tc.wantNodes {
					t.Errorf("depth=%d: got=%d want=%d", tc.depth, got, tc.wantNodes)
				}
			})
		}
	}
}

func TestDivideSumsToCount(t *testing.T) {
	t.Parallel()
	b, err := board.NewBoard(board.WithFEN(board.DefaultStartingPositionFEN))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	div := Divide(b, 3)
	var sum uint64
	for _, n := range div {
		sum += n
	}
	if want := Count(b, 3); sum != want {
		t.Errorf("divide sum=%d does not match Count=%d", sum, want)
	}
}
