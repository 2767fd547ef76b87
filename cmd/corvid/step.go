package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"
)

// runStep plays random legal moves from fen until the game ends or
// 5000 plies have been played, timing move generation, make, and state classification along the
// way — a throughput smoke test for the board package.
func runStep(fen string) error {
	log.Println("============ step")
	var (
		timesGenerateMoves []time.Duration
		timesMake          []time.Duration
		timesState         []time.Duration
	)
	b := mustLoadBoard(fen)
	r := rand.New(rand.NewSource(1))

	for step := 0; step < 5000; step++ {
		t1 := time.Now()
		moves := b.GenerateLegalMoves()
		t2 := time.Now()
		timesGenerateMoves = append(timesGenerateMoves, t2.Sub(t1))
		if len(moves) == 0 {
			break
		}
		m := moves[r.Intn(len(moves))]

		t1 = time.Now()
		b.MakeMove(m)
		t2 = time.Now()
		timesMake = append(timesMake, t2.Sub(t1))

		t1 = time.Now()
		st := b.State()
		t2 = time.Now()
		timesState = append(timesState, t2.Sub(t1))

		fmt.Printf("\n===== [#%d] %s: %s\n", step/2+1, b.SideToMove().Opposite(), m.UCI())
		fmt.Println(renderBoard(b))
		fmt.Println(b.FEN())
		if st.IsTerminal() {
			break
		}
	}

	avg := func(ds []time.Duration) time.Duration {
		if len(ds) == 0 {
			return 0
		}
		var s time.Duration
		for _, d := range ds {
			s += d
		}
		return s / time.Duration(len(ds))
	}

	fmt.Println()
	fmt.Println(b.State())
	fmt.Println("genmv:", avg(timesGenerateMoves))
	fmt.Println("make: ", avg(timesMake))
	fmt.Println("state:", avg(timesState))
	return nil
}
