package main

import (
	"fmt"
	"sort"

	"github.com/rookwood/corvid/perft"
)

// runPerft runs the shared perft package's counter/divider against
// fen, printing a per-root-move breakdown when divide is requested.
func runPerft(fen string, depth int, divide bool) error {
	b := mustLoadBoard(fen)

	if divide {
		counts := perft.Divide(b, depth)
		moves := make([]string, 0, len(counts))
		for m := range counts {
			moves = append(moves, m)
		}
		sort.Strings(moves)
		var total uint64
		for _, m := range moves {
			fmt.Printf("%s: %d\n", m, counts[m])
			total += counts[m]
		}
		fmt.Println("total:", total)
		return nil
	}

	fmt.Println(renderBoard(b))
	fmt.Println(perft.Run(b, depth))
	return nil
}
