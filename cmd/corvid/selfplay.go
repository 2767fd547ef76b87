package main

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/rookwood/corvid/board"
	"github.com/rookwood/corvid/piece"
	"github.com/rookwood/corvid/san"
	"github.com/rookwood/corvid/search"
)

// runSelfPlay plays the engine against a random mover from fen until
// the game ends or 200 plies have been played, printing each ply's SAN and the engine's search
// stats when it is the engine's turn to move.
func runSelfPlay(fen string, maxDepth uint8, movetimeMs int64) error {
	log.Println("============ search")
	b := mustLoadBoard(fen)
	e := search.NewEngine(20)
	r := rand.New(rand.NewSource(1))

	engineSide := b.SideToMove()
	fmt.Println(renderBoard(b))
	fmt.Println(b.FEN())

	var history []string
	for ply := 1; ply <= 200; ply++ {
		if b.State().IsTerminal() {
			break
		}

		var m board.Move
		if b.SideToMove() == engineSide {
			res := e.FindBestMove(b, search.SearchConfig{MaxDepth: maxDepth, TimeLimitMs: movetimeMs})
			if res.Move.IsNone() {
				break
			}
			m = res.Move
			fmt.Printf("nodes=%d depth=%d score=%d\n", res.Nodes, res.Depth, res.Score)
		} else {
			moves := b.GenerateLegalMoves()
			m = moves[r.Intn(len(moves))]
		}

		mover := b.SideToMove()
		sanStr := san.Render(b, m)
		b.MakeMove(m)
		if mover == piece.White {
			history = append(history, fmt.Sprintf("%d.%s", ply/2+1, sanStr))
		} else {
			history = append(history, sanStr)
		}

		fmt.Printf("\n>>> ply %d: %s\n", ply, sanStr)
		fmt.Println(renderBoard(b))
		fmt.Println(b.FEN())
	}

	log.Println("=============== game ended:", b.State())
	fmt.Println(b.FEN())
	for _, s := range history {
		fmt.Print(s, " ")
	}
	fmt.Println()
	return nil
}
