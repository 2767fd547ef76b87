package main

import (
	"fmt"
	"log"
	"strconv"
)

// runMovegen dumps the legal moves available from fen, and optionally
// draws the resulting board after applying each one in turn.
func runMovegen(fen string, draw bool) error {
	log.Println("============ movegen")
	b := mustLoadBoard(fen)

	fmt.Println("to move:", b.SideToMove())
	fmt.Println(renderBoard(b))
	fmt.Println(b.FEN())
	fmt.Println(b.State())

	moves := b.GenerateLegalMoves()
	width := len(strconv.Itoa(len(moves)))
	for i, m := range moves {
		fmt.Printf("option %*d: %s moving=%s from=%s to=%s cap=%v enp=%v castle=%v promo=%v\n",
			width, i+1, m.UCI(), m.Moving, m.From, m.To, m.IsCapture(), m.IsEnPassant(), m.IsCastle(), m.IsPromotion())
	}

	if draw {
		for _, m := range moves {
			b.MakeMove(m)
			fmt.Println(m.UCI())
			fmt.Println(renderBoard(b))
			fmt.Println(b.FEN())
			b.UndoMove()
		}
	}
	return nil
}
