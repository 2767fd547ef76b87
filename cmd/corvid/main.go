// Command corvid is the process entry point: a UCI-style dispatcher
// by default, plus interactive debug modes (movegen, step, self-play)
// and a standalone perft driver, carried over from the teacher's
// cmd/gambit debug tooling.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/rookwood/corvid/board"
	"github.com/rookwood/corvid/uci"
)

const (
	exitOK  = 0
	exitErr = 1
)

var (
	runUCI = flag.Bool("uci", false, "run the UCI dispatcher on stdin/stdout")

	perftDepth  = flag.Int("perft", -1, "run perft to the given depth and exit")
	perftDivide = flag.Bool("perft.divide", false, "report perft's per-root-move breakdown")

	movegenRun  = flag.Bool("movegen", false, "run movegen debug mode")
	movegenDraw = flag.Bool("movegen.draw", false, "draw the board after applying each move")

	stepRun = flag.Bool("step", false, "run random self-play step mode")

	searchRun      = flag.Bool("search", false, "run engine-vs-random self-play mode")
	searchMaxDepth = flag.Int("search.maxdepth", 6, "search max depth in search mode")
	searchMovetime = flag.Int("search.movetime", 2000, "search movetime in milliseconds in search mode")
)

func main() {
	flag.Parse()

	if err := realMain(flag.Args()); err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func realMain(args []string) error {
	fen := board.DefaultStartingPositionFEN
	if len(args) > 0 {
		fen = strings.Join(args, " ")
	}

	switch {
	case *perftDepth >= 0:
		return runPerft(fen, *perftDepth, *perftDivide)
	case *movegenRun:
		return runMovegen(fen, *movegenDraw)
	case *stepRun:
		return runStep(fen)
	case *searchRun:
		return runSelfPlay(fen, uint8(*searchMaxDepth), int64(*searchMovetime))
	case *runUCI:
		fallthrough
	default:
		return uci.NewInterface(os.Stdout).Run(os.Stdin)
	}
}

func mustLoadBoard(fen string) *board.Board {
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid fen, falling back to start position:", err)
		b, _ = board.NewBoard(board.WithFEN(board.DefaultStartingPositionFEN))
	}
	return b
}
