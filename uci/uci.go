// Package uci implements the line-oriented command dispatcher that
// drives the engine from a text protocol modeled on UCI.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rookwood/corvid/board"
	"github.com/rookwood/corvid/piece"
	"github.com/rookwood/corvid/search"
	"github.com/rookwood/corvid/square"
)

// EngineName/EngineAuthor answer the "uci" command's identification
// lines.
var (
	EngineName   = "Corvid"
	EngineAuthor = "rookwood"
)

const (
	defaultHashTableSizePow uint8 = 20
	defaultSearchDepth      uint8 = 6
	movetimeMaxDepth        uint8 = 64
)

type options struct {
	debug         bool
	hashTableSize uint8
}

var defaultOptions = options{
	debug:         false,
	hashTableSize: defaultHashTableSizePow,
}

// Interface owns one board and one search engine for the lifetime of
// the dispatcher; both are replaced wholesale on "ucinewgame".
type Interface struct {
	board   *board.Board
	engine  *search.Engine
	options options

	out io.Writer
}

// NewInterface builds a dispatcher writing replies to out.
func NewInterface(out io.Writer) *Interface {
	i := &Interface{options: defaultOptions, out: out}
	i.reset()
	return i
}

// Run reads commands from in until the stream ends or "quit" is seen.
func (i *Interface) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		args := strings.Fields(line)
		switch args[0] {
		case "uci":
			i.commandUCI()
		case "isready":
			i.println("readyok")
		case "ucinewgame":
			i.reset()
		case "setoption":
			i.commandSetOption(args[1:])
		case "position":
			i.commandPosition(args[1:])
		case "d":
			i.commandDraw()
		case "go":
			i.commandGo(args[1:])
		case "stop":
			// Search is synchronous and already returned by the time
			// stop could arrive on this line-at-a-time reader, so
			// there is nothing to cancel: advisory no-op.
		case "quit":
			return nil
		default:
			// UnknownCommand: ignored silently, per convention.
		}
	}
	return scanner.Err()
}

func (i *Interface) commandUCI() {
	i.println(fmt.Sprintf("id name %s", EngineName))
	i.println(fmt.Sprintf("id author %s", EngineAuthor))
	i.println(fmt.Sprintf("option name Debug type check default %v", defaultOptions.debug))
	i.println(fmt.Sprintf("option name Hash type spin default %d min 16 max 24", defaultOptions.hashTableSize))
	i.println("uciok")
}

func (i *Interface) commandSetOption(args []string) {
	if len(args) < 4 || args[0] != "name" || args[2] != "value" {
		return
	}
	switch name, valueStr := strings.ToLower(args[1]), args[3]; name {
	case "debug":
		if v, err := strconv.ParseBool(valueStr); err == nil {
			i.options.debug = v
		}
	case "hash":
		if v, err := strconv.ParseUint(valueStr, 10, 8); err == nil && v >= 16 && v <= 24 {
			i.options.hashTableSize = uint8(v)
			i.engine = search.NewEngine(i.options.hashTableSize)
			if i.options.debug {
				i.engine.Logger = func(s string) { i.println(s) }
			}
		}
	}
}

// commandPosition implements "position startpos|fen ... [moves ...]":
// load the base position, then apply each UCI move token in order,
// stopping at the first one that is not legal in the resulting
// position.
func (i *Interface) commandPosition(args []string) {
	if len(args) == 0 {
		return
	}

	var fen string
	rest := args[1:]
	switch args[0] {
	case "startpos":
		fen = board.DefaultStartingPositionFEN
	case "fen":
		if len(rest) < 6 {
			return
		}
		fen = strings.Join(rest[:6], " ")
		rest = rest[6:]
	default:
		return
	}

	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return
	}
	i.board = b

	if len(rest) > 0 && rest[0] == "moves" {
		for _, token := range rest[1:] {
			m, ok := findLegalMove(i.board, token)
			if !ok {
				break
			}
			i.board.MakeMove(m)
		}
	}
}

// findLegalMove parses a UCI move token and matches it against the
// board's legal moves, since the token alone (e.g. "e7e8q") does not
// carry whether it is a capture, en passant, or castle.
func findLegalMove(b *board.Board, token string) (board.Move, bool) {
	if len(token) < 4 {
		return board.Move{}, false
	}
	from, err := square.NewFromNotation(token[0:2])
	if err != nil {
		return board.Move{}, false
	}
	to, err := square.NewFromNotation(token[2:4])
	if err != nil {
		return board.Move{}, false
	}
	var promo piece.Type
	if len(token) == 5 {
		switch token[4] {
		case 'q':
			promo = piece.Queen
		case 'r':
			promo = piece.Rook
		case 'b':
			promo = piece.Bishop
		case 'n':
			promo = piece.Knight
		default:
			return board.Move{}, false
		}
	}
	for _, m := range b.GenerateLegalMoves() {
		if m.From != from || m.To != to {
			continue
		}
		if m.IsPromotion() && m.Promotion.Type() != promo {
			continue
		}
		if !m.IsPromotion() && promo != piece.TypeNone {
			continue
		}
		return m, true
	}
	return board.Move{}, false
}

func (i *Interface) commandDraw() {
	if i.board == nil {
		return
	}
	i.println(i.board.Dump())
}

// commandGo implements "go [depth N] [movetime M]": depth caps
// iterative deepening; movetime sets an absolute time budget and caps
// depth at movetimeMaxDepth; with neither, depth defaults to 6.
func (i *Interface) commandGo(args []string) {
	if i.board == nil {
		return
	}

	cfg := search.SearchConfig{MaxDepth: defaultSearchDepth}
	haveDepth, haveMovetime := false, false
	for idx := 0; idx < len(args); idx++ {
		switch args[idx] {
		case "depth":
			if idx+1 >= len(args) {
				continue
			}
			idx++
			if v, err := strconv.Atoi(args[idx]); err == nil && v > 0 {
				cfg.MaxDepth = uint8(v)
				haveDepth = true
			}
		case "movetime":
			if idx+1 >= len(args) {
				continue
			}
			idx++
			if v, err := strconv.ParseInt(args[idx], 10, 64); err == nil && v > 0 {
				cfg.TimeLimitMs = v
				cfg.UseAbsoluteTime = true
				haveMovetime = true
			}
		}
	}
	if haveMovetime && !haveDepth {
		cfg.MaxDepth = movetimeMaxDepth
	}

	if len(i.board.GenerateLegalMoves()) == 0 {
		i.println("bestmove 0000")
		return
	}

	res := i.engine.FindBestMove(i.board, cfg)
	if res.Move.IsNone() {
		i.println("bestmove 0000")
		return
	}
	i.println(fmt.Sprintf("bestmove %s", res.Move.UCI()))
}

func (i *Interface) reset() {
	i.board, _ = board.NewBoard(board.WithFEN(board.DefaultStartingPositionFEN))
	i.engine = search.NewEngine(i.options.hashTableSize)
	if i.options.debug {
		i.engine.Logger = func(s string) { i.println(s) }
	}
}

func (i *Interface) println(args ...any) {
	fmt.Fprintln(i.out, args...)
}
