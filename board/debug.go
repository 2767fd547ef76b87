package board

import (
	"fmt"
	"strings"

	"github.com/rookwood/corvid/piece"
	"github.com/rookwood/corvid/square"
)

// Dump renders the board as an 8x8 text grid with file/rank labels,
// for debug logging and the CLI's interactive inspection mode.
func (b *Board) Dump() string {
	var sb strings.Builder
	for i := 0; i < 8; i++ {
		rank := square.Rank8 - square.Square(i)
		fmt.Fprintf(&sb, " %d |", rank+1)
		for file := square.FileA; file <= square.FileH; file++ {
			p := b.cells[square.New(file, rank)]
			sym := "."
			if p != piece.None {
				sym = p.SymbolFEN()
			}
			fmt.Fprintf(&sb, " %s ", sym)
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("    ------------------------\n    ")
	for file := square.FileA; file <= square.FileH; file++ {
		fmt.Fprintf(&sb, " %s ", string(rune('a'+file)))
	}
	return sb.String()
}

func (b *Board) String() string {
	return b.FEN()
}
