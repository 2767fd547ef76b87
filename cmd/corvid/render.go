package main

import (
	"strings"

	"github.com/fatih/color"

	"github.com/rookwood/corvid/board"
	"github.com/rookwood/corvid/piece"
	"github.com/rookwood/corvid/square"
)

// squareStyle returns the combined-attribute color for one square:
// background alternates by square shade, foreground distinguishes
// White from Black pieces (or stays neutral for an empty square).
func squareStyle(light bool, p piece.Piece) *color.Color {
	bg := color.BgBlack
	if light {
		bg = color.BgWhite
	}
	fg := color.FgHiBlack
	if light {
		fg = color.FgBlack
	}
	if p != piece.None {
		if p.Color() == piece.White {
			fg = color.FgHiWhite
		} else {
			fg = color.FgHiRed
		}
		return color.New(bg, fg, color.Bold)
	}
	return color.New(bg, fg)
}

// renderBoard draws b as an 8x8 colorized grid, rank 8 at the top,
// using the terminal's background color to alternate square shading
// and foreground color to distinguish White from Black pieces.
func renderBoard(b *board.Board) string {
	var sb strings.Builder
	for rank := square.Rank8; rank >= square.Rank1; rank-- {
		sb.WriteString(string(rune('1' + rank)))
		sb.WriteByte(' ')
		for file := square.FileA; file <= square.FileH; file++ {
			sq := square.New(file, rank)
			p := b.PieceAt(sq)
			glyph := " . "
			if p != piece.None {
				glyph = " " + p.SymbolFEN() + " "
			}
			light := (int(file)+int(rank))%2 != 0
			sb.WriteString(squareStyle(light, p).Sprint(glyph))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a  b  c  d  e  f  g  h\n")
	return sb.String()
}
