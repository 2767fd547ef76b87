package search

import "github.com/rookwood/corvid/board"

// pvLine accumulates the principal variation discovered at one search
// node: the move played there followed by the best continuation
// reported by the child node searched after it.
type pvLine struct {
	moves []board.Move
}

// set records mv as this node's move, followed by child's line.
func (l *pvLine) set(mv board.Move, child pvLine) {
	l.moves = append(l.moves[:0], mv)
	l.moves = append(l.moves, child.moves...)
}

// clear empties the line, e.g. when a node produces no PV (all moves
// pruned or a leaf was returned without recursing).
func (l *pvLine) clear() {
	l.moves = l.moves[:0]
}

func (l pvLine) String() string {
	s := ""
	for i, m := range l.moves {
		if i > 0 {
			s += " "
		}
		s += m.UCI()
	}
	return s
}
