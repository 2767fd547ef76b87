package search

import "github.com/rookwood/corvid/board"

// quiescence extends the search beyond the nominal horizon by playing
// out captures only, until the position is "quiet" (no captures left,
// or the standing evaluation already fails high/low). This avoids the
// horizon effect where a depth-limited search stops right before a
// material exchange completes.
func (e *Engine) quiescence(b *board.Board, alpha, beta int32) (int32, bool) {
	e.nodes++
	if e.clock.poll() {
		return 0, true
	}

	standPat := evaluate(b)
	if standPat >= beta {
		return beta, false
	}
	if standPat > alpha {
		alpha = standPat
	}

	captures := orderCaptures(b.GenerateLegalCaptures())
	for _, m := range captures {
		b.MakeMove(m)
		score, stopped := e.quiescence(b, -beta, -alpha)
		score = -score
		b.UndoMove()
		if stopped {
			return 0, true
		}
		if score >= beta {
			return beta, false
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha, false
}
