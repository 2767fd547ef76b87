package search

import (
	"github.com/rookwood/corvid/board"
	"github.com/rookwood/corvid/eval"
	"github.com/rookwood/corvid/piece"
)

// negamax is the alpha-beta search core. ply is the distance from the
// search root (used for mate-score normalization and killer/history
// indexing); prevMove is the move that led to b's current position,
// used to detect recaptures for extensions and late-move reduction. It returns
// the score from the side-to-move's perspective, the principal
// variation rooted at this node, and whether the clock expired before
// the node finished (in which case score/pv are meaningless and the
// caller must not use them).
func (e *Engine) negamax(b *board.Board, depth uint8, ply uint8, alpha, beta int32, prevMove board.Move) (int32, pvLine, bool) {
	e.nodes++
	if e.clock.poll() {
		return 0, pvLine{}, true
	}

	if depth == 0 {
		score, stopped := e.quiescence(b, alpha, beta)
		return score, pvLine{}, stopped
	}

	if e.isRepeated(b, ply) {
		return 0, pvLine{}, false
	}

	hash := b.ZobristKey()
	origAlpha := alpha
	var ttMove board.Move
	if entry, ok := e.tt.probe(hash, ply); ok {
		ttMove = entry.move
		if entry.depth >= depth {
			switch entry.bound {
			case boundExact:
				var pv pvLine
				if !entry.move.IsNone() {
					pv.moves = []board.Move{entry.move}
				}
				return entry.score, pv, false
			case boundLower:
				if entry.score > alpha {
					alpha = entry.score
				}
			case boundUpper:
				if entry.score < beta {
					beta = entry.score
				}
			}
			if alpha >= beta {
				var pv pvLine
				if !entry.move.IsNone() {
					pv.moves = []board.Move{entry.move}
				}
				return entry.score, pv, false
			}
		}
	}

	us := b.SideToMove()
	inCheck := b.IsInCheck(us)

	if !inCheck && depth >= 3 && sideHasNonPawnMaterial(b, us) {
		b.MakeNullMove()
		e.pathHashes[ply+1] = b.ZobristKey()
		reduced := depth - (nullMoveReduction + 1)
		score, _, stopped := e.negamax(b, reduced, ply+1, -beta, -beta+1, board.Move{})
		score = -score
		b.UndoNullMove()
		if stopped {
			return 0, pvLine{}, true
		}
		if score >= beta {
			return beta, pvLine{}, false
		}
	}

	moves := b.GenerateLegalMoves()
	if len(moves) == 0 {
		if inCheck {
			return -(MateValue - int32(ply)), pvLine{}, false
		}
		return 0, pvLine{}, false
	}

	ordered := orderMoves(moves, ttMove, e.killers[ply], &e.history, us)
	bestScore := -ScoreInfinite
	var bestMove board.Move
	var bestChild pvLine

	for i, sm := range ordered {
		m := sm.move
		b.MakeMove(m)
		e.pathHashes[ply+1] = b.ZobristKey()
		givesCheck := b.IsInCheck(b.SideToMove())

		extension := uint8(0)
		if givesCheck || isPassedPawnPush(b, m) || isRecapture(m, prevMove) {
			extension = 1
		}

		newDepth := depth - 1 + extension

		quiet := !m.IsCapture() && !m.IsPromotion()
		reduced := false
		if quiet && depth >= lmrMinDepth && i >= lmrMinMoveIndex && extension == 0 &&
			!givesCheck && !isRecapture(m, prevMove) && m != ttMove && newDepth > 0 {
			newDepth--
			reduced = true
		}

		score, childPV, stopped := e.negamax(b, newDepth, ply+1, -beta, -alpha, m)
		score = -score

		if !stopped && reduced && score > alpha {
			score, childPV, stopped = e.negamax(b, depth-1+extension, ply+1, -beta, -alpha, m)
			score = -score
		}

		b.UndoMove()
		if stopped {
			return 0, pvLine{}, true
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
			bestChild = childPV
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			if quiet {
				updateKillers(&e.killers[ply], m)
				e.history[us][m.From][m.To] += int32(depth) * int32(depth)
			}
			break
		}
	}

	bound := boundExact
	switch {
	case bestScore <= origAlpha:
		bound = boundUpper
	case bestScore >= beta:
		bound = boundLower
	}
	e.tt.store(hash, depth, bestScore, bound, bestMove, ply)

	var pv pvLine
	pv.set(bestMove, bestChild)
	return bestScore, pv, false
}

// isRepeated reports whether the position at ply has recurred at
// least twice earlier along the current search path, mirroring a
// threefold repetition within the search tree itself (find_best_move
// has no access to the game's pre-search history, so only
// repetitions introduced by the search's own moves are detected).
func (e *Engine) isRepeated(b *board.Board, ply uint8) bool {
	hash := b.ZobristKey()
	count := 0
	for i := uint8(0); i < ply && i < maxPly; i++ {
		if e.pathHashes[i] == hash {
			count++
		}
	}
	return count >= 2
}

func sideHasNonPawnMaterial(b *board.Board, c piece.Color) bool {
	for _, t := range [...]piece.Type{piece.Knight, piece.Bishop, piece.Rook, piece.Queen} {
		if b.PieceCount(c, t) > 0 {
			return true
		}
	}
	return false
}

func isRecapture(m, prevMove board.Move) bool {
	return !prevMove.IsNone() && m.IsCapture() && m.To == prevMove.To
}

func isPassedPawnPush(b *board.Board, m board.Move) bool {
	if m.Moving.Type() != piece.Pawn {
		return false
	}
	return eval.IsPassedPawn(b, m.To, m.Moving.Color())
}
