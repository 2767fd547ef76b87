package search

import "github.com/rookwood/corvid/board"

// boundType classifies how a stored score relates to the window it
// was produced with.
type boundType uint8

const (
	boundNone boundType = iota
	boundExact
	boundLower
	boundUpper
)

// ttEntry is one transposition table slot. Hash is kept alongside the
// score/move/depth in the same value so a direct-mapped slot can be
// verified with a single equality check; this is a flat struct rather
// than a pointer so the table is one contiguous allocation.
type ttEntry struct {
	hash  uint64
	move  board.Move
	score int32
	depth uint8
	bound boundType
}

// defaultHashTableSizePow is the default table size as a power of two
// (2^20 entries), matching the fixed pre-allocated sizing called for
// in place of a dynamically growing map.
const defaultHashTableSizePow = 20

// transpositionTable is a fixed-size, direct-mapped cache of search
// results keyed by Zobrist hash. It is cleared at the start of every
// FindBestMove call; entries do not survive across searches.
type transpositionTable struct {
	entries []ttEntry
	mask    uint64
}

func newTranspositionTable(sizePow uint8) *transpositionTable {
	n := uint64(1) << sizePow
	return &transpositionTable{
		entries: make([]ttEntry, n),
		mask:    n - 1,
	}
}

func (t *transpositionTable) clear() {
	for i := range t.entries {
		t.entries[i] = ttEntry{}
	}
}

// store records a result for hash, overwriting the occupying slot
// unless it already holds this same position searched to a depth
// deeper than the incoming one (depth-preferred replacement) — a
// different position in the slot is always overwritten.
func (t *transpositionTable) store(hash uint64, depth uint8, score int32, bound boundType, mv board.Move, ply uint8) {
	e := &t.entries[hash&t.mask]
	if e.hash == hash && e.hash != 0 && e.depth > depth {
		return
	}
	e.hash = hash
	e.move = mv
	e.score = normalizeMateToNode(score, ply)
	e.depth = depth
	e.bound = bound
}

// probe looks up hash, returning the stored entry (with its mate score
// un-normalized back to distance-from-root) and true on a hit.
func (t *transpositionTable) probe(hash uint64, ply uint8) (ttEntry, bool) {
	e := t.entries[hash&t.mask]
	if e.hash != hash || e.bound == boundNone {
		return ttEntry{}, false
	}
	e.score = normalizeMateFromNode(e.score, ply)
	return e, true
}

// mateScoreThreshold marks scores close enough to MateValue that they
// encode a forced mate rather than a material/positional evaluation;
// such scores need ply-relative normalization to remain valid across
// different search depths and TT reuse.
const mateScoreThreshold = MateValue - 1024

// normalizeMateToNode converts a mate score expressed as
// distance-from-root into distance-from-the-storing-node, so that the
// same entry remains meaningful when probed from a different ply.
func normalizeMateToNode(score int32, ply uint8) int32 {
	switch {
	case score >= mateScoreThreshold:
		return score + int32(ply)
	case score <= -mateScoreThreshold:
		return score - int32(ply)
	default:
		return score
	}
}

// normalizeMateFromNode is the inverse of normalizeMateToNode, applied
// on probe to restore a distance-from-root mate score.
func normalizeMateFromNode(score int32, ply uint8) int32 {
	switch {
	case score >= mateScoreThreshold:
		return score - int32(ply)
	case score <= -mateScoreThreshold:
		return score + int32(ply)
	default:
		return score
	}
}
