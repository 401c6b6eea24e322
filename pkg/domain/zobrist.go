package domain

import "math/rand"

// ZobristHash is an incrementally-maintained position fingerprint: the XOR
// of a fixed per-(cell, color) random constant over every occupied cell.
// TemporarilyUnplayable cells never contribute (spec.md §3, §4.B).
//
// See also: https://research.cs.wisc.edu/techreports/1970/TR88.pdf.
type ZobristHash uint64

// ZobristTable is the pseudo-randomized constant table a Board XORs into
// its hash on every Set. NewGame builds one table per root Game, and every
// Board and successor Game of that lineage shares it, the direct analogue
// of morlock's board.ZobristTable shared across a search tree.
type ZobristTable struct {
	space  Space
	blacks []ZobristHash
	whites []ZobristHash
}

// NewZobristTable builds a table for the given Space, seeded
// deterministically so replays of the same game are reproducible.
func NewZobristTable(space Space, seed int64) *ZobristTable {
	n := space.Size * space.Size
	t := &ZobristTable{
		space:  space,
		blacks: make([]ZobristHash, n),
		whites: make([]ZobristHash, n),
	}

	r := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		t.blacks[i] = ZobristHash(r.Uint64())
		t.whites[i] = ZobristHash(r.Uint64())
	}
	return t
}

// constant returns the random value for placing/removing the given color
// at the given cell index. Empty and TemporarilyUnplayable contribute
// nothing.
func (t *ZobristTable) constant(index int, c Color) ZobristHash {
	switch c {
	case Black:
		return t.blacks[index]
	case White:
		return t.whites[index]
	default:
		return 0
	}
}
