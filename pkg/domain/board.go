package domain

import "fmt"

// Board is a dense grid of Colors plus an incrementally maintained
// Zobrist hash (spec.md §3, §4.B). A Board is mutable only until
// published; Lock prevents any further Set, matching the spec's
// "immutable-by-convention snapshot" requirement and morlock's own
// Fork-then-mutate Board idiom (pkg/board/board.go).
type Board struct {
	space  Space
	zt     *ZobristTable
	cells  []Color
	hash   ZobristHash
	locked bool
}

// NewBoard returns an empty Board of the given Space, using zt for hash
// maintenance.
func NewBoard(space Space, zt *ZobristTable) *Board {
	return &Board{
		space: space,
		zt:    zt,
		cells: make([]Color, space.Size*space.Size),
	}
}

// Fork returns an unlocked, independent copy of the Board suitable for
// further mutation -- the analogue of morlock's Board.Fork.
func (b *Board) Fork() *Board {
	cells := make([]Color, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		space: b.space,
		zt:    b.zt,
		cells: cells,
		hash:  b.hash,
	}
}

// Get returns the Color at c.
func (b *Board) Get(c Coordinate) Color {
	return b.cells[b.space.Index(c)]
}

// Set places the given Color at c. Panics if the Board is locked: a locked
// Board is a published snapshot and must never be mutated again.
func (b *Board) Set(c Coordinate, color Color) {
	if b.locked {
		panic("domain: Set called on a locked Board")
	}

	index := b.space.Index(c)
	old := b.cells[index]
	if old == color {
		return
	}

	b.hash ^= b.zt.constant(index, old)
	b.hash ^= b.zt.constant(index, color)
	b.cells[index] = color
}

// Lock publishes the Board. Once locked it is immutable by convention and
// safe to share across goroutines without synchronization.
func (b *Board) Lock() {
	b.locked = true
}

// Locked reports whether the Board has been published.
func (b *Board) Locked() bool {
	return b.locked
}

// ZobristHash returns the Board's current hash.
func (b *Board) ZobristHash() ZobristHash {
	return b.hash
}

// IsSameAs reports whether two Boards have identical contents. Used to
// defeat Zobrist hash collisions before trusting a ko-rule match
// (spec.md §4.E).
func (b *Board) IsSameAs(other *Board) bool {
	if b.space != other.space || len(b.cells) != len(other.cells) {
		return false
	}
	for i, c := range b.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}

// GetCodeFor encodes the board in row-major order under the given
// Orientation, using the alphabet Empty->'.', Black->'X', White->'O'.
// TemporarilyUnplayable encodes as Empty (spec.md §4.B).
func (b *Board) GetCodeFor(o Orientation) string {
	buf := make([]byte, 0, len(b.cells))
	for _, c := range b.space.All() {
		transformed := o.Transform(CoordMove(c), b.space)
		tc, _ := transformed.Coordinate()
		buf = append(buf, encodeCell(b.Get(tc)))
	}
	return string(buf)
}

func encodeCell(c Color) byte {
	switch c {
	case Black:
		return 'X'
	case White:
		return 'O'
	default:
		return '.'
	}
}

// CanonicalCode returns the lexicographically smallest encoding of the
// board over all 8 dihedral orientations.
func (b *Board) CanonicalCode() string {
	code, _ := b.canonicalCodeAndOrientation()
	return code
}

// CanonicalOrientation returns the orientation producing CanonicalCode,
// breaking ties by orientation ordinal (spec.md §4.D).
func (b *Board) CanonicalOrientation() Orientation {
	_, o := b.canonicalCodeAndOrientation()
	return o
}

func (b *Board) canonicalCodeAndOrientation() (string, Orientation) {
	best := b.GetCodeFor(Orientations[0])
	bestOrientation := Orientations[0]
	for _, o := range Orientations[1:] {
		code := b.GetCodeFor(o)
		if code < best {
			best = code
			bestOrientation = o
		}
	}
	return best, bestOrientation
}

func (b *Board) String() string {
	return fmt.Sprintf("Board[%vx%v, hash=%016x]\n%v", b.space.Size, b.space.Size, uint64(b.hash), b.render())
}

func (b *Board) render() string {
	buf := make([]byte, 0, len(b.cells)+b.space.Size)
	for row := b.space.Size - 1; row >= 0; row-- {
		for column := 0; column < b.space.Size; column++ {
			c, _ := b.space.Get(column, row)
			buf = append(buf, encodeCellDisplay(b.Get(c)))
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

func encodeCellDisplay(c Color) byte {
	switch c {
	case Black:
		return 'X'
	case White:
		return 'O'
	case TemporarilyUnplayable:
		return '#'
	default:
		return '.'
	}
}
