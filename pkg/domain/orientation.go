package domain

// Orientation is one element of the dihedral group D4 acting on board
// coordinates: 4 rotations and 4 reflections (spec.md §3, §4.D). Grounded
// on domain/orientation.py's function-pair-per-ordinal table.
type Orientation struct {
	ordinal    int
	name       string
	nextColumn func(c Coordinate, size int) int
	nextRow    func(c Coordinate, size int) int
	undo       int // ordinal of the inverse orientation
}

// Ordinal returns this Orientation's stable position in Orientations,
// used to break canonical-orientation ties (spec.md §4.D).
func (o Orientation) Ordinal() int {
	return o.ordinal
}

func (o Orientation) String() string {
	return o.name
}

// Transform maps a Move under this Orientation. Pass maps to itself.
func (o Orientation) Transform(m Move, space Space) Move {
	c, ok := m.Coordinate()
	if !ok {
		return m
	}
	return CoordMove(Coordinate{
		Column: o.nextColumn(c, space.Size),
		Row:    o.nextRow(c, space.Size),
	})
}

// Undo maps a Move back through this Orientation: Transform's inverse.
// Self-inverse for every orientation except RotateLeft/RotateRight, which
// undo through each other.
func (o Orientation) Undo(m Move, space Space) Move {
	return Orientations[o.undo].Transform(m, space)
}

func identityColumn(c Coordinate, size int) int   { return c.Column }
func identityRow(c Coordinate, size int) int      { return c.Row }
func oppositeColumn(c Coordinate, size int) int   { return size - 1 - c.Column }
func oppositeRow(c Coordinate, size int) int      { return size - 1 - c.Row }
func diagonalColumn(c Coordinate, size int) int   { return c.Row }
func diagonalRow(c Coordinate, size int) int      { return c.Column }
func antiDiagColumn(c Coordinate, size int) int   { return size - 1 - c.Row }
func antiDiagRow(c Coordinate, size int) int      { return size - 1 - c.Column }

const (
	OrdinalUnchanged = iota
	OrdinalMirrorHorizontal
	OrdinalMirrorVertical
	OrdinalRotate180
	OrdinalMirrorLeftDiagonal
	OrdinalRotateLeft
	OrdinalRotateRight
	OrdinalMirrorRightDiagonal
)

// Orientations holds all 8 elements of D4, indexed by ordinal. Use
// OrientationByOrdinal to look one up safely.
var Orientations = [8]Orientation{
	{ordinal: OrdinalUnchanged, name: "UNCHANGED", nextColumn: identityColumn, nextRow: identityRow, undo: OrdinalUnchanged},
	{ordinal: OrdinalMirrorHorizontal, name: "MIRROR_HORIZONTAL", nextColumn: oppositeColumn, nextRow: identityRow, undo: OrdinalMirrorHorizontal},
	{ordinal: OrdinalMirrorVertical, name: "MIRROR_VERTICAL", nextColumn: identityColumn, nextRow: oppositeRow, undo: OrdinalMirrorVertical},
	{ordinal: OrdinalRotate180, name: "ROTATE_180", nextColumn: oppositeColumn, nextRow: oppositeRow, undo: OrdinalRotate180},
	{ordinal: OrdinalMirrorLeftDiagonal, name: "MIRROR_LEFT_DIAGONAL", nextColumn: diagonalColumn, nextRow: diagonalRow, undo: OrdinalMirrorLeftDiagonal},
	{ordinal: OrdinalRotateLeft, name: "ROTATE_LEFT", nextColumn: antiDiagColumn, nextRow: diagonalRow, undo: OrdinalRotateRight},
	{ordinal: OrdinalRotateRight, name: "ROTATE_RIGHT", nextColumn: diagonalColumn, nextRow: antiDiagRow, undo: OrdinalRotateLeft},
	{ordinal: OrdinalMirrorRightDiagonal, name: "MIRROR_RIGHT_DIAGONAL", nextColumn: antiDiagColumn, nextRow: antiDiagRow, undo: OrdinalMirrorRightDiagonal},
}

// OrientationByOrdinal returns the Orientation for ordinal, or
// ErrOutOfRange if ordinal is not in [0,8).
func OrientationByOrdinal(ordinal int) (Orientation, error) {
	if ordinal < 0 || ordinal >= len(Orientations) {
		return Orientation{}, ErrOutOfRange
	}
	return Orientations[ordinal], nil
}
