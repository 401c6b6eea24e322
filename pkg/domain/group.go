package domain

// Group is the flood-filled connected set of intersections reachable from
// a seed Coordinate under the "same color, or both count as liberty"
// adjacency rule (spec.md §4.C). It also doubles as a "pseudo-group" of
// contiguous empty/unplayable space when seeded on such a cell.
type Group struct {
	color                      Color
	members                    map[Coordinate]struct{}
	liberties                  int
	bordersBlack, bordersWhite bool
}

// NewGroup runs a breadth-first flood fill from start over b, sized to the
// board's N^2 intersections, grounded on domain/group.py's preallocated
// queue/seen arrays.
func NewGroup(b *Board, start Coordinate) *Group {
	space := b.space
	n := space.Size * space.Size

	seedColor := b.Get(start)

	queue := make([]Coordinate, n)
	queue[0] = start
	seen := make([]bool, n)
	seenColor := make([]Color, n)
	seen[space.Index(start)] = true
	seenColor[space.Index(start)] = seedColor

	members := map[Coordinate]struct{}{}
	liberties := 0
	bordersBlack := false
	bordersWhite := false

	i, end := 0, 1
	for i < end {
		current := queue[i]
		currentColor := seenColor[space.Index(current)]

		if seedColor == currentColor || (seedColor.CountsAsLiberty() && currentColor.CountsAsLiberty()) {
			members[current] = struct{}{}
			for _, neighbor := range space.Neighbors(current) {
				ni := space.Index(neighbor)
				if !seen[ni] {
					seen[ni] = true
					seenColor[ni] = b.Get(neighbor)
					queue[end] = neighbor
					end++
				}
			}
		} else if currentColor.CountsAsLiberty() {
			liberties++
		} else if currentColor == Black {
			bordersBlack = true
		} else if currentColor == White {
			bordersWhite = true
		}

		i++
	}

	color := seedColor
	if color == TemporarilyUnplayable {
		color = Empty
	}

	return &Group{
		color:        color,
		members:      members,
		liberties:    liberties,
		bordersBlack: bordersBlack,
		bordersWhite: bordersWhite,
	}
}

// Color returns the group's color (TemporarilyUnplayable collapses to
// Empty).
func (g *Group) Color() Color {
	return g.color
}

// Liberties returns the number of distinct liberty points bordering the
// group.
func (g *Group) Liberties() int {
	return g.liberties
}

// BordersBlack reports whether any Black stone borders the group.
func (g *Group) BordersBlack() bool {
	return g.bordersBlack
}

// BordersWhite reports whether any White stone borders the group.
func (g *Group) BordersWhite() bool {
	return g.bordersWhite
}

// Members returns a fresh copy of the group's member set.
func (g *Group) Members() map[Coordinate]struct{} {
	ret := make(map[Coordinate]struct{}, len(g.members))
	for c := range g.members {
		ret[c] = struct{}{}
	}
	return ret
}

// Len returns the number of members in the group.
func (g *Group) Len() int {
	return len(g.members)
}

// Equals reports whether two Groups have identical color, liberties,
// border flags and membership (spec.md §3: "equal iff all five fields
// match").
func (g *Group) Equals(rhs *Group) bool {
	if g.color != rhs.color || g.liberties != rhs.liberties ||
		g.bordersBlack != rhs.bordersBlack || g.bordersWhite != rhs.bordersWhite ||
		len(g.members) != len(rhs.members) {
		return false
	}
	for c := range g.members {
		if _, ok := rhs.members[c]; !ok {
			return false
		}
	}
	return true
}
