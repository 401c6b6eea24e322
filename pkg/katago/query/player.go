// Package query builds analysis Query objects for the external engine's
// line-delimited JSON protocol (spec.md §4.F, §6).
package query

import "github.com/sadakatsu/go-performance-quality/pkg/domain"

// Player is the wire encoding of a stone color: "B" or "W".
type Player string

const (
	PlayerBlack Player = "B"
	PlayerWhite Player = "W"
)

// PlayerOf converts a domain.Color to its wire Player. Panics if c is
// neither Black nor White.
func PlayerOf(c domain.Color) Player {
	switch c {
	case domain.Black:
		return PlayerBlack
	case domain.White:
		return PlayerWhite
	default:
		panic("query: PlayerOf called on a non-stone color")
	}
}

// Color converts a wire Player back to a domain.Color.
func (p Player) Color() domain.Color {
	if p == PlayerBlack {
		return domain.Black
	}
	return domain.White
}

func (p Player) String() string { return string(p) }
