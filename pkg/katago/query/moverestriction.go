package query

// MoveRestriction constrains one player's allowed or disallowed moves up
// to a search depth (Query's allowMoves/avoidMoves fields, spec.md §6).
// Grounded on katago/query/moverestriction.py.
type MoveRestriction struct {
	Player     Player   `json:"player"`
	UntilDepth int      `json:"untilDepth"`
	Moves      []string `json:"moves"`
}
