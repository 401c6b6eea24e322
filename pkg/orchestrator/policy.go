package orchestrator

import "fmt"

// wireColumnLabels mirrors the engine's flat-array column ordering.
// Independent of domain.Space's label alphabet (same characters, but the
// two grids are indexed in opposite row directions -- see indexToLabel).
const wireColumnLabels = "ABCDEFGHJKLMNOPQRST"

// indexToLabel converts a flat policy/ownership array index into the
// engine's coordinate label grammar. The engine's arrays are row-major
// from the top of the board down, the opposite of domain.Space's
// bottom-up indexing, so this is deliberately independent of
// domain.Space.Label. Grounded on
// composeanalysis/index_to_coordinate_label.py.
func indexToLabel(index, size int) string {
	if index == size*size {
		return "pass"
	}
	column := wireColumnLabels[index%size]
	row := size - index/size
	return fmt.Sprintf("%c%v", column, row)
}

// convertToPolicyMap turns the engine's flat raw policy/human_policy array
// into a label->probability map, dropping illegal-move sentinels (any
// value < -0.5, spec.md §9 "duck-typed policy map" note). Grounded on
// composeanalysis/convert_to_policy_map.py.
func convertToPolicyMap(size int, raw []float64) map[string]float64 {
	policy := make(map[string]float64, len(raw))
	for i, value := range raw {
		if value < -0.5 {
			continue
		}
		policy[indexToLabel(i, size)] = value
	}
	return policy
}
