// Package symmetry folds engine-reported symmetric moves together and
// offers a board-geometry notion of move equivalence via canonical codes
// (spec.md §4.H).
package symmetry

import (
	"github.com/sadakatsu/go-performance-quality/pkg/domain"
	"github.com/sadakatsu/go-performance-quality/pkg/katago/response"
)

// FoldSymmetries groups a SuccessResponse's MoveInfos by their
// engine-reported isSymmetryOf back-reference: kept holds one
// representative MoveInfo per equivalence class (in original order),
// moveToInfo maps every move label (representative or not) to its
// representative's MoveInfo, and symmetries maps every move label to the
// full set of labels in its class. Grounded on
// composeanalysis/handle_symmetries_in_search.py.
func FoldSymmetries(moveInfos []response.MoveInfo) (kept []response.MoveInfo, moveToInfo map[string]response.MoveInfo, symmetries map[string]map[string]struct{}) {
	moveToInfo = map[string]response.MoveInfo{}
	symmetries = map[string]map[string]struct{}{}

	for _, mi := range moveInfos {
		move := mi.Move
		if mi.IsSymmetryOf != nil {
			rep := *mi.IsSymmetryOf
			entry, ok := symmetries[rep]
			if !ok {
				entry = map[string]struct{}{rep: {}}
				symmetries[rep] = entry
			}
			entry[move] = struct{}{}
			symmetries[move] = entry
			moveToInfo[move] = moveToInfo[rep]
		} else {
			if _, ok := symmetries[move]; !ok {
				symmetries[move] = map[string]struct{}{move: {}}
			}
			moveToInfo[move] = mi
			kept = append(kept, mi)
		}
	}
	return kept, moveToInfo, symmetries
}

// CanonicalEquivalenceClasses groups every legal move from g by the
// canonical code of the position it produces: an orientation-based move
// equivalence derived from board geometry rather than the engine's own
// isSymmetryOf reporting (spec.md §4.D, §4.H). Illegal moves (there
// should be none among LegalMoves) are skipped rather than erroring.
func CanonicalEquivalenceClasses(g *domain.Game) map[string][]domain.Move {
	classes := map[string][]domain.Move{}
	for move := range g.LegalMoves() {
		next, err := g.Play(move)
		if err != nil {
			continue
		}
		code := next.CanonicalCode()
		classes[code] = append(classes[code], move)
	}
	return classes
}
