package orchestrator

import (
	"context"
	"math"
	"time"

	"github.com/seekerror/logw"

	"github.com/sadakatsu/go-performance-quality/pkg/domain"
	"github.com/sadakatsu/go-performance-quality/pkg/katago/engine"
	"github.com/sadakatsu/go-performance-quality/pkg/katago/humanprofile"
	"github.com/sadakatsu/go-performance-quality/pkg/katago/response"
	"github.com/sadakatsu/go-performance-quality/pkg/symmetry"
)

// Compose drives the deep search and per-profile shallow queries to
// completion and composes one AnalysisRow per played move, applying
// posterior correction when the played move matches the engine's
// favorite (spec.md §4.I). games holds one immutable snapshot per
// analyzed position, games[i+1].PreviousMove() being the move played from
// games[i]; len(games) must equal the deep query's analyzeTurns count.
// Grounded on composeanalysis/compose_analysis.py.
func Compose(
	ctx context.Context,
	driver *engine.Driver,
	games []*domain.Game,
	accuracy AccuracyConfig,
	deepQueryID string,
	humanQueryIDs HumanPolicyQueryIDs,
	start time.Time,
) ([]AnalysisRow, error) {
	positionCount := len(games)
	size := games[0].Space().Size

	logw.Infof(ctx, "Getting all search responses...")
	searchResponses, err := collectSearchResponses(ctx, driver, deepQueryID, positionCount, start)
	if err != nil {
		return nil, err
	}

	logw.Infof(ctx, "All search responses received. Getting human priors...")
	turnToProfileToPolicy, err := collectHumanPolicies(ctx, driver, humanQueryIDs, positionCount, size)
	if err != nil {
		return nil, err
	}

	logw.Infof(ctx, "All human priors responses received. Composing the analysis...")

	analysis := make([]AnalysisRow, positionCount-1)

	last := searchResponses[positionCount-1]
	turnNumber := last.TurnNumber
	posteriorLead := -last.MoveInfos[0].ScoreLead
	posteriorWinRate := 1 - last.MoveInfos[0].Winrate

	for i := positionCount - 2; i >= 0; i-- {
		currentResponse := searchResponses[i]
		played := games[i].Space().Label(mustPreviousMove(games[i+1]))

		row := composeRow(
			turnNumber,
			string(games[i].CurrentPlayer().Letter()),
			games[i],
			currentResponse,
			turnToProfileToPolicy[i],
			played,
			posteriorLead,
			posteriorWinRate,
			accuracy,
			size,
		)
		analysis[i] = row

		turnNumber = currentResponse.TurnNumber
		posteriorLead = -row.PriorLead
		posteriorWinRate = 1 - row.PriorWinRate
	}

	logw.Infof(ctx, "Analysis composed.")
	return analysis, nil
}

func mustPreviousMove(g *domain.Game) domain.Move {
	move, _ := g.PreviousMove()
	return move
}

// composeRow composes a single position's AnalysisRow, applying posterior
// correction when the played move matches the engine's favorite (spec.md
// §4.I). posteriorLead is this position's successor's prior lead negated,
// and posteriorWinRate is one minus the successor's prior win rate.
// Grounded on composeanalysis/compose_analysis.py's per-position loop body
// for the engine-reported isSymmetryOf fold, and on main.py's
// map_move_to_identicals/posterior-correction loop for the board-geometry
// equivalence: symmetry.CanonicalEquivalenceClasses is merged into the same
// symmetries map so a move can be recognized as equivalent by either source
// (spec.md §4.H/§4.I).
func composeRow(
	turnNumber int,
	player string,
	g *domain.Game,
	currentResponse response.SuccessResponse,
	currentPolicies map[humanprofile.Profile]map[string]float64,
	played string,
	posteriorLead float64,
	posteriorWinRate float64,
	accuracy AccuracyConfig,
	size int,
) AnalysisRow {
	priorLead := currentResponse.MoveInfos[0].ScoreLead
	priorWinRate := currentResponse.MoveInfos[0].Winrate
	favorite := currentResponse.MoveInfos[0].Move

	kept, moveToInfo, symmetries := symmetry.FoldSymmetries(currentResponse.MoveInfos)
	if _, ok := symmetries[played]; !ok {
		symmetries[played] = map[string]struct{}{played: {}}
	}
	mergeCanonicalSymmetries(symmetries, g)

	favoriteSearch := currentResponse.MoveInfos[0].Visits
	threshold := math.Floor(float64(favoriteSearch) * accuracy.MaxVisitRatio)
	playedSearch := 0
	if mi, ok := moveToInfo[played]; ok {
		playedSearch = mi.Visits
	}

	var countsAsBest, countsAsMatch int
	if _, ok := symmetries[favorite][played]; ok {
		countsAsBest, countsAsMatch = 1, 1
		priorLead = posteriorLead
		priorWinRate = posteriorWinRate
	} else if priorLead-posteriorLead < accuracy.LeadDrop && priorWinRate-posteriorWinRate < accuracy.WinrateDrop {
		countsAsBest, countsAsMatch = 1, 1
	} else {
		for j := 1; j < accuracy.TopMoves && j < len(kept); j++ {
			candidate := kept[j]
			if float64(candidate.Visits) < threshold {
				break
			}

			_, sameClass := symmetries[played][candidate.Move]
			withinDrop := candidate.ScoreLead-posteriorLead < accuracy.LeadDrop &&
				candidate.Winrate-posteriorWinRate < accuracy.WinrateDrop
			if sameClass || withinDrop {
				countsAsMatch = 1
				break
			}
		}
	}

	expectedLoss := computeExpectedLoss(priorLead, kept)

	priors, policies := buildPriorsAndPolicies(currentPolicies, currentResponse.Policy, size, played)

	return AnalysisRow{
		Move:             turnNumber,
		Player:           player,
		PriorLead:        priorLead,
		PosteriorLead:    posteriorLead,
		Loss:             priorLead - posteriorLead,
		PriorWinRate:     priorWinRate,
		PosteriorWinRate: posteriorWinRate,
		Drop:             priorWinRate - posteriorWinRate,
		Played:           played,
		Best:             favorite,
		PlayedSearch:     playedSearch,
		BestSearch:       favoriteSearch,
		CountsAsBest:     countsAsBest,
		CountsAsMatch:    countsAsMatch,
		ExpectedLoss:     expectedLoss,
		Priors:           priors,
		Policies:         policies,
		Search: SearchSummary{
			TurnNumber: turnNumber,
			RootInfo: RootInfoSummary{
				CurrentPlayer: player,
				Visits:        currentResponse.RootInfo.Visits,
			},
			Policy:    currentResponse.Policy,
			Ownership: ownershipMap(size, currentResponse.Ownership),
			MoveInfos: summarizeMoveInfos(currentResponse.MoveInfos),
		},
	}
}

// mergeCanonicalSymmetries folds g's board-geometry move equivalence
// classes (spec.md §4.H: "two moves that produce the same canonical code
// are equivalent regardless of what the engine reported") into symmetries,
// unioning each canonical class with any engine-reported class already on
// file for its members so a move can be reached as a match either way.
func mergeCanonicalSymmetries(symmetries map[string]map[string]struct{}, g *domain.Game) {
	space := g.Space()
	for _, moves := range symmetry.CanonicalEquivalenceClasses(g) {
		if len(moves) < 2 {
			continue
		}

		merged := map[string]struct{}{}
		for _, move := range moves {
			label := space.Label(move)
			if existing, ok := symmetries[label]; ok {
				for member := range existing {
					merged[member] = struct{}{}
				}
			}
			merged[label] = struct{}{}
		}
		for label := range merged {
			symmetries[label] = merged
		}
	}
}

// computeExpectedLoss is the prior-weighted average score-lead drop across
// every kept MoveInfo, renormalized by their summed priors (spec.md §8:
// "expected_loss = sum((prior_lead - info.score_lead) * info.prior) / sum(info.prior)
// over all kept MoveInfos").
func computeExpectedLoss(priorLead float64, kept []response.MoveInfo) float64 {
	expectedLoss := 0.0
	seen := 0.0
	for _, mi := range kept {
		expectedLoss += (priorLead - mi.ScoreLead) * mi.Prior
		seen += mi.Prior
	}
	return expectedLoss / seen
}

func buildPriorsAndPolicies(
	currentPolicies map[humanprofile.Profile]map[string]float64,
	rawPolicy []float64,
	size int,
	played string,
) (map[string]float64, map[string]map[string]float64) {
	priors := map[string]float64{}
	policies := map[string]map[string]float64{}

	for _, p := range humanprofile.All {
		policy, ok := currentPolicies[p]
		if !ok {
			continue
		}
		label := p.Simplify()
		policies[label] = policy
		priors[label] = policy[played]
	}

	legalMoveCount := 0
	for _, v := range rawPolicy {
		if v > -0.5 {
			legalMoveCount++
		}
	}
	randomPrior := 1.0 / float64(legalMoveCount)
	priors["random"] = randomPrior
	randomPolicy := map[string]float64{}
	for label := range currentPolicies[humanprofile.Rank20K] {
		randomPolicy[label] = randomPrior
	}
	policies["random"] = randomPolicy

	aiPolicy := convertToPolicyMap(size, rawPolicy)
	policies["AI"] = aiPolicy
	priors["AI"] = aiPolicy[played]

	return priors, policies
}

func ownershipMap(size int, ownership []float64) map[string]float64 {
	if ownership == nil {
		return nil
	}
	ret := make(map[string]float64, len(ownership))
	for i, v := range ownership {
		ret[indexToLabel(i, size)] = v
	}
	return ret
}

func summarizeMoveInfos(moveInfos []response.MoveInfo) []MoveInfoSummary {
	ret := make([]MoveInfoSummary, len(moveInfos))
	for i, mi := range moveInfos {
		ret[i] = MoveInfoSummary{
			IsSymmetryOf: mi.IsSymmetryOf,
			Move:         mi.Move,
			Order:        mi.Order,
			Prior:        mi.Prior,
			ScoreLead:    mi.ScoreLead,
			Visits:       mi.Visits,
			Winrate:      mi.Winrate,
		}
	}
	return ret
}
