// Package orchestrator drives the external engine across a full game's
// positions and composes per-move accuracy statistics (spec.md §4.I).
package orchestrator

import "github.com/sadakatsu/go-performance-quality/pkg/katago/humanprofile"

// AccuracyConfig bounds how close a played move must be to the engine's
// favorite move to still count as "best"/"match" (spec.md §4.I). Grounded
// on compose_analysis.py's configuration['accuracy'] block.
type AccuracyConfig struct {
	LeadDrop      float64
	WinrateDrop   float64
	MaxVisitRatio float64
	TopMoves      int
}

// RootInfoSummary is the subset of RootInfo carried into an AnalysisRow's
// embedded search summary.
type RootInfoSummary struct {
	CurrentPlayer string
	Visits        int
}

// MoveInfoSummary is the subset of MoveInfo carried into an AnalysisRow's
// embedded search summary.
type MoveInfoSummary struct {
	IsSymmetryOf *string
	Move         string
	Order        int
	Prior        float64
	ScoreLead    float64
	Visits       int
	Winrate      float64
}

// SearchSummary is a simplified snapshot of one position's deep search,
// embedded in its AnalysisRow for downstream reporting.
type SearchSummary struct {
	TurnNumber int
	RootInfo   RootInfoSummary
	Policy     []float64
	Ownership  map[string]float64
	MoveInfos  []MoveInfoSummary
}

// AnalysisRow is one played move's composed accuracy statistics
// (spec.md §3 "Analysis row", §4.I). Grounded field-for-field on
// compose_analysis.py's analysis_row dict.
type AnalysisRow struct {
	Move             int
	Player           string
	PriorLead        float64
	PosteriorLead    float64
	Loss             float64
	PriorWinRate     float64
	PosteriorWinRate float64
	Drop             float64
	Played           string
	Best             string
	PlayedSearch     int
	BestSearch       int
	CountsAsBest     int
	CountsAsMatch    int
	ExpectedLoss     float64
	Priors           map[string]float64
	Policies         map[string]map[string]float64
	Search           SearchSummary
}

// HumanPolicyQueryIDs maps each human profile analyzed to the id of its
// shallow query (spec.md §4.I). The deep search's own id is tracked
// separately and passed to Compose as deepQueryID.
type HumanPolicyQueryIDs map[humanprofile.Profile]string
