// Package response decodes the engine's line-delimited JSON responses
// (spec.md §4.F, §6).
package response

// MoveInfo is one candidate move's full search statistics, as reported in
// a SuccessResponse's moveInfos list (spec.md §3, §6). Grounded on
// katago/response/moveinfo.py.
type MoveInfo struct {
	EdgeVisits         int     `json:"edgeVisits"`
	EdgeWeight         float64 `json:"edgeWeight"`
	LCB                float64 `json:"lcb"`
	Move               string  `json:"move"`
	Order              int     `json:"order"`
	PlaySelectionValue float64 `json:"playSelectionValue"`
	Prior              float64 `json:"prior"`
	ScoreLead          float64 `json:"scoreLead"`
	ScoreMean          float64 `json:"scoreMean"`
	ScoreSelfplay      float64 `json:"scoreSelfplay"`
	ScoreStdev         float64 `json:"scoreStdev"`
	Utility            float64 `json:"utility"`
	UtilityLCB         float64 `json:"utilityLcb"`
	Visits             int     `json:"visits"`
	Weight             float64 `json:"weight"`
	Winrate            float64 `json:"winrate"`

	PV []string `json:"pv,omitempty"`

	HumanPrior    *float64  `json:"humanPrior,omitempty"`
	IsSymmetryOf  *string   `json:"isSymmetryOf,omitempty"`
	Ownership     []float64 `json:"ownership,omitempty"`
	OwnershipStdev *float64 `json:"ownershipStdev,omitempty"`
	PVEdgeVisits  *int      `json:"pvEdgeVisits,omitempty"`
	PVVisits      *int      `json:"pvVisits,omitempty"`
}
