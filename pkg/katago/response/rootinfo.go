package response

// RootInfo is the search summary for the position a SuccessResponse
// analyzed, keyed by the analyzed turn (spec.md §3, §6). Grounded on
// katago/response/rootinfo.py.
type RootInfo struct {
	CurrentPlayer         string  `json:"currentPlayer"`
	RawLead               float64 `json:"rawLead"`
	RawNoResultProb       float64 `json:"rawNoResultProb"`
	RawScoreSelfplay      float64 `json:"rawScoreSelfplay"`
	RawScoreSelfplayStdev float64 `json:"rawScoreSelfplayStdev"`
	RawStScoreError       float64 `json:"rawStScoreError"`
	RawStWrError          float64 `json:"rawStWrError"`
	RawVarTimeLeft        float64 `json:"rawVarTimeLeft"`
	RawWinrate            float64 `json:"rawWinrate"`
	ScoreSelfplay         float64 `json:"scoreSelfplay"`
	ScoreLead             float64 `json:"scoreLead"`
	ScoreStdev            float64 `json:"scoreStdev"`
	SymHash               string  `json:"symHash"`
	ThisHash              string  `json:"thisHash"`
	Utility               float64 `json:"utility"`
	Visits                int     `json:"visits"`
	Weight                float64 `json:"weight"`
	Winrate               float64 `json:"winrate"`

	HumanScoreMean     *float64 `json:"humanScoreMean,omitempty"`
	HumanScoreStdev    *float64 `json:"humanScoreStdev,omitempty"`
	HumanStScoreError  *float64 `json:"humanStScoreError,omitempty"`
	HumanStWrError     *float64 `json:"humanStWrError,omitempty"`
	HumanWinrate       *float64 `json:"humanWinrate,omitempty"`
}
