package query

// Wire keys for overrideSettings entries the Query helper methods manage
// (spec.md §6, §4.F). Grounded on katago/query/obj.py's module constants.
const (
	humanProfileSetting = "humanSLProfile"
	searchSecondsSetting = "maxTime"
)

// Query is a single analysis request sent to the engine as one
// line-delimited JSON object (spec.md §4.F, §6). Grounded on
// katago/query/obj.py, field-for-field, translated from mashumaro's
// camelCase dataclass serialization into encoding/json struct tags.
type Query struct {
	BoardXSize int    `json:"boardXSize"`
	BoardYSize int    `json:"boardYSize"`
	Rules      any    `json:"rules"` // string ruleset name or RulesSpecification
	ID         string `json:"id"`

	Moves []MoveDTO `json:"moves,omitempty"`

	AllowMoves    []MoveRestriction `json:"allowMoves,omitempty"`
	AnalysisPVLen *int              `json:"analysisPVLen,omitempty"`
	AnalyzeTurns  []int             `json:"analyzeTurns,omitempty"`
	AvoidMoves    []MoveRestriction `json:"avoidMoves,omitempty"`

	IncludeMovesOwnership      *bool `json:"includeMovesOwnership,omitempty"`
	IncludeMovesOwnershipStdev *bool `json:"includeMovesOwnershipStdev,omitempty"`
	IncludeOwnership           *bool `json:"includeOwnership,omitempty"`
	IncludeOwnershipStdev      *bool `json:"includeOwnershipStdev,omitempty"`
	IncludePolicy              *bool `json:"includePolicy,omitempty"`
	IncludePVVisits            *bool `json:"includePVVisits,omitempty"`

	InitialPlayer *Player     `json:"initialPlayer,omitempty"`
	InitialStones []Placement `json:"initialStones,omitempty"`
	Komi          *float64    `json:"komi,omitempty"`

	MaxVisits        *int           `json:"maxVisits,omitempty"`
	OverrideSettings map[string]any `json:"overrideSettings,omitempty"`

	Priorities []int `json:"priorities,omitempty"`
	Priority   *int   `json:"priority,omitempty"`

	ReportDuringSearchEvery *float64 `json:"reportDuringSearchEvery,omitempty"`
	RootFPUReductionMax     *float64 `json:"rootFpuReductionMax,omitempty"`
	RootPolicyTemperature   *float64 `json:"rootPolicyTemperature,omitempty"`

	WhiteHandicapBonus *string `json:"whiteHandicapBonus,omitempty"`
}

// SetHumanProfile sets the humanSLProfile override so the engine reports
// human_policy for the given profile wire value.
func (q *Query) SetHumanProfile(profile string) {
	q.updateOverrideSetting(humanProfileSetting, profile)
}

// RemoveHumanProfile clears any previously set humanSLProfile override.
func (q *Query) RemoveHumanProfile() {
	q.removeOverrideSetting(humanProfileSetting)
}

// SetSearchSeconds sets the maxTime override, bounding how long the
// engine may spend on this query.
func (q *Query) SetSearchSeconds(seconds int) {
	q.updateOverrideSetting(searchSecondsSetting, seconds)
}

// RemoveSearchSeconds clears any previously set maxTime override.
func (q *Query) RemoveSearchSeconds() {
	q.removeOverrideSetting(searchSecondsSetting)
}

func (q *Query) updateOverrideSetting(key string, value any) {
	if q.OverrideSettings == nil {
		q.OverrideSettings = map[string]any{}
	}
	q.OverrideSettings[key] = value
}

func (q *Query) removeOverrideSetting(key string) {
	if q.OverrideSettings == nil {
		return
	}
	delete(q.OverrideSettings, key)
}
