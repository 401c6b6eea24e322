package query

import "github.com/sadakatsu/go-performance-quality/pkg/domain"

// RulesSpecification is the inline-object form of a Query's "rules" field,
// used when a ruleset needs to be fully spelled out rather than referenced
// by name (spec.md §6). Grounded on katago/query/rules/rulesspecification.py.
type RulesSpecification struct {
	FriendlyPassOK     bool     `json:"friendlyPassOk"`
	HasButton          bool     `json:"hasButton"`
	Ko                 string   `json:"ko"`
	Score              string   `json:"score"`
	Suicide            bool     `json:"suicide"`
	Tax                string   `json:"tax"`
	WhiteHandicapBonus string   `json:"whiteHandicapBonus"`
	Komi               *float64 `json:"komi,omitempty"`
}

// SpecificationOf renders a domain.Ruleset as the wire RulesSpecification.
func SpecificationOf(r domain.Ruleset) RulesSpecification {
	return RulesSpecification{
		FriendlyPassOK:     r.FriendlyPassOK,
		HasButton:          r.HasButton,
		Ko:                 r.KoRule.String(),
		Score:              r.Scoring.String(),
		Suicide:            r.Suicide,
		Tax:                r.Tax.String(),
		WhiteHandicapBonus: r.WhiteHandicapBonus.String(),
	}
}
