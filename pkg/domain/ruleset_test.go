package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadakatsu/go-performance-quality/pkg/domain"
)

func TestRulesetByWireNameKnownRulesets(t *testing.T) {
	r, err := domain.RulesetByWireName("chinese")
	require.NoError(t, err)
	assert.Equal(t, domain.RulesetChinese, r)

	r, err = domain.RulesetByWireName("chinese-kgs")
	require.NoError(t, err)
	assert.Equal(t, domain.KoPositional, r.KoRule)

	r, err = domain.RulesetByWireName("tromp-taylor")
	require.NoError(t, err)
	assert.True(t, r.Suicide)
}

func TestRulesetByWireNameUnrecognized(t *testing.T) {
	_, err := domain.RulesetByWireName("made-up-ruleset")
	assert.ErrorIs(t, err, domain.ErrConfigInvalid)
}

func TestRulesetStrings(t *testing.T) {
	assert.Equal(t, "simple", domain.KoSimple.String())
	assert.Equal(t, "positional", domain.KoPositional.String())
	assert.Equal(t, "situational", domain.KoSituational.String())

	assert.Equal(t, "area", domain.ScoringArea.String())
	assert.Equal(t, "territory", domain.ScoringTerritory.String())

	assert.Equal(t, "none", domain.TaxNone.String())
	assert.Equal(t, "seki", domain.TaxSeki.String())
	assert.Equal(t, "all", domain.TaxAll.String())

	assert.Equal(t, "0", domain.HandicapBonusZero.String())
	assert.Equal(t, "N", domain.HandicapBonusN.String())
	assert.Equal(t, "N-1", domain.HandicapBonusNLess1.String())
}
