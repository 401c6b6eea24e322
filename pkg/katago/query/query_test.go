package query_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadakatsu/go-performance-quality/pkg/domain"
	"github.com/sadakatsu/go-performance-quality/pkg/katago/query"
)

func TestPlayerOf(t *testing.T) {
	assert.Equal(t, query.PlayerBlack, query.PlayerOf(domain.Black))
	assert.Equal(t, query.PlayerWhite, query.PlayerOf(domain.White))
	assert.Panics(t, func() { query.PlayerOf(domain.Empty) })
}

func TestPlayerColor(t *testing.T) {
	assert.Equal(t, domain.Black, query.PlayerBlack.Color())
	assert.Equal(t, domain.White, query.PlayerWhite.Color())
}

func TestMoveDTOMarshalRoundTrip(t *testing.T) {
	space := domain.NewSpace(19)
	c, err := space.Get(9, 9)
	require.NoError(t, err)

	dto := query.NewMoveDTO(domain.Black, domain.CoordMove(c), space)

	encoded, err := json.Marshal(dto)
	require.NoError(t, err)
	assert.JSONEq(t, `["B","K10"]`, string(encoded))

	var decoded query.MoveDTO
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, dto, decoded)

	move, err := decoded.Move(space)
	require.NoError(t, err)
	roundTripped, ok := move.Coordinate()
	require.True(t, ok)
	assert.Equal(t, c, roundTripped)
}

func TestMoveDTOUnmarshalMalformed(t *testing.T) {
	var dto query.MoveDTO
	err := json.Unmarshal([]byte(`"not an array"`), &dto)
	assert.ErrorIs(t, err, domain.ErrEngineProtocol)
}

func TestPlacementMarshalRoundTrip(t *testing.T) {
	space := domain.NewSpace(19)
	c, err := space.Get(3, 3)
	require.NoError(t, err)

	p := query.NewPlacement(domain.Black, c, space)
	encoded, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `["B","D4"]`, string(encoded))

	var decoded query.Placement
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, p, decoded)
}

func TestQuerySetAndRemoveHumanProfile(t *testing.T) {
	q := &query.Query{BoardXSize: 19, BoardYSize: 19, Rules: "chinese", ID: "abc"}

	q.SetHumanProfile("rank_5d")
	assert.Equal(t, "rank_5d", q.OverrideSettings["humanSLProfile"])

	q.RemoveHumanProfile()
	_, ok := q.OverrideSettings["humanSLProfile"]
	assert.False(t, ok)
}

func TestQuerySetAndRemoveSearchSeconds(t *testing.T) {
	q := &query.Query{BoardXSize: 19, BoardYSize: 19, Rules: "chinese", ID: "abc"}

	q.SetSearchSeconds(5)
	assert.Equal(t, 5, q.OverrideSettings["maxTime"])

	q.RemoveSearchSeconds()
	_, ok := q.OverrideSettings["maxTime"]
	assert.False(t, ok)
}

func TestQueryMarshalOmitsEmptyFields(t *testing.T) {
	q := query.Query{BoardXSize: 9, BoardYSize: 9, Rules: "chinese", ID: "abc"}
	encoded, err := json.Marshal(q)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(encoded, &decoded))

	_, hasMoves := decoded["moves"]
	assert.False(t, hasMoves)
	_, hasKomi := decoded["komi"]
	assert.False(t, hasKomi)

	assert.Equal(t, float64(9), decoded["boardXSize"])
}

func TestSpecificationOf(t *testing.T) {
	spec := query.SpecificationOf(domain.RulesetTrompTaylor)
	assert.Equal(t, "positional", spec.Ko)
	assert.Equal(t, "area", spec.Score)
	assert.True(t, spec.Suicide)
}
