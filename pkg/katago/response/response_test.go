package response_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadakatsu/go-performance-quality/pkg/katago/response"
)

func TestSuccessResponseDecodesMinimalPayload(t *testing.T) {
	raw := `{
		"id": "q1",
		"isDuringSearch": false,
		"turnNumber": 3,
		"rootInfo": {
			"currentPlayer": "B",
			"scoreLead": 1.5,
			"visits": 1000,
			"winrate": 0.55
		},
		"moveInfos": [
			{"move": "K10", "order": 0, "prior": 0.4, "scoreLead": 1.5, "visits": 500, "winrate": 0.55, "lcb": 0.5, "utilityLcb": 0.1}
		]
	}`

	var r response.SuccessResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &r))

	assert.Equal(t, "q1", r.ID)
	assert.Equal(t, 3, r.TurnNumber)
	assert.Equal(t, "B", r.RootInfo.CurrentPlayer)
	require.Len(t, r.MoveInfos, 1)
	assert.Equal(t, "K10", r.MoveInfos[0].Move)
	assert.Nil(t, r.MoveInfos[0].IsSymmetryOf)
	assert.Nil(t, r.Policy)
}

func TestSuccessResponseDecodesSymmetryBackReference(t *testing.T) {
	raw := `{
		"id": "q1",
		"isDuringSearch": false,
		"turnNumber": 0,
		"rootInfo": {"currentPlayer": "B"},
		"moveInfos": [
			{"move": "A1", "order": 1, "isSymmetryOf": "A19"}
		]
	}`

	var r response.SuccessResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &r))

	require.NotNil(t, r.MoveInfos[0].IsSymmetryOf)
	assert.Equal(t, "A19", *r.MoveInfos[0].IsSymmetryOf)
}

func TestErrorResponseDecode(t *testing.T) {
	raw := `{"error": "boom", "id": "q1"}`

	var r response.ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &r))

	assert.Equal(t, "boom", r.Error)
	require.NotNil(t, r.ID)
	assert.Equal(t, "q1", *r.ID)
	assert.Nil(t, r.Field)
}

func TestWarningResponseDecode(t *testing.T) {
	raw := `{"field": "komi", "id": "q1", "warning": "unusual komi"}`

	var r response.WarningResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &r))

	assert.Equal(t, "komi", r.Field)
	assert.Equal(t, "unusual komi", r.Warning)
}
