package response

// SuccessResponse is the engine's normal reply to a Query (spec.md §3,
// §6). Grounded on katago/response/success.py.
type SuccessResponse struct {
	ID            string     `json:"id"`
	IsDuringSearch bool      `json:"isDuringSearch"`
	MoveInfos     []MoveInfo `json:"moveInfos"`
	RootInfo      RootInfo   `json:"rootInfo"`
	TurnNumber    int        `json:"turnNumber"`

	HumanPolicy    []float64 `json:"humanPolicy,omitempty"`
	Ownership      []float64 `json:"ownership,omitempty"`
	OwnershipStdev *float64  `json:"ownershipStdev,omitempty"`
	Policy         []float64 `json:"policy,omitempty"`
}

// WarningResponse is emitted alongside (not instead of) a SuccessResponse
// when the engine wants to flag something about a query without failing
// it outright. Grounded on katago/response/warning.py.
type WarningResponse struct {
	Field   string `json:"field"`
	ID      string `json:"id"`
	Warning string `json:"warning"`
}

// ErrorResponse is returned in place of a SuccessResponse when a query
// could not be processed (spec.md §7). Grounded on katago/response/error.py.
type ErrorResponse struct {
	Error string  `json:"error"`
	Field *string `json:"field,omitempty"`
	ID    *string `json:"id,omitempty"`
}
