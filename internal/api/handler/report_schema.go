package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

// draftRequest carries the full draft on every edit. Fields may be
// incomplete while the user is still typing; structural rules are enforced
// by the core validator at submission time, not here. Severity is the one
// exception: the form offers a fixed set of options, so anything else is
// rejected at the boundary.
type draftRequest struct {
	IncidentType string `json:"incident_type"`
	Location     string `json:"location"`
	Description  string `json:"description"`
	Severity     string `json:"severity" validate:"omitempty,oneof=low medium high critical"`
}

// --- Response types ---

// Response-only types owned by the transport layer, intentionally separate
// from ports/domain types so the JSON contract is not coupled to internal
// changes.

type noticeResponse struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Kind    string `json:"kind"`
}

type coordinateResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type draftResponse struct {
	IncidentType string `json:"incident_type"`
	Location     string `json:"location"`
	Description  string `json:"description"`
	Severity     string `json:"severity"`
}

type reportStateResponse struct {
	SessionID   string              `json:"session_id"`
	Phase       string              `json:"phase"`
	Reason      string              `json:"reason,omitempty"`
	Draft       draftResponse       `json:"draft"`
	HasLocation bool                `json:"has_location"`
	Coordinate  *coordinateResponse `json:"coordinate,omitempty"`
	Notice      *noticeResponse     `json:"notice,omitempty"`
}
