package handler

type sosStateResponse struct {
	SessionID string          `json:"session_id"`
	Phase     string          `json:"phase"`
	AlertID   string          `json:"alert_id,omitempty"`
	Reason    string          `json:"reason,omitempty"`
	Notice    *noticeResponse `json:"notice,omitempty"`
}
