package handler

import (
	"github.com/communitysafe/safety-gateway/internal/core/domain"
	"github.com/communitysafe/safety-gateway/internal/core/ports"
)

// --- Snapshot → HTTP response ---

func toReportResponse(sessionID string, snap *ports.ReportSnapshot) reportStateResponse {
	resp := reportStateResponse{
		SessionID: sessionID,
		Phase:     string(snap.Phase),
		Reason:    snap.Reason,
		Draft: draftResponse{
			IncidentType: snap.Draft.IncidentType,
			Location:     snap.Draft.Location,
			Description:  snap.Draft.Description,
			Severity:     string(snap.Draft.Severity),
		},
		HasLocation: snap.HasLocation,
		Notice:      toNoticeResponse(snap.Notice),
	}
	if snap.Coordinate != nil {
		resp.Coordinate = &coordinateResponse{
			Latitude:  snap.Coordinate.Latitude,
			Longitude: snap.Coordinate.Longitude,
		}
	}
	return resp
}

func toSOSResponse(sessionID string, snap *ports.SOSSnapshot) sosStateResponse {
	return sosStateResponse{
		SessionID: sessionID,
		Phase:     string(snap.Phase),
		AlertID:   snap.AlertID,
		Reason:    snap.Reason,
		Notice:    toNoticeResponse(snap.Notice),
	}
}

func toNoticeResponse(n *domain.Notice) *noticeResponse {
	if n == nil {
		return nil
	}
	return &noticeResponse{
		Title:   n.Title,
		Message: n.Message,
		Kind:    string(n.Kind),
	}
}
