package ports

import (
	"context"

	"github.com/communitysafe/safety-gateway/internal/core/domain"
)

// DraftInput is the DTO passed from the transport layer when the user edits
// the incident report form.
type DraftInput struct {
	IncidentType string
	Location     string
	Description  string
	Severity     string
}

// ReportSnapshot is the presentation view of the report workflow after an
// operation settles. Coordinate is present only while a fix is captured;
// Reason only in the failed phase; Notice is the most recent user-facing
// message emitted by the workflow.
type ReportSnapshot struct {
	Phase       domain.ReportPhase
	Reason      string
	FailureKind string // "validation" or "service", failed phase only
	Draft       domain.IncidentReportDraft
	HasLocation bool
	Coordinate  *domain.Coordinate
	Notice      *domain.Notice
}

// ReportService is the report submission workflow for one session.
//
// All methods are safe for concurrent use; at most one asynchronous
// operation is in flight at a time, and triggers arriving while one is
// running are refused with domain.ErrWorkflowBusy.
type ReportService interface {
	// UpdateDraft replaces the draft fields. Allowed in idle and failed only.
	UpdateDraft(ctx context.Context, in DraftInput) (*ReportSnapshot, error)

	// CaptureLocation acquires a fresh fix from the geolocation provider and
	// stores it for the next submission.
	CaptureLocation(ctx context.Context) (*ReportSnapshot, error)

	// Submit runs validation, builds the payload and performs the create
	// call. Refused with domain.ErrLocationRequired when no fix is captured.
	// idempotencyKey may be empty; when set, replays settle as success
	// without a second network call.
	Submit(ctx context.Context, idempotencyKey string) (*ReportSnapshot, error)

	// Snapshot returns the current state without side effects.
	Snapshot() *ReportSnapshot
}
