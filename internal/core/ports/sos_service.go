package ports

import (
	"context"

	"github.com/communitysafe/safety-gateway/internal/core/domain"
)

// SOSSnapshot is the presentation view of the SOS workflow after an
// operation settles. AlertID is non-empty only in the active and resolving
// phases; Reason only in the failed phase.
type SOSSnapshot struct {
	Phase   domain.SOSPhase
	AlertID string
	Reason  string
	Notice  *domain.Notice
}

// SOSService is the SOS alert workflow for one session.
type SOSService interface {
	// Activate acquires a fresh fix and raises an alert with the fixed
	// urgent message and high priority. Refused with domain.ErrWorkflowBusy
	// while a previous trigger is still in flight, and with
	// domain.ErrInvalidTransition while an alert is already active.
	Activate(ctx context.Context) (*SOSSnapshot, error)

	// Resolve marks the active alert resolved. Refused locally with
	// domain.ErrNoActiveAlert when no usable alert id is held.
	Resolve(ctx context.Context) (*SOSSnapshot, error)

	// Snapshot returns the current state without side effects.
	Snapshot() *SOSSnapshot
}
