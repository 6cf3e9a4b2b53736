package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/communitysafe/safety-gateway/internal/core/domain"
	"github.com/communitysafe/safety-gateway/internal/core/ports"
)

type sosWorkflow struct {
	sessionID string
	geo       ports.GeolocationProvider
	alerts    ports.AlertClient
	journal   ports.JournalRepository
	log       zerolog.Logger

	mu      sync.Mutex
	phase   domain.SOSPhase
	alertID string
	reason  string
	notice  *domain.Notice
}

// NewSOSWorkflow returns an SOSService in the idle phase holding no alert
// id. journal may be nil, in which case journalling is skipped.
func NewSOSWorkflow(
	sessionID string,
	geo ports.GeolocationProvider,
	alerts ports.AlertClient,
	journal ports.JournalRepository,
	log zerolog.Logger,
) ports.SOSService {
	return &sosWorkflow{
		sessionID: sessionID,
		geo:       geo,
		alerts:    alerts,
		journal:   journal,
		log:       log,
		phase:     domain.SOSIdle,
	}
}

// Activate drives one activation attempt:
//
//	idle/failed → acquiring → active    (fix acquired, alert created)
//	idle/failed → acquiring → failed    (geolocation or create failed)
//
// The fix is re-acquired fresh on every attempt; a geolocation failure never
// reaches the alerting service.
func (w *sosWorkflow) Activate(ctx context.Context) (*ports.SOSSnapshot, error) {
	w.mu.Lock()
	if w.phase.Transient() {
		w.mu.Unlock()
		return nil, domain.ErrWorkflowBusy
	}
	if w.phase == domain.SOSActive {
		w.mu.Unlock()
		return nil, domain.ErrInvalidTransition
	}
	w.transition(domain.SOSAcquiring)
	w.mu.Unlock()

	coord, err := w.geo.Acquire(ctx)
	if err != nil {
		w.log.Warn().Err(err).Str("session", w.sessionID).Msg("sos geolocation failed")
		return w.settleFailure(ctx, "Location Error",
			"Please enable location permissions to send SOS.", err.Error(), nil), nil
	}

	alertID, err := w.alerts.CreateSOSAlert(ctx, coord)
	if err != nil {
		w.log.Error().Err(err).Str("session", w.sessionID).Msg("sos alert creation failed")
		message := err.Error()
		if message == "" {
			message = "Try again later."
		}
		return w.settleFailure(ctx, "Failed to Activate SOS", message, err.Error(), &coord), nil
	}

	w.appendJournal(ctx, &domain.JournalEntry{
		SessionID:  w.sessionID,
		Outcome:    domain.JournalSOSCreated,
		AlertID:    alertID,
		Coordinate: &coord,
		OccurredAt: time.Now().UTC(),
	})

	w.mu.Lock()
	defer w.mu.Unlock()

	// An id-less success still activates; resolution will be refused until
	// the session ends. The service owner considers this shape valid.
	w.transition(domain.SOSActive)
	w.alertID = alertID
	w.reason = ""
	w.notice = &domain.Notice{
		Title:   "SOS Alert Activated!",
		Message: "Your location has been shared. Help is on the way.",
		Kind:    domain.NoticeSuccess,
	}

	w.log.Info().Str("session", w.sessionID).Str("alert_id", alertID).Msg("sos alert active")
	return w.snapshotLocked(), nil
}

// Resolve drives one resolution attempt:
//
//	active → resolving → resolved → idle   (resolve succeeded, id discarded)
//	active → resolving → active            (resolve failed, id retained)
//
// Refused locally when no alert is active or the held id is empty.
func (w *sosWorkflow) Resolve(ctx context.Context) (*ports.SOSSnapshot, error) {
	w.mu.Lock()
	if w.phase.Transient() {
		w.mu.Unlock()
		return nil, domain.ErrWorkflowBusy
	}
	if w.phase != domain.SOSActive || w.alertID == "" {
		w.notice = &domain.Notice{
			Title:   "No Active Alert",
			Message: "No SOS alert to resolve.",
			Kind:    domain.NoticeDanger,
		}
		w.mu.Unlock()
		return nil, domain.ErrNoActiveAlert
	}
	w.transition(domain.SOSResolving)
	alertID := w.alertID
	w.mu.Unlock()

	if err := w.alerts.ResolveSOSAlert(ctx, alertID); err != nil {
		w.log.Error().Err(err).Str("session", w.sessionID).Str("alert_id", alertID).Msg("sos resolve failed")
		message := err.Error()
		if message == "" {
			message = "Please try again."
		}

		w.mu.Lock()
		defer w.mu.Unlock()
		// Back to active with the id retained so the user can retry.
		w.transition(domain.SOSActive)
		w.notice = &domain.Notice{Title: "Failed to Resolve", Message: message, Kind: domain.NoticeDanger}
		return w.snapshotLocked(), nil
	}

	w.appendJournal(ctx, &domain.JournalEntry{
		SessionID:  w.sessionID,
		Outcome:    domain.JournalSOSResolved,
		AlertID:    alertID,
		OccurredAt: time.Now().UTC(),
	})

	w.mu.Lock()
	defer w.mu.Unlock()

	w.transition(domain.SOSResolved)
	w.transition(domain.SOSIdle)
	w.alertID = ""
	w.reason = ""
	w.notice = &domain.Notice{
		Title:   "SOS Alert Resolved",
		Message: "Thank you for confirming your safety!",
		Kind:    domain.NoticeSuccess,
	}

	w.log.Info().Str("session", w.sessionID).Str("alert_id", alertID).Msg("sos alert resolved")
	return w.snapshotLocked(), nil
}

// Snapshot returns the current state without side effects.
func (w *sosWorkflow) Snapshot() *ports.SOSSnapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshotLocked()
}

// settleFailure moves acquiring → failed and journals the outcome. The
// alert id is never set here; failed carries none.
func (w *sosWorkflow) settleFailure(ctx context.Context, title, message, reason string, coord *domain.Coordinate) *ports.SOSSnapshot {
	w.appendJournal(ctx, &domain.JournalEntry{
		SessionID:  w.sessionID,
		Outcome:    domain.JournalSOSFailed,
		Coordinate: coord,
		Reason:     reason,
		OccurredAt: time.Now().UTC(),
	})

	w.mu.Lock()
	defer w.mu.Unlock()

	w.transition(domain.SOSFailed)
	w.alertID = ""
	w.reason = reason
	w.notice = &domain.Notice{Title: title, Message: message, Kind: domain.NoticeDanger}
	return w.snapshotLocked()
}

func (w *sosWorkflow) transition(next domain.SOSPhase) {
	if !w.phase.CanTransitionTo(next) {
		panic(fmt.Sprintf("sos workflow: illegal transition %s → %s", w.phase, next))
	}
	w.phase = next
	if !w.phase.CarriesAlertID() {
		w.alertID = ""
	}
}

func (w *sosWorkflow) appendJournal(ctx context.Context, entry *domain.JournalEntry) {
	if w.journal == nil {
		return
	}
	if err := w.journal.Append(ctx, entry); err != nil {
		w.log.Warn().Err(err).Str("session", w.sessionID).Msg("failed to append journal entry")
	}
}

func (w *sosWorkflow) snapshotLocked() *ports.SOSSnapshot {
	snap := &ports.SOSSnapshot{
		Phase:   w.phase,
		AlertID: w.alertID,
		Notice:  w.notice,
	}
	if w.phase == domain.SOSFailed {
		snap.Reason = w.reason
	}
	return snap
}
