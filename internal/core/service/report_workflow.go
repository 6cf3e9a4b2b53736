package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/communitysafe/safety-gateway/internal/core/domain"
	"github.com/communitysafe/safety-gateway/internal/core/ports"
	"github.com/communitysafe/safety-gateway/internal/core/validation"
)

// DedupChecker abstracts the idempotency store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, key string) (bool, error)
	Mark(ctx context.Context, key string) error
}

type reportWorkflow struct {
	sessionID string
	geo       ports.GeolocationProvider
	alerts    ports.AlertClient
	journal   ports.JournalRepository
	dedup     DedupChecker
	log       zerolog.Logger

	mu          sync.Mutex
	phase       domain.ReportPhase
	reason      string
	failureKind string
	draft       domain.IncidentReportDraft
	coord       *domain.Coordinate
	notice      *domain.Notice
}

// NewReportWorkflow returns a ReportService in the idle phase with a default
// draft and no captured fix. journal and dedup may be nil, in which case the
// corresponding concern is skipped.
func NewReportWorkflow(
	sessionID string,
	geo ports.GeolocationProvider,
	alerts ports.AlertClient,
	journal ports.JournalRepository,
	dedup DedupChecker,
	log zerolog.Logger,
) ports.ReportService {
	return &reportWorkflow{
		sessionID: sessionID,
		geo:       geo,
		alerts:    alerts,
		journal:   journal,
		dedup:     dedup,
		log:       log,
		phase:     domain.ReportIdle,
		draft:     domain.DefaultDraft(),
	}
}

// UpdateDraft replaces the draft fields. The draft is frozen while a
// submission is in flight.
func (w *reportWorkflow) UpdateDraft(_ context.Context, in ports.DraftInput) (*ports.ReportSnapshot, error) {
	sev := domain.Severity(in.Severity)
	if in.Severity == "" {
		sev = domain.SeverityMedium
	}
	if !sev.Valid() {
		panic(fmt.Sprintf("report workflow: severity %q outside enum", in.Severity))
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.phase.Transient() {
		return nil, domain.ErrDraftFrozen
	}

	w.draft = domain.IncidentReportDraft{
		IncidentType: in.IncidentType,
		Location:     in.Location,
		Description:  in.Description,
		Severity:     sev,
	}
	return w.snapshotLocked(), nil
}

// CaptureLocation acquires a fresh fix and stores it for the next
// submission. A failed acquisition leaves the phase untouched; the user
// simply retries or grants permission.
func (w *reportWorkflow) CaptureLocation(ctx context.Context) (*ports.ReportSnapshot, error) {
	w.mu.Lock()
	if w.phase.Transient() {
		w.mu.Unlock()
		return nil, domain.ErrWorkflowBusy
	}
	w.mu.Unlock()

	coord, err := w.geo.Acquire(ctx)

	w.mu.Lock()
	defer w.mu.Unlock()

	if err != nil {
		w.log.Warn().Err(err).Str("session", w.sessionID).Msg("location capture failed")
		w.notice = &domain.Notice{
			Title:   "Failed to get location",
			Message: err.Error(),
			Kind:    domain.NoticeDanger,
		}
		return w.snapshotLocked(), nil
	}

	w.coord = &coord
	w.notice = &domain.Notice{
		Title:   "Location retrieved",
		Message: "Your current location has been set.",
		Kind:    domain.NoticeSuccess,
	}
	return w.snapshotLocked(), nil
}

// Submit drives one full submission attempt:
//
//	idle/failed → submitting → submitted → idle   (create succeeded)
//	idle/failed → submitting → failed             (validation or create failed)
//
// Refused before any validation or network work when no fix is captured.
func (w *reportWorkflow) Submit(ctx context.Context, idempotencyKey string) (*ports.ReportSnapshot, error) {
	w.mu.Lock()
	if w.phase.Transient() {
		w.mu.Unlock()
		return nil, domain.ErrWorkflowBusy
	}
	if w.coord == nil {
		w.notice = &domain.Notice{
			Title:   "Location required",
			Message: "Please use the 'Get Current Location' button to set your location.",
			Kind:    domain.NoticeDanger,
		}
		w.mu.Unlock()
		return nil, domain.ErrLocationRequired
	}

	w.transition(domain.ReportSubmitting)
	draft := w.draft
	coord := *w.coord
	w.mu.Unlock()

	// Validation runs first on every attempt; a failing draft never reaches
	// the network.
	if err := validation.Validate(draft); err != nil {
		return w.settleFailure(ctx, "Validation failed", err.Error(), err.Error(), "validation", nil), nil
	}

	// Idempotency check — a replayed key settles as success with no second
	// round trip. Check errors fail open and the submission proceeds.
	if idempotencyKey != "" && w.dedup != nil {
		isDup, err := w.dedup.IsDuplicate(ctx, idempotencyKey)
		if err != nil {
			w.log.Warn().Err(err).Str("session", w.sessionID).Msg("dedup check failed, submitting anyway")
		} else if isDup {
			w.log.Info().Str("session", w.sessionID).Str("idempotency_key", idempotencyKey).Msg("idempotent replay")
			return w.settleSuccess(ctx, coord), nil
		}
	}

	payload := domain.IncidentReportPayload{
		IncidentType: draft.IncidentType,
		Severity:     draft.Severity,
		Coordinate:   coord,
		Description:  draft.Description,
		IncidentTime: time.Now().UTC(),
		IsAnonymous:  false,
		Address:      draft.Location,
	}

	if err := w.alerts.CreateReport(ctx, payload); err != nil {
		w.log.Error().Err(err).Str("session", w.sessionID).Msg("report submission failed")
		return w.settleFailure(ctx, "Submission Failed",
			"There was a problem submitting your report. Please try again.", err.Error(), "service", &coord), nil
	}

	if idempotencyKey != "" && w.dedup != nil {
		if err := w.dedup.Mark(ctx, idempotencyKey); err != nil {
			w.log.Warn().Err(err).Str("session", w.sessionID).Msg("failed to set dedup key")
		}
	}

	return w.settleSuccess(ctx, coord), nil
}

// Snapshot returns the current state without side effects.
func (w *reportWorkflow) Snapshot() *ports.ReportSnapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshotLocked()
}

// settleSuccess walks submitting → submitted → idle, clears the draft and
// the captured fix, and journals the outcome.
func (w *reportWorkflow) settleSuccess(ctx context.Context, coord domain.Coordinate) *ports.ReportSnapshot {
	w.appendJournal(ctx, &domain.JournalEntry{
		SessionID:  w.sessionID,
		Outcome:    domain.JournalReportSubmitted,
		Coordinate: &coord,
		OccurredAt: time.Now().UTC(),
	})

	w.mu.Lock()
	defer w.mu.Unlock()

	w.transition(domain.ReportSubmitted)
	w.transition(domain.ReportIdle)
	w.reason = ""
	w.failureKind = ""
	w.draft = domain.DefaultDraft()
	w.coord = nil
	w.notice = &domain.Notice{
		Title:   "Report Submitted",
		Message: "Your incident report has been submitted successfully. Thank you for helping keep our community safe.",
		Kind:    domain.NoticeSuccess,
	}

	w.log.Info().Str("session", w.sessionID).Msg("incident report submitted")
	return w.snapshotLocked()
}

// settleFailure moves to failed, preserving the draft and the captured fix
// so the user can retry without re-entering data.
func (w *reportWorkflow) settleFailure(ctx context.Context, title, message, reason, kind string, coord *domain.Coordinate) *ports.ReportSnapshot {
	w.appendJournal(ctx, &domain.JournalEntry{
		SessionID:  w.sessionID,
		Outcome:    domain.JournalReportFailed,
		Coordinate: coord,
		Reason:     reason,
		OccurredAt: time.Now().UTC(),
	})

	w.mu.Lock()
	defer w.mu.Unlock()

	w.transition(domain.ReportFailed)
	w.reason = reason
	w.failureKind = kind
	w.notice = &domain.Notice{Title: title, Message: message, Kind: domain.NoticeDanger}
	return w.snapshotLocked()
}

func (w *reportWorkflow) transition(next domain.ReportPhase) {
	if !w.phase.CanTransitionTo(next) {
		panic(fmt.Sprintf("report workflow: illegal transition %s → %s", w.phase, next))
	}
	w.phase = next
}

func (w *reportWorkflow) appendJournal(ctx context.Context, entry *domain.JournalEntry) {
	if w.journal == nil {
		return
	}
	if err := w.journal.Append(ctx, entry); err != nil {
		w.log.Warn().Err(err).Str("session", w.sessionID).Msg("failed to append journal entry")
	}
}

func (w *reportWorkflow) snapshotLocked() *ports.ReportSnapshot {
	snap := &ports.ReportSnapshot{
		Phase:       w.phase,
		Draft:       w.draft,
		HasLocation: w.coord != nil,
		Notice:      w.notice,
	}
	if w.phase == domain.ReportFailed {
		snap.Reason = w.reason
		snap.FailureKind = w.failureKind
	}
	if w.coord != nil {
		c := *w.coord
		snap.Coordinate = &c
	}
	return snap
}
