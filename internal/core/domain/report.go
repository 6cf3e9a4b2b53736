package domain

import "time"

// Severity is the reporter-selected severity of an incident.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Valid reports whether s is one of the four enumerated severities.
func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// IncidentReportDraft is the user-edited, not-yet-submitted report data.
// Mutable while the report workflow is in Idle or Failed; frozen during
// Submitting; reset to defaults after a successful submission.
type IncidentReportDraft struct {
	IncidentType string   `json:"incident_type" validate:"min=2"`
	Location     string   `json:"location"      validate:"min=2"`
	Description  string   `json:"description"   validate:"min=10"`
	Severity     Severity `json:"severity"`
}

// DefaultDraft returns a fresh draft with the severity preselected to medium,
// matching the empty form presented to the user.
func DefaultDraft() IncidentReportDraft {
	return IncidentReportDraft{Severity: SeverityMedium}
}

// IncidentReportPayload is the wire-ready form of a draft: draft fields plus
// the captured Coordinate and a submission timestamp. Created once per
// successful validation + geolocation pair, never mutated, submitted once.
type IncidentReportPayload struct {
	IncidentType string
	Severity     Severity
	Coordinate   Coordinate
	Description  string
	// IncidentTime is the submission time, not the time the incident
	// occurred; the surface does not let the user pick an incident time.
	IncidentTime time.Time
	IsAnonymous  bool
	// Address duplicates the draft's free-text location field.
	Address string
}

// ReportPhase is the tagged lifecycle state of the report workflow.
type ReportPhase string

const (
	ReportIdle       ReportPhase = "idle"
	ReportSubmitting ReportPhase = "submitting"
	ReportSubmitted  ReportPhase = "submitted"
	ReportFailed     ReportPhase = "failed"
)

// reportTransitions defines the allowed report state machine transitions.
var reportTransitions = map[ReportPhase][]ReportPhase{
	ReportIdle:       {ReportSubmitting},
	ReportSubmitting: {ReportSubmitted, ReportFailed},
	ReportSubmitted:  {ReportIdle},
	ReportFailed:     {ReportSubmitting},
}

// CanTransitionTo reports whether a transition from p to next is valid.
func (p ReportPhase) CanTransitionTo(next ReportPhase) bool {
	for _, allowed := range reportTransitions[p] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Transient reports whether an asynchronous operation is in flight in this
// phase. The workflow refuses new triggers while transient.
func (p ReportPhase) Transient() bool {
	return p == ReportSubmitting
}
