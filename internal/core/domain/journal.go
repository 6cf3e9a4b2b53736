package domain

import "time"

// JournalOutcome tags a settled submission outcome recorded in the journal.
type JournalOutcome string

const (
	JournalReportSubmitted JournalOutcome = "report_submitted"
	JournalReportFailed    JournalOutcome = "report_failed"
	JournalSOSCreated      JournalOutcome = "sos_created"
	JournalSOSFailed       JournalOutcome = "sos_failed"
	JournalSOSResolved     JournalOutcome = "sos_resolved"
)

// JournalEntry is one settled create/resolve outcome appended to the audit
// journal. It records what was sent, never draft contents in progress.
type JournalEntry struct {
	SessionID  string
	Outcome    JournalOutcome
	AlertID    string      // set for SOS outcomes when known
	Coordinate *Coordinate // set when a fix was part of the call
	Reason     string      // failure reason for failed outcomes
	OccurredAt time.Time
}
