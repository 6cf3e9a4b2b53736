// Package metrics defines and registers all custom Prometheus metrics for
// the safety gateway. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "safety"

// ── Report metrics ────────────────────────────────────────────────────────────

// ReportsSubmittedTotal counts incident reports accepted by the alerting
// service.
// Label:
//   - severity: the reporter-selected severity ("low" … "critical")
var ReportsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_submitted_total",
		Help:      "Total number of incident reports successfully submitted.",
	},
	[]string{"severity"},
)

// ReportFailuresTotal counts submission attempts that settled in failure.
// Label:
//   - reason: "validation" or "service"
var ReportFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "report_failures_total",
		Help:      "Total number of incident report submissions that failed.",
	},
	[]string{"reason"},
)

// SubmissionDedupTotal counts idempotency decisions on report submission.
// Label:
//   - result: "hit" (replay, no network call) or "miss" (new submission)
var SubmissionDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submission_dedup_total",
		Help:      "Total number of idempotency checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ── SOS metrics ───────────────────────────────────────────────────────────────

// SOSAlertsCreatedTotal counts SOS alerts acknowledged by the alerting
// service.
var SOSAlertsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sos_alerts_created_total",
		Help:      "Total number of SOS alerts successfully created.",
	},
)

// SOSAlertsResolvedTotal counts SOS alerts confirmed resolved.
var SOSAlertsResolvedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sos_alerts_resolved_total",
		Help:      "Total number of SOS alerts successfully resolved.",
	},
)

// SOSFailuresTotal counts SOS activations or resolutions that failed.
// Label:
//   - stage: "activate" or "resolve"
var SOSFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sos_failures_total",
		Help:      "Total number of SOS operations that failed, by stage.",
	},
	[]string{"stage"},
)

// ── Geolocation metrics ───────────────────────────────────────────────────────

// GeolocationFailuresTotal counts failed position acquisitions.
// Label:
//   - kind: "unsupported", "denied", or "unavailable"
var GeolocationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "geolocation_failures_total",
		Help:      "Total number of failed location acquisitions, by failure kind.",
	},
	[]string{"kind"},
)

// LiveSessions tracks the number of sessions currently held by the registry.
var LiveSessions = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "live_sessions",
		Help:      "Current number of live user sessions.",
	},
)
