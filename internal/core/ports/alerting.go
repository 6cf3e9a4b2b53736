package ports

import (
	"context"

	"github.com/communitysafe/safety-gateway/internal/core/domain"
)

// AlertClient is the stateless adapter to the remote alerting service. Each
// method performs exactly one network round trip; no internal retry, no
// batching. Failures of any kind — transport errors, malformed responses,
// or an application-level {success:false} — come back as a
// *domain.ServiceFailure.
type AlertClient interface {
	// CreateReport submits a wire-ready incident report.
	CreateReport(ctx context.Context, payload domain.IncidentReportPayload) error

	// CreateSOSAlert raises an urgent alert at the given fix and returns the
	// service-assigned alert id. A successful response that omits the id
	// yields an empty string, not an error.
	CreateSOSAlert(ctx context.Context, coord domain.Coordinate) (string, error)

	// ResolveSOSAlert marks a previously created alert as resolved.
	ResolveSOSAlert(ctx context.Context, alertID string) error
}
