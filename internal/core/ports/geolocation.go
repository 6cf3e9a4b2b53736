package ports

import (
	"context"

	"github.com/communitysafe/safety-gateway/internal/core/domain"
)

// GeolocationProvider wraps the platform location capability. Acquire is
// single-shot: no caching, no retry, each call independent. On failure the
// returned error is a *domain.GeolocationFailure.
type GeolocationProvider interface {
	Acquire(ctx context.Context) (domain.Coordinate, error)
}
