// Package geolocation adapts the platform location capability: an HTTP
// location gateway supplied by the hosting environment that answers a
// one-shot "get current position" request.
package geolocation

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/communitysafe/safety-gateway/internal/api/metrics"
	"github.com/communitysafe/safety-gateway/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

// Provider implements ports.GeolocationProvider against the location
// gateway. Each Acquire is independent: no caching, no retry.
type Provider struct {
	gatewayURL string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewProvider creates a Provider. An empty gatewayURL means the hosting
// environment exposes no location capability; Acquire then fails immediately
// with an unsupported failure. If timeout <= 0, a 10s default is applied.
func NewProvider(gatewayURL string, timeout time.Duration, log zerolog.Logger) *Provider {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Provider{
		gatewayURL: gatewayURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

type positionResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Error     string  `json:"error"`
}

// Acquire requests one position fix. Failures map onto the three platform
// outcomes: no capability configured (unsupported), the gateway rejecting
// the request (denied), and everything else (unavailable).
func (p *Provider) Acquire(ctx context.Context) (domain.Coordinate, error) {
	if p.gatewayURL == "" {
		return failure(domain.GeoUnsupported, "no location capability configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.gatewayURL, nil)
	if err != nil {
		return failure(domain.GeoUnavailable, err.Error())
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.Warn().Err(err).Msg("location gateway unreachable")
		return failure(domain.GeoUnavailable, err.Error())
	}
	defer resp.Body.Close()

	var pos positionResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&pos)

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		msg := pos.Error
		if msg == "" {
			msg = "location permission denied"
		}
		return failure(domain.GeoDenied, msg)
	case resp.StatusCode != http.StatusOK:
		msg := pos.Error
		if msg == "" {
			msg = resp.Status
		}
		return failure(domain.GeoUnavailable, msg)
	case decodeErr != nil:
		return failure(domain.GeoUnavailable, "malformed position response")
	}

	coord := domain.Coordinate{Latitude: pos.Latitude, Longitude: pos.Longitude}
	if !coord.Valid() {
		return failure(domain.GeoUnavailable, "position fix out of range")
	}
	return coord, nil
}

func failure(kind domain.GeolocationFailureKind, msg string) (domain.Coordinate, error) {
	metrics.GeolocationFailuresTotal.WithLabelValues(string(kind)).Inc()
	return domain.Coordinate{}, &domain.GeolocationFailure{Kind: kind, Message: msg}
}
