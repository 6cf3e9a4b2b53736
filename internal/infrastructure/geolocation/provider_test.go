package geolocation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/communitysafe/safety-gateway/internal/core/domain"
)

func newTestProvider(url string) *Provider {
	return NewProvider(url, 5*time.Second, zerolog.Nop())
}

func requireFailureKind(t *testing.T, err error, kind domain.GeolocationFailureKind) *domain.GeolocationFailure {
	t.Helper()
	var gf *domain.GeolocationFailure
	require.ErrorAs(t, err, &gf)
	assert.Equal(t, kind, gf.Kind)
	return gf
}

func TestProvider_Acquire_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"latitude": 48.85, "longitude": 2.35})
	}))
	defer server.Close()

	p := newTestProvider(server.URL)
	coord, err := p.Acquire(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Coordinate{Latitude: 48.85, Longitude: 2.35}, coord)
}

func TestProvider_Acquire_NoCapability(t *testing.T) {
	p := newTestProvider("")
	_, err := p.Acquire(context.Background())
	gf := requireFailureKind(t, err, domain.GeoUnsupported)
	assert.Equal(t, "no location capability configured", gf.Message)
}

func TestProvider_Acquire_Denied(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]any{"error": "user denied the request"})
	}))
	defer server.Close()

	p := newTestProvider(server.URL)
	_, err := p.Acquire(context.Background())
	gf := requireFailureKind(t, err, domain.GeoDenied)
	assert.Equal(t, "user denied the request", gf.Message)
}

func TestProvider_Acquire_DeniedWithoutBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	p := newTestProvider(server.URL)
	_, err := p.Acquire(context.Background())
	gf := requireFailureKind(t, err, domain.GeoDenied)
	assert.Equal(t, "location permission denied", gf.Message)
}

func TestProvider_Acquire_GatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(map[string]any{"error": "no position fix available"})
	}))
	defer server.Close()

	p := newTestProvider(server.URL)
	_, err := p.Acquire(context.Background())
	gf := requireFailureKind(t, err, domain.GeoUnavailable)
	assert.Equal(t, "no position fix available", gf.Message)
}

func TestProvider_Acquire_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	p := newTestProvider(server.URL)
	_, err := p.Acquire(context.Background())
	requireFailureKind(t, err, domain.GeoUnavailable)
}

func TestProvider_Acquire_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	p := newTestProvider(server.URL)
	_, err := p.Acquire(context.Background())
	gf := requireFailureKind(t, err, domain.GeoUnavailable)
	assert.Equal(t, "malformed position response", gf.Message)
}

func TestProvider_Acquire_OutOfRangeFix(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"latitude": 120.0, "longitude": 2.35})
	}))
	defer server.Close()

	p := newTestProvider(server.URL)
	_, err := p.Acquire(context.Background())
	gf := requireFailureKind(t, err, domain.GeoUnavailable)
	assert.Equal(t, "position fix out of range", gf.Message)
}
