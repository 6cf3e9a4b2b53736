package alerting

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/communitysafe/safety-gateway/internal/core/domain"
)

func newTestClient(baseURL string) *Client {
	return NewClient(baseURL, 5*time.Second, zerolog.Nop())
}

func TestClient_CreateReport_Success(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/community/incidents/", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	err := c.CreateReport(context.Background(), domain.IncidentReportPayload{
		IncidentType: "Theft",
		Severity:     domain.SeverityHigh,
		Coordinate:   domain.Coordinate{Latitude: 40.7, Longitude: -74.0},
		Description:  "A bicycle was stolen from the rack.",
		IncidentTime: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		IsAnonymous:  false,
		Address:      "Main St and 5th Ave",
	})
	require.NoError(t, err)

	assert.Equal(t, "Theft", received["incident_type"])
	assert.Equal(t, "high", received["severity"])
	assert.Equal(t, 40.7, received["latitude"])
	assert.Equal(t, -74.0, received["longitude"])
	assert.Equal(t, "2026-03-14T09:30:00Z", received["incident_time"])
	assert.Equal(t, false, received["is_anonymous"])
	assert.Equal(t, "Main St and 5th Ave", received["address"])
}

func TestClient_CreateReport_ApplicationError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "incident_time is in the future"})
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	err := c.CreateReport(context.Background(), domain.IncidentReportPayload{})

	var sf *domain.ServiceFailure
	require.ErrorAs(t, err, &sf)
	assert.Equal(t, "incident_time is in the future", sf.Reason)
}

func TestClient_CreateReport_ErrorWithoutMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false})
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	err := c.CreateReport(context.Background(), domain.IncidentReportPayload{})

	var sf *domain.ServiceFailure
	require.ErrorAs(t, err, &sf)
	assert.Equal(t, "unexpected HTTP status 502", sf.Reason)
}

func TestClient_CreateReport_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // refuse all connections

	c := newTestClient(server.URL)
	err := c.CreateReport(context.Background(), domain.IncidentReportPayload{})

	var sf *domain.ServiceFailure
	require.ErrorAs(t, err, &sf)
	assert.Equal(t, "alerting service unreachable", sf.Reason)
}

func TestClient_CreateReport_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>gateway error</html>"))
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	err := c.CreateReport(context.Background(), domain.IncidentReportPayload{})

	var sf *domain.ServiceFailure
	require.ErrorAs(t, err, &sf)
	assert.Equal(t, "malformed response (HTTP 200)", sf.Reason)
}

func TestClient_CreateSOSAlert_Success(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/sos/alerts/", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]any{"alert": map[string]any{"id": "abc123"}},
		})
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	id, err := c.CreateSOSAlert(context.Background(), domain.Coordinate{Latitude: 52.52, Longitude: 13.4})
	require.NoError(t, err)
	assert.Equal(t, "abc123", id)

	assert.Equal(t, 52.52, received["latitude"])
	assert.Equal(t, 13.4, received["longitude"])
	assert.Equal(t, "Urgent help needed", received["message"])
	assert.Equal(t, "high", received["priority"])
}

func TestClient_CreateSOSAlert_SuccessWithoutID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": map[string]any{}})
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	id, err := c.CreateSOSAlert(context.Background(), domain.Coordinate{})
	require.NoError(t, err)
	assert.Empty(t, id, "a success without an id yields an empty id, not an error")
}

func TestClient_ResolveSOSAlert_EscapesID(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	require.NoError(t, c.ResolveSOSAlert(context.Background(), "abc/123"))
	assert.Equal(t, "/sos/alerts/abc%2F123/resolve/", gotPath)
}

func TestClient_ResolveSOSAlert_Failure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "alert not found"})
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	err := c.ResolveSOSAlert(context.Background(), "missing")

	var sf *domain.ServiceFailure
	require.ErrorAs(t, err, &sf)
	assert.Equal(t, "alert not found", sf.Reason)
}

func TestClient_ContextCancellation(t *testing.T) {
	block := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer server.Close()
	defer close(block)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	c := newTestClient(server.URL)
	err := c.CreateReport(ctx, domain.IncidentReportPayload{})

	var sf *domain.ServiceFailure
	require.ErrorAs(t, err, &sf)
	assert.True(t, errors.Is(ctx.Err(), context.DeadlineExceeded))
}
