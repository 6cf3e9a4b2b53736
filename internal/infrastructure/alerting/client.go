// Package alerting implements the HTTP adapter to the remote alerting
// service. The adapter is stateless: each method is a single round trip
// whose response is normalized into domain results, with transport-level
// and application-level failures collapsing into the same failure variant.
package alerting

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/communitysafe/safety-gateway/internal/core/domain"
)

const defaultTimeout = 30 * time.Second

// Client talks to the remote alerting service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient creates a Client. If timeout <= 0, a 30s default is applied.
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// envelope is the canonical response wrapper of the alerting service.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

type reportBody struct {
	IncidentType string  `json:"incident_type"`
	Severity     string  `json:"severity"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Description  string  `json:"description"`
	IncidentTime string  `json:"incident_time"`
	IsAnonymous  bool    `json:"is_anonymous"`
	Address      string  `json:"address"`
}

type sosBody struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Message   string  `json:"message"`
	Priority  string  `json:"priority"`
}

// CreateReport submits an incident report payload.
func (c *Client) CreateReport(ctx context.Context, payload domain.IncidentReportPayload) error {
	body := reportBody{
		IncidentType: payload.IncidentType,
		Severity:     string(payload.Severity),
		Latitude:     payload.Coordinate.Latitude,
		Longitude:    payload.Coordinate.Longitude,
		Description:  payload.Description,
		IncidentTime: payload.IncidentTime.UTC().Format(time.RFC3339),
		IsAnonymous:  payload.IsAnonymous,
		Address:      payload.Address,
	}

	_, err := c.post(ctx, "/community/incidents/", body)
	return err
}

// CreateSOSAlert raises an urgent alert and returns the service-assigned id.
// A successful response without an id yields an empty string; the service
// owner treats that shape as valid, so the adapter does too.
func (c *Client) CreateSOSAlert(ctx context.Context, coord domain.Coordinate) (string, error) {
	body := sosBody{
		Latitude:  coord.Latitude,
		Longitude: coord.Longitude,
		Message:   domain.SOSMessage,
		Priority:  domain.SOSPriority,
	}

	data, err := c.post(ctx, "/sos/alerts/", body)
	if err != nil {
		return "", err
	}

	var created struct {
		Alert struct {
			ID string `json:"id"`
		} `json:"alert"`
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &created); err != nil {
			c.log.Warn().Err(err).Msg("sos create data not decodable, proceeding without id")
		}
	}
	return created.Alert.ID, nil
}

// ResolveSOSAlert marks the alert identified by alertID as resolved.
func (c *Client) ResolveSOSAlert(ctx context.Context, alertID string) error {
	path := fmt.Sprintf("/sos/alerts/%s/resolve/", url.PathEscape(alertID))
	_, err := c.post(ctx, path, struct{}{})
	return err
}

// post performs one round trip and normalizes the outcome: the envelope's
// data on success, a *domain.ServiceFailure on any failure.
func (c *Client) post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, &domain.ServiceFailure{Reason: fmt.Sprintf("encode request: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return nil, &domain.ServiceFailure{Reason: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("path", path).Msg("alerting request failed")
		return nil, &domain.ServiceFailure{Reason: "alerting service unreachable"}
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, &domain.ServiceFailure{Reason: fmt.Sprintf("malformed response (HTTP %d)", resp.StatusCode)}
	}

	if !env.Success {
		reason := env.Error
		if reason == "" {
			if resp.StatusCode < 200 || resp.StatusCode >= 300 {
				reason = fmt.Sprintf("unexpected HTTP status %d", resp.StatusCode)
			} else {
				reason = "unknown error"
			}
		}
		return nil, &domain.ServiceFailure{Reason: reason}
	}

	return env.Data, nil
}
