package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/communitysafe/safety-gateway/internal/core/domain"
)

func TestSOSHandler_Activate_Success(t *testing.T) {
	e := echo.New()
	geo := &stubGeo{coord: domain.Coordinate{Latitude: 52.52, Longitude: 13.4}}
	h := NewSOSHandler(newTestRegistry(geo, &stubAlerts{sosID: "abc123"}))

	c, rec := newTestContext(e, http.MethodPost, "/v1/sos/activate", "")
	if err := h.Activate(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	resp := decodeBody(t, rec)
	if resp["phase"] != "active" {
		t.Fatalf("expected active, got %v", resp["phase"])
	}
	if resp["alert_id"] != "abc123" {
		t.Fatalf("unexpected alert id: %v", resp["alert_id"])
	}
	notice := resp["notice"].(map[string]any)
	if notice["message"] != "Your location has been shared. Help is on the way." {
		t.Fatalf("unexpected notice: %v", notice)
	}
}

func TestSOSHandler_Activate_GeolocationDenied(t *testing.T) {
	e := echo.New()
	geo := &stubGeo{err: &domain.GeolocationFailure{Kind: domain.GeoDenied, Message: "permission denied"}}
	h := NewSOSHandler(newTestRegistry(geo, &stubAlerts{}))

	c, rec := newTestContext(e, http.MethodPost, "/v1/sos/activate", "")
	if err := h.Activate(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	resp := decodeBody(t, rec)
	if resp["phase"] != "failed" {
		t.Fatalf("expected failed, got %v", resp["phase"])
	}
	notice := resp["notice"].(map[string]any)
	if notice["message"] != "Please enable location permissions to send SOS." {
		t.Fatalf("unexpected notice: %v", notice)
	}
}

func TestSOSHandler_Resolve_WithoutActiveAlert(t *testing.T) {
	e := echo.New()
	h := NewSOSHandler(newTestRegistry(&stubGeo{}, &stubAlerts{}))

	c, _ := newTestContext(e, http.MethodPost, "/v1/sos/resolve", "")
	err := h.Resolve(c)
	if !errors.Is(err, domain.ErrNoActiveAlert) {
		t.Fatalf("expected ErrNoActiveAlert, got %v", err)
	}
}

func TestSOSHandler_ActivateThenResolve(t *testing.T) {
	e := echo.New()
	geo := &stubGeo{coord: domain.Coordinate{Latitude: 1, Longitude: 1}}
	h := NewSOSHandler(newTestRegistry(geo, &stubAlerts{sosID: "abc123"}))

	c, rec := newTestContext(e, http.MethodPost, "/v1/sos/activate", "")
	if err := h.Activate(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	id := rec.Header().Get(SessionHeader)

	c2, rec2 := newTestContext(e, http.MethodPost, "/v1/sos/resolve", "")
	c2.Request().Header.Set(SessionHeader, id)
	if err := h.Resolve(c2); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	resp := decodeBody(t, rec2)
	if resp["phase"] != "idle" {
		t.Fatalf("expected idle after resolve, got %v", resp["phase"])
	}
	if _, present := resp["alert_id"]; present {
		t.Fatal("resolved state must not expose an alert id")
	}
}
