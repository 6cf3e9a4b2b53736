package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/communitysafe/safety-gateway/internal/api/metrics"
	"github.com/communitysafe/safety-gateway/internal/core/domain"
	"github.com/communitysafe/safety-gateway/internal/core/service"
)

// SOSHandler exposes the SOS alert workflow over HTTP.
type SOSHandler struct {
	registry *service.Registry
}

func NewSOSHandler(registry *service.Registry) *SOSHandler {
	return &SOSHandler{registry: registry}
}

// Get handles GET /v1/sos — current workflow state.
//
// @Summary      Get the SOS workflow state
// @Tags         sos
// @Produce      json
// @Param        X-Session-ID  header    string  false  "Session identifier"
// @Success      200           {object}  sosStateResponse
// @Router       /v1/sos [get]
func (h *SOSHandler) Get(c echo.Context) error {
	sess := bindSession(c, h.registry)
	return c.JSON(http.StatusOK, toSOSResponse(sess.ID, sess.SOS.Snapshot()))
}

// Activate handles POST /v1/sos/activate — acquire a fix and raise an alert.
//
// @Summary      Activate an SOS alert at the current location
// @Tags         sos
// @Produce      json
// @Param        X-Session-ID  header    string  false  "Session identifier"
// @Success      200           {object}  sosStateResponse
// @Failure      409           {object}  errorResponse
// @Router       /v1/sos/activate [post]
func (h *SOSHandler) Activate(c echo.Context) error {
	sess := bindSession(c, h.registry)
	snap, err := sess.SOS.Activate(c.Request().Context())
	if err != nil {
		return err
	}

	switch snap.Phase {
	case domain.SOSActive:
		metrics.SOSAlertsCreatedTotal.Inc()
	case domain.SOSFailed:
		metrics.SOSFailuresTotal.WithLabelValues("activate").Inc()
	}

	return c.JSON(http.StatusOK, toSOSResponse(sess.ID, snap))
}

// Resolve handles POST /v1/sos/resolve — mark the active alert safe.
//
// @Summary      Resolve the active SOS alert
// @Tags         sos
// @Produce      json
// @Param        X-Session-ID  header    string  false  "Session identifier"
// @Success      200           {object}  sosStateResponse
// @Failure      409           {object}  errorResponse
// @Router       /v1/sos/resolve [post]
func (h *SOSHandler) Resolve(c echo.Context) error {
	sess := bindSession(c, h.registry)
	snap, err := sess.SOS.Resolve(c.Request().Context())
	if err != nil {
		return err
	}

	switch snap.Phase {
	case domain.SOSIdle:
		metrics.SOSAlertsResolvedTotal.Inc()
	case domain.SOSActive:
		// Resolve failed and the alert is still live.
		metrics.SOSFailuresTotal.WithLabelValues("resolve").Inc()
	}

	return c.JSON(http.StatusOK, toSOSResponse(sess.ID, snap))
}
