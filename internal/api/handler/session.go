package handler

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/communitysafe/safety-gateway/internal/api/metrics"
	"github.com/communitysafe/safety-gateway/internal/core/service"
)

// SessionHeader identifies the caller's session. Requests without it get a
// fresh session; the allocated id is echoed back on every response so the
// client can carry it forward.
const SessionHeader = "X-Session-ID"

// bindSession resolves (or creates) the session for the request and echoes
// its id on the response.
func bindSession(c echo.Context, registry *service.Registry) *service.Session {
	id := strings.TrimSpace(c.Request().Header.Get(SessionHeader))
	sess := registry.Ensure(id)
	c.Response().Header().Set(SessionHeader, sess.ID)
	metrics.LiveSessions.Set(float64(registry.Len()))
	return sess
}
