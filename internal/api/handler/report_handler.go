package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/communitysafe/safety-gateway/internal/api/metrics"
	"github.com/communitysafe/safety-gateway/internal/core/domain"
	"github.com/communitysafe/safety-gateway/internal/core/ports"
	"github.com/communitysafe/safety-gateway/internal/core/service"
)

// ReportHandler exposes the incident report workflow over HTTP.
type ReportHandler struct {
	registry *service.Registry
}

func NewReportHandler(registry *service.Registry) *ReportHandler {
	return &ReportHandler{registry: registry}
}

// Get handles GET /v1/report — current workflow state.
//
// @Summary      Get the report workflow state
// @Tags         report
// @Produce      json
// @Param        X-Session-ID  header    string  false  "Session identifier"
// @Success      200           {object}  reportStateResponse
// @Router       /v1/report [get]
func (h *ReportHandler) Get(c echo.Context) error {
	sess := bindSession(c, h.registry)
	return c.JSON(http.StatusOK, toReportResponse(sess.ID, sess.Report.Snapshot()))
}

// UpdateDraft handles PUT /v1/report/draft — replace the draft fields.
//
// @Summary      Edit the incident report draft
// @Tags         report
// @Accept       json
// @Produce      json
// @Param        X-Session-ID  header    string        false  "Session identifier"
// @Param        body          body      draftRequest  true   "Draft fields"
// @Success      200           {object}  reportStateResponse
// @Failure      400           {object}  errorResponse
// @Failure      409           {object}  errorResponse
// @Failure      422           {object}  errorResponse
// @Router       /v1/report/draft [put]
func (h *ReportHandler) UpdateDraft(c echo.Context) error {
	var req draftRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	sess := bindSession(c, h.registry)
	snap, err := sess.Report.UpdateDraft(c.Request().Context(), ports.DraftInput{
		IncidentType: req.IncidentType,
		Location:     req.Location,
		Description:  req.Description,
		Severity:     req.Severity,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toReportResponse(sess.ID, snap))
}

// CaptureLocation handles POST /v1/report/location — "use current location".
//
// @Summary      Capture the current location for the next submission
// @Tags         report
// @Produce      json
// @Param        X-Session-ID  header    string  false  "Session identifier"
// @Success      200           {object}  reportStateResponse
// @Failure      409           {object}  errorResponse
// @Router       /v1/report/location [post]
func (h *ReportHandler) CaptureLocation(c echo.Context) error {
	sess := bindSession(c, h.registry)
	snap, err := sess.Report.CaptureLocation(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toReportResponse(sess.ID, snap))
}

// Submit handles POST /v1/report/submit — trigger one submission attempt.
//
// @Summary      Submit the incident report
// @Tags         report
// @Produce      json
// @Param        X-Session-ID     header    string  false  "Session identifier"
// @Param        Idempotency-Key  header    string  false  "Idempotency key to prevent duplicate submissions"
// @Success      200              {object}  reportStateResponse
// @Failure      409              {object}  errorResponse
// @Router       /v1/report/submit [post]
func (h *ReportHandler) Submit(c echo.Context) error {
	sess := bindSession(c, h.registry)
	severity := sess.Report.Snapshot().Draft.Severity
	idempotencyKey := c.Request().Header.Get("Idempotency-Key")

	snap, err := sess.Report.Submit(c.Request().Context(), idempotencyKey)
	if err != nil {
		return err
	}

	switch snap.Phase {
	case domain.ReportIdle:
		metrics.ReportsSubmittedTotal.WithLabelValues(string(severity)).Inc()
	case domain.ReportFailed:
		metrics.ReportFailuresTotal.WithLabelValues(snap.FailureKind).Inc()
	}

	return c.JSON(http.StatusOK, toReportResponse(sess.ID, snap))
}
