package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	apierrors "github.com/salesdeskhq/salesdesk/pkg/api/errors"
	"github.com/salesdeskhq/salesdesk/pkg/metrics"
	"github.com/salesdeskhq/salesdesk/pkg/timeline"
)

// TimelineHandler serves the unified record timeline
type TimelineHandler struct {
	timelineService *timeline.Service
	metrics         *metrics.Metrics
}

// NewTimelineHandler creates a new timeline handler
func NewTimelineHandler(timelineService *timeline.Service, m *metrics.Metrics) *TimelineHandler {
	return &TimelineHandler{
		timelineService: timelineService,
		metrics:         m,
	}
}

// Get godoc
// @Summary Record timeline
// @Description Audit history, comments and activities for one record, merged newest first. A failing source degrades to empty instead of failing the request.
// @Tags Timeline
// @Produce json
// @Security BearerAuth
// @Param entityType path string true "Record type (lead, account, contact, opportunity, case)"
// @Param entityID path int true "Record id"
// @Success 200 {object} timeline.Timeline
// @Failure 400 {object} models.ErrorResponse "Unknown entity type"
// @Router /timeline/{entityType}/{entityID} [get]
func (h *TimelineHandler) Get(c echo.Context) error {
	entityType := c.Param("entityType")
	entityID, err := strconv.Atoi(c.Param("entityID"))
	if err != nil || entityID <= 0 {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	tl, err := h.timelineService.Get(ctx, entityType, entityID)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	h.metrics.RecordTimelineRequest()

	return c.JSON(http.StatusOK, tl)
}
