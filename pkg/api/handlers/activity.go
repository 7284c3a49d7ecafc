package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/salesdeskhq/salesdesk/pkg/activities"
	apierrors "github.com/salesdeskhq/salesdesk/pkg/api/errors"
	"github.com/salesdeskhq/salesdesk/pkg/models"
)

// ActivityHandler handles activity endpoints
type ActivityHandler struct {
	activityService *activities.Service
	validator       *validator.Validate
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activityService *activities.Service) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
		validator:       validator.New(),
	}
}

// Create godoc
// @Summary Log an activity
// @Description Record a call, meeting, email, task or note against a record
// @Tags Activities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body activities.CreateActivityRequest true "Activity data"
// @Success 201 {object} ent.Activity
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Router /activities [post]
func (h *ActivityHandler) Create(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return apierrors.UnauthorizedError(c)
	}

	var req activities.CreateActivityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	a, err := h.activityService.Create(ctx, userID, req)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.JSON(http.StatusCreated, a)
}

// Update godoc
// @Summary Update an activity
// @Tags Activities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Activity ID"
// @Param request body activities.UpdateActivityRequest true "Fields to update"
// @Success 200 {object} ent.Activity
// @Failure 404 {object} models.ErrorResponse "Activity not found"
// @Router /activities/{id} [put]
func (h *ActivityHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return apierrors.ValidationError(c, err)
	}

	var req activities.UpdateActivityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	a, err := h.activityService.Update(ctx, id, req)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, a)
}

// Complete godoc
// @Summary Mark an activity as completed
// @Tags Activities
// @Produce json
// @Security BearerAuth
// @Param id path int true "Activity ID"
// @Success 200 {object} ent.Activity
// @Failure 404 {object} models.ErrorResponse "Activity not found"
// @Router /activities/{id}/complete [patch]
func (h *ActivityHandler) Complete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	a, err := h.activityService.Complete(ctx, id)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, a)
}

// Delete godoc
// @Summary Delete an activity
// @Tags Activities
// @Produce json
// @Security BearerAuth
// @Param id path int true "Activity ID"
// @Success 204 "Deleted"
// @Failure 404 {object} models.ErrorResponse "Activity not found"
// @Router /activities/{id} [delete]
func (h *ActivityHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.activityService.Delete(ctx, id); err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListForEntity godoc
// @Summary List activities for a record
// @Tags Activities
// @Produce json
// @Security BearerAuth
// @Param entityType path string true "Record type (lead, account, contact, opportunity, case)"
// @Param entityID path int true "Record id"
// @Success 200 {array} ent.Activity
// @Failure 400 {object} models.ErrorResponse "Unknown entity type"
// @Router /activities/{entityType}/{entityID} [get]
func (h *ActivityHandler) ListForEntity(c echo.Context) error {
	entityType := c.Param("entityType")
	entityID, err := strconv.Atoi(c.Param("entityID"))
	if err != nil || entityID <= 0 {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	items, err := h.activityService.ListForEntity(ctx, entityType, entityID)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, items)
}
