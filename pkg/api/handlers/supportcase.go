package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apierrors "github.com/salesdeskhq/salesdesk/pkg/api/errors"
	"github.com/salesdeskhq/salesdesk/pkg/cases"
	"github.com/salesdeskhq/salesdesk/pkg/models"
)

// CaseHandler handles support case endpoints
type CaseHandler struct {
	caseService *cases.Service
	validator   *validator.Validate
}

// NewCaseHandler creates a new case handler
func NewCaseHandler(caseService *cases.Service) *CaseHandler {
	return &CaseHandler{
		caseService: caseService,
		validator:   validator.New(),
	}
}

// Create godoc
// @Summary Open a support case
// @Tags Cases
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body cases.CreateCaseRequest true "Case data"
// @Success 201 {object} ent.SupportCase
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Router /cases [post]
func (h *CaseHandler) Create(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return apierrors.UnauthorizedError(c)
	}

	var req cases.CreateCaseRequest
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

	sc, err := h.caseService.Create(ctx, userID, req)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.JSON(http.StatusCreated, sc)
}

// Get godoc
// @Summary Get a case by id
// @Tags Cases
// @Produce json
// @Security BearerAuth
// @Param id path int true "Case ID"
// @Success 200 {object} ent.SupportCase
// @Failure 404 {object} models.ErrorResponse "Case not found"
// @Router /cases/{id} [get]
func (h *CaseHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	sc, err := h.caseService.Get(ctx, id)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, sc)
}

// Update godoc
// @Summary Update a case
// @Tags Cases
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Case ID"
// @Param request body cases.UpdateCaseRequest true "Fields to update"
// @Success 200 {object} ent.SupportCase
// @Failure 404 {object} models.ErrorResponse "Case not found"
// @Router /cases/{id} [put]
func (h *CaseHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return apierrors.ValidationError(c, err)
	}

	var req cases.UpdateCaseRequest
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

	sc, err := h.caseService.Update(ctx, id, req)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, sc)
}

// Delete godoc
// @Summary Delete a case
// @Tags Cases
// @Produce json
// @Security BearerAuth
// @Param id path int true "Case ID"
// @Success 204 "Deleted"
// @Failure 404 {object} models.ErrorResponse "Case not found"
// @Router /cases/{id} [delete]
func (h *CaseHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.caseService.Delete(ctx, id); err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// List godoc
// @Summary List cases
// @Tags Cases
// @Produce json
// @Security BearerAuth
// @Param status query string false "Case status"
// @Param priority query string false "Case priority"
// @Param account_id query int false "Filter by account"
// @Param owner_id query int false "Owner user id"
// @Param page query int false "Page number"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} cases.ListResponse
// @Router /cases [get]
func (h *CaseHandler) List(c echo.Context) error {
	var req cases.ListRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	resp, err := h.caseService.List(ctx, req)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}
