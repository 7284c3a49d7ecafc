package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apierrors "github.com/salesdeskhq/salesdesk/pkg/api/errors"
	"github.com/salesdeskhq/salesdesk/pkg/models"
	"github.com/salesdeskhq/salesdesk/pkg/opportunities"
)

// OpportunityHandler handles opportunity endpoints
type OpportunityHandler struct {
	oppService *opportunities.Service
	validator  *validator.Validate
}

// NewOpportunityHandler creates a new opportunity handler
func NewOpportunityHandler(oppService *opportunities.Service) *OpportunityHandler {
	return &OpportunityHandler{
		oppService: oppService,
		validator:  validator.New(),
	}
}

// stageRequest is the body for stage moves on the pipeline board.
type stageRequest struct {
	Stage string `json:"stage" validate:"required,oneof=new qualification proposal negotiation closed_won closed_lost"`
}

// Create godoc
// @Summary Create an opportunity
// @Tags Opportunities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body opportunities.CreateOpportunityRequest true "Opportunity data"
// @Success 201 {object} ent.Opportunity
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Router /opportunities [post]
func (h *OpportunityHandler) Create(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return apierrors.UnauthorizedError(c)
	}

	var req opportunities.CreateOpportunityRequest
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

	o, err := h.oppService.Create(ctx, userID, req)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.JSON(http.StatusCreated, o)
}

// Get godoc
// @Summary Get an opportunity by id
// @Tags Opportunities
// @Produce json
// @Security BearerAuth
// @Param id path int true "Opportunity ID"
// @Success 200 {object} ent.Opportunity
// @Failure 404 {object} models.ErrorResponse "Opportunity not found"
// @Router /opportunities/{id} [get]
func (h *OpportunityHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	o, err := h.oppService.Get(ctx, id)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, o)
}

// Update godoc
// @Summary Update an opportunity
// @Tags Opportunities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Opportunity ID"
// @Param request body opportunities.UpdateOpportunityRequest true "Fields to update"
// @Success 200 {object} ent.Opportunity
// @Failure 404 {object} models.ErrorResponse "Opportunity not found"
// @Router /opportunities/{id} [put]
func (h *OpportunityHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return apierrors.ValidationError(c, err)
	}

	var req opportunities.UpdateOpportunityRequest
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

	o, err := h.oppService.Update(ctx, id, req)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, o)
}

// UpdateStage godoc
// @Summary Move an opportunity to a pipeline stage
// @Tags Opportunities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Opportunity ID"
// @Param request body stageRequest true "Target stage"
// @Success 200 {object} ent.Opportunity
// @Failure 404 {object} models.ErrorResponse "Opportunity not found"
// @Router /opportunities/{id}/stage [patch]
func (h *OpportunityHandler) UpdateStage(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return apierrors.UnauthorizedError(c)
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return apierrors.ValidationError(c, err)
	}

	var req stageRequest
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

	o, err := h.oppService.UpdateStage(ctx, userID, id, req.Stage)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, o)
}

// Delete godoc
// @Summary Delete an opportunity
// @Tags Opportunities
// @Produce json
// @Security BearerAuth
// @Param id path int true "Opportunity ID"
// @Success 204 "Deleted"
// @Failure 404 {object} models.ErrorResponse "Opportunity not found"
// @Router /opportunities/{id} [delete]
func (h *OpportunityHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.oppService.Delete(ctx, id); err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// List godoc
// @Summary List opportunities
// @Tags Opportunities
// @Produce json
// @Security BearerAuth
// @Param stage query string false "Pipeline stage"
// @Param account_id query int false "Filter by account"
// @Param owner_id query int false "Owner user id"
// @Param page query int false "Page number"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} opportunities.ListResponse
// @Router /opportunities [get]
func (h *OpportunityHandler) List(c echo.Context) error {
	var req opportunities.ListRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	resp, err := h.oppService.List(ctx, req)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// Pipeline godoc
// @Summary Pipeline board
// @Description All stages with their deals and totals, for the Kanban view
// @Tags Opportunities
// @Produce json
// @Security BearerAuth
// @Param owner_id query int false "Restrict to one owner"
// @Success 200 {array} opportunities.PipelineColumn
// @Router /opportunities/pipeline [get]
func (h *OpportunityHandler) Pipeline(c echo.Context) error {
	ownerID, _ := strconv.Atoi(c.QueryParam("owner_id"))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	columns, err := h.oppService.Pipeline(ctx, ownerID)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, columns)
}
