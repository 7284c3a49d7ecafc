package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apierrors "github.com/salesdeskhq/salesdesk/pkg/api/errors"
	"github.com/salesdeskhq/salesdesk/pkg/conversion"
	"github.com/salesdeskhq/salesdesk/pkg/domain"
	"github.com/salesdeskhq/salesdesk/pkg/importer"
	"github.com/salesdeskhq/salesdesk/pkg/leads"
	"github.com/salesdeskhq/salesdesk/pkg/metrics"
	"github.com/salesdeskhq/salesdesk/pkg/models"
)

// LeadHandler handles lead endpoints
type LeadHandler struct {
	leadService       *leads.Service
	conversionService *conversion.Service
	importService     *importer.Service
	metrics           *metrics.Metrics
	validator         *validator.Validate
	importMaxRows     int
}

// NewLeadHandler creates a new lead handler. importMaxRows caps CSV imports;
// zero keeps the importer default.
func NewLeadHandler(leadService *leads.Service, conversionService *conversion.Service, importService *importer.Service, m *metrics.Metrics, importMaxRows int) *LeadHandler {
	return &LeadHandler{
		leadService:       leadService,
		conversionService: conversionService,
		importService:     importService,
		metrics:           m,
		validator:         validator.New(),
		importMaxRows:     importMaxRows,
	}
}

// Create godoc
// @Summary Create a lead
// @Tags Leads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body leads.CreateLeadRequest true "Lead data"
// @Success 201 {object} ent.Lead
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Router /leads [post]
func (h *LeadHandler) Create(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return apierrors.UnauthorizedError(c)
	}

	var req leads.CreateLeadRequest
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

	l, err := h.leadService.Create(ctx, userID, req)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	h.metrics.RecordLeadCreated()

	return c.JSON(http.StatusCreated, l)
}

// Get godoc
// @Summary Get a lead by id
// @Tags Leads
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lead ID"
// @Success 200 {object} ent.Lead
// @Failure 404 {object} models.ErrorResponse "Lead not found"
// @Router /leads/{id} [get]
func (h *LeadHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	l, err := h.leadService.Get(ctx, id)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, l)
}

// Update godoc
// @Summary Update a lead
// @Tags Leads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lead ID"
// @Param request body leads.UpdateLeadRequest true "Fields to update"
// @Success 200 {object} ent.Lead
// @Failure 404 {object} models.ErrorResponse "Lead not found"
// @Router /leads/{id} [put]
func (h *LeadHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return apierrors.ValidationError(c, err)
	}

	var req leads.UpdateLeadRequest
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

	l, err := h.leadService.Update(ctx, id, req)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, l)
}

// Delete godoc
// @Summary Delete a lead
// @Tags Leads
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lead ID"
// @Success 204 "Deleted"
// @Failure 404 {object} models.ErrorResponse "Lead not found"
// @Router /leads/{id} [delete]
func (h *LeadHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.leadService.Delete(ctx, id); err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// List godoc
// @Summary List leads
// @Description List leads filtered by status, source, owner or free text
// @Tags Leads
// @Produce json
// @Security BearerAuth
// @Param status query string false "Lead status"
// @Param source query string false "Lead source"
// @Param owner_id query int false "Owner user id"
// @Param q query string false "Search over name, company and email"
// @Param page query int false "Page number"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} leads.ListResponse
// @Router /leads [get]
func (h *LeadHandler) List(c echo.Context) error {
	var req leads.ListRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	resp, err := h.leadService.List(ctx, req)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// Convert godoc
// @Summary Convert a lead
// @Description Convert a qualified lead into an account, contact and optional opportunity. The conversion is atomic and a lead can only be converted once.
// @Tags Leads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lead ID"
// @Param request body conversion.Options false "Conversion options (defaults to account + contact)"
// @Success 200 {object} conversion.Result
// @Failure 404 {object} models.ErrorResponse "Lead not found"
// @Failure 409 {object} models.ErrorResponse "Lead already converted"
// @Router /leads/{id}/convert [post]
func (h *LeadHandler) Convert(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return apierrors.UnauthorizedError(c)
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return apierrors.ValidationError(c, err)
	}

	opts := conversion.DefaultOptions()
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&opts); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "invalid_request",
				Message: "Invalid request body",
			})
		}
		if err := h.validator.Struct(opts); err != nil {
			return apierrors.ValidationError(c, err)
		}
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	result, err := h.conversionService.ConvertLead(ctx, userID, id, opts)
	if err != nil {
		switch {
		case domain.IsConflict(err):
			h.metrics.RecordLeadConverted("conflict")
		case domain.IsNotFound(err):
		default:
			h.metrics.RecordLeadConverted("failed")
		}
		return apierrors.FromDomain(c, err)
	}

	h.metrics.RecordLeadConverted("success")

	return c.JSON(http.StatusOK, result)
}

// Import godoc
// @Summary Import leads from CSV
// @Description Bulk import leads from an uploaded CSV file. Required columns: last_name, email. Invalid rows are reported and skipped.
// @Tags Leads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "CSV file"
// @Param validate_only formData bool false "Validate without importing"
// @Success 200 {object} importer.Result
// @Failure 400 {object} models.ErrorResponse "Invalid file"
// @Router /leads/import [post]
func (h *LeadHandler) Import(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return apierrors.UnauthorizedError(c)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "missing_file",
			Message: "A CSV file upload is required",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return apierrors.InternalError(c, err)
	}
	defer file.Close()

	cfg := importer.DefaultConfig()
	if h.importMaxRows > 0 {
		cfg.MaxRows = h.importMaxRows
	}
	if v := c.FormValue("validate_only"); v == "true" || v == "1" {
		cfg.ValidateOnly = true
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Minute)
	defer cancel()

	result, err := h.importService.ImportLeads(ctx, file, userID, cfg)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "import_failed",
			Message: err.Error(),
		})
	}

	if !cfg.ValidateOnly {
		h.metrics.RecordLeadsImported(result.SuccessCount)
	}

	return c.JSON(http.StatusOK, result)
}
