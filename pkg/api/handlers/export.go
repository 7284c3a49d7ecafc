package handlers

import (
	"context"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apierrors "github.com/salesdeskhq/salesdesk/pkg/api/errors"
	"github.com/salesdeskhq/salesdesk/pkg/export"
	"github.com/salesdeskhq/salesdesk/pkg/metrics"
	"github.com/salesdeskhq/salesdesk/pkg/models"
)

// ExportHandler handles export endpoints
type ExportHandler struct {
	exportService *export.Service
	metrics       *metrics.Metrics
	validator     *validator.Validate
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService *export.Service, m *metrics.Metrics) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
		metrics:       m,
		validator:     validator.New(),
	}
}

// Create godoc
// @Summary Create an export
// @Description Queue a CSV or Excel export of a record type. Processing is asynchronous; poll the export until its status is ready.
// @Tags Exports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body export.Request true "Export parameters"
// @Success 202 {object} export.Response
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Router /exports [post]
func (h *ExportHandler) Create(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return apierrors.UnauthorizedError(c)
	}

	var req export.Request
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

	resp, err := h.exportService.Create(ctx, userID, req)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	h.metrics.RecordExportCreated(req.Entity, req.Format)

	return c.JSON(http.StatusAccepted, resp)
}

// Get godoc
// @Summary Get an export by id
// @Tags Exports
// @Produce json
// @Security BearerAuth
// @Param id path int true "Export ID"
// @Success 200 {object} export.Response
// @Failure 404 {object} models.ErrorResponse "Export not found"
// @Router /exports/{id} [get]
func (h *ExportHandler) Get(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return apierrors.UnauthorizedError(c)
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp, err := h.exportService.Get(ctx, userID, id)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// List godoc
// @Summary List exports
// @Tags Exports
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} export.ListResponse
// @Router /exports [get]
func (h *ExportHandler) List(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return apierrors.UnauthorizedError(c)
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	resp, err := h.exportService.List(ctx, userID, page, limit)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// Download godoc
// @Summary Download an export file
// @Description Stream the generated file. Accepts the JWT as a token query parameter so the link works in a browser.
// @Tags Exports
// @Produce octet-stream
// @Security BearerAuth
// @Param id path int true "Export ID"
// @Success 200 {file} file
// @Failure 404 {object} models.ErrorResponse "Export not found"
// @Failure 409 {object} models.ErrorResponse "Export not ready or expired"
// @Router /exports/{id}/download [get]
func (h *ExportHandler) Download(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return apierrors.UnauthorizedError(c)
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	path, err := h.exportService.FilePath(ctx, userID, id)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.Attachment(path, filepath.Base(path))
}
