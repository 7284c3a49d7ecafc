package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	apierrors "github.com/salesdeskhq/salesdesk/pkg/api/errors"
	"github.com/salesdeskhq/salesdesk/pkg/audit"
)

// AuditHandler exposes the audit trail to admins
type AuditHandler struct {
	auditService *audit.Service
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(auditService *audit.Service) *AuditHandler {
	return &AuditHandler{
		auditService: auditService,
	}
}

// Recent godoc
// @Summary Recent audit log entries
// @Tags Audit
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max entries (default 50)"
// @Success 200 {array} ent.AuditLog
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Router /audit [get]
func (h *AuditHandler) Recent(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 {
		limit = 50
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	entries, err := h.auditService.GetRecent(ctx, limit)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, entries)
}

// ForEntity godoc
// @Summary Audit log entries for a record
// @Tags Audit
// @Produce json
// @Security BearerAuth
// @Param entityType path string true "Record type"
// @Param entityID path int true "Record id"
// @Param limit query int false "Max entries (default 50)"
// @Success 200 {array} ent.AuditLog
// @Router /audit/{entityType}/{entityID} [get]
func (h *AuditHandler) ForEntity(c echo.Context) error {
	entityType := c.Param("entityType")
	entityID, err := strconv.Atoi(c.Param("entityID"))
	if err != nil || entityID <= 0 {
		return apierrors.ValidationError(c, err)
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	entries, err := h.auditService.ListForEntity(ctx, entityType, entityID, limit)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, entries)
}
