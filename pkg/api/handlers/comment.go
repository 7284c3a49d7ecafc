package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apierrors "github.com/salesdeskhq/salesdesk/pkg/api/errors"
	"github.com/salesdeskhq/salesdesk/pkg/comments"
	"github.com/salesdeskhq/salesdesk/pkg/models"
)

// CommentHandler handles comment endpoints. Comments are append-only;
// there is no update or delete route.
type CommentHandler struct {
	commentService *comments.Service
	validator      *validator.Validate
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(commentService *comments.Service) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		validator:      validator.New(),
	}
}

// Create godoc
// @Summary Add a comment to a record
// @Tags Comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body comments.CreateCommentRequest true "Comment data"
// @Success 201 {object} comments.CommentResponse
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Router /comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return apierrors.UnauthorizedError(c)
	}

	var req comments.CreateCommentRequest
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

	comment, err := h.commentService.Create(ctx, userID, req)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.JSON(http.StatusCreated, comment)
}

// ListForEntity godoc
// @Summary List comments for a record
// @Description All comments on a record, newest first
// @Tags Comments
// @Produce json
// @Security BearerAuth
// @Param entityType path string true "Record type (lead, account, contact, opportunity, case)"
// @Param entityID path int true "Record id"
// @Success 200 {array} comments.CommentResponse
// @Failure 400 {object} models.ErrorResponse "Unknown entity type"
// @Router /comments/{entityType}/{entityID} [get]
func (h *CommentHandler) ListForEntity(c echo.Context) error {
	entityType := c.Param("entityType")
	entityID, err := strconv.Atoi(c.Param("entityID"))
	if err != nil || entityID <= 0 {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	items, err := h.commentService.ListResponses(ctx, entityType, entityID)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, items)
}
