package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/salesdeskhq/salesdesk/pkg/accounts"
	apierrors "github.com/salesdeskhq/salesdesk/pkg/api/errors"
	"github.com/salesdeskhq/salesdesk/pkg/models"
)

// AccountHandler handles account endpoints
type AccountHandler struct {
	accountService *accounts.Service
	validator      *validator.Validate
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService *accounts.Service) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		validator:      validator.New(),
	}
}

// Create godoc
// @Summary Create an account
// @Tags Accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body accounts.CreateAccountRequest true "Account data"
// @Success 201 {object} ent.Account
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Router /accounts [post]
func (h *AccountHandler) Create(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return apierrors.UnauthorizedError(c)
	}

	var req accounts.CreateAccountRequest
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

	a, err := h.accountService.Create(ctx, userID, req)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.JSON(http.StatusCreated, a)
}

// Get godoc
// @Summary Get an account by id
// @Tags Accounts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Account ID"
// @Success 200 {object} ent.Account
// @Failure 404 {object} models.ErrorResponse "Account not found"
// @Router /accounts/{id} [get]
func (h *AccountHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	a, err := h.accountService.Get(ctx, id)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, a)
}

// Update godoc
// @Summary Update an account
// @Tags Accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Account ID"
// @Param request body accounts.UpdateAccountRequest true "Fields to update"
// @Success 200 {object} ent.Account
// @Failure 404 {object} models.ErrorResponse "Account not found"
// @Router /accounts/{id} [put]
func (h *AccountHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return apierrors.ValidationError(c, err)
	}

	var req accounts.UpdateAccountRequest
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

	a, err := h.accountService.Update(ctx, id, req)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, a)
}

// Delete godoc
// @Summary Delete an account
// @Tags Accounts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Account ID"
// @Success 204 "Deleted"
// @Failure 404 {object} models.ErrorResponse "Account not found"
// @Router /accounts/{id} [delete]
func (h *AccountHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.accountService.Delete(ctx, id); err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// List godoc
// @Summary List accounts
// @Tags Accounts
// @Produce json
// @Security BearerAuth
// @Param type query string false "Account type"
// @Param owner_id query int false "Owner user id"
// @Param q query string false "Search over name"
// @Param page query int false "Page number"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} accounts.ListResponse
// @Router /accounts [get]
func (h *AccountHandler) List(c echo.Context) error {
	var req accounts.ListRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	resp, err := h.accountService.List(ctx, req)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}
