package cases

import (
	"context"
	"fmt"

	"github.com/salesdeskhq/salesdesk/ent"
	"github.com/salesdeskhq/salesdesk/ent/supportcase"
	"github.com/salesdeskhq/salesdesk/pkg/domain"
	"github.com/salesdeskhq/salesdesk/pkg/models"
)

// Service handles support case business logic
type Service struct {
	db *ent.Client
}

// NewService creates a new case service
func NewService(db *ent.Client) *Service {
	return &Service{db: db}
}

// CreateCaseRequest represents a request to open a case.
type CreateCaseRequest struct {
	Subject     string `json:"subject" validate:"required,max=255"`
	Description string `json:"description,omitempty" validate:"max=10000"`
	Priority    string `json:"priority,omitempty" validate:"omitempty,oneof=low medium high urgent"`
	AccountID   int    `json:"account_id,omitempty" validate:"omitempty,gt=0"`
	ContactID   int    `json:"contact_id,omitempty" validate:"omitempty,gt=0"`
}

// UpdateCaseRequest represents a partial case update.
type UpdateCaseRequest struct {
	Subject     string `json:"subject,omitempty" validate:"max=255"`
	Description string `json:"description,omitempty" validate:"max=10000"`
	Status      string `json:"status,omitempty" validate:"omitempty,oneof=open pending resolved closed"`
	Priority    string `json:"priority,omitempty" validate:"omitempty,oneof=low medium high urgent"`
}

// ListRequest represents case list filters and pagination.
type ListRequest struct {
	Status    string `query:"status" validate:"omitempty,oneof=open pending resolved closed"`
	Priority  string `query:"priority" validate:"omitempty,oneof=low medium high urgent"`
	AccountID int    `query:"account_id"`
	OwnerID   int    `query:"owner_id"`
	Page      int    `query:"page"`
	Limit     int    `query:"limit"`
}

// ListResponse is a page of cases.
type ListResponse struct {
	Data       []*ent.SupportCase `json:"data"`
	Pagination models.Pagination  `json:"pagination"`
}

// Create opens a new case owned by userID.
func (s *Service) Create(ctx context.Context, userID int, req CreateCaseRequest) (*ent.SupportCase, error) {
	create := s.db.SupportCase.Create().
		SetSubject(req.Subject).
		SetOwnerID(userID)

	if req.Description != "" {
		create = create.SetDescription(req.Description)
	}
	if req.Priority != "" {
		create = create.SetPriority(supportcase.Priority(req.Priority))
	}
	if req.AccountID > 0 {
		create = create.SetAccountID(req.AccountID)
	}
	if req.ContactID > 0 {
		create = create.SetContactID(req.ContactID)
	}

	c, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create case: %w", err)
	}
	return c, nil
}

// Get fetches one case.
func (s *Service) Get(ctx context.Context, id int) (*ent.SupportCase, error) {
	c, err := s.db.SupportCase.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("case")
		}
		return nil, fmt.Errorf("failed to fetch case: %w", err)
	}
	return c, nil
}

// Update edits a case.
func (s *Service) Update(ctx context.Context, id int, req UpdateCaseRequest) (*ent.SupportCase, error) {
	update := s.db.SupportCase.UpdateOneID(id)

	if req.Subject != "" {
		update = update.SetSubject(req.Subject)
	}
	if req.Description != "" {
		update = update.SetDescription(req.Description)
	}
	if req.Status != "" {
		update = update.SetStatus(supportcase.Status(req.Status))
	}
	if req.Priority != "" {
		update = update.SetPriority(supportcase.Priority(req.Priority))
	}

	c, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("case")
		}
		return nil, fmt.Errorf("failed to update case: %w", err)
	}
	return c, nil
}

// Delete removes a case.
func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.db.SupportCase.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return domain.NewNotFoundError("case")
		}
		return fmt.Errorf("failed to delete case: %w", err)
	}
	return nil
}

// List returns a filtered, paginated page of cases, newest first.
func (s *Service) List(ctx context.Context, req ListRequest) (*ListResponse, error) {
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.Limit <= 0 {
		req.Limit = 50
	}
	if req.Limit > 100 {
		req.Limit = 100
	}

	query := s.db.SupportCase.Query()

	if req.Status != "" {
		query = query.Where(supportcase.StatusEQ(supportcase.Status(req.Status)))
	}
	if req.Priority != "" {
		query = query.Where(supportcase.PriorityEQ(supportcase.Priority(req.Priority)))
	}
	if req.AccountID > 0 {
		query = query.Where(supportcase.AccountIDEQ(req.AccountID))
	}
	if req.OwnerID > 0 {
		query = query.Where(supportcase.OwnerIDEQ(req.OwnerID))
	}

	total, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count cases: %w", err)
	}

	offset := (req.Page - 1) * req.Limit
	totalPages := (total + req.Limit - 1) / req.Limit

	rows, err := query.
		Limit(req.Limit).
		Offset(offset).
		Order(ent.Desc(supportcase.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query cases: %w", err)
	}

	return &ListResponse{
		Data: rows,
		Pagination: models.Pagination{
			Page:       req.Page,
			Limit:      req.Limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

// CountOpen returns the number of open and pending cases for the dashboard.
func (s *Service) CountOpen(ctx context.Context) (int, error) {
	return s.db.SupportCase.Query().
		Where(supportcase.StatusIn(supportcase.StatusOpen, supportcase.StatusPending)).
		Count(ctx)
}
