package accounts

import (
	"context"
	"fmt"

	"github.com/salesdeskhq/salesdesk/ent"
	"github.com/salesdeskhq/salesdesk/ent/account"
	"github.com/salesdeskhq/salesdesk/pkg/domain"
	"github.com/salesdeskhq/salesdesk/pkg/models"
)

// Service handles account business logic
type Service struct {
	db *ent.Client
}

// NewService creates a new account service
func NewService(db *ent.Client) *Service {
	return &Service{db: db}
}

// CreateAccountRequest represents a request to create an account.
type CreateAccountRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Type     string `json:"type,omitempty" validate:"omitempty,oneof=prospect customer partner vendor other"`
	Industry string `json:"industry,omitempty" validate:"max=255"`
	Website  string `json:"website,omitempty" validate:"omitempty,url"`
	Phone    string `json:"phone,omitempty" validate:"max=32"`
}

// UpdateAccountRequest represents a partial account update.
type UpdateAccountRequest struct {
	Name     string `json:"name,omitempty" validate:"max=255"`
	Type     string `json:"type,omitempty" validate:"omitempty,oneof=prospect customer partner vendor other"`
	Industry string `json:"industry,omitempty" validate:"max=255"`
	Website  string `json:"website,omitempty" validate:"omitempty,url"`
	Phone    string `json:"phone,omitempty" validate:"max=32"`
}

// ListRequest represents account list filters and pagination.
type ListRequest struct {
	Type    string `query:"type" validate:"omitempty,oneof=prospect customer partner vendor other"`
	OwnerID int    `query:"owner_id"`
	Query   string `query:"q" validate:"max=255"`
	Page    int    `query:"page"`
	Limit   int    `query:"limit"`
}

// ListResponse is a page of accounts.
type ListResponse struct {
	Data       []*ent.Account    `json:"data"`
	Pagination models.Pagination `json:"pagination"`
}

// Create inserts a new account owned by userID.
func (s *Service) Create(ctx context.Context, userID int, req CreateAccountRequest) (*ent.Account, error) {
	create := s.db.Account.Create().
		SetName(req.Name).
		SetOwnerID(userID)

	if req.Type != "" {
		create = create.SetType(account.Type(req.Type))
	}
	if req.Industry != "" {
		create = create.SetIndustry(req.Industry)
	}
	if req.Website != "" {
		create = create.SetWebsite(req.Website)
	}
	if req.Phone != "" {
		create = create.SetPhone(req.Phone)
	}

	a, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return a, nil
}

// Get fetches one account.
func (s *Service) Get(ctx context.Context, id int) (*ent.Account, error) {
	a, err := s.db.Account.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("account")
		}
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}
	return a, nil
}

// Update edits an account.
func (s *Service) Update(ctx context.Context, id int, req UpdateAccountRequest) (*ent.Account, error) {
	update := s.db.Account.UpdateOneID(id)

	if req.Name != "" {
		update = update.SetName(req.Name)
	}
	if req.Type != "" {
		update = update.SetType(account.Type(req.Type))
	}
	if req.Industry != "" {
		update = update.SetIndustry(req.Industry)
	}
	if req.Website != "" {
		update = update.SetWebsite(req.Website)
	}
	if req.Phone != "" {
		update = update.SetPhone(req.Phone)
	}

	a, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("account")
		}
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	return a, nil
}

// Delete removes an account.
func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.db.Account.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return domain.NewNotFoundError("account")
		}
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}

// List returns a filtered, paginated page of accounts, newest first.
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

	query := s.db.Account.Query()

	if req.Type != "" {
		query = query.Where(account.TypeEQ(account.Type(req.Type)))
	}
	if req.OwnerID > 0 {
		query = query.Where(account.OwnerIDEQ(req.OwnerID))
	}
	if req.Query != "" {
		query = query.Where(account.NameContainsFold(req.Query))
	}

	total, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count accounts: %w", err)
	}

	offset := (req.Page - 1) * req.Limit
	totalPages := (total + req.Limit - 1) / req.Limit

	rows, err := query.
		Limit(req.Limit).
		Offset(offset).
		Order(ent.Desc(account.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
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
