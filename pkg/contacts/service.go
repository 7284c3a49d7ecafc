package contacts

import (
	"context"
	"fmt"

	"github.com/salesdeskhq/salesdesk/ent"
	"github.com/salesdeskhq/salesdesk/ent/contact"
	"github.com/salesdeskhq/salesdesk/pkg/domain"
	"github.com/salesdeskhq/salesdesk/pkg/models"
)

// Service handles contact business logic
type Service struct {
	db *ent.Client
}

// NewService creates a new contact service
func NewService(db *ent.Client) *Service {
	return &Service{db: db}
}

// CreateContactRequest represents a request to create a contact.
type CreateContactRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     string `json:"phone,omitempty" validate:"max=32"`
	Title     string `json:"title,omitempty" validate:"max=255"`
	AccountID int    `json:"account_id,omitempty" validate:"omitempty,gt=0"`
}

// UpdateContactRequest represents a partial contact update.
type UpdateContactRequest struct {
	FirstName string `json:"first_name,omitempty" validate:"max=100"`
	LastName  string `json:"last_name,omitempty" validate:"max=100"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     string `json:"phone,omitempty" validate:"max=32"`
	Title     string `json:"title,omitempty" validate:"max=255"`
	AccountID int    `json:"account_id,omitempty" validate:"omitempty,gt=0"`
}

// ListRequest represents contact list filters and pagination.
type ListRequest struct {
	AccountID int    `query:"account_id"`
	OwnerID   int    `query:"owner_id"`
	Query     string `query:"q" validate:"max=255"`
	Page      int    `query:"page"`
	Limit     int    `query:"limit"`
}

// ListResponse is a page of contacts.
type ListResponse struct {
	Data       []*ent.Contact    `json:"data"`
	Pagination models.Pagination `json:"pagination"`
}

// Create inserts a new contact owned by userID.
func (s *Service) Create(ctx context.Context, userID int, req CreateContactRequest) (*ent.Contact, error) {
	create := s.db.Contact.Create().
		SetFirstName(req.FirstName).
		SetLastName(req.LastName).
		SetOwnerID(userID)

	if req.Email != "" {
		create = create.SetEmail(req.Email)
	}
	if req.Phone != "" {
		create = create.SetPhone(req.Phone)
	}
	if req.Title != "" {
		create = create.SetTitle(req.Title)
	}
	if req.AccountID > 0 {
		create = create.SetAccountID(req.AccountID)
	}

	c, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}
	return c, nil
}

// Get fetches one contact.
func (s *Service) Get(ctx context.Context, id int) (*ent.Contact, error) {
	c, err := s.db.Contact.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("contact")
		}
		return nil, fmt.Errorf("failed to fetch contact: %w", err)
	}
	return c, nil
}

// Update edits a contact.
func (s *Service) Update(ctx context.Context, id int, req UpdateContactRequest) (*ent.Contact, error) {
	update := s.db.Contact.UpdateOneID(id)

	if req.FirstName != "" {
		update = update.SetFirstName(req.FirstName)
	}
	if req.LastName != "" {
		update = update.SetLastName(req.LastName)
	}
	if req.Email != "" {
		update = update.SetEmail(req.Email)
	}
	if req.Phone != "" {
		update = update.SetPhone(req.Phone)
	}
	if req.Title != "" {
		update = update.SetTitle(req.Title)
	}
	if req.AccountID > 0 {
		update = update.SetAccountID(req.AccountID)
	}

	c, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("contact")
		}
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}
	return c, nil
}

// Delete removes a contact.
func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.db.Contact.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return domain.NewNotFoundError("contact")
		}
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	return nil
}

// List returns a filtered, paginated page of contacts, newest first.
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

	query := s.db.Contact.Query()

	if req.AccountID > 0 {
		query = query.Where(contact.AccountIDEQ(req.AccountID))
	}
	if req.OwnerID > 0 {
		query = query.Where(contact.OwnerIDEQ(req.OwnerID))
	}
	if req.Query != "" {
		query = query.Where(
			contact.Or(
				contact.FirstNameContainsFold(req.Query),
				contact.LastNameContainsFold(req.Query),
				contact.EmailContainsFold(req.Query),
			),
		)
	}

	total, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count contacts: %w", err)
	}

	offset := (req.Page - 1) * req.Limit
	totalPages := (total + req.Limit - 1) / req.Limit

	rows, err := query.
		Limit(req.Limit).
		Offset(offset).
		Order(ent.Desc(contact.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
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
