package leads

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/salesdeskhq/salesdesk/ent"
	"github.com/salesdeskhq/salesdesk/ent/lead"
	"github.com/salesdeskhq/salesdesk/pkg/cache"
	"github.com/salesdeskhq/salesdesk/pkg/domain"
	"github.com/salesdeskhq/salesdesk/pkg/models"
)

const listCacheTTL = 60 * time.Second

// Service handles lead business logic
type Service struct {
	db    *ent.Client
	cache *cache.Client
}

// NewService creates a new lead service. cache may be nil; list reads are
// then served straight from the database.
func NewService(db *ent.Client, cacheClient *cache.Client) *Service {
	return &Service{
		db:    db,
		cache: cacheClient,
	}
}

// CreateLeadRequest represents a request to create a lead.
type CreateLeadRequest struct {
	FirstName   string `json:"first_name" validate:"required,max=100"`
	LastName    string `json:"last_name" validate:"required,max=100"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	Phone       string `json:"phone,omitempty" validate:"max=32"`
	CompanyName string `json:"company_name,omitempty" validate:"max=255"`
	Title       string `json:"title,omitempty" validate:"max=255"`
	Source      string `json:"source,omitempty" validate:"omitempty,oneof=web referral import manual other"`
}

// UpdateLeadRequest represents a partial lead update.
type UpdateLeadRequest struct {
	FirstName   string `json:"first_name,omitempty" validate:"max=100"`
	LastName    string `json:"last_name,omitempty" validate:"max=100"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	Phone       string `json:"phone,omitempty" validate:"max=32"`
	CompanyName string `json:"company_name,omitempty" validate:"max=255"`
	Title       string `json:"title,omitempty" validate:"max=255"`
	Status      string `json:"status,omitempty" validate:"omitempty,oneof=new working nurturing qualified unqualified"`
}

// ListRequest represents lead list filters and pagination.
type ListRequest struct {
	Status  string `query:"status" validate:"omitempty,oneof=new working nurturing qualified unqualified"`
	Source  string `query:"source" validate:"omitempty,oneof=web referral import manual other"`
	OwnerID int    `query:"owner_id"`
	Query   string `query:"q" validate:"max=255"`
	Page    int    `query:"page"`
	Limit   int    `query:"limit"`
}

// ListResponse is a page of leads.
type ListResponse struct {
	Data       []*ent.Lead       `json:"data"`
	Pagination models.Pagination `json:"pagination"`
}

// Create inserts a new lead owned by userID.
func (s *Service) Create(ctx context.Context, userID int, req CreateLeadRequest) (*ent.Lead, error) {
	create := s.db.Lead.Create().
		SetFirstName(req.FirstName).
		SetLastName(req.LastName).
		SetOwnerID(userID)

	if req.Email != "" {
		create = create.SetEmail(req.Email)
	}
	if req.Phone != "" {
		create = create.SetPhone(req.Phone)
	}
	if req.CompanyName != "" {
		create = create.SetCompanyName(req.CompanyName)
	}
	if req.Title != "" {
		create = create.SetTitle(req.Title)
	}
	if req.Source != "" {
		create = create.SetSource(lead.Source(req.Source))
	}

	l, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	s.InvalidateListCache(ctx)
	return l, nil
}

// Get fetches one lead.
func (s *Service) Get(ctx context.Context, id int) (*ent.Lead, error) {
	l, err := s.db.Lead.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("lead")
		}
		return nil, fmt.Errorf("failed to fetch lead: %w", err)
	}
	return l, nil
}

// Update edits a lead. Converted leads stay editable except for the
// conversion linkage fields, which only the conversion workflow writes.
func (s *Service) Update(ctx context.Context, id int, req UpdateLeadRequest) (*ent.Lead, error) {
	update := s.db.Lead.UpdateOneID(id)

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
	if req.CompanyName != "" {
		update = update.SetCompanyName(req.CompanyName)
	}
	if req.Title != "" {
		update = update.SetTitle(req.Title)
	}
	if req.Status != "" {
		update = update.SetStatus(lead.Status(req.Status))
	}

	l, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("lead")
		}
		return nil, fmt.Errorf("failed to update lead: %w", err)
	}

	s.InvalidateListCache(ctx)
	return l, nil
}

// Delete removes a lead.
func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.db.Lead.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return domain.NewNotFoundError("lead")
		}
		return fmt.Errorf("failed to delete lead: %w", err)
	}

	s.InvalidateListCache(ctx)
	return nil
}

// List returns a filtered, paginated page of leads, newest first.
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

	cacheKey := s.listCacheKey(req)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != "" {
			var response ListResponse
			if err := json.Unmarshal([]byte(cached), &response); err == nil {
				return &response, nil
			}
		}
	}

	query := s.db.Lead.Query()

	if req.Status != "" {
		query = query.Where(lead.StatusEQ(lead.Status(req.Status)))
	}
	if req.Source != "" {
		query = query.Where(lead.SourceEQ(lead.Source(req.Source)))
	}
	if req.OwnerID > 0 {
		query = query.Where(lead.OwnerIDEQ(req.OwnerID))
	}
	if req.Query != "" {
		query = query.Where(
			lead.Or(
				lead.FirstNameContainsFold(req.Query),
				lead.LastNameContainsFold(req.Query),
				lead.CompanyNameContainsFold(req.Query),
				lead.EmailContainsFold(req.Query),
			),
		)
	}

	total, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count leads: %w", err)
	}

	offset := (req.Page - 1) * req.Limit
	totalPages := (total + req.Limit - 1) / req.Limit

	rows, err := query.
		Limit(req.Limit).
		Offset(offset).
		Order(ent.Desc(lead.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query leads: %w", err)
	}

	response := &ListResponse{
		Data: rows,
		Pagination: models.Pagination{
			Page:       req.Page,
			Limit:      req.Limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}

	if s.cache != nil {
		if data, err := json.Marshal(response); err == nil {
			_ = s.cache.Set(ctx, cacheKey, string(data), listCacheTTL)
		}
	}

	return response, nil
}

// CountByStatus returns lead counts per status for the dashboard.
func (s *Service) CountByStatus(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int)
	for _, status := range []lead.Status{
		lead.StatusNew,
		lead.StatusWorking,
		lead.StatusNurturing,
		lead.StatusQualified,
		lead.StatusUnqualified,
	} {
		count, err := s.db.Lead.Query().
			Where(lead.StatusEQ(status)).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count leads for status %s: %w", status, err)
		}
		counts[string(status)] = count
	}
	return counts, nil
}

func (s *Service) listCacheKey(req ListRequest) string {
	return fmt.Sprintf("leads:list:%s:%s:%d:%s:%d:%d",
		req.Status, req.Source, req.OwnerID, req.Query, req.Page, req.Limit)
}

// InvalidateListCache drops every cached list page. Called after each write
// here and by the conversion workflow, which updates leads outside this
// service.
func (s *Service) InvalidateListCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	_ = s.cache.DeletePattern(ctx, "leads:list:*")
}
