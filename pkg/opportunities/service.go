package opportunities

import (
	"context"
	"fmt"
	"time"

	"github.com/salesdeskhq/salesdesk/ent"
	"github.com/salesdeskhq/salesdesk/ent/opportunity"
	"github.com/salesdeskhq/salesdesk/pkg/audit"
	"github.com/salesdeskhq/salesdesk/pkg/domain"
	"github.com/salesdeskhq/salesdesk/pkg/models"
)

// Stages in pipeline order. The Kanban board renders one column per entry.
var Stages = []opportunity.Stage{
	opportunity.StageNew,
	opportunity.StageQualification,
	opportunity.StageProposal,
	opportunity.StageNegotiation,
	opportunity.StageClosedWon,
	opportunity.StageClosedLost,
}

// Service handles opportunity business logic
type Service struct {
	db          *ent.Client
	auditLogger *audit.Service
}

// NewService creates a new opportunity service
func NewService(db *ent.Client, auditLogger *audit.Service) *Service {
	return &Service{
		db:          db,
		auditLogger: auditLogger,
	}
}

// CreateOpportunityRequest represents a request to create an opportunity.
type CreateOpportunityRequest struct {
	Name      string     `json:"name" validate:"required,max=255"`
	AccountID int        `json:"account_id" validate:"required,gt=0"`
	ContactID int        `json:"contact_id,omitempty" validate:"omitempty,gt=0"`
	Amount    float64    `json:"amount,omitempty" validate:"gte=0"`
	CloseDate *time.Time `json:"close_date,omitempty"`
}

// UpdateOpportunityRequest represents a partial opportunity update.
type UpdateOpportunityRequest struct {
	Name      string     `json:"name,omitempty" validate:"max=255"`
	ContactID int        `json:"contact_id,omitempty" validate:"omitempty,gt=0"`
	Amount    *float64   `json:"amount,omitempty" validate:"omitempty,gte=0"`
	CloseDate *time.Time `json:"close_date,omitempty"`
}

// ListRequest represents opportunity list filters and pagination.
type ListRequest struct {
	Stage     string `query:"stage" validate:"omitempty,oneof=new qualification proposal negotiation closed_won closed_lost"`
	AccountID int    `query:"account_id"`
	OwnerID   int    `query:"owner_id"`
	Page      int    `query:"page"`
	Limit     int    `query:"limit"`
}

// ListResponse is a page of opportunities.
type ListResponse struct {
	Data       []*ent.Opportunity `json:"data"`
	Pagination models.Pagination  `json:"pagination"`
}

// PipelineColumn is one Kanban column: a stage plus its deals and totals.
type PipelineColumn struct {
	Stage       string             `json:"stage"`
	Count       int                `json:"count"`
	TotalAmount float64            `json:"total_amount"`
	Deals       []*ent.Opportunity `json:"deals"`
}

// Create inserts a new opportunity owned by userID.
func (s *Service) Create(ctx context.Context, userID int, req CreateOpportunityRequest) (*ent.Opportunity, error) {
	create := s.db.Opportunity.Create().
		SetName(req.Name).
		SetAccountID(req.AccountID).
		SetAmount(req.Amount).
		SetOwnerID(userID)

	if req.ContactID > 0 {
		create = create.SetContactID(req.ContactID)
	}
	if req.CloseDate != nil {
		create = create.SetCloseDate(*req.CloseDate)
	}

	o, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create opportunity: %w", err)
	}
	return o, nil
}

// Get fetches one opportunity.
func (s *Service) Get(ctx context.Context, id int) (*ent.Opportunity, error) {
	o, err := s.db.Opportunity.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("opportunity")
		}
		return nil, fmt.Errorf("failed to fetch opportunity: %w", err)
	}
	return o, nil
}

// Update edits an opportunity. Stage changes go through UpdateStage so the
// transition is audited.
func (s *Service) Update(ctx context.Context, id int, req UpdateOpportunityRequest) (*ent.Opportunity, error) {
	update := s.db.Opportunity.UpdateOneID(id)

	if req.Name != "" {
		update = update.SetName(req.Name)
	}
	if req.ContactID > 0 {
		update = update.SetContactID(req.ContactID)
	}
	if req.Amount != nil {
		update = update.SetAmount(*req.Amount)
	}
	if req.CloseDate != nil {
		update = update.SetCloseDate(*req.CloseDate)
	}

	o, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("opportunity")
		}
		return nil, fmt.Errorf("failed to update opportunity: %w", err)
	}
	return o, nil
}

// UpdateStage moves an opportunity to another pipeline stage and records
// the transition in the audit log (which then shows up on the timeline).
func (s *Service) UpdateStage(ctx context.Context, userID, id int, stage string) (*ent.Opportunity, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if string(current.Stage) == stage {
		return current, nil
	}

	o, err := s.db.Opportunity.UpdateOneID(id).
		SetStage(opportunity.Stage(stage)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update stage: %w", err)
	}

	if s.auditLogger != nil {
		if err := s.auditLogger.LogStatusChange(ctx, userID, models.EntityOpportunity, id, string(current.Stage), stage); err != nil {
			// The stage change already happened; a missing audit row is
			// not worth failing the request over.
			return o, nil
		}
	}

	return o, nil
}

// Delete removes an opportunity.
func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.db.Opportunity.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return domain.NewNotFoundError("opportunity")
		}
		return fmt.Errorf("failed to delete opportunity: %w", err)
	}
	return nil
}

// List returns a filtered, paginated page of opportunities, newest first.
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

	query := s.db.Opportunity.Query()

	if req.Stage != "" {
		query = query.Where(opportunity.StageEQ(opportunity.Stage(req.Stage)))
	}
	if req.AccountID > 0 {
		query = query.Where(opportunity.AccountIDEQ(req.AccountID))
	}
	if req.OwnerID > 0 {
		query = query.Where(opportunity.OwnerIDEQ(req.OwnerID))
	}

	total, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count opportunities: %w", err)
	}

	offset := (req.Page - 1) * req.Limit
	totalPages := (total + req.Limit - 1) / req.Limit

	rows, err := query.
		Limit(req.Limit).
		Offset(offset).
		Order(ent.Desc(opportunity.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query opportunities: %w", err)
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

// Pipeline returns the Kanban board: every open and closed stage with its
// deals, newest first within a column.
func (s *Service) Pipeline(ctx context.Context, ownerID int) ([]PipelineColumn, error) {
	columns := make([]PipelineColumn, 0, len(Stages))

	for _, stage := range Stages {
		query := s.db.Opportunity.Query().
			Where(opportunity.StageEQ(stage))
		if ownerID > 0 {
			query = query.Where(opportunity.OwnerIDEQ(ownerID))
		}

		deals, err := query.
			Order(ent.Desc(opportunity.FieldCreatedAt)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to query stage %s: %w", stage, err)
		}

		var total float64
		for _, d := range deals {
			total += d.Amount
		}

		columns = append(columns, PipelineColumn{
			Stage:       string(stage),
			Count:       len(deals),
			TotalAmount: total,
			Deals:       deals,
		})
	}

	return columns, nil
}

// SumByStage returns stage totals for the dashboard.
func (s *Service) SumByStage(ctx context.Context) (map[string]float64, error) {
	totals := make(map[string]float64, len(Stages))

	for _, stage := range Stages {
		rows, err := s.db.Opportunity.Query().
			Where(opportunity.StageEQ(stage)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to query stage %s: %w", stage, err)
		}
		var sum float64
		for _, o := range rows {
			sum += o.Amount
		}
		totals[string(stage)] = sum
	}

	return totals, nil
}
