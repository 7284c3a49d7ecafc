package activities

import (
	"context"
	"fmt"
	"time"

	"github.com/salesdeskhq/salesdesk/ent"
	"github.com/salesdeskhq/salesdesk/ent/activity"
	"github.com/salesdeskhq/salesdesk/pkg/domain"
	"github.com/salesdeskhq/salesdesk/pkg/models"
)

// Service handles structured activities (calls, meetings, emails, tasks).
type Service struct {
	db *ent.Client
}

// NewService creates a new activity service
func NewService(db *ent.Client) *Service {
	return &Service{db: db}
}

// CreateActivityRequest represents a request to log an activity on a record.
type CreateActivityRequest struct {
	Kind       string     `json:"kind" validate:"required,oneof=call meeting email task note"`
	Subject    string     `json:"subject" validate:"required,max=255"`
	Content    string     `json:"content,omitempty" validate:"max=10000"`
	EntityType string     `json:"entity_type" validate:"required"`
	EntityID   int        `json:"entity_id" validate:"required,gt=0"`
	DueAt      *time.Time `json:"due_at,omitempty"`
}

// UpdateActivityRequest represents an activity update.
type UpdateActivityRequest struct {
	Subject string     `json:"subject,omitempty" validate:"max=255"`
	Content string     `json:"content,omitempty" validate:"max=10000"`
	DueAt   *time.Time `json:"due_at,omitempty"`
}

// Create logs a new activity.
func (s *Service) Create(ctx context.Context, userID int, req CreateActivityRequest) (*ent.Activity, error) {
	if !models.ValidEntityType(req.EntityType) {
		return nil, domain.NewValidationError(fmt.Sprintf("unknown entity type %q", req.EntityType))
	}

	create := s.db.Activity.Create().
		SetKind(activity.Kind(req.Kind)).
		SetSubject(req.Subject).
		SetEntityType(req.EntityType).
		SetEntityID(req.EntityID).
		SetUserID(userID)

	if req.Content != "" {
		create = create.SetContent(req.Content)
	}
	if req.DueAt != nil {
		create = create.SetDueAt(*req.DueAt)
	}

	a, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}

	return a, nil
}

// Get fetches one activity.
func (s *Service) Get(ctx context.Context, id int) (*ent.Activity, error) {
	a, err := s.db.Activity.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("activity")
		}
		return nil, fmt.Errorf("failed to fetch activity: %w", err)
	}
	return a, nil
}

// Update edits an activity's mutable fields.
func (s *Service) Update(ctx context.Context, id int, req UpdateActivityRequest) (*ent.Activity, error) {
	update := s.db.Activity.UpdateOneID(id)
	if req.Subject != "" {
		update = update.SetSubject(req.Subject)
	}
	if req.Content != "" {
		update = update.SetContent(req.Content)
	}
	if req.DueAt != nil {
		update = update.SetDueAt(*req.DueAt)
	}

	a, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("activity")
		}
		return nil, fmt.Errorf("failed to update activity: %w", err)
	}
	return a, nil
}

// Complete marks a task-like activity as done.
func (s *Service) Complete(ctx context.Context, id int) (*ent.Activity, error) {
	a, err := s.db.Activity.UpdateOneID(id).
		SetCompleted(true).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("activity")
		}
		return nil, fmt.Errorf("failed to complete activity: %w", err)
	}
	return a, nil
}

// Delete removes an activity.
func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.db.Activity.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return domain.NewNotFoundError("activity")
		}
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	return nil
}

// ListForEntity returns every activity on one record, newest first.
func (s *Service) ListForEntity(ctx context.Context, entityType string, entityID int) ([]*ent.Activity, error) {
	if !models.ValidEntityType(entityType) {
		return nil, domain.NewValidationError(fmt.Sprintf("unknown entity type %q", entityType))
	}

	rows, err := s.db.Activity.Query().
		Where(
			activity.EntityTypeEQ(entityType),
			activity.EntityIDEQ(entityID),
		).
		Order(ent.Desc(activity.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}

	return rows, nil
}

// ListDueBetween returns open tasks due inside the window, soonest first.
// Feeds the daily digest job and the dashboard "due today" card.
func (s *Service) ListDueBetween(ctx context.Context, from, to time.Time) ([]*ent.Activity, error) {
	rows, err := s.db.Activity.Query().
		Where(
			activity.CompletedEQ(false),
			activity.DueAtGTE(from),
			activity.DueAtLT(to),
		).
		Order(ent.Asc(activity.FieldDueAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list due activities: %w", err)
	}

	return rows, nil
}
