package comments

import (
	"context"
	"fmt"
	"time"

	"github.com/salesdeskhq/salesdesk/ent"
	"github.com/salesdeskhq/salesdesk/ent/comment"
	"github.com/salesdeskhq/salesdesk/ent/user"
	"github.com/salesdeskhq/salesdesk/pkg/domain"
	"github.com/salesdeskhq/salesdesk/pkg/models"
)

// Service handles record comments. Comments are append-only: there is no
// update or delete operation here on purpose.
type Service struct {
	db *ent.Client
}

// NewService creates a new comment service
func NewService(db *ent.Client) *Service {
	return &Service{db: db}
}

// CreateCommentRequest represents a request to add a comment to a record.
type CreateCommentRequest struct {
	EntityType string `json:"entity_type" validate:"required"`
	EntityID   int    `json:"entity_id" validate:"required,gt=0"`
	Content    string `json:"content" validate:"required,max=10000"`
}

// CommentResponse represents a comment in API responses.
type CommentResponse struct {
	ID         int       `json:"id"`
	EntityType string    `json:"entity_type"`
	EntityID   int       `json:"entity_id"`
	UserID     int       `json:"user_id"`
	UserName   string    `json:"user_name"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

// Create appends a comment to a record.
func (s *Service) Create(ctx context.Context, userID int, req CreateCommentRequest) (*CommentResponse, error) {
	if !models.ValidEntityType(req.EntityType) {
		return nil, domain.NewValidationError(fmt.Sprintf("unknown entity type %q", req.EntityType))
	}

	c, err := s.db.Comment.Create().
		SetEntityType(req.EntityType).
		SetEntityID(req.EntityID).
		SetUserID(userID).
		SetContent(req.Content).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	userName := s.lookupUserName(ctx, userID)

	return &CommentResponse{
		ID:         c.ID,
		EntityType: c.EntityType,
		EntityID:   c.EntityID,
		UserID:     c.UserID,
		UserName:   userName,
		Content:    c.Content,
		CreatedAt:  c.CreatedAt,
	}, nil
}

// ListForEntity returns every comment on one record, newest first.
// The comment side of the timeline is deliberately uncapped; the audit
// side carries the row limit.
func (s *Service) ListForEntity(ctx context.Context, entityType string, entityID int) ([]*ent.Comment, error) {
	if !models.ValidEntityType(entityType) {
		return nil, domain.NewValidationError(fmt.Sprintf("unknown entity type %q", entityType))
	}

	rows, err := s.db.Comment.Query().
		Where(
			comment.EntityTypeEQ(entityType),
			comment.EntityIDEQ(entityID),
		).
		Order(ent.Desc(comment.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return rows, nil
}

// ListResponses returns comments for one record with author names resolved.
func (s *Service) ListResponses(ctx context.Context, entityType string, entityID int) ([]CommentResponse, error) {
	rows, err := s.ListForEntity(ctx, entityType, entityID)
	if err != nil {
		return nil, err
	}

	// Resolve author names in one query.
	ids := make([]int, 0, len(rows))
	seen := make(map[int]bool, len(rows))
	for _, c := range rows {
		if !seen[c.UserID] {
			seen[c.UserID] = true
			ids = append(ids, c.UserID)
		}
	}

	names := make(map[int]string, len(ids))
	if len(ids) > 0 {
		users, err := s.db.User.Query().Where(user.IDIn(ids...)).All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve comment authors: %w", err)
		}
		for _, u := range users {
			names[u.ID] = u.Name
		}
	}

	out := make([]CommentResponse, len(rows))
	for i, c := range rows {
		name := names[c.UserID]
		if name == "" {
			name = "Unknown User"
		}
		out[i] = CommentResponse{
			ID:         c.ID,
			EntityType: c.EntityType,
			EntityID:   c.EntityID,
			UserID:     c.UserID,
			UserName:   name,
			Content:    c.Content,
			CreatedAt:  c.CreatedAt,
		}
	}

	return out, nil
}

func (s *Service) lookupUserName(ctx context.Context, userID int) string {
	u, err := s.db.User.Get(ctx, userID)
	if err != nil {
		return "Unknown User"
	}
	return u.Name
}
