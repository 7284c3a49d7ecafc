package audit

import (
	"context"
	"time"

	"github.com/salesdeskhq/salesdesk/ent"
	"github.com/salesdeskhq/salesdesk/ent/auditlog"
)

// Service handles audit logging
type Service struct {
	db *ent.Client
}

// NewService creates a new audit service
func NewService(db *ent.Client) *Service {
	return &Service{
		db: db,
	}
}

// LogEntry represents an audit log entry
type LogEntry struct {
	UserID      *int
	Action      auditlog.Action
	EntityType  string
	EntityID    int
	Description string
	Metadata    map[string]interface{}
	Severity    auditlog.Severity
}

// Log creates a new audit log entry
func (s *Service) Log(ctx context.Context, entry LogEntry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	severity := entry.Severity
	if severity == "" {
		severity = auditlog.SeverityInfo
	}

	create := s.db.AuditLog.Create().
		SetAction(entry.Action).
		SetEntityType(entry.EntityType).
		SetEntityID(entry.EntityID).
		SetSeverity(severity)

	if entry.UserID != nil {
		create = create.SetUserID(*entry.UserID)
	}
	if entry.Description != "" {
		create = create.SetDescription(entry.Description)
	}
	if entry.Metadata != nil {
		create = create.SetMetadata(entry.Metadata)
	}

	_, err := create.Save(ctx)
	return err
}

// LogCreate logs a record creation
func (s *Service) LogCreate(ctx context.Context, userID int, entityType string, entityID int, description string) error {
	return s.Log(ctx, LogEntry{
		UserID:      &userID,
		Action:      auditlog.ActionCreate,
		EntityType:  entityType,
		EntityID:    entityID,
		Description: description,
	})
}

// LogUpdate logs a record update
func (s *Service) LogUpdate(ctx context.Context, userID int, entityType string, entityID int, description string) error {
	return s.Log(ctx, LogEntry{
		UserID:      &userID,
		Action:      auditlog.ActionUpdate,
		EntityType:  entityType,
		EntityID:    entityID,
		Description: description,
	})
}

// LogDelete logs a record deletion
func (s *Service) LogDelete(ctx context.Context, userID int, entityType string, entityID int, description string) error {
	return s.Log(ctx, LogEntry{
		UserID:      &userID,
		Action:      auditlog.ActionDelete,
		EntityType:  entityType,
		EntityID:    entityID,
		Description: description,
		Severity:    auditlog.SeverityWarning,
	})
}

// LogStatusChange logs a stage or status transition
func (s *Service) LogStatusChange(ctx context.Context, userID int, entityType string, entityID int, from, to string) error {
	return s.Log(ctx, LogEntry{
		UserID:      &userID,
		Action:      auditlog.ActionStatusChange,
		EntityType:  entityType,
		EntityID:    entityID,
		Description: "Status changed",
		Metadata: map[string]interface{}{
			"from": from,
			"to":   to,
		},
	})
}

// LogLogin logs a successful login
func (s *Service) LogLogin(ctx context.Context, userID int) error {
	return s.Log(ctx, LogEntry{
		UserID:      &userID,
		Action:      auditlog.ActionLogin,
		EntityType:  "user",
		EntityID:    userID,
		Description: "User logged in",
	})
}

// LogLogout logs a logout
func (s *Service) LogLogout(ctx context.Context, userID int) error {
	return s.Log(ctx, LogEntry{
		UserID:      &userID,
		Action:      auditlog.ActionLogout,
		EntityType:  "user",
		EntityID:    userID,
		Description: "User logged out",
	})
}

// LogExportCreate logs an export request
func (s *Service) LogExportCreate(ctx context.Context, userID, exportID int, metadata map[string]interface{}) error {
	return s.Log(ctx, LogEntry{
		UserID:      &userID,
		Action:      auditlog.ActionExport,
		EntityType:  "export",
		EntityID:    exportID,
		Description: "Export created",
		Metadata:    metadata,
	})
}

// LogImport logs a bulk lead import
func (s *Service) LogImport(ctx context.Context, userID, importedCount int, metadata map[string]interface{}) error {
	return s.Log(ctx, LogEntry{
		UserID:      &userID,
		Action:      auditlog.ActionImport,
		EntityType:  "lead",
		EntityID:    0,
		Description: "Leads imported",
		Metadata:    metadata,
	})
}

// ListForEntity retrieves the most recent audit logs for one record,
// newest first. Feeds the timeline.
func (s *Service) ListForEntity(ctx context.Context, entityType string, entityID, limit int) ([]*ent.AuditLog, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if limit <= 0 || limit > 50 {
		limit = 50
	}

	return s.db.AuditLog.Query().
		Where(
			auditlog.EntityTypeEQ(entityType),
			auditlog.EntityIDEQ(entityID),
		).
		Order(ent.Desc(auditlog.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
}

// GetRecent retrieves recent audit logs across all entities (admin view)
func (s *Service) GetRecent(ctx context.Context, limit int) ([]*ent.AuditLog, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if limit <= 0 || limit > 200 {
		limit = 100
	}

	return s.db.AuditLog.Query().
		Order(ent.Desc(auditlog.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
}

// GetByAction retrieves logs filtered by action
func (s *Service) GetByAction(ctx context.Context, action auditlog.Action, limit int) ([]*ent.AuditLog, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if limit <= 0 || limit > 200 {
		limit = 100
	}

	return s.db.AuditLog.Query().
		Where(auditlog.ActionEQ(action)).
		Order(ent.Desc(auditlog.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
}
