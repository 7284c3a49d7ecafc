package timeline

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/salesdeskhq/salesdesk/ent"
	"github.com/salesdeskhq/salesdesk/pkg/activities"
	"github.com/salesdeskhq/salesdesk/pkg/audit"
	"github.com/salesdeskhq/salesdesk/pkg/comments"
	"github.com/salesdeskhq/salesdesk/pkg/domain"
	"github.com/salesdeskhq/salesdesk/pkg/logger"
	"github.com/salesdeskhq/salesdesk/pkg/models"
)

// maxLogItems caps the audit side of the feed. Comments and activities
// are fetched unbounded.
const maxLogItems = 50

// ItemType discriminates timeline entries.
type ItemType string

const (
	TypeLog      ItemType = "log"
	TypeComment  ItemType = "comment"
	TypeActivity ItemType = "activity"
)

// Item is one entry in the merged feed. Data holds the underlying row.
type Item struct {
	Type      ItemType    `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data"`
}

// Timeline is the merged, time-ordered feed for one record. It is derived
// on every read and never persisted.
type Timeline struct {
	EntityType string `json:"entity_type"`
	EntityID   int    `json:"entity_id"`
	Items      []Item `json:"items"`
}

// Service merges audit logs, comments and activities belonging to one
// record into a single chronological feed. The three sources have
// independent write paths; the union happens here on the read side.
type Service struct {
	audit      *audit.Service
	comments   *comments.Service
	activities *activities.Service
	logger     logger.Logger
}

// NewService creates a new timeline service
func NewService(auditSvc *audit.Service, commentSvc *comments.Service, activitySvc *activities.Service, log logger.Logger) *Service {
	if log == nil {
		log = logger.Default()
	}
	return &Service{
		audit:      auditSvc,
		comments:   commentSvc,
		activities: activitySvc,
		logger:     log,
	}
}

// Get builds the feed for one record. The three fetches run concurrently
// and the call returns only after all of them finish. A failed source is
// logged and contributes nothing; the caller cannot distinguish partial
// from complete data, and every failure is recoverable by re-reading.
func (s *Service) Get(ctx context.Context, entityType string, entityID int) (*Timeline, error) {
	if !models.ValidEntityType(entityType) {
		return nil, domain.NewValidationError(fmt.Sprintf("unknown entity type %q", entityType))
	}

	var (
		wg    sync.WaitGroup
		logs  []*ent.AuditLog
		comms []*ent.Comment
		acts  []*ent.Activity
	)

	wg.Add(3)

	go func() {
		defer wg.Done()
		rows, err := s.audit.ListForEntity(ctx, entityType, entityID, maxLogItems)
		if err != nil {
			s.logger.Error("timeline: audit fetch failed",
				"entity_type", entityType, "entity_id", entityID, "error", err)
			return
		}
		logs = rows
	}()

	go func() {
		defer wg.Done()
		rows, err := s.comments.ListForEntity(ctx, entityType, entityID)
		if err != nil {
			s.logger.Error("timeline: comment fetch failed",
				"entity_type", entityType, "entity_id", entityID, "error", err)
			return
		}
		comms = rows
	}()

	go func() {
		defer wg.Done()
		rows, err := s.activities.ListForEntity(ctx, entityType, entityID)
		if err != nil {
			s.logger.Error("timeline: activity fetch failed",
				"entity_type", entityType, "entity_id", entityID, "error", err)
			return
		}
		acts = rows
	}()

	wg.Wait()

	return &Timeline{
		EntityType: entityType,
		EntityID:   entityID,
		Items:      Merge(logs, comms, acts),
	}, nil
}

// Merge tags and combines the three source collections into one sequence
// sorted descending by timestamp. The sort is stable over the
// concatenation order, so entries with identical timestamps come out
// logs first, then comments, then activities.
func Merge(logs []*ent.AuditLog, comms []*ent.Comment, acts []*ent.Activity) []Item {
	items := make([]Item, 0, len(logs)+len(comms)+len(acts))

	for _, l := range logs {
		items = append(items, Item{Type: TypeLog, Timestamp: l.CreatedAt, Data: l})
	}
	for _, c := range comms {
		items = append(items, Item{Type: TypeComment, Timestamp: c.CreatedAt, Data: c})
	}
	for _, a := range acts {
		items = append(items, Item{Type: TypeActivity, Timestamp: a.CreatedAt, Data: a})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Timestamp.After(items[j].Timestamp)
	})

	return items
}
