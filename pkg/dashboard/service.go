package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/salesdeskhq/salesdesk/ent"
	"github.com/salesdeskhq/salesdesk/pkg/activities"
	"github.com/salesdeskhq/salesdesk/pkg/cases"
	"github.com/salesdeskhq/salesdesk/pkg/leads"
	"github.com/salesdeskhq/salesdesk/pkg/opportunities"
)

// Service aggregates the numbers behind the dashboard cards.
type Service struct {
	leads         *leads.Service
	opportunities *opportunities.Service
	cases         *cases.Service
	activities    *activities.Service
}

// NewService creates a new dashboard service
func NewService(leadSvc *leads.Service, oppSvc *opportunities.Service, caseSvc *cases.Service, activitySvc *activities.Service) *Service {
	return &Service{
		leads:         leadSvc,
		opportunities: oppSvc,
		cases:         caseSvc,
		activities:    activitySvc,
	}
}

// Stats is the dashboard payload.
type Stats struct {
	LeadsByStatus      map[string]int     `json:"leads_by_status"`
	PipelineByStage    map[string]float64 `json:"pipeline_by_stage"`
	OpenCases          int                `json:"open_cases"`
	ActivitiesDueToday []*ent.Activity    `json:"activities_due_today"`
}

// GetStats collects all dashboard numbers.
func (s *Service) GetStats(ctx context.Context) (*Stats, error) {
	leadCounts, err := s.leads.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count leads: %w", err)
	}

	stageTotals, err := s.opportunities.SumByStage(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum pipeline: %w", err)
	}

	openCases, err := s.cases.CountOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count cases: %w", err)
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	due, err := s.activities.ListDueBetween(ctx, startOfDay, startOfDay.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to list due activities: %w", err)
	}

	return &Stats{
		LeadsByStatus:      leadCounts,
		PipelineByStage:    stageTotals,
		OpenCases:          openCases,
		ActivitiesDueToday: due,
	}, nil
}
