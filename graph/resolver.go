package graph

import (
	"github.com/salesdeskhq/salesdesk/ent"
	"github.com/salesdeskhq/salesdesk/pkg/conversion"
	"github.com/salesdeskhq/salesdesk/pkg/leads"
	"github.com/salesdeskhq/salesdesk/pkg/opportunities"
	"github.com/salesdeskhq/salesdesk/pkg/timeline"
)

// This file will not be regenerated automatically.
//
// It serves as dependency injection for your app, add any dependencies you require
// here.

type Resolver struct {
	DB                 *ent.Client
	LeadService        *leads.Service
	ConversionService  *conversion.Service
	TimelineService    *timeline.Service
	OpportunityService *opportunities.Service
}
