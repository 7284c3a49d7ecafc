package graph

// This file will be automatically regenerated based on the schema, any resolver
// implementations
// will be copied through when generating and any unknown code will be moved to the end.
// Code generated by github.com/99designs/gqlgen version v0.17.86

import (
	"context"
	"fmt"

	"github.com/salesdeskhq/salesdesk/graph/model"
	"github.com/salesdeskhq/salesdesk/pkg/conversion"
	"github.com/salesdeskhq/salesdesk/pkg/leads"
)

// ConvertLead is the resolver for the convertLead field.
func (r *mutationResolver) ConvertLead(ctx context.Context, input model.ConvertLeadInput) (*model.ConvertLeadPayload, error) {
	userID, ok := ctx.Value("user_id").(int)
	if !ok || userID == 0 {
		return nil, fmt.Errorf("unauthorized: user not found in context")
	}

	opts := conversion.DefaultOptions()
	if input.CreateAccount != nil {
		opts.CreateAccount = *input.CreateAccount
	}
	if input.CreateContact != nil {
		opts.CreateContact = *input.CreateContact
	}
	if input.CreateOpportunity != nil {
		opts.CreateOpportunity = *input.CreateOpportunity
	}
	if input.OpportunityName != nil {
		opts.OpportunityName = *input.OpportunityName
	}
	if input.OpportunityAmount != nil {
		opts.OpportunityAmount = *input.OpportunityAmount
	}

	result, err := r.ConversionService.ConvertLead(ctx, userID, input.LeadID, opts)
	if err != nil {
		return nil, err
	}

	return &model.ConvertLeadPayload{
		LeadID:        result.LeadID,
		AccountID:     result.AccountID,
		ContactID:     result.ContactID,
		OpportunityID: result.OpportunityID,
		ConvertedAt:   result.ConvertedAt,
	}, nil
}

// Leads is the resolver for the leads field.
func (r *queryResolver) Leads(ctx context.Context, filter *model.LeadFilterInput) ([]*model.Lead, error) {
	req := leads.ListRequest{}
	if filter != nil {
		if filter.Status != nil {
			req.Status = *filter.Status
		}
		if filter.Source != nil {
			req.Source = *filter.Source
		}
		if filter.OwnerID != nil {
			req.OwnerID = *filter.OwnerID
		}
		if filter.Query != nil {
			req.Query = *filter.Query
		}
		if filter.Page != nil {
			req.Page = *filter.Page
		}
		if filter.Limit != nil {
			req.Limit = *filter.Limit
		}
	}

	resp, err := r.LeadService.List(ctx, req)
	if err != nil {
		return nil, err
	}

	out := make([]*model.Lead, 0, len(resp.Data))
	for _, l := range resp.Data {
		out = append(out, toGraphLead(l))
	}
	return out, nil
}

// Lead is the resolver for the lead field.
func (r *queryResolver) Lead(ctx context.Context, id int) (*model.Lead, error) {
	l, err := r.LeadService.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toGraphLead(l), nil
}

// Timeline is the resolver for the timeline field.
func (r *queryResolver) Timeline(ctx context.Context, entityType string, entityID int) (*model.Timeline, error) {
	tl, err := r.TimelineService.Get(ctx, entityType, entityID)
	if err != nil {
		return nil, err
	}

	items := make([]*model.TimelineItem, 0, len(tl.Items))
	for _, item := range tl.Items {
		items = append(items, &model.TimelineItem{
			Type:      string(item.Type),
			Timestamp: item.Timestamp,
			Data:      item.Data,
		})
	}

	return &model.Timeline{
		EntityType: tl.EntityType,
		EntityID:   tl.EntityID,
		Items:      items,
	}, nil
}

// Pipeline is the resolver for the pipeline field.
func (r *queryResolver) Pipeline(ctx context.Context, ownerID *int) ([]*model.PipelineColumn, error) {
	owner := 0
	if ownerID != nil {
		owner = *ownerID
	}

	columns, err := r.OpportunityService.Pipeline(ctx, owner)
	if err != nil {
		return nil, err
	}

	out := make([]*model.PipelineColumn, 0, len(columns))
	for _, col := range columns {
		out = append(out, &model.PipelineColumn{
			Stage:       col.Stage,
			Count:       col.Count,
			TotalAmount: col.TotalAmount,
		})
	}
	return out, nil
}

// Mutation returns MutationResolver implementation.
func (r *Resolver) Mutation() MutationResolver { return &mutationResolver{r} }

// Query returns QueryResolver implementation.
func (r *Resolver) Query() QueryResolver { return &queryResolver{r} }

type mutationResolver struct{ *Resolver }
type queryResolver struct{ *Resolver }
