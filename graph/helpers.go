package graph

import (
	"github.com/salesdeskhq/salesdesk/ent"
	"github.com/salesdeskhq/salesdesk/graph/model"
)

func toGraphLead(l *ent.Lead) *model.Lead {
	return &model.Lead{
		ID:          l.ID,
		FirstName:   l.FirstName,
		LastName:    l.LastName,
		Email:       l.Email,
		Phone:       l.Phone,
		CompanyName: l.CompanyName,
		Title:       l.Title,
		Status:      l.Status.String(),
		Source:      l.Source.String(),
		OwnerID:     l.OwnerID,
		ConvertedAt: l.ConvertedAt,
		CreatedAt:   l.CreatedAt,
	}
}
