// Code generated by github.com/99designs/gqlgen, DO NOT EDIT.

package model

import (
	"time"
)

type ConvertLeadInput struct {
	LeadID            int      `json:"leadId"`
	CreateAccount     *bool    `json:"createAccount,omitempty"`
	CreateContact     *bool    `json:"createContact,omitempty"`
	CreateOpportunity *bool    `json:"createOpportunity,omitempty"`
	OpportunityName   *string  `json:"opportunityName,omitempty"`
	OpportunityAmount *float64 `json:"opportunityAmount,omitempty"`
}

type ConvertLeadPayload struct {
	LeadID        int       `json:"leadId"`
	AccountID     *int      `json:"accountId,omitempty"`
	ContactID     *int      `json:"contactId,omitempty"`
	OpportunityID *int      `json:"opportunityId,omitempty"`
	ConvertedAt   time.Time `json:"convertedAt"`
}

type Lead struct {
	ID          int        `json:"id"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	CompanyName string     `json:"companyName"`
	Title       string     `json:"title"`
	Status      string     `json:"status"`
	Source      string     `json:"source"`
	OwnerID     int        `json:"ownerId"`
	ConvertedAt *time.Time `json:"convertedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type LeadFilterInput struct {
	Status  *string `json:"status,omitempty"`
	Source  *string `json:"source,omitempty"`
	OwnerID *int    `json:"ownerId,omitempty"`
	Query   *string `json:"query,omitempty"`
	Page    *int    `json:"page,omitempty"`
	Limit   *int    `json:"limit,omitempty"`
}

type Mutation struct {
}

type PipelineColumn struct {
	Stage       string  `json:"stage"`
	Count       int     `json:"count"`
	TotalAmount float64 `json:"totalAmount"`
}

type Query struct {
}

type Timeline struct {
	EntityType string          `json:"entityType"`
	EntityID   int             `json:"entityId"`
	Items      []*TimelineItem `json:"items"`
}

type TimelineItem struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data,omitempty"`
}
