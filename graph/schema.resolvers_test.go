package graph

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesdeskhq/salesdesk/ent"
	"github.com/salesdeskhq/salesdesk/ent/activity"
	"github.com/salesdeskhq/salesdesk/ent/enttest"
	"github.com/salesdeskhq/salesdesk/ent/lead"
	"github.com/salesdeskhq/salesdesk/graph/model"
	"github.com/salesdeskhq/salesdesk/pkg/activities"
	"github.com/salesdeskhq/salesdesk/pkg/audit"
	"github.com/salesdeskhq/salesdesk/pkg/cache"
	"github.com/salesdeskhq/salesdesk/pkg/comments"
	"github.com/salesdeskhq/salesdesk/pkg/conversion"
	"github.com/salesdeskhq/salesdesk/pkg/email"
	"github.com/salesdeskhq/salesdesk/pkg/leads"
	"github.com/salesdeskhq/salesdesk/pkg/logger"
	"github.com/salesdeskhq/salesdesk/pkg/opportunities"
	"github.com/salesdeskhq/salesdesk/pkg/timeline"
)

// setupTestResolver creates a test resolver with all dependencies
func setupTestResolver(t *testing.T) (*Resolver, *queryResolver, *mutationResolver, func()) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")

	mr := miniredis.RunT(t)
	cacheClient, err := cache.NewClient("redis://" + mr.Addr())
	require.NoError(t, err)

	log := logger.New("error", "text")
	emailSvc := email.NewService("noreply@salesdesk.test", "SalesDesk", "http://localhost:5173", "")

	auditSvc := audit.NewService(client)
	leadService := leads.NewService(client, cacheClient)
	conversionService := conversion.NewService(client, emailSvc, leadService, log)
	opportunityService := opportunities.NewService(client, auditSvc)
	timelineService := timeline.NewService(auditSvc, comments.NewService(client), activities.NewService(client), log)

	resolver := &Resolver{
		DB:                 client,
		LeadService:        leadService,
		ConversionService:  conversionService,
		TimelineService:    timelineService,
		OpportunityService: opportunityService,
	}

	queryRes := &queryResolver{resolver}
	mutationRes := &mutationResolver{resolver}

	cleanup := func() {
		client.Close()
	}

	return resolver, queryRes, mutationRes, cleanup
}

// createTestUser creates a test user in the database
func createTestUser(t *testing.T, client *ent.Client, email, name string) *ent.User {
	u, err := client.User.Create().
		SetEmail(email).
		SetName(name).
		SetPasswordHash("hashed").
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func createTestLead(t *testing.T, client *ent.Client, ownerID int, first, last, company string) *ent.Lead {
	l, err := client.Lead.Create().
		SetFirstName(first).
		SetLastName(last).
		SetEmail(first + "." + last + "@example.com").
		SetCompanyName(company).
		SetOwnerID(ownerID).
		Save(context.Background())
	require.NoError(t, err)
	return l
}

// TestConvertLead tests the convertLead resolver
func TestConvertLead(t *testing.T) {
	resolver, _, mutationRes, cleanup := setupTestResolver(t)
	defer cleanup()

	owner := createTestUser(t, resolver.DB, "owner@example.com", "Owner")
	l := createTestLead(t, resolver.DB, owner.ID, "Jane", "Doe", "Acme Corp")

	t.Run("missing user context", func(t *testing.T) {
		_, err := mutationRes.ConvertLead(context.Background(), model.ConvertLeadInput{LeadID: l.ID})
		assert.Error(t, err)
	})

	ctx := context.WithValue(context.Background(), "user_id", owner.ID)

	t.Run("successful conversion with opportunity", func(t *testing.T) {
		payload, err := mutationRes.ConvertLead(ctx, model.ConvertLeadInput{
			LeadID:            l.ID,
			CreateOpportunity: boolPtr(true),
			OpportunityAmount: floatPtr(5000),
		})
		require.NoError(t, err)
		require.NotNil(t, payload)
		assert.Equal(t, l.ID, payload.LeadID)
		require.NotNil(t, payload.AccountID)
		require.NotNil(t, payload.ContactID)
		require.NotNil(t, payload.OpportunityID)

		converted := resolver.DB.Lead.GetX(ctx, l.ID)
		assert.Equal(t, lead.StatusQualified, converted.Status)
		assert.NotNil(t, converted.ConvertedAt)
	})

	t.Run("second conversion conflicts", func(t *testing.T) {
		_, err := mutationRes.ConvertLead(ctx, model.ConvertLeadInput{LeadID: l.ID})
		assert.Error(t, err)
	})
}

// TestLeadsQuery tests the leads resolver with filters
func TestLeadsQuery(t *testing.T) {
	resolver, queryRes, _, cleanup := setupTestResolver(t)
	defer cleanup()

	owner := createTestUser(t, resolver.DB, "owner@example.com", "Owner")
	createTestLead(t, resolver.DB, owner.ID, "Ada", "Lovelace", "Analytical Engines")
	createTestLead(t, resolver.DB, owner.ID, "Grace", "Hopper", "Compilers Inc")

	working, err := resolver.DB.Lead.Create().
		SetFirstName("Linus").
		SetLastName("Torvald").
		SetOwnerID(owner.ID).
		SetStatus(lead.StatusWorking).
		Save(context.Background())
	require.NoError(t, err)

	ctx := context.Background()

	all, err := queryRes.Leads(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	filtered, err := queryRes.Leads(ctx, &model.LeadFilterInput{Status: stringPtr("working")})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, working.ID, filtered[0].ID)
	assert.Equal(t, "working", filtered[0].Status)
}

// TestTimelineQuery tests the timeline resolver merge across sources
func TestTimelineQuery(t *testing.T) {
	resolver, queryRes, _, cleanup := setupTestResolver(t)
	defer cleanup()

	owner := createTestUser(t, resolver.DB, "owner@example.com", "Owner")
	l := createTestLead(t, resolver.DB, owner.ID, "Jane", "Doe", "Acme Corp")

	ctx := context.Background()

	_, err := resolver.DB.Comment.Create().
		SetEntityType("lead").
		SetEntityID(l.ID).
		SetUserID(owner.ID).
		SetContent("Spoke on the phone, very interested").
		Save(ctx)
	require.NoError(t, err)

	_, err = resolver.DB.Activity.Create().
		SetKind(activity.KindCall).
		SetSubject("Follow-up call").
		SetEntityType("lead").
		SetEntityID(l.ID).
		SetUserID(owner.ID).
		Save(ctx)
	require.NoError(t, err)

	tl, err := queryRes.Timeline(ctx, "lead", l.ID)
	require.NoError(t, err)
	require.NotNil(t, tl)
	assert.Equal(t, "lead", tl.EntityType)
	assert.Equal(t, l.ID, tl.EntityID)
	assert.Len(t, tl.Items, 2)

	_, err = queryRes.Timeline(ctx, "galaxy", l.ID)
	assert.Error(t, err)
}

// Helper functions
func stringPtr(s string) *string {
	return &s
}

func boolPtr(b bool) *bool {
	return &b
}

func floatPtr(f float64) *float64 {
	return &f
}
