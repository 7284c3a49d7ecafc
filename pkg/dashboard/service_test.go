package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesdeskhq/salesdesk/ent"
	"github.com/salesdeskhq/salesdesk/ent/enttest"
	"github.com/salesdeskhq/salesdesk/ent/lead"
	"github.com/salesdeskhq/salesdesk/pkg/activities"
	"github.com/salesdeskhq/salesdesk/pkg/audit"
	"github.com/salesdeskhq/salesdesk/pkg/cache"
	"github.com/salesdeskhq/salesdesk/pkg/cases"
	"github.com/salesdeskhq/salesdesk/pkg/leads"
	"github.com/salesdeskhq/salesdesk/pkg/opportunities"
)

func setupService(t *testing.T) (*ent.Client, *Service) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	mr := miniredis.RunT(t)
	redisClient, err := cache.NewClient("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { redisClient.Close() })

	leadSvc := leads.NewService(client, redisClient)
	oppSvc := opportunities.NewService(client, audit.NewService(client))
	caseSvc := cases.NewService(client)
	activitySvc := activities.NewService(client)

	return client, NewService(leadSvc, oppSvc, caseSvc, activitySvc)
}

func TestGetStats(t *testing.T) {
	client, svc := setupService(t)
	ctx := context.Background()

	mkLead := func(first, email string, status lead.Status) {
		_, err := client.Lead.Create().
			SetFirstName(first).
			SetLastName("Doe").
			SetEmail(email).
			SetStatus(status).
			SetOwnerID(1).
			Save(ctx)
		require.NoError(t, err)
	}
	mkLead("Jane", "jane@acme.com", lead.StatusNew)
	mkLead("John", "john@acme.com", lead.StatusNew)
	mkLead("June", "june@acme.com", lead.StatusQualified)

	acct, err := client.Account.Create().SetName("Acme Corp").SetOwnerID(1).Save(ctx)
	require.NoError(t, err)

	_, err = client.Opportunity.Create().
		SetName("Acme Corp - New Opportunity").
		SetAccountID(acct.ID).
		SetAmount(5000).
		SetOwnerID(1).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.SupportCase.Create().
		SetSubject("Cannot log in").
		SetOwnerID(1).
		Save(ctx)
	require.NoError(t, err)

	activitySvc := activities.NewService(client)
	due := time.Now().Add(time.Hour)
	_, err = activitySvc.Create(ctx, 1, activities.CreateActivityRequest{
		Kind:       "task",
		Subject:    "Call Jane",
		EntityType: "lead",
		EntityID:   1,
		DueAt:      &due,
	})
	require.NoError(t, err)

	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.LeadsByStatus["new"])
	assert.Equal(t, 1, stats.LeadsByStatus["qualified"])
	assert.InDelta(t, 5000, stats.PipelineByStage["new"], 0.01)
	assert.Equal(t, 1, stats.OpenCases)
	require.Len(t, stats.ActivitiesDueToday, 1)
	assert.Equal(t, "Call Jane", stats.ActivitiesDueToday[0].Subject)
}

func TestGetStats_EmptyDatabase(t *testing.T) {
	_, svc := setupService(t)

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	// Every status and stage is present with a zero value so dashboard
	// cards render without key checks.
	require.Len(t, stats.LeadsByStatus, 5)
	for status, count := range stats.LeadsByStatus {
		assert.Zero(t, count, "status %s", status)
	}
	require.Len(t, stats.PipelineByStage, 6)
	for stage, total := range stats.PipelineByStage {
		assert.Zero(t, total, "stage %s", stage)
	}
	assert.Zero(t, stats.OpenCases)
	assert.Empty(t, stats.ActivitiesDueToday)
}
