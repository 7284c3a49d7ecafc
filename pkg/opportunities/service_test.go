package opportunities

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesdeskhq/salesdesk/ent"
	"github.com/salesdeskhq/salesdesk/ent/auditlog"
	"github.com/salesdeskhq/salesdesk/ent/enttest"
	"github.com/salesdeskhq/salesdesk/ent/opportunity"
	"github.com/salesdeskhq/salesdesk/pkg/audit"
	"github.com/salesdeskhq/salesdesk/pkg/domain"
)

func setupService(t *testing.T) (*ent.Client, *Service) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })
	return client, NewService(client, audit.NewService(client))
}

func createAccount(t *testing.T, client *ent.Client) *ent.Account {
	a, err := client.Account.Create().
		SetName("Acme Corp").
		SetOwnerID(1).
		Save(context.Background())
	require.NoError(t, err)
	return a
}

func TestCreate(t *testing.T) {
	client, svc := setupService(t)
	ctx := context.Background()

	a := createAccount(t, client)

	o, err := svc.Create(ctx, 1, CreateOpportunityRequest{
		Name:      "Acme Renewal",
		AccountID: a.ID,
		Amount:    25000,
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Renewal", o.Name)
	assert.Equal(t, opportunity.StageNew, o.Stage)
	assert.Equal(t, 25000.0, o.Amount)
	assert.Equal(t, a.ID, o.AccountID)
}

func TestUpdateStage_WritesAuditEntry(t *testing.T) {
	client, svc := setupService(t)
	ctx := context.Background()

	a := createAccount(t, client)
	o, err := svc.Create(ctx, 1, CreateOpportunityRequest{Name: "Deal", AccountID: a.ID})
	require.NoError(t, err)

	moved, err := svc.UpdateStage(ctx, 1, o.ID, "proposal")
	require.NoError(t, err)
	assert.Equal(t, opportunity.StageProposal, moved.Stage)

	entry, err := client.AuditLog.Query().
		Where(auditlog.ActionEQ(auditlog.ActionStatusChange)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "opportunity", entry.EntityType)
	assert.Equal(t, o.ID, entry.EntityID)
	assert.Equal(t, "new", entry.Metadata["from"])
	assert.Equal(t, "proposal", entry.Metadata["to"])
}

func TestUpdateStage_NoopWhenUnchanged(t *testing.T) {
	client, svc := setupService(t)
	ctx := context.Background()

	a := createAccount(t, client)
	o, err := svc.Create(ctx, 1, CreateOpportunityRequest{Name: "Deal", AccountID: a.ID})
	require.NoError(t, err)

	_, err = svc.UpdateStage(ctx, 1, o.ID, "new")
	require.NoError(t, err)

	count, err := client.AuditLog.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestUpdateStage_NotFound(t *testing.T) {
	_, svc := setupService(t)

	_, err := svc.UpdateStage(context.Background(), 1, 999, "proposal")
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestPipeline(t *testing.T) {
	client, svc := setupService(t)
	ctx := context.Background()

	a := createAccount(t, client)

	mk := func(name string, amount float64, stage opportunity.Stage, ownerID int) {
		_, err := client.Opportunity.Create().
			SetName(name).
			SetAccountID(a.ID).
			SetAmount(amount).
			SetStage(stage).
			SetOwnerID(ownerID).
			Save(ctx)
		require.NoError(t, err)
	}

	mk("Deal A", 1000, opportunity.StageNew, 1)
	mk("Deal B", 2000, opportunity.StageNew, 2)
	mk("Deal C", 5000, opportunity.StageProposal, 1)
	mk("Deal D", 9000, opportunity.StageClosedWon, 1)

	columns, err := svc.Pipeline(ctx, 0)
	require.NoError(t, err)
	require.Len(t, columns, len(Stages))

	byStage := map[string]PipelineColumn{}
	for _, col := range columns {
		byStage[col.Stage] = col
	}

	assert.Equal(t, 2, byStage["new"].Count)
	assert.Equal(t, 3000.0, byStage["new"].TotalAmount)
	assert.Equal(t, 1, byStage["proposal"].Count)
	assert.Equal(t, 9000.0, byStage["closed_won"].TotalAmount)
	assert.Zero(t, byStage["negotiation"].Count)

	// Owner filter narrows every column.
	mine, err := svc.Pipeline(ctx, 1)
	require.NoError(t, err)
	byStage = map[string]PipelineColumn{}
	for _, col := range mine {
		byStage[col.Stage] = col
	}
	assert.Equal(t, 1, byStage["new"].Count)
	assert.Equal(t, 1000.0, byStage["new"].TotalAmount)
}

func TestSumByStage(t *testing.T) {
	client, svc := setupService(t)
	ctx := context.Background()

	a := createAccount(t, client)
	_, err := client.Opportunity.Create().
		SetName("Deal").
		SetAccountID(a.ID).
		SetAmount(7500).
		SetStage(opportunity.StageNegotiation).
		SetOwnerID(1).
		Save(ctx)
	require.NoError(t, err)

	totals, err := svc.SumByStage(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7500.0, totals["negotiation"])
	assert.Equal(t, 0.0, totals["new"])
}

func TestList_StageFilter(t *testing.T) {
	client, svc := setupService(t)
	ctx := context.Background()

	a := createAccount(t, client)
	_, err := svc.Create(ctx, 1, CreateOpportunityRequest{Name: "Open Deal", AccountID: a.ID})
	require.NoError(t, err)
	_, err = client.Opportunity.Create().
		SetName("Won Deal").
		SetAccountID(a.ID).
		SetStage(opportunity.StageClosedWon).
		SetOwnerID(1).
		Save(ctx)
	require.NoError(t, err)

	resp, err := svc.List(ctx, ListRequest{Stage: "closed_won"})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Won Deal", resp.Data[0].Name)
}
