package audit

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesdeskhq/salesdesk/ent"
	"github.com/salesdeskhq/salesdesk/ent/auditlog"
	"github.com/salesdeskhq/salesdesk/ent/enttest"
)

func setupService(t *testing.T) (*ent.Client, *Service) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })
	return client, NewService(client)
}

func TestLogCreate(t *testing.T) {
	client, svc := setupService(t)
	ctx := context.Background()

	require.NoError(t, svc.LogCreate(ctx, 7, "lead", 42, "Created lead Jane Doe"))

	entry, err := client.AuditLog.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, auditlog.ActionCreate, entry.Action)
	assert.Equal(t, "lead", entry.EntityType)
	assert.Equal(t, 42, entry.EntityID)
	require.NotNil(t, entry.UserID)
	assert.Equal(t, 7, *entry.UserID)
	assert.Equal(t, auditlog.SeverityInfo, entry.Severity)
}

func TestLogDelete_WarningSeverity(t *testing.T) {
	client, svc := setupService(t)
	ctx := context.Background()

	require.NoError(t, svc.LogDelete(ctx, 7, "account", 3, "Deleted account"))

	entry, err := client.AuditLog.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, auditlog.SeverityWarning, entry.Severity)
}

func TestLogStatusChange_Metadata(t *testing.T) {
	client, svc := setupService(t)
	ctx := context.Background()

	require.NoError(t, svc.LogStatusChange(ctx, 7, "opportunity", 9, "new", "proposal"))

	entry, err := client.AuditLog.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new", entry.Metadata["from"])
	assert.Equal(t, "proposal", entry.Metadata["to"])
}

func TestListForEntity(t *testing.T) {
	_, svc := setupService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.LogUpdate(ctx, 1, "lead", 42, "Updated"))
	}
	require.NoError(t, svc.LogUpdate(ctx, 1, "lead", 43, "Other record"))

	rows, err := svc.ListForEntity(ctx, "lead", 42, 0)
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	limited, err := svc.ListForEntity(ctx, "lead", 42, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestGetRecent_NewestFirst(t *testing.T) {
	_, svc := setupService(t)
	ctx := context.Background()

	require.NoError(t, svc.LogCreate(ctx, 1, "lead", 1, "first"))
	require.NoError(t, svc.LogCreate(ctx, 1, "lead", 2, "second"))

	rows, err := svc.GetRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.False(t, rows[1].CreatedAt.After(rows[0].CreatedAt))
}
