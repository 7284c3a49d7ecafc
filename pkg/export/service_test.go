package export

import (
	"context"
	"encoding/csv"
	"os"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesdeskhq/salesdesk/ent"
	"github.com/salesdeskhq/salesdesk/ent/enttest"
	entexport "github.com/salesdeskhq/salesdesk/ent/export"
	"github.com/salesdeskhq/salesdesk/ent/lead"
	"github.com/salesdeskhq/salesdesk/pkg/audit"
	"github.com/salesdeskhq/salesdesk/pkg/domain"
	"github.com/salesdeskhq/salesdesk/pkg/logger"
)

func setupService(t *testing.T) (*ent.Client, *Service) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	log := logger.New("error", "text")
	svc := NewService(client, audit.NewService(client), nil, log, t.TempDir())
	return client, svc
}

func createUser(t *testing.T, client *ent.Client) *ent.User {
	u, err := client.User.Create().
		SetEmail("rep@example.com").
		SetName("Rep One").
		SetPasswordHash("hashed").
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func createLead(t *testing.T, client *ent.Client, owner int, first, last, email string, status lead.Status) *ent.Lead {
	l, err := client.Lead.Create().
		SetFirstName(first).
		SetLastName(last).
		SetEmail(email).
		SetStatus(status).
		SetOwnerID(owner).
		Save(context.Background())
	require.NoError(t, err)
	return l
}

func waitForStatus(t *testing.T, client *ent.Client, exportID int, want entexport.Status) *ent.Export {
	t.Helper()
	var exp *ent.Export
	require.Eventually(t, func() bool {
		var err error
		exp, err = client.Export.Get(context.Background(), exportID)
		require.NoError(t, err)
		return exp.Status == want || exp.Status == entexport.StatusFailed
	}, 5*time.Second, 20*time.Millisecond)
	require.Equal(t, want, exp.Status, "error: %s", exp.ErrorMessage)
	return exp
}

func TestCreate_CSVExport(t *testing.T) {
	client, svc := setupService(t)
	ctx := context.Background()

	u := createUser(t, client)
	createLead(t, client, u.ID, "Jane", "Doe", "jane@acme.com", lead.StatusNew)
	createLead(t, client, u.ID, "John", "Roe", "john@globex.com", lead.StatusWorking)

	resp, err := svc.Create(ctx, u.ID, Request{Entity: "leads", Format: "csv"})
	require.NoError(t, err)
	assert.Equal(t, "leads", resp.Entity)
	assert.Equal(t, string(entexport.StatusPending), resp.Status)

	exp := waitForStatus(t, client, resp.ID, entexport.StatusReady)
	assert.Equal(t, 2, exp.RowCount)
	require.NotEmpty(t, exp.FilePath)

	f, err := os.Open(exp.FilePath)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "First Name", records[0][1])
}

func TestCreate_StatusFilter(t *testing.T) {
	client, svc := setupService(t)
	ctx := context.Background()

	u := createUser(t, client)
	createLead(t, client, u.ID, "Jane", "Doe", "jane@acme.com", lead.StatusNew)
	createLead(t, client, u.ID, "John", "Roe", "john@globex.com", lead.StatusQualified)

	resp, err := svc.Create(ctx, u.ID, Request{
		Entity:  "leads",
		Format:  "csv",
		Filters: map[string]string{"status": "qualified"},
	})
	require.NoError(t, err)

	exp := waitForStatus(t, client, resp.ID, entexport.StatusReady)
	assert.Equal(t, 1, exp.RowCount)
}

func TestCreate_WritesAuditEntry(t *testing.T) {
	client, svc := setupService(t)
	ctx := context.Background()

	u := createUser(t, client)
	resp, err := svc.Create(ctx, u.ID, Request{Entity: "accounts", Format: "csv"})
	require.NoError(t, err)
	waitForStatus(t, client, resp.ID, entexport.StatusReady)

	count, err := client.AuditLog.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestGet_ScopedToOwner(t *testing.T) {
	client, svc := setupService(t)
	ctx := context.Background()

	u := createUser(t, client)
	resp, err := svc.Create(ctx, u.ID, Request{Entity: "contacts", Format: "csv"})
	require.NoError(t, err)
	waitForStatus(t, client, resp.ID, entexport.StatusReady)

	got, err := svc.Get(ctx, u.ID, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, got.ID)
	assert.NotEmpty(t, got.FileURL)

	_, err = svc.Get(ctx, u.ID+1, resp.ID)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestList_Pagination(t *testing.T) {
	client, svc := setupService(t)
	ctx := context.Background()

	u := createUser(t, client)
	for i := 0; i < 3; i++ {
		resp, err := svc.Create(ctx, u.ID, Request{Entity: "leads", Format: "csv"})
		require.NoError(t, err)
		waitForStatus(t, client, resp.ID, entexport.StatusReady)
	}

	out, err := svc.List(ctx, u.ID, 1, 2)
	require.NoError(t, err)
	assert.Len(t, out.Data, 2)
	assert.Equal(t, 3, out.Pagination.Total)
	assert.Equal(t, 2, out.Pagination.TotalPages)
}

func TestFilePath(t *testing.T) {
	client, svc := setupService(t)
	ctx := context.Background()

	u := createUser(t, client)
	resp, err := svc.Create(ctx, u.ID, Request{Entity: "leads", Format: "csv"})
	require.NoError(t, err)
	exp := waitForStatus(t, client, resp.ID, entexport.StatusReady)

	path, err := svc.FilePath(ctx, u.ID, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, exp.FilePath, path)
}

func TestFilePath_ExpiredIsRejected(t *testing.T) {
	client, svc := setupService(t)
	ctx := context.Background()

	u := createUser(t, client)
	resp, err := svc.Create(ctx, u.ID, Request{Entity: "leads", Format: "csv"})
	require.NoError(t, err)
	waitForStatus(t, client, resp.ID, entexport.StatusReady)

	_, err = client.Export.UpdateOneID(resp.ID).
		SetExpiresAt(time.Now().Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	_, err = svc.FilePath(ctx, u.ID, resp.ID)
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))
}

func TestPurgeExpired(t *testing.T) {
	client, svc := setupService(t)
	ctx := context.Background()

	u := createUser(t, client)
	resp, err := svc.Create(ctx, u.ID, Request{Entity: "leads", Format: "csv"})
	require.NoError(t, err)
	exp := waitForStatus(t, client, resp.ID, entexport.StatusReady)

	_, err = client.Export.UpdateOneID(resp.ID).
		SetExpiresAt(time.Now().Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	purged, err := svc.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, purged)

	_, statErr := os.Stat(exp.FilePath)
	assert.True(t, os.IsNotExist(statErr))

	count, err := client.Export.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestWriteExcel(t *testing.T) {
	path := t.TempDir() + "/out.xlsx"
	err := writeExcel(path, "leads", []string{"ID", "Name"}, [][]string{{"1", "Jane"}})
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
