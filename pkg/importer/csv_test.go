package importer

import (
	"context"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesdeskhq/salesdesk/ent"
	"github.com/salesdeskhq/salesdesk/ent/auditlog"
	"github.com/salesdeskhq/salesdesk/ent/enttest"
	"github.com/salesdeskhq/salesdesk/ent/lead"
	"github.com/salesdeskhq/salesdesk/pkg/audit"
	"github.com/salesdeskhq/salesdesk/pkg/logger"
)

func setupService(t *testing.T) (*ent.Client, *Service) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })
	return client, NewService(client, audit.NewService(client), logger.New("error", "text"))
}

func TestImportLeads_Success(t *testing.T) {
	client, svc := setupService(t)
	ctx := context.Background()

	csvData := `first_name,last_name,email,phone,company_name,title
Jane,Doe,JANE@ACME.COM,+1 212 555 0100,Acme Corp,CEO
John,Smith,john@globex.com,,Globex,
`

	result, err := svc.ImportLeads(ctx, strings.NewReader(csvData), 1, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalRows)
	assert.Equal(t, 2, result.SuccessCount)
	assert.Zero(t, result.FailureCount)
	assert.Empty(t, result.Errors)

	jane, err := client.Lead.Query().Where(lead.EmailEQ("jane@acme.com")).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Jane", jane.FirstName)
	assert.Equal(t, "+12125550100", jane.Phone)
	assert.Equal(t, "Acme Corp", jane.CompanyName)
	assert.Equal(t, lead.SourceImport, jane.Source)
	assert.Equal(t, 1, jane.OwnerID)

	entry, err := client.AuditLog.Query().Where(auditlog.ActionEQ(auditlog.ActionImport)).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "lead", entry.EntityType)
}

func TestImportLeads_MissingRequiredColumn(t *testing.T) {
	_, svc := setupService(t)

	csvData := "first_name,phone\nJane,+12125550100\n"

	_, err := svc.ImportLeads(context.Background(), strings.NewReader(csvData), 1, DefaultConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "last_name")
}

func TestImportLeads_InvalidRowsAreSkipped(t *testing.T) {
	client, svc := setupService(t)
	ctx := context.Background()

	csvData := `first_name,last_name,email,phone
Jane,Doe,jane@acme.com,
John,,john@globex.com,
Mary,Major,not-an-email,
Paul,Atreides,paul@arrakis.co,12
`

	result, err := svc.ImportLeads(ctx, strings.NewReader(csvData), 1, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 4, result.TotalRows)
	assert.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, 3, result.FailureCount)
	require.Len(t, result.Errors, 3)
	assert.Equal(t, "last_name", result.Errors[0].Field)
	assert.Equal(t, "email", result.Errors[1].Field)
	assert.Equal(t, "phone", result.Errors[2].Field)

	count, err := client.Lead.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestImportLeads_ValidateOnly(t *testing.T) {
	client, svc := setupService(t)
	ctx := context.Background()

	csvData := "first_name,last_name,email\nJane,Doe,jane@acme.com\n"

	cfg := DefaultConfig()
	cfg.ValidateOnly = true

	result, err := svc.ImportLeads(ctx, strings.NewReader(csvData), 1, cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, result.SuccessCount)

	count, err := client.Lead.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	// Dry runs leave no audit trail either.
	logs, err := client.AuditLog.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, logs)
}

func TestImportLeads_MaxRows(t *testing.T) {
	_, svc := setupService(t)

	var b strings.Builder
	b.WriteString("first_name,last_name,email\n")
	for i := 0; i < 10; i++ {
		b.WriteString("Jane,Doe,jane@acme.com\n")
	}

	cfg := DefaultConfig()
	cfg.MaxRows = 5

	result, err := svc.ImportLeads(context.Background(), strings.NewReader(b.String()), 1, cfg)
	require.NoError(t, err)
	assert.Equal(t, 5, result.SuccessCount)
}

func TestImportLeads_LegacyCompanyColumn(t *testing.T) {
	client, svc := setupService(t)
	ctx := context.Background()

	csvData := `first_name,last_name,email,company
Jane,Doe,jane@acme.com,Acme
`

	result, err := svc.ImportLeads(ctx, strings.NewReader(csvData), 1, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 1, result.SuccessCount)

	jane, err := client.Lead.Query().Where(lead.EmailEQ("jane@acme.com")).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Acme", jane.Company)
	assert.Empty(t, jane.CompanyName)
}

func TestImportLeads_ExplicitSourceOverride(t *testing.T) {
	client, svc := setupService(t)
	ctx := context.Background()

	csvData := `first_name,last_name,email,source
Jane,Doe,jane@acme.com,referral
John,Smith,john@globex.com,bogus
`

	result, err := svc.ImportLeads(ctx, strings.NewReader(csvData), 1, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 2, result.SuccessCount)

	jane, err := client.Lead.Query().Where(lead.EmailEQ("jane@acme.com")).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, lead.SourceReferral, jane.Source)

	john, err := client.Lead.Query().Where(lead.EmailEQ("john@globex.com")).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, lead.SourceImport, john.Source)
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "Jane", normalizeName("jane"))
	assert.Equal(t, "Jane", normalizeName("JANE"))
	assert.Equal(t, "McDonald", normalizeName("McDonald"))
	assert.Equal(t, "", normalizeName(""))
}
