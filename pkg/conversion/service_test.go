package conversion

import (
	"context"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesdeskhq/salesdesk/ent"
	"github.com/salesdeskhq/salesdesk/ent/auditlog"
	"github.com/salesdeskhq/salesdesk/ent/enttest"
	"github.com/salesdeskhq/salesdesk/ent/lead"
	"github.com/salesdeskhq/salesdesk/ent/opportunity"
	"github.com/salesdeskhq/salesdesk/pkg/cache"
	"github.com/salesdeskhq/salesdesk/pkg/domain"
	"github.com/salesdeskhq/salesdesk/pkg/leads"
	"github.com/salesdeskhq/salesdesk/pkg/logger"
)

type noopNotifier struct {
	mu   sync.Mutex
	sent []string
}

func (n *noopNotifier) SendOpportunityCreated(toEmail, toName, opportunityName string, amount float64) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, opportunityName)
	return nil
}

func (n *noopNotifier) SendLeadAssigned(toEmail, toName, leadName string) error {
	return nil
}

func setupService(t *testing.T) (*ent.Client, *Service) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	svc := NewService(client, &noopNotifier{}, nil, logger.New("error", "text"))
	return client, svc
}

func createUser(t *testing.T, client *ent.Client) *ent.User {
	u, err := client.User.Create().
		SetEmail("rep@example.com").
		SetName("Rep").
		SetPasswordHash("hashed").
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func createLead(t *testing.T, client *ent.Client, ownerID int, first, last, company string) *ent.Lead {
	create := client.Lead.Create().
		SetFirstName(first).
		SetLastName(last).
		SetEmail("jane.doe@example.com").
		SetPhone("+12125550100").
		SetOwnerID(ownerID)
	if company != "" {
		create = create.SetCompanyName(company)
	}
	l, err := create.Save(context.Background())
	require.NoError(t, err)
	return l
}

func TestConvertLead_FullConversion(t *testing.T) {
	client, svc := setupService(t)
	ctx := context.Background()

	u := createUser(t, client)
	l := createLead(t, client, u.ID, "Jane", "Doe", "Acme Corp")

	result, err := svc.ConvertLead(ctx, u.ID, l.ID, Options{
		CreateAccount:     true,
		CreateContact:     true,
		CreateOpportunity: true,
		OpportunityAmount: 5000,
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	require.NotNil(t, result.AccountID)
	require.NotNil(t, result.ContactID)
	require.NotNil(t, result.OpportunityID)

	acc := client.Account.GetX(ctx, *result.AccountID)
	assert.Equal(t, "Acme Corp", acc.Name)
	assert.Equal(t, u.ID, acc.OwnerID)

	c := client.Contact.GetX(ctx, *result.ContactID)
	assert.Equal(t, "Jane", c.FirstName)
	assert.Equal(t, "Doe", c.LastName)
	assert.Equal(t, "jane.doe@example.com", c.Email)
	assert.Equal(t, acc.ID, c.AccountID)

	opp := client.Opportunity.GetX(ctx, *result.OpportunityID)
	assert.Equal(t, "Acme Corp - New Opportunity", opp.Name)
	assert.Equal(t, 5000.0, opp.Amount)
	assert.Equal(t, opportunity.StageNew, opp.Stage)
	assert.Equal(t, acc.ID, opp.AccountID)
	assert.Equal(t, c.ID, opp.ContactID)

	converted := client.Lead.GetX(ctx, l.ID)
	assert.Equal(t, lead.StatusQualified, converted.Status)
	require.NotNil(t, converted.ConvertedAt)
	assert.Equal(t, acc.ID, *converted.ConvertedToAccountID)
	assert.Equal(t, c.ID, *converted.ConvertedToContactID)
	assert.Equal(t, opp.ID, *converted.ConvertedToOpportunityID)

	entry, err := client.AuditLog.Query().
		Where(auditlog.ActionEQ(auditlog.ActionLeadConvert)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "lead", entry.EntityType)
	assert.Equal(t, l.ID, entry.EntityID)
	require.NotNil(t, entry.UserID)
	assert.Equal(t, u.ID, *entry.UserID)
}

func TestConvertLead_CustomOpportunityName(t *testing.T) {
	client, svc := setupService(t)
	ctx := context.Background()

	u := createUser(t, client)
	l := createLead(t, client, u.ID, "Jane", "Doe", "Acme Corp")

	result, err := svc.ConvertLead(ctx, u.ID, l.ID, Options{
		CreateAccount:     true,
		CreateOpportunity: true,
		OpportunityName:   "Acme Expansion Deal",
		OpportunityAmount: 12000,
	})
	require.NoError(t, err)
	require.NotNil(t, result.OpportunityID)

	opp := client.Opportunity.GetX(ctx, *result.OpportunityID)
	assert.Equal(t, "Acme Expansion Deal", opp.Name)
	assert.Nil(t, result.ContactID)
}

func TestConvertLead_OpportunityRequiresAccount(t *testing.T) {
	client, svc := setupService(t)
	ctx := context.Background()

	u := createUser(t, client)
	l := createLead(t, client, u.ID, "Jane", "Doe", "Acme Corp")

	// Opportunity requested without an account: the conversion still
	// succeeds, just without the opportunity.
	result, err := svc.ConvertLead(ctx, u.ID, l.ID, Options{
		CreateOpportunity: true,
		OpportunityAmount: 5000,
	})
	require.NoError(t, err)
	assert.Nil(t, result.AccountID)
	assert.Nil(t, result.ContactID)
	assert.Nil(t, result.OpportunityID)

	count, err := client.Opportunity.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	converted := client.Lead.GetX(ctx, l.ID)
	assert.Equal(t, lead.StatusQualified, converted.Status)
	assert.NotNil(t, converted.ConvertedAt)
}

func TestConvertLead_AccountNameFallsBackToLegacyCompany(t *testing.T) {
	client, svc := setupService(t)
	ctx := context.Background()

	u := createUser(t, client)

	// Older imports populated company instead of company_name.
	l, err := client.Lead.Create().
		SetFirstName("Jane").
		SetLastName("Doe").
		SetEmail("jane.doe@example.com").
		SetCompany("Acme").
		SetOwnerID(u.ID).
		Save(ctx)
	require.NoError(t, err)

	result, err := svc.ConvertLead(ctx, u.ID, l.ID, DefaultOptions())
	require.NoError(t, err)
	require.NotNil(t, result.AccountID)

	acc := client.Account.GetX(ctx, *result.AccountID)
	assert.Equal(t, "Acme", acc.Name)
}

func TestConvertLead_AccountNameFallsBackToLeadName(t *testing.T) {
	client, svc := setupService(t)
	ctx := context.Background()

	u := createUser(t, client)
	l := createLead(t, client, u.ID, "Jane", "Doe", "")

	result, err := svc.ConvertLead(ctx, u.ID, l.ID, DefaultOptions())
	require.NoError(t, err)
	require.NotNil(t, result.AccountID)

	acc := client.Account.GetX(ctx, *result.AccountID)
	assert.Equal(t, "Jane Doe", acc.Name)
}

func TestConvertLead_AlreadyConverted(t *testing.T) {
	client, svc := setupService(t)
	ctx := context.Background()

	u := createUser(t, client)
	l := createLead(t, client, u.ID, "Jane", "Doe", "Acme Corp")

	_, err := svc.ConvertLead(ctx, u.ID, l.ID, DefaultOptions())
	require.NoError(t, err)

	_, err = svc.ConvertLead(ctx, u.ID, l.ID, DefaultOptions())
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))

	// The failed attempt must not leave extra records behind.
	accounts, err := client.Account.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, accounts)

	contacts, err := client.Contact.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, contacts)
}

func TestConvertLead_InvalidatesLeadListCache(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	mr := miniredis.RunT(t)
	cacheClient, err := cache.NewClient("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { cacheClient.Close() })

	leadService := leads.NewService(client, cacheClient)
	svc := NewService(client, &noopNotifier{}, leadService, logger.New("error", "text"))
	ctx := context.Background()

	u := createUser(t, client)
	l := createLead(t, client, u.ID, "Jane", "Doe", "Acme Corp")

	// Prime the list cache with the pre-conversion row.
	before, err := leadService.List(ctx, leads.ListRequest{Status: "new"})
	require.NoError(t, err)
	require.Len(t, before.Data, 1)

	_, err = svc.ConvertLead(ctx, u.ID, l.ID, DefaultOptions())
	require.NoError(t, err)

	// A fresh list must not serve the stale cached page.
	after, err := leadService.List(ctx, leads.ListRequest{Status: "new"})
	require.NoError(t, err)
	assert.Empty(t, after.Data)

	qualified, err := leadService.List(ctx, leads.ListRequest{Status: "qualified"})
	require.NoError(t, err)
	assert.Len(t, qualified.Data, 1)
}

func TestConvertLead_NotFound(t *testing.T) {
	client, svc := setupService(t)

	u := createUser(t, client)

	_, err := svc.ConvertLead(context.Background(), u.ID, 99999, DefaultOptions())
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.True(t, opts.CreateAccount)
	assert.True(t, opts.CreateContact)
	assert.False(t, opts.CreateOpportunity)
}
