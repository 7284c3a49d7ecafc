package leads

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesdeskhq/salesdesk/ent"
	"github.com/salesdeskhq/salesdesk/ent/enttest"
	"github.com/salesdeskhq/salesdesk/ent/lead"
	"github.com/salesdeskhq/salesdesk/pkg/cache"
	"github.com/salesdeskhq/salesdesk/pkg/domain"
)

func setupService(t *testing.T) (*ent.Client, *Service) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	mr := miniredis.RunT(t)
	cacheClient, err := cache.NewClient("redis://" + mr.Addr())
	require.NoError(t, err)

	return client, NewService(client, cacheClient)
}

func TestCreate(t *testing.T) {
	_, svc := setupService(t)
	ctx := context.Background()

	l, err := svc.Create(ctx, 1, CreateLeadRequest{
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "jane@acme.com",
		CompanyName: "Acme Corp",
		Source:      "referral",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane", l.FirstName)
	assert.Equal(t, lead.StatusNew, l.Status)
	assert.Equal(t, lead.SourceReferral, l.Source)
	assert.Equal(t, 1, l.OwnerID)
	assert.Nil(t, l.ConvertedAt)
}

func TestCreate_DefaultsToManualSource(t *testing.T) {
	_, svc := setupService(t)

	l, err := svc.Create(context.Background(), 1, CreateLeadRequest{
		FirstName: "Jane",
		LastName:  "Doe",
	})
	require.NoError(t, err)
	assert.Equal(t, lead.SourceManual, l.Source)
}

func TestGet_NotFound(t *testing.T) {
	_, svc := setupService(t)

	_, err := svc.Get(context.Background(), 12345)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestUpdate(t *testing.T) {
	_, svc := setupService(t)
	ctx := context.Background()

	l, err := svc.Create(ctx, 1, CreateLeadRequest{FirstName: "Jane", LastName: "Doe"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, l.ID, UpdateLeadRequest{
		CompanyName: "Acme Corp",
		Status:      "working",
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", updated.CompanyName)
	assert.Equal(t, lead.StatusWorking, updated.Status)
	assert.Equal(t, "Jane", updated.FirstName)
}

func TestDelete(t *testing.T) {
	_, svc := setupService(t)
	ctx := context.Background()

	l, err := svc.Create(ctx, 1, CreateLeadRequest{FirstName: "Jane", LastName: "Doe"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, l.ID))

	_, err = svc.Get(ctx, l.ID)
	assert.True(t, domain.IsNotFound(err))

	err = svc.Delete(ctx, l.ID)
	assert.True(t, domain.IsNotFound(err))
}

func TestList_Filters(t *testing.T) {
	_, svc := setupService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, CreateLeadRequest{FirstName: "Jane", LastName: "Doe", CompanyName: "Acme Corp", Source: "web"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, 2, CreateLeadRequest{FirstName: "John", LastName: "Smith", Source: "referral"})
	require.NoError(t, err)

	bySource, err := svc.List(ctx, ListRequest{Source: "web"})
	require.NoError(t, err)
	require.Len(t, bySource.Data, 1)
	assert.Equal(t, "Jane", bySource.Data[0].FirstName)

	byOwner, err := svc.List(ctx, ListRequest{OwnerID: 2})
	require.NoError(t, err)
	require.Len(t, byOwner.Data, 1)
	assert.Equal(t, "John", byOwner.Data[0].FirstName)

	bySearch, err := svc.List(ctx, ListRequest{Query: "acme"})
	require.NoError(t, err)
	require.Len(t, bySearch.Data, 1)
	assert.Equal(t, "Acme Corp", bySearch.Data[0].CompanyName)
}

func TestList_Pagination(t *testing.T) {
	_, svc := setupService(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.Create(ctx, 1, CreateLeadRequest{FirstName: "Lead", LastName: "Number"})
		require.NoError(t, err)
	}

	page, err := svc.List(ctx, ListRequest{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page.Data, 2)
	assert.Equal(t, 5, page.Pagination.Total)
	assert.Equal(t, 3, page.Pagination.TotalPages)
	assert.Equal(t, 2, page.Pagination.Page)
}

func TestList_CacheInvalidatedOnWrite(t *testing.T) {
	_, svc := setupService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, CreateLeadRequest{FirstName: "Jane", LastName: "Doe"})
	require.NoError(t, err)

	first, err := svc.List(ctx, ListRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Pagination.Total)

	// Second read is served from cache and must match.
	cached, err := svc.List(ctx, ListRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, cached.Pagination.Total)

	_, err = svc.Create(ctx, 1, CreateLeadRequest{FirstName: "John", LastName: "Smith"})
	require.NoError(t, err)

	after, err := svc.List(ctx, ListRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, after.Pagination.Total)
}

func TestCountByStatus(t *testing.T) {
	client, svc := setupService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, CreateLeadRequest{FirstName: "A", LastName: "One"})
	require.NoError(t, err)
	_, err = client.Lead.Create().
		SetFirstName("B").
		SetLastName("Two").
		SetOwnerID(1).
		SetStatus(lead.StatusQualified).
		Save(ctx)
	require.NoError(t, err)

	counts, err := svc.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, counts["new"])
	assert.Equal(t, 1, counts["qualified"])
	assert.Equal(t, 0, counts["working"])
}
