package accounts

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesdeskhq/salesdesk/ent"
	"github.com/salesdeskhq/salesdesk/ent/account"
	"github.com/salesdeskhq/salesdesk/ent/enttest"
	"github.com/salesdeskhq/salesdesk/pkg/domain"
)

func setupService(t *testing.T) (*ent.Client, *Service) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })
	return client, NewService(client)
}

func TestCreate(t *testing.T) {
	_, svc := setupService(t)

	a, err := svc.Create(context.Background(), 1, CreateAccountRequest{
		Name:     "Acme Corp",
		Type:     "customer",
		Industry: "Manufacturing",
		Website:  "https://acme.example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", a.Name)
	assert.Equal(t, account.TypeCustomer, a.Type)
	assert.Equal(t, "Manufacturing", a.Industry)
	assert.Equal(t, 1, a.OwnerID)
}

func TestCreate_DefaultsToProspect(t *testing.T) {
	_, svc := setupService(t)

	a, err := svc.Create(context.Background(), 1, CreateAccountRequest{Name: "Globex"})
	require.NoError(t, err)
	assert.Equal(t, account.TypeProspect, a.Type)
}

func TestGet_NotFound(t *testing.T) {
	_, svc := setupService(t)

	_, err := svc.Get(context.Background(), 9999)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestUpdate_PartialKeepsOtherFields(t *testing.T) {
	_, svc := setupService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, 1, CreateAccountRequest{Name: "Acme Corp", Industry: "Manufacturing"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, a.ID, UpdateAccountRequest{Type: "customer"})
	require.NoError(t, err)
	assert.Equal(t, account.TypeCustomer, updated.Type)
	assert.Equal(t, "Acme Corp", updated.Name)
	assert.Equal(t, "Manufacturing", updated.Industry)
}

func TestDelete(t *testing.T) {
	_, svc := setupService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, 1, CreateAccountRequest{Name: "Acme Corp"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, a.ID))

	err = svc.Delete(ctx, a.ID)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestList_Filters(t *testing.T) {
	_, svc := setupService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, CreateAccountRequest{Name: "Acme Corp", Type: "customer"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, 1, CreateAccountRequest{Name: "Acme Labs", Type: "prospect"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, 2, CreateAccountRequest{Name: "Globex", Type: "customer"})
	require.NoError(t, err)

	byType, err := svc.List(ctx, ListRequest{Type: "customer"})
	require.NoError(t, err)
	assert.Equal(t, 2, byType.Pagination.Total)

	byOwner, err := svc.List(ctx, ListRequest{OwnerID: 2})
	require.NoError(t, err)
	require.Len(t, byOwner.Data, 1)
	assert.Equal(t, "Globex", byOwner.Data[0].Name)

	byQuery, err := svc.List(ctx, ListRequest{Query: "acme"})
	require.NoError(t, err)
	assert.Equal(t, 2, byQuery.Pagination.Total)
}

func TestList_Pagination(t *testing.T) {
	_, svc := setupService(t)
	ctx := context.Background()

	for _, name := range []string{"A", "B", "C", "D", "E"} {
		_, err := svc.Create(ctx, 1, CreateAccountRequest{Name: name + " Corp"})
		require.NoError(t, err)
	}

	page, err := svc.List(ctx, ListRequest{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page.Data, 2)
	assert.Equal(t, 5, page.Pagination.Total)
	assert.Equal(t, 3, page.Pagination.TotalPages)
}
