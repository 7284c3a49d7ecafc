package comments

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesdeskhq/salesdesk/ent"
	"github.com/salesdeskhq/salesdesk/ent/enttest"
	"github.com/salesdeskhq/salesdesk/pkg/domain"
)

func setupService(t *testing.T) (*ent.Client, *Service) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })
	return client, NewService(client)
}

func createUser(t *testing.T, client *ent.Client, email, name string) *ent.User {
	u, err := client.User.Create().
		SetEmail(email).
		SetName(name).
		SetPasswordHash("hashed").
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func TestCreate(t *testing.T) {
	client, svc := setupService(t)
	ctx := context.Background()

	u := createUser(t, client, "rep@example.com", "Rep One")

	resp, err := svc.Create(ctx, u.ID, CreateCommentRequest{
		EntityType: "lead",
		EntityID:   42,
		Content:    "Called, asked to ring back next week",
	})
	require.NoError(t, err)
	assert.Equal(t, "lead", resp.EntityType)
	assert.Equal(t, 42, resp.EntityID)
	assert.Equal(t, u.ID, resp.UserID)
	assert.Equal(t, "Rep One", resp.UserName)
	assert.False(t, resp.CreatedAt.IsZero())
}

func TestCreate_RejectsUnknownEntityType(t *testing.T) {
	_, svc := setupService(t)

	_, err := svc.Create(context.Background(), 1, CreateCommentRequest{
		EntityType: "widget",
		EntityID:   1,
		Content:    "nope",
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestListForEntity_NewestFirst(t *testing.T) {
	client, svc := setupService(t)
	ctx := context.Background()

	u := createUser(t, client, "rep@example.com", "Rep One")

	for _, content := range []string{"first", "second", "third"} {
		_, err := svc.Create(ctx, u.ID, CreateCommentRequest{
			EntityType: "account",
			EntityID:   7,
			Content:    content,
		})
		require.NoError(t, err)
	}

	rows, err := svc.ListForEntity(ctx, "account", 7)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for i := 1; i < len(rows); i++ {
		assert.False(t, rows[i].CreatedAt.After(rows[i-1].CreatedAt))
	}

	other, err := svc.ListForEntity(ctx, "account", 8)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestListResponses_ResolvesAuthors(t *testing.T) {
	client, svc := setupService(t)
	ctx := context.Background()

	alice := createUser(t, client, "alice@example.com", "Alice")
	bob := createUser(t, client, "bob@example.com", "Bob")

	_, err := svc.Create(ctx, alice.ID, CreateCommentRequest{EntityType: "lead", EntityID: 1, Content: "a"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, bob.ID, CreateCommentRequest{EntityType: "lead", EntityID: 1, Content: "b"})
	require.NoError(t, err)

	// A comment whose author no longer exists falls back to a placeholder.
	_, err = client.Comment.Create().
		SetEntityType("lead").
		SetEntityID(1).
		SetUserID(9999).
		SetContent("orphan").
		Save(ctx)
	require.NoError(t, err)

	out, err := svc.ListResponses(ctx, "lead", 1)
	require.NoError(t, err)
	require.Len(t, out, 3)

	names := map[string]bool{}
	for _, c := range out {
		names[c.UserName] = true
	}
	assert.True(t, names["Alice"])
	assert.True(t, names["Bob"])
	assert.True(t, names["Unknown User"])
}
