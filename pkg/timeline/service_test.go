package timeline

import (
	"context"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesdeskhq/salesdesk/ent"
	"github.com/salesdeskhq/salesdesk/ent/activity"
	"github.com/salesdeskhq/salesdesk/ent/auditlog"
	"github.com/salesdeskhq/salesdesk/ent/enttest"
	"github.com/salesdeskhq/salesdesk/pkg/activities"
	"github.com/salesdeskhq/salesdesk/pkg/audit"
	"github.com/salesdeskhq/salesdesk/pkg/comments"
	"github.com/salesdeskhq/salesdesk/pkg/domain"
	"github.com/salesdeskhq/salesdesk/pkg/logger"
)

func setupService(t *testing.T) (*ent.Client, *Service) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	svc := NewService(
		audit.NewService(client),
		comments.NewService(client),
		activities.NewService(client),
		logger.New("error", "text"),
	)
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

func TestMerge_OrdersDescending(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	logs := []*ent.AuditLog{
		{ID: 1, CreatedAt: base.Add(100 * time.Second)},
	}
	comms := []*ent.Comment{
		{ID: 2, CreatedAt: base.Add(300 * time.Second)},
	}
	acts := []*ent.Activity{
		{ID: 3, CreatedAt: base.Add(200 * time.Second)},
	}

	items := Merge(logs, comms, acts)
	require.Len(t, items, 3)

	assert.Equal(t, TypeComment, items[0].Type)
	assert.Equal(t, TypeActivity, items[1].Type)
	assert.Equal(t, TypeLog, items[2].Type)

	for i := 1; i < len(items); i++ {
		assert.False(t, items[i].Timestamp.After(items[i-1].Timestamp),
			"items must be in descending timestamp order")
	}
}

func TestMerge_TieBreakIsStable(t *testing.T) {
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	logs := []*ent.AuditLog{{ID: 1, CreatedAt: ts}}
	comms := []*ent.Comment{{ID: 2, CreatedAt: ts}}
	acts := []*ent.Activity{{ID: 3, CreatedAt: ts}}

	items := Merge(logs, comms, acts)
	require.Len(t, items, 3)

	// Identical timestamps keep concatenation order: logs, comments, activities.
	assert.Equal(t, TypeLog, items[0].Type)
	assert.Equal(t, TypeComment, items[1].Type)
	assert.Equal(t, TypeActivity, items[2].Type)
}

func TestMerge_Empty(t *testing.T) {
	items := Merge(nil, nil, nil)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestGet_MergesAllSources(t *testing.T) {
	client, svc := setupService(t)
	ctx := context.Background()

	u := createUser(t, client)

	l, err := client.Lead.Create().
		SetFirstName("Jane").
		SetLastName("Doe").
		SetOwnerID(u.ID).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.AuditLog.Create().
		SetUserID(u.ID).
		SetAction(auditlog.ActionCreate).
		SetEntityType("lead").
		SetEntityID(l.ID).
		SetDescription("Created lead Jane Doe").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Comment.Create().
		SetEntityType("lead").
		SetEntityID(l.ID).
		SetUserID(u.ID).
		SetContent("Left a voicemail").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Activity.Create().
		SetKind(activity.KindCall).
		SetSubject("Intro call").
		SetEntityType("lead").
		SetEntityID(l.ID).
		SetUserID(u.ID).
		Save(ctx)
	require.NoError(t, err)

	// Rows for a different record must not leak into the feed.
	_, err = client.Comment.Create().
		SetEntityType("lead").
		SetEntityID(l.ID + 1000).
		SetUserID(u.ID).
		SetContent("Unrelated").
		Save(ctx)
	require.NoError(t, err)

	tl, err := svc.Get(ctx, "lead", l.ID)
	require.NoError(t, err)
	assert.Equal(t, "lead", tl.EntityType)
	assert.Equal(t, l.ID, tl.EntityID)
	require.Len(t, tl.Items, 3)

	types := map[ItemType]int{}
	for _, item := range tl.Items {
		types[item.Type]++
	}
	assert.Equal(t, 1, types[TypeLog])
	assert.Equal(t, 1, types[TypeComment])
	assert.Equal(t, 1, types[TypeActivity])
}

func TestGet_EmptyFeed(t *testing.T) {
	_, svc := setupService(t)

	tl, err := svc.Get(context.Background(), "account", 42)
	require.NoError(t, err)
	assert.Empty(t, tl.Items)
}

func TestGet_RejectsUnknownEntityType(t *testing.T) {
	_, svc := setupService(t)

	_, err := svc.Get(context.Background(), "galaxy", 1)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}
