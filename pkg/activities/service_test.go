package activities

import (
	"context"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesdeskhq/salesdesk/ent"
	"github.com/salesdeskhq/salesdesk/ent/activity"
	"github.com/salesdeskhq/salesdesk/ent/enttest"
	"github.com/salesdeskhq/salesdesk/pkg/domain"
)

func setupService(t *testing.T) (*ent.Client, *Service) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })
	return client, NewService(client)
}

func timePtr(v time.Time) *time.Time { return &v }

func TestCreate(t *testing.T) {
	_, svc := setupService(t)
	ctx := context.Background()

	due := time.Now().Add(24 * time.Hour).Truncate(time.Second)
	a, err := svc.Create(ctx, 1, CreateActivityRequest{
		Kind:       "task",
		Subject:    "Send pricing deck",
		Content:    "Include the enterprise tier",
		EntityType: "opportunity",
		EntityID:   9,
		DueAt:      timePtr(due),
	})
	require.NoError(t, err)
	assert.Equal(t, activity.KindTask, a.Kind)
	assert.Equal(t, "Send pricing deck", a.Subject)
	assert.Equal(t, "opportunity", a.EntityType)
	assert.False(t, a.Completed)
	require.NotNil(t, a.DueAt)
	assert.WithinDuration(t, due, *a.DueAt, time.Second)
}

func TestCreate_RejectsUnknownEntityType(t *testing.T) {
	_, svc := setupService(t)

	_, err := svc.Create(context.Background(), 1, CreateActivityRequest{
		Kind:       "call",
		Subject:    "Intro call",
		EntityType: "galaxy",
		EntityID:   1,
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestUpdate(t *testing.T) {
	_, svc := setupService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, 1, CreateActivityRequest{
		Kind:       "meeting",
		Subject:    "Kickoff",
		EntityType: "account",
		EntityID:   3,
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, a.ID, UpdateActivityRequest{Subject: "Kickoff (rescheduled)"})
	require.NoError(t, err)
	assert.Equal(t, "Kickoff (rescheduled)", updated.Subject)
	assert.Equal(t, activity.KindMeeting, updated.Kind)
}

func TestUpdate_NotFound(t *testing.T) {
	_, svc := setupService(t)

	_, err := svc.Update(context.Background(), 9999, UpdateActivityRequest{Subject: "x"})
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestComplete(t *testing.T) {
	_, svc := setupService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, 1, CreateActivityRequest{
		Kind:       "task",
		Subject:    "Follow up",
		EntityType: "lead",
		EntityID:   5,
	})
	require.NoError(t, err)
	assert.False(t, a.Completed)

	done, err := svc.Complete(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, done.Completed)
}

func TestDelete(t *testing.T) {
	_, svc := setupService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, 1, CreateActivityRequest{
		Kind:       "note",
		Subject:    "Left voicemail",
		EntityType: "contact",
		EntityID:   2,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, a.ID))

	err = svc.Delete(ctx, a.ID)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestListForEntity(t *testing.T) {
	_, svc := setupService(t)
	ctx := context.Background()

	for _, subject := range []string{"first", "second", "third"} {
		_, err := svc.Create(ctx, 1, CreateActivityRequest{
			Kind:       "call",
			Subject:    subject,
			EntityType: "lead",
			EntityID:   11,
		})
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, 1, CreateActivityRequest{
		Kind:       "call",
		Subject:    "other record",
		EntityType: "lead",
		EntityID:   12,
	})
	require.NoError(t, err)

	rows, err := svc.ListForEntity(ctx, "lead", 11)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for i := 1; i < len(rows); i++ {
		assert.False(t, rows[i].CreatedAt.After(rows[i-1].CreatedAt))
	}
}

func TestListDueBetween(t *testing.T) {
	_, svc := setupService(t)
	ctx := context.Background()

	now := time.Now().Truncate(time.Second)

	mk := func(subject string, due time.Time) *ent.Activity {
		a, err := svc.Create(ctx, 1, CreateActivityRequest{
			Kind:       "task",
			Subject:    subject,
			EntityType: "lead",
			EntityID:   1,
			DueAt:      timePtr(due),
		})
		require.NoError(t, err)
		return a
	}

	mk("due soon", now.Add(2*time.Hour))
	mk("due later today", now.Add(6*time.Hour))
	mk("due tomorrow", now.Add(30*time.Hour))
	completed := mk("already done", now.Add(3*time.Hour))
	_, err := svc.Complete(ctx, completed.ID)
	require.NoError(t, err)

	rows, err := svc.ListDueBetween(ctx, now, now.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "due soon", rows[0].Subject)
	assert.Equal(t, "due later today", rows[1].Subject)
}
