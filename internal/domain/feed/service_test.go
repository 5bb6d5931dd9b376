package feed_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"hockey-union/backend/internal/domain/feed"
	"hockey-union/backend/internal/storage/memory"
)

func newService(t *testing.T) *feed.Service {
	t.Helper()
	return feed.NewService(feed.NewRepo(memory.New(), zerolog.Nop()))
}

func TestPublishAnnouncementPairsNotification(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	a, err := svc.PublishAnnouncement(ctx, feed.CreateAnnouncementInput{
		Title: "X", Content: "Y",
	})
	require.NoError(t, err)
	require.NotEmpty(t, a.ID)

	announcements := svc.ListAnnouncements(ctx)
	require.Len(t, announcements, 1)
	require.Equal(t, "X", announcements[0].Title)

	notifications := svc.ListNotifications(ctx)
	require.Len(t, notifications, 1)
	require.Equal(t, feed.NotificationTypeAnnouncement, notifications[0].Type)
	require.Equal(t, a.ID, notifications[0].RelatedID)
	require.Equal(t, "X", notifications[0].Message)
	require.False(t, notifications[0].Read)
}

func TestAnnouncementsNewestFirst(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.PublishAnnouncement(ctx, feed.CreateAnnouncementInput{Title: "first", Content: "c"})
	require.NoError(t, err)
	_, err = svc.PublishAnnouncement(ctx, feed.CreateAnnouncementInput{Title: "second", Content: "c"})
	require.NoError(t, err)

	got := svc.ListAnnouncements(ctx)
	require.Equal(t, "second", got[0].Title)
	require.Equal(t, "first", got[1].Title)
}

func TestMarkNotificationRead(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	n, err := svc.PushNotification(ctx, feed.CreateNotificationInput{
		Title: "Match moved", Message: "New venue",
	})
	require.NoError(t, err)
	require.False(t, n.Read)

	updated, err := svc.MarkNotificationRead(ctx, n.ID)
	require.NoError(t, err)
	require.True(t, updated.Read)

	got := svc.ListNotifications(ctx)
	require.Len(t, got, 1)
	require.True(t, got[0].Read)
}

func TestMarkNotificationReadMissing(t *testing.T) {
	svc := newService(t)

	_, err := svc.MarkNotificationRead(context.Background(), "missing")
	require.True(t, feed.IsErrNotFound(err))
}

func TestPublishNews(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	n, err := svc.PublishNews(ctx, feed.CreateNewsInput{Title: "Season opens"})
	require.NoError(t, err)
	require.NotEmpty(t, n.ID)
	require.False(t, n.Date.IsZero())

	// news does not push a notification
	require.Empty(t, svc.ListNotifications(ctx))
}

func TestPublishValidation(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.PublishAnnouncement(ctx, feed.CreateAnnouncementInput{Content: "c"})
	require.True(t, feed.IsErrBadRequest(err))

	_, err = svc.PublishAnnouncement(ctx, feed.CreateAnnouncementInput{Title: "t"})
	require.True(t, feed.IsErrBadRequest(err))

	_, err = svc.PublishNews(ctx, feed.CreateNewsInput{})
	require.True(t, feed.IsErrBadRequest(err))
}
