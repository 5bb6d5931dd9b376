package feed

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"hockey-union/backend/internal/storage"
)

// Repo owns the three feed collections. All of them insert at the front so
// readers always see newest entries first.
type Repo struct {
	news          *storage.Collection[News]
	announcements *storage.Collection[Announcement]
	notifications *storage.Collection[Notification]
}

func NewRepo(kv storage.KV, log zerolog.Logger) *Repo {
	return &Repo{
		news:          storage.NewCollection(kv, log, "news", func(n *News) string { return n.ID }),
		announcements: storage.NewCollection(kv, log, "announcements", func(a *Announcement) string { return a.ID }),
		notifications: storage.NewCollection(kv, log, "notifications", func(n *Notification) string { return n.ID }),
	}
}

// Seed writes empty feed collections on first run only.
func (r *Repo) Seed(ctx context.Context) error {
	if err := r.news.Seed(ctx, nil); err != nil {
		return err
	}
	if err := r.announcements.Seed(ctx, nil); err != nil {
		return err
	}
	return r.notifications.Seed(ctx, nil)
}

func (r *Repo) ListNews(ctx context.Context) []News {
	return r.news.List(ctx)
}

func (r *Repo) CreateNews(ctx context.Context, n News) (*News, error) {
	n.ID = uuid.NewString()
	if err := r.news.Prepend(ctx, n); err != nil {
		return nil, fmt.Errorf("create news: %w", err)
	}
	return &n, nil
}

func (r *Repo) ListAnnouncements(ctx context.Context) []Announcement {
	return r.announcements.List(ctx)
}

func (r *Repo) CreateAnnouncement(ctx context.Context, a Announcement) (*Announcement, error) {
	a.ID = uuid.NewString()
	if err := r.announcements.Prepend(ctx, a); err != nil {
		return nil, fmt.Errorf("create announcement: %w", err)
	}
	return &a, nil
}

func (r *Repo) ListNotifications(ctx context.Context) []Notification {
	return r.notifications.List(ctx)
}

func (r *Repo) CreateNotification(ctx context.Context, n Notification) (*Notification, error) {
	n.ID = uuid.NewString()
	if err := r.notifications.Prepend(ctx, n); err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}
	return &n, nil
}

// MarkNotificationRead flips the read flag on one notification.
func (r *Repo) MarkNotificationRead(ctx context.Context, notificationID string) (*Notification, error) {
	n, err := r.notifications.Update(ctx, notificationID, func(n Notification) Notification {
		n.Read = true
		return n
	})
	if errors.Is(err, storage.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, notificationID)
	}
	if err != nil {
		return nil, fmt.Errorf("mark notification read: %w", err)
	}
	return &n, nil
}
