package feed

import (
	"context"
	"fmt"
	"time"
)

type Service struct {
	repo *Repo
}

func NewService(repo *Repo) *Service {
	return &Service{repo: repo}
}

// PublishNews publishes a news item at the top of the feed.
func (s *Service) PublishNews(ctx context.Context, in CreateNewsInput) (*News, error) {
	in.Trim()
	if in.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrBadRequest)
	}

	return s.repo.CreateNews(ctx, News{
		Title:    in.Title,
		Content:  in.Content,
		ImageURL: in.ImageURL,
		Date:     time.Now().UTC(),
	})
}

// ListNews returns the news feed, newest first.
func (s *Service) ListNews(ctx context.Context) []News {
	return s.repo.ListNews(ctx)
}

// PublishAnnouncement publishes an announcement and pushes one paired
// notification referencing it. The two writes hit different collections
// and are not atomic: if the notification write fails the announcement
// stays published and the error reports it.
func (s *Service) PublishAnnouncement(ctx context.Context, in CreateAnnouncementInput) (*Announcement, error) {
	in.Trim()
	if in.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrBadRequest)
	}
	if in.Content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrBadRequest)
	}

	a, err := s.repo.CreateAnnouncement(ctx, Announcement{
		Title:   in.Title,
		Content: in.Content,
		Date:    time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	_, err = s.repo.CreateNotification(ctx, Notification{
		Title:     "New Announcement",
		Message:   a.Title,
		Type:      NotificationTypeAnnouncement,
		RelatedID: a.ID,
		Date:      time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("announcement %s published but notification failed: %w", a.ID, err)
	}

	return a, nil
}

// ListAnnouncements returns the announcement feed, newest first.
func (s *Service) ListAnnouncements(ctx context.Context) []Announcement {
	return s.repo.ListAnnouncements(ctx)
}

// PushNotification pushes a standalone notification.
func (s *Service) PushNotification(ctx context.Context, in CreateNotificationInput) (*Notification, error) {
	in.Trim()
	if in.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrBadRequest)
	}

	return s.repo.CreateNotification(ctx, Notification{
		Title:     in.Title,
		Message:   in.Message,
		Type:      in.Type,
		RelatedID: in.RelatedID,
		Date:      time.Now().UTC(),
	})
}

// ListNotifications returns the notification inbox, newest first.
func (s *Service) ListNotifications(ctx context.Context) []Notification {
	return s.repo.ListNotifications(ctx)
}

// MarkNotificationRead marks one notification as read.
func (s *Service) MarkNotificationRead(ctx context.Context, notificationID string) (*Notification, error) {
	if notificationID == "" {
		return nil, fmt.Errorf("%w: notificationId is required", ErrBadRequest)
	}
	return s.repo.MarkNotificationRead(ctx, notificationID)
}
