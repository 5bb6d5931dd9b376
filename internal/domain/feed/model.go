package feed

import (
	"strings"
	"time"
)

// NotificationTypeAnnouncement marks notifications derived from a new
// announcement; RelatedID then points at the announcement.
const NotificationTypeAnnouncement = "announcement"

// News is a published news item. Feed collections are kept newest-first.
type News struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Content  string    `json:"content,omitempty"`
	ImageURL string    `json:"imageUrl,omitempty"`
	Date     time.Time `json:"date"`
}

// Announcement is an official union announcement.
type Announcement struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Date    time.Time `json:"date"`
}

// Notification is a per-device inbox entry.
type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type,omitempty"`
	RelatedID string    `json:"relatedId,omitempty"`
	Date      time.Time `json:"date"`
	Read      bool      `json:"read"`
}

// CreateNewsInput represents input for publishing a news item.
type CreateNewsInput struct {
	Title    string `json:"title"`
	Content  string `json:"content,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

func (in *CreateNewsInput) Trim() {
	in.Title = strings.TrimSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)
	in.ImageURL = strings.TrimSpace(in.ImageURL)
}

// CreateAnnouncementInput represents input for publishing an announcement.
type CreateAnnouncementInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (in *CreateAnnouncementInput) Trim() {
	in.Title = strings.TrimSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)
}

// CreateNotificationInput represents input for pushing a notification.
type CreateNotificationInput struct {
	Title     string `json:"title"`
	Message   string `json:"message"`
	Type      string `json:"type,omitempty"`
	RelatedID string `json:"relatedId,omitempty"`
}

func (in *CreateNotificationInput) Trim() {
	in.Title = strings.TrimSpace(in.Title)
	in.Message = strings.TrimSpace(in.Message)
	in.Type = strings.TrimSpace(in.Type)
	in.RelatedID = strings.TrimSpace(in.RelatedID)
}
