package models

import "time"

// AnnouncementPriority marks how prominently an announcement is shown.
type AnnouncementPriority string

const (
	AnnouncementPriorityNormal AnnouncementPriority = "normal"
	AnnouncementPriorityUrgent AnnouncementPriority = "urgent"
)

// Announcement is a dated notice on the public site. A nil ExpiresAt means
// the announcement never expires.
type Announcement struct {
	ID          string               `db:"id" json:"id"`
	Title       string               `db:"title" json:"title"`
	Content     string               `db:"content" json:"content"`
	Priority    AnnouncementPriority `db:"priority" json:"priority"`
	PublishedAt time.Time            `db:"published_at" json:"publishedAt"`
	ExpiresAt   *time.Time           `db:"expires_at" json:"expiresAt"`
}
