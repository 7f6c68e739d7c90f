// Package store defines the persistence contract for site content. Two
// implementations exist: jsonfile (one JSON document per kind on disk) and
// postgres (one table per kind). The backend is chosen once at startup;
// callers cannot tell which is active.
package store

import (
	"context"
	"errors"

	"github.com/kanaka-pac/pac-api/internal/models"
)

// ErrNotFound is returned by lookups when no record matches. Deletes never
// return it; deleting an absent record is a no-op.
var ErrNotFound = errors.New("record not found")

// Store aggregates the per-kind stores.
type Store interface {
	Events() EventStore
	Minutes() MinutesStore
	Announcements() AnnouncementStore
	Policies() PolicyStore
	Team() TeamStore
	Subscribers() SubscriberStore
	Settings() SettingsStore

	Close() error
}

// EventStore persists events. List returns events sorted ascending by date.
type EventStore interface {
	List(ctx context.Context) ([]models.Event, error)
	GetByID(ctx context.Context, id string) (*models.Event, error)
	Upsert(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id string) error
}

// MinutesStore persists meeting minutes, listed newest meeting first.
type MinutesStore interface {
	List(ctx context.Context) ([]models.Minutes, error)
	GetByID(ctx context.Context, id string) (*models.Minutes, error)
	Upsert(ctx context.Context, minutes *models.Minutes) error
	Delete(ctx context.Context, id string) error
}

// AnnouncementStore persists announcements, listed newest published first.
type AnnouncementStore interface {
	List(ctx context.Context) ([]models.Announcement, error)
	GetByID(ctx context.Context, id string) (*models.Announcement, error)
	Upsert(ctx context.Context, announcement *models.Announcement) error
	Delete(ctx context.Context, id string) error
}

// PolicyStore persists policies, listed most recently updated first.
type PolicyStore interface {
	List(ctx context.Context) ([]models.Policy, error)
	GetByID(ctx context.Context, id string) (*models.Policy, error)
	Upsert(ctx context.Context, policy *models.Policy) error
	Delete(ctx context.Context, id string) error
}

// TeamStore persists team members, listed ascending by sort order.
// Reorder swaps the sort positions of two members atomically.
type TeamStore interface {
	List(ctx context.Context) ([]models.TeamMember, error)
	GetByID(ctx context.Context, id string) (*models.TeamMember, error)
	Upsert(ctx context.Context, member *models.TeamMember) error
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, firstID, secondID string) error
}

// SubscriberStore persists newsletter subscribers, newest first. Upsert is
// keyed by email: subscribing an address twice never yields two records.
// Deletion is by email, matching the unsubscribe flow.
type SubscriberStore interface {
	List(ctx context.Context) ([]models.Subscriber, error)
	Upsert(ctx context.Context, subscriber *models.Subscriber) error
	DeleteByEmail(ctx context.Context, email string) error
}

// SettingsStore persists the singleton settings record. Get returns the
// defaults when nothing has been saved; Save always upserts.
type SettingsStore interface {
	Get(ctx context.Context) (*models.Settings, error)
	Save(ctx context.Context, settings *models.Settings) error
}
