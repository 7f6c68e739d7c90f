package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kanaka-pac/pac-api/internal/models"
	"github.com/kanaka-pac/pac-api/internal/store"
)

type announcementStore struct {
	s *Store
}

func (a *announcementStore) List(ctx context.Context) ([]models.Announcement, error) {
	const query = `SELECT id, title, content, priority, published_at, expires_at
FROM announcements ORDER BY published_at DESC`
	announcements := []models.Announcement{}
	if err := a.s.db.SelectContext(ctx, &announcements, query); err != nil {
		a.s.listWarn("announcements", err)
		return []models.Announcement{}, nil
	}
	return announcements, nil
}

func (a *announcementStore) GetByID(ctx context.Context, id string) (*models.Announcement, error) {
	const query = `SELECT id, title, content, priority, published_at, expires_at
FROM announcements WHERE id = $1`
	var announcement models.Announcement
	if err := a.s.db.GetContext(ctx, &announcement, query, id); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			a.s.listWarn("announcements", err)
		}
		return nil, store.ErrNotFound
	}
	return &announcement, nil
}

func (a *announcementStore) Upsert(ctx context.Context, announcement *models.Announcement) error {
	if announcement.ID == "" {
		announcement.ID = uuid.NewString()
	}
	if announcement.PublishedAt.IsZero() {
		announcement.PublishedAt = time.Now().UTC()
	}
	const query = `INSERT INTO announcements (id, title, content, priority, published_at, expires_at)
VALUES (:id, :title, :content, :priority, :published_at, :expires_at)
ON CONFLICT (id) DO UPDATE SET
	title = EXCLUDED.title, content = EXCLUDED.content, priority = EXCLUDED.priority,
	published_at = EXCLUDED.published_at, expires_at = EXCLUDED.expires_at`
	if _, err := a.s.db.NamedExecContext(ctx, query, announcement); err != nil {
		return fmt.Errorf("upsert announcement: %w", err)
	}
	return nil
}

func (a *announcementStore) Delete(ctx context.Context, id string) error {
	if _, err := a.s.db.ExecContext(ctx, "DELETE FROM announcements WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete announcement: %w", err)
	}
	return nil
}
