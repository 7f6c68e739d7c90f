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

type minutesStore struct {
	s *Store
}

func (m *minutesStore) List(ctx context.Context) ([]models.Minutes, error) {
	const query = `SELECT id, title, date, content, file_url, created_at
FROM minutes ORDER BY date DESC`
	minutes := []models.Minutes{}
	if err := m.s.db.SelectContext(ctx, &minutes, query); err != nil {
		m.s.listWarn("minutes", err)
		return []models.Minutes{}, nil
	}
	return minutes, nil
}

func (m *minutesStore) GetByID(ctx context.Context, id string) (*models.Minutes, error) {
	const query = `SELECT id, title, date, content, file_url, created_at
FROM minutes WHERE id = $1`
	var minutes models.Minutes
	if err := m.s.db.GetContext(ctx, &minutes, query, id); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			m.s.listWarn("minutes", err)
		}
		return nil, store.ErrNotFound
	}
	return &minutes, nil
}

func (m *minutesStore) Upsert(ctx context.Context, minutes *models.Minutes) error {
	if minutes.ID == "" {
		minutes.ID = uuid.NewString()
	}
	if minutes.CreatedAt.IsZero() {
		minutes.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO minutes (id, title, date, content, file_url, created_at)
VALUES (:id, :title, :date, :content, :file_url, :created_at)
ON CONFLICT (id) DO UPDATE SET
	title = EXCLUDED.title, date = EXCLUDED.date, content = EXCLUDED.content,
	file_url = EXCLUDED.file_url, created_at = EXCLUDED.created_at`
	if _, err := m.s.db.NamedExecContext(ctx, query, minutes); err != nil {
		return fmt.Errorf("upsert minutes: %w", err)
	}
	return nil
}

func (m *minutesStore) Delete(ctx context.Context, id string) error {
	if _, err := m.s.db.ExecContext(ctx, "DELETE FROM minutes WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete minutes: %w", err)
	}
	return nil
}
