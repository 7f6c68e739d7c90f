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

type eventStore struct {
	s *Store
}

func (e *eventStore) List(ctx context.Context) ([]models.Event, error) {
	const query = `SELECT id, title, date, time, location, description, created_at
FROM events ORDER BY date ASC`
	events := []models.Event{}
	if err := e.s.db.SelectContext(ctx, &events, query); err != nil {
		e.s.listWarn("events", err)
		return []models.Event{}, nil
	}
	return events, nil
}

func (e *eventStore) GetByID(ctx context.Context, id string) (*models.Event, error) {
	const query = `SELECT id, title, date, time, location, description, created_at
FROM events WHERE id = $1`
	var event models.Event
	if err := e.s.db.GetContext(ctx, &event, query, id); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			e.s.listWarn("events", err)
		}
		return nil, store.ErrNotFound
	}
	return &event, nil
}

func (e *eventStore) Upsert(ctx context.Context, event *models.Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO events (id, title, date, time, location, description, created_at)
VALUES (:id, :title, :date, :time, :location, :description, :created_at)
ON CONFLICT (id) DO UPDATE SET
	title = EXCLUDED.title, date = EXCLUDED.date, time = EXCLUDED.time,
	location = EXCLUDED.location, description = EXCLUDED.description,
	created_at = EXCLUDED.created_at`
	if _, err := e.s.db.NamedExecContext(ctx, query, event); err != nil {
		return fmt.Errorf("upsert event: %w", err)
	}
	return nil
}

func (e *eventStore) Delete(ctx context.Context, id string) error {
	if _, err := e.s.db.ExecContext(ctx, "DELETE FROM events WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}
