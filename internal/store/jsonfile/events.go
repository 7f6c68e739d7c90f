package jsonfile

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/kanaka-pac/pac-api/internal/models"
	"github.com/kanaka-pac/pac-api/internal/store"
)

const eventsFile = "events.json"

type eventStore struct {
	s *Store
}

func (e *eventStore) List(ctx context.Context) ([]models.Event, error) {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()

	events := readCollection[models.Event](e.s, eventsFile)
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date < events[j].Date
	})
	return events, nil
}

func (e *eventStore) GetByID(ctx context.Context, id string) (*models.Event, error) {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()

	for _, event := range readCollection[models.Event](e.s, eventsFile) {
		if event.ID == id {
			found := event
			return &found, nil
		}
	}
	return nil, store.ErrNotFound
}

func (e *eventStore) Upsert(ctx context.Context, event *models.Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	e.s.mu.Lock()
	defer e.s.mu.Unlock()

	events := readCollection[models.Event](e.s, eventsFile)
	replaced := false
	for i := range events {
		if events[i].ID == event.ID {
			events[i] = *event
			replaced = true
			break
		}
	}
	if !replaced {
		events = append(events, *event)
	}
	return writeCollection(e.s, eventsFile, events)
}

func (e *eventStore) Delete(ctx context.Context, id string) error {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()

	events := readCollection[models.Event](e.s, eventsFile)
	kept := events[:0]
	for _, event := range events {
		if event.ID != id {
			kept = append(kept, event)
		}
	}
	return writeCollection(e.s, eventsFile, kept)
}
