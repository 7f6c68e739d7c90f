package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kanaka-pac/pac-api/internal/models"
	"github.com/kanaka-pac/pac-api/internal/store"
)

type stubEventStore struct {
	events  []models.Event
	saved   *models.Event
	deleted string
	err     error
}

func (s *stubEventStore) List(ctx context.Context) ([]models.Event, error) {
	return s.events, s.err
}

func (s *stubEventStore) GetByID(ctx context.Context, id string) (*models.Event, error) {
	for _, event := range s.events {
		if event.ID == id {
			found := event
			return &found, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *stubEventStore) Upsert(ctx context.Context, event *models.Event) error {
	s.saved = event
	return s.err
}

func (s *stubEventStore) Delete(ctx context.Context, id string) error {
	s.deleted = id
	return s.err
}

func dateOffset(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

func TestEventListFilters(t *testing.T) {
	st := &stubEventStore{events: []models.Event{
		{ID: "past2", Date: dateOffset(-30)},
		{ID: "past1", Date: dateOffset(-7)},
		{ID: "today", Date: dateOffset(0)},
		{ID: "future", Date: dateOffset(14)},
	}}
	svc := NewEventService(st, nil)
	ctx := context.Background()

	all, err := svc.List(ctx, models.EventFilterAll)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	upcoming, err := svc.List(ctx, models.EventFilterUpcoming)
	require.NoError(t, err)
	require.Len(t, upcoming, 2)
	// today counts as upcoming
	assert.Equal(t, "today", upcoming[0].ID)

	past, err := svc.List(ctx, models.EventFilterPast)
	require.NoError(t, err)
	require.Len(t, past, 2)
	// past events come back most recent first
	assert.Equal(t, "past1", past[0].ID)
	assert.Equal(t, "past2", past[1].ID)
}

func TestEventGetNotFound(t *testing.T) {
	svc := NewEventService(&stubEventStore{}, nil)

	_, err := svc.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, "Event not found", err.Error())
}

func TestEventSavePassesThrough(t *testing.T) {
	st := &stubEventStore{}
	svc := NewEventService(st, nil)

	event := &models.Event{Title: "Fun Fair", Date: "2026-06-12"}
	saved, err := svc.Save(context.Background(), event)
	require.NoError(t, err)
	assert.Same(t, event, saved)
	assert.Same(t, event, st.saved)
}

func TestEventDelete(t *testing.T) {
	st := &stubEventStore{}
	svc := NewEventService(st, nil)

	require.NoError(t, svc.Delete(context.Background(), "1"))
	assert.Equal(t, "1", st.deleted)
}
