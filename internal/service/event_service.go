package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/kanaka-pac/pac-api/internal/models"
	"github.com/kanaka-pac/pac-api/internal/store"
	appErrors "github.com/kanaka-pac/pac-api/pkg/errors"
)

// EventService handles event listings and admin CRUD.
type EventService struct {
	store  store.EventStore
	logger *zap.Logger
}

// NewEventService constructs the service.
func NewEventService(st store.EventStore, logger *zap.Logger) *EventService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventService{store: st, logger: logger}
}

// List returns events ascending by date, optionally narrowed to upcoming or
// past ones relative to today. Past events come back most recent first.
func (s *EventService) List(ctx context.Context, filter models.EventFilter) ([]models.Event, error) {
	events, err := s.store.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list events")
	}

	today := time.Now().Format("2006-01-02")
	switch filter {
	case models.EventFilterUpcoming:
		filtered := []models.Event{}
		for _, event := range events {
			if event.Date >= today {
				filtered = append(filtered, event)
			}
		}
		return filtered, nil
	case models.EventFilterPast:
		filtered := []models.Event{}
		for i := len(events) - 1; i >= 0; i-- {
			if events[i].Date < today {
				filtered = append(filtered, events[i])
			}
		}
		return filtered, nil
	default:
		return events, nil
	}
}

// Get returns one event by id.
func (s *EventService) Get(ctx context.Context, id string) (*models.Event, error) {
	event, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Event not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to get event")
	}
	return event, nil
}

// Save upserts an event. A missing id means create; the store assigns the
// id and creation timestamp.
func (s *EventService) Save(ctx context.Context, event *models.Event) (*models.Event, error) {
	if err := s.store.Upsert(ctx, event); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save event")
	}
	return event, nil
}

// Delete removes an event by id; deleting an absent id is a no-op.
func (s *EventService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete event")
	}
	return nil
}
