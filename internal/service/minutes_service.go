package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/kanaka-pac/pac-api/internal/models"
	"github.com/kanaka-pac/pac-api/internal/store"
	appErrors "github.com/kanaka-pac/pac-api/pkg/errors"
)

// MinutesService handles meeting-minutes listings and admin CRUD.
type MinutesService struct {
	store  store.MinutesStore
	logger *zap.Logger
}

// NewMinutesService constructs the service.
func NewMinutesService(st store.MinutesStore, logger *zap.Logger) *MinutesService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MinutesService{store: st, logger: logger}
}

// List returns minutes sorted by meeting date, newest first.
func (s *MinutesService) List(ctx context.Context) ([]models.Minutes, error) {
	minutes, err := s.store.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list minutes")
	}
	return minutes, nil
}

// Get returns one set of minutes by id.
func (s *MinutesService) Get(ctx context.Context, id string) (*models.Minutes, error) {
	minutes, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Minutes not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to get minutes")
	}
	return minutes, nil
}

// Save upserts a minutes record.
func (s *MinutesService) Save(ctx context.Context, minutes *models.Minutes) (*models.Minutes, error) {
	if err := s.store.Upsert(ctx, minutes); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save minutes")
	}
	return minutes, nil
}

// Delete removes a minutes record by id.
func (s *MinutesService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete minutes")
	}
	return nil
}
