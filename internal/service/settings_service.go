package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/kanaka-pac/pac-api/internal/models"
	"github.com/kanaka-pac/pac-api/internal/store"
	appErrors "github.com/kanaka-pac/pac-api/pkg/errors"
)

// SettingsService handles the singleton site settings.
type SettingsService struct {
	store  store.SettingsStore
	logger *zap.Logger
}

// NewSettingsService constructs the service.
func NewSettingsService(st store.SettingsStore, logger *zap.Logger) *SettingsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SettingsService{store: st, logger: logger}
}

// Get returns the current settings, falling back to defaults when nothing
// has been saved yet.
func (s *SettingsService) Get(ctx context.Context) (*models.Settings, error) {
	settings, err := s.store.Get(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load settings")
	}
	return settings, nil
}

// Save upserts the singleton settings record.
func (s *SettingsService) Save(ctx context.Context, settings *models.Settings) error {
	if err := s.store.Save(ctx, settings); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save settings")
	}
	return nil
}
