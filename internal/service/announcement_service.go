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

// AnnouncementService handles announcement listings and admin CRUD.
type AnnouncementService struct {
	store  store.AnnouncementStore
	logger *zap.Logger
}

// NewAnnouncementService constructs the service.
func NewAnnouncementService(st store.AnnouncementStore, logger *zap.Logger) *AnnouncementService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnnouncementService{store: st, logger: logger}
}

// List returns announcements newest first. When activeOnly is set, expired
// ones are dropped; a nil expiry never expires.
func (s *AnnouncementService) List(ctx context.Context, activeOnly bool) ([]models.Announcement, error) {
	announcements, err := s.store.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list announcements")
	}
	if !activeOnly {
		return announcements, nil
	}

	now := time.Now()
	active := []models.Announcement{}
	for _, announcement := range announcements {
		if announcement.ExpiresAt == nil || announcement.ExpiresAt.After(now) {
			active = append(active, announcement)
		}
	}
	return active, nil
}

// Get returns one announcement by id.
func (s *AnnouncementService) Get(ctx context.Context, id string) (*models.Announcement, error) {
	announcement, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Announcement not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to get announcement")
	}
	return announcement, nil
}

// Save upserts an announcement, defaulting the priority to normal.
func (s *AnnouncementService) Save(ctx context.Context, announcement *models.Announcement) (*models.Announcement, error) {
	if announcement.Priority == "" {
		announcement.Priority = models.AnnouncementPriorityNormal
	}
	if err := s.store.Upsert(ctx, announcement); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save announcement")
	}
	return announcement, nil
}

// Delete removes an announcement by id.
func (s *AnnouncementService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete announcement")
	}
	return nil
}
