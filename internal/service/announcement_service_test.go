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

type stubAnnouncementStore struct {
	announcements []models.Announcement
	saved         *models.Announcement
}

func (s *stubAnnouncementStore) List(ctx context.Context) ([]models.Announcement, error) {
	return s.announcements, nil
}

func (s *stubAnnouncementStore) GetByID(ctx context.Context, id string) (*models.Announcement, error) {
	for _, announcement := range s.announcements {
		if announcement.ID == id {
			found := announcement
			return &found, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *stubAnnouncementStore) Upsert(ctx context.Context, announcement *models.Announcement) error {
	s.saved = announcement
	return nil
}

func (s *stubAnnouncementStore) Delete(ctx context.Context, id string) error {
	return nil
}

func TestAnnouncementListActiveOnly(t *testing.T) {
	expired := time.Now().Add(-time.Hour)
	future := time.Now().Add(24 * time.Hour)
	st := &stubAnnouncementStore{announcements: []models.Announcement{
		{ID: "evergreen", ExpiresAt: nil},
		{ID: "expired", ExpiresAt: &expired},
		{ID: "current", ExpiresAt: &future},
	}}
	svc := NewAnnouncementService(st, nil)
	ctx := context.Background()

	all, err := svc.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	active, err := svc.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "evergreen", active[0].ID)
	assert.Equal(t, "current", active[1].ID)
}

func TestAnnouncementSaveDefaultsPriority(t *testing.T) {
	st := &stubAnnouncementStore{}
	svc := NewAnnouncementService(st, nil)

	saved, err := svc.Save(context.Background(), &models.Announcement{Title: "Hot lunch"})
	require.NoError(t, err)
	assert.Equal(t, models.AnnouncementPriorityNormal, saved.Priority)

	urgent, err := svc.Save(context.Background(), &models.Announcement{
		Title: "School closed", Priority: models.AnnouncementPriorityUrgent,
	})
	require.NoError(t, err)
	assert.Equal(t, models.AnnouncementPriorityUrgent, urgent.Priority)
}
