package jsonfile

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/kanaka-pac/pac-api/internal/models"
	"github.com/kanaka-pac/pac-api/internal/store"
)

const announcementsFile = "announcements.json"

type announcementStore struct {
	s *Store
}

func (a *announcementStore) List(ctx context.Context) ([]models.Announcement, error) {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	announcements := readCollection[models.Announcement](a.s, announcementsFile)
	sort.SliceStable(announcements, func(i, j int) bool {
		return announcements[i].PublishedAt.After(announcements[j].PublishedAt)
	})
	return announcements, nil
}

func (a *announcementStore) GetByID(ctx context.Context, id string) (*models.Announcement, error) {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	for _, item := range readCollection[models.Announcement](a.s, announcementsFile) {
		if item.ID == id {
			found := item
			return &found, nil
		}
	}
	return nil, store.ErrNotFound
}

func (a *announcementStore) Upsert(ctx context.Context, announcement *models.Announcement) error {
	if announcement.ID == "" {
		announcement.ID = uuid.NewString()
	}
	if announcement.PublishedAt.IsZero() {
		announcement.PublishedAt = time.Now().UTC()
	}

	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	all := readCollection[models.Announcement](a.s, announcementsFile)
	replaced := false
	for i := range all {
		if all[i].ID == announcement.ID {
			all[i] = *announcement
			replaced = true
			break
		}
	}
	if !replaced {
		all = append(all, *announcement)
	}
	return writeCollection(a.s, announcementsFile, all)
}

func (a *announcementStore) Delete(ctx context.Context, id string) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	all := readCollection[models.Announcement](a.s, announcementsFile)
	kept := all[:0]
	for _, item := range all {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	return writeCollection(a.s, announcementsFile, kept)
}
