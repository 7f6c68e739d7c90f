package jsonfile

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/kanaka-pac/pac-api/internal/models"
	"github.com/kanaka-pac/pac-api/internal/store"
)

const minutesFile = "minutes.json"

type minutesStore struct {
	s *Store
}

func (m *minutesStore) List(ctx context.Context) ([]models.Minutes, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	minutes := readCollection[models.Minutes](m.s, minutesFile)
	sort.SliceStable(minutes, func(i, j int) bool {
		return minutes[i].Date > minutes[j].Date
	})
	return minutes, nil
}

func (m *minutesStore) GetByID(ctx context.Context, id string) (*models.Minutes, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	for _, item := range readCollection[models.Minutes](m.s, minutesFile) {
		if item.ID == id {
			found := item
			return &found, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *minutesStore) Upsert(ctx context.Context, minutes *models.Minutes) error {
	if minutes.ID == "" {
		minutes.ID = uuid.NewString()
	}
	if minutes.CreatedAt.IsZero() {
		minutes.CreatedAt = time.Now().UTC()
	}

	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	all := readCollection[models.Minutes](m.s, minutesFile)
	replaced := false
	for i := range all {
		if all[i].ID == minutes.ID {
			all[i] = *minutes
			replaced = true
			break
		}
	}
	if !replaced {
		all = append(all, *minutes)
	}
	return writeCollection(m.s, minutesFile, all)
}

func (m *minutesStore) Delete(ctx context.Context, id string) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	all := readCollection[models.Minutes](m.s, minutesFile)
	kept := all[:0]
	for _, item := range all {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	return writeCollection(m.s, minutesFile, kept)
}
