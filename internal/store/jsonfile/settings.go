package jsonfile

import (
	"context"

	"github.com/kanaka-pac/pac-api/internal/models"
)

// settings.json holds a one-element array so every data file shares the
// same document shape.
const settingsFile = "settings.json"

type settingsStore struct {
	s *Store
}

func (st *settingsStore) Get(ctx context.Context) (*models.Settings, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()

	all := readCollection[models.Settings](st.s, settingsFile)
	if len(all) == 0 {
		defaults := models.DefaultSettings()
		return &defaults, nil
	}
	settings := all[0]
	fillDefaults(&settings)
	return &settings, nil
}

func (st *settingsStore) Save(ctx context.Context, settings *models.Settings) error {
	settings.ID = models.SettingsID

	st.s.mu.Lock()
	defer st.s.mu.Unlock()

	return writeCollection(st.s, settingsFile, []models.Settings{*settings})
}

// fillDefaults backfills fields an older settings document may lack.
func fillDefaults(settings *models.Settings) {
	defaults := models.DefaultSettings()
	settings.ID = models.SettingsID
	if settings.SchoolName == "" {
		settings.SchoolName = defaults.SchoolName
	}
	if settings.PACName == "" {
		settings.PACName = defaults.PACName
	}
	if settings.Address == "" {
		settings.Address = defaults.Address
	}
	if settings.City == "" {
		settings.City = defaults.City
	}
	if settings.Email == "" {
		settings.Email = defaults.Email
	}
	if settings.MeetingTime == "" {
		settings.MeetingTime = defaults.MeetingTime
	}
}
