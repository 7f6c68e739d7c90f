package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kanaka-pac/pac-api/internal/models"
)

type settingsStore struct {
	s *Store
}

func (st *settingsStore) Get(ctx context.Context) (*models.Settings, error) {
	const query = `SELECT id, school_name, pac_name, address, city, email, logo_url, meeting_time
FROM settings WHERE id = $1`
	var settings models.Settings
	if err := st.s.db.GetContext(ctx, &settings, query, models.SettingsID); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			st.s.listWarn("settings", err)
		}
		defaults := models.DefaultSettings()
		return &defaults, nil
	}
	fillSettingsDefaults(&settings)
	return &settings, nil
}

func (st *settingsStore) Save(ctx context.Context, settings *models.Settings) error {
	settings.ID = models.SettingsID
	const query = `INSERT INTO settings (id, school_name, pac_name, address, city, email, logo_url, meeting_time)
VALUES (:id, :school_name, :pac_name, :address, :city, :email, :logo_url, :meeting_time)
ON CONFLICT (id) DO UPDATE SET
	school_name = EXCLUDED.school_name, pac_name = EXCLUDED.pac_name,
	address = EXCLUDED.address, city = EXCLUDED.city, email = EXCLUDED.email,
	logo_url = EXCLUDED.logo_url, meeting_time = EXCLUDED.meeting_time`
	if _, err := st.s.db.NamedExecContext(ctx, query, settings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

func fillSettingsDefaults(settings *models.Settings) {
	defaults := models.DefaultSettings()
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
