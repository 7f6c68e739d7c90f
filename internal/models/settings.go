package models

// SettingsID is the fixed key of the single settings row.
const SettingsID = "1"

// Settings is the singleton site configuration record.
type Settings struct {
	ID          string `db:"id" json:"-"`
	SchoolName  string `db:"school_name" json:"schoolName"`
	PACName     string `db:"pac_name" json:"pacName"`
	Address     string `db:"address" json:"address"`
	City        string `db:"city" json:"city"`
	Email       string `db:"email" json:"email"`
	LogoURL     string `db:"logo_url" json:"logoUrl,omitempty"`
	MeetingTime string `db:"meeting_time" json:"meetingTime,omitempty"`
}

// DefaultSettings is returned when no settings record has been saved yet.
func DefaultSettings() Settings {
	return Settings{
		ID:          SettingsID,
		SchoolName:  "Kanaka Elementary School",
		PACName:     "Kanaka PAC",
		Address:     "Kanaka Elementary School",
		City:        "Maple Ridge, BC",
		Email:       "pac@kanakaelementary.ca",
		MeetingTime: "First Wednesday of each month, 7:00 PM",
	}
}
