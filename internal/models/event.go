package models

import "time"

// Event represents a PAC event such as a fundraiser or fun fair.
// Date is a YYYY-MM-DD string and Time a local clock string ("18:30"),
// matching what the site forms submit; the date format sorts lexically.
type Event struct {
	ID          string    `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Date        string    `db:"date" json:"date"`
	Time        string    `db:"time" json:"time"`
	Location    string    `db:"location" json:"location"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// EventFilter narrows event listings.
type EventFilter string

const (
	EventFilterAll      EventFilter = ""
	EventFilterUpcoming EventFilter = "upcoming"
	EventFilterPast     EventFilter = "past"
)
