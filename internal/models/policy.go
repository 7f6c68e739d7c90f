package models

import "time"

// Policy is a downloadable PAC policy document. FileURL is required.
type Policy struct {
	ID          string    `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	FileURL     string    `db:"file_url" json:"fileUrl"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}
