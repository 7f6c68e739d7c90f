package models

import "time"

// Minutes represents one meeting's minutes, either inline text, an uploaded
// document, or both. The storage layer does not enforce that at least one of
// Content/FileURL is present; the admin forms do.
type Minutes struct {
	ID        string    `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Date      string    `db:"date" json:"date"`
	Content   *string   `db:"content" json:"content,omitempty"`
	FileURL   *string   `db:"file_url" json:"fileUrl,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
