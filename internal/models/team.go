package models

// TeamMember is an executive listed on the team page. SortOrder drives the
// display sequence and is not required to be unique.
type TeamMember struct {
	ID        string `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	Role      string `db:"role" json:"role"`
	Bio       string `db:"bio" json:"bio"`
	Email     string `db:"email" json:"email,omitempty"`
	SortOrder int    `db:"sort_order" json:"order"`
}
