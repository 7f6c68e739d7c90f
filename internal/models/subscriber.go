package models

import "time"

// Subscriber is a newsletter signup. Email is unique per subscriber.
type Subscriber struct {
	ID           string    `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	SubscribedAt time.Time `db:"subscribed_at" json:"subscribedAt"`
}
