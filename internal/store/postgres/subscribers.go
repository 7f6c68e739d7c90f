package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kanaka-pac/pac-api/internal/models"
)

type subscriberStore struct {
	s *Store
}

func (sub *subscriberStore) List(ctx context.Context) ([]models.Subscriber, error) {
	const query = `SELECT id, email, subscribed_at
FROM subscribers ORDER BY subscribed_at DESC`
	subscribers := []models.Subscriber{}
	if err := sub.s.db.SelectContext(ctx, &subscribers, query); err != nil {
		sub.s.listWarn("subscribers", err)
		return []models.Subscriber{}, nil
	}
	return subscribers, nil
}

// Upsert inserts a subscriber; the unique email constraint makes repeat
// subscriptions a no-op.
func (sub *subscriberStore) Upsert(ctx context.Context, subscriber *models.Subscriber) error {
	if subscriber.ID == "" {
		subscriber.ID = uuid.NewString()
	}
	if subscriber.SubscribedAt.IsZero() {
		subscriber.SubscribedAt = time.Now().UTC()
	}
	subscriber.Email = strings.ToLower(strings.TrimSpace(subscriber.Email))

	const query = `INSERT INTO subscribers (id, email, subscribed_at)
VALUES (:id, :email, :subscribed_at)
ON CONFLICT (email) DO NOTHING`
	if _, err := sub.s.db.NamedExecContext(ctx, query, subscriber); err != nil {
		return fmt.Errorf("upsert subscriber: %w", err)
	}
	return nil
}

func (sub *subscriberStore) DeleteByEmail(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := sub.s.db.ExecContext(ctx, "DELETE FROM subscribers WHERE email = $1", email); err != nil {
		return fmt.Errorf("delete subscriber: %w", err)
	}
	return nil
}
