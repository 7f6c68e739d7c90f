package jsonfile

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kanaka-pac/pac-api/internal/models"
)

const subscribersFile = "subscribers.json"

type subscriberStore struct {
	s *Store
}

func (sub *subscriberStore) List(ctx context.Context) ([]models.Subscriber, error) {
	sub.s.mu.Lock()
	defer sub.s.mu.Unlock()

	subscribers := readCollection[models.Subscriber](sub.s, subscribersFile)
	sort.SliceStable(subscribers, func(i, j int) bool {
		return subscribers[i].SubscribedAt.After(subscribers[j].SubscribedAt)
	})
	return subscribers, nil
}

// Upsert keys on email: an address that is already subscribed keeps its
// original record untouched.
func (sub *subscriberStore) Upsert(ctx context.Context, subscriber *models.Subscriber) error {
	if subscriber.ID == "" {
		subscriber.ID = uuid.NewString()
	}
	if subscriber.SubscribedAt.IsZero() {
		subscriber.SubscribedAt = time.Now().UTC()
	}

	sub.s.mu.Lock()
	defer sub.s.mu.Unlock()

	subscribers := readCollection[models.Subscriber](sub.s, subscribersFile)
	for _, existing := range subscribers {
		if strings.EqualFold(existing.Email, subscriber.Email) {
			*subscriber = existing
			return nil
		}
	}
	subscribers = append(subscribers, *subscriber)
	return writeCollection(sub.s, subscribersFile, subscribers)
}

func (sub *subscriberStore) DeleteByEmail(ctx context.Context, email string) error {
	sub.s.mu.Lock()
	defer sub.s.mu.Unlock()

	subscribers := readCollection[models.Subscriber](sub.s, subscribersFile)
	kept := subscribers[:0]
	for _, subscriber := range subscribers {
		if !strings.EqualFold(subscriber.Email, email) {
			kept = append(kept, subscriber)
		}
	}
	return writeCollection(sub.s, subscribersFile, kept)
}
