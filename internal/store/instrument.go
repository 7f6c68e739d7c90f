package store

import (
	"context"
	"time"

	"github.com/kanaka-pac/pac-api/internal/models"
)

// OperationObserver receives the latency of each store call.
type OperationObserver interface {
	ObserveStoreOperation(kind, op string, duration time.Duration)
}

// Instrument wraps a Store so every operation reports its latency. A nil
// observer returns the store unwrapped.
func Instrument(s Store, obs OperationObserver) Store {
	if obs == nil {
		return s
	}
	return &instrumentedStore{inner: s, obs: obs}
}

type instrumentedStore struct {
	inner Store
	obs   OperationObserver
}

func (s *instrumentedStore) Events() EventStore {
	return &instrumentedEvents{inner: s.inner.Events(), obs: s.obs}
}

func (s *instrumentedStore) Minutes() MinutesStore {
	return &instrumentedMinutes{inner: s.inner.Minutes(), obs: s.obs}
}

func (s *instrumentedStore) Announcements() AnnouncementStore {
	return &instrumentedAnnouncements{inner: s.inner.Announcements(), obs: s.obs}
}

func (s *instrumentedStore) Policies() PolicyStore {
	return &instrumentedPolicies{inner: s.inner.Policies(), obs: s.obs}
}

func (s *instrumentedStore) Team() TeamStore {
	return &instrumentedTeam{inner: s.inner.Team(), obs: s.obs}
}

func (s *instrumentedStore) Subscribers() SubscriberStore {
	return &instrumentedSubscribers{inner: s.inner.Subscribers(), obs: s.obs}
}

func (s *instrumentedStore) Settings() SettingsStore {
	return &instrumentedSettings{inner: s.inner.Settings(), obs: s.obs}
}

func (s *instrumentedStore) Close() error {
	return s.inner.Close()
}

func observe(obs OperationObserver, kind, op string, start time.Time) {
	obs.ObserveStoreOperation(kind, op, time.Since(start))
}

type instrumentedEvents struct {
	inner EventStore
	obs   OperationObserver
}

func (e *instrumentedEvents) List(ctx context.Context) ([]models.Event, error) {
	defer observe(e.obs, "events", "list", time.Now())
	return e.inner.List(ctx)
}

func (e *instrumentedEvents) GetByID(ctx context.Context, id string) (*models.Event, error) {
	defer observe(e.obs, "events", "get", time.Now())
	return e.inner.GetByID(ctx, id)
}

func (e *instrumentedEvents) Upsert(ctx context.Context, event *models.Event) error {
	defer observe(e.obs, "events", "upsert", time.Now())
	return e.inner.Upsert(ctx, event)
}

func (e *instrumentedEvents) Delete(ctx context.Context, id string) error {
	defer observe(e.obs, "events", "delete", time.Now())
	return e.inner.Delete(ctx, id)
}

type instrumentedMinutes struct {
	inner MinutesStore
	obs   OperationObserver
}

func (m *instrumentedMinutes) List(ctx context.Context) ([]models.Minutes, error) {
	defer observe(m.obs, "minutes", "list", time.Now())
	return m.inner.List(ctx)
}

func (m *instrumentedMinutes) GetByID(ctx context.Context, id string) (*models.Minutes, error) {
	defer observe(m.obs, "minutes", "get", time.Now())
	return m.inner.GetByID(ctx, id)
}

func (m *instrumentedMinutes) Upsert(ctx context.Context, minutes *models.Minutes) error {
	defer observe(m.obs, "minutes", "upsert", time.Now())
	return m.inner.Upsert(ctx, minutes)
}

func (m *instrumentedMinutes) Delete(ctx context.Context, id string) error {
	defer observe(m.obs, "minutes", "delete", time.Now())
	return m.inner.Delete(ctx, id)
}

type instrumentedAnnouncements struct {
	inner AnnouncementStore
	obs   OperationObserver
}

func (a *instrumentedAnnouncements) List(ctx context.Context) ([]models.Announcement, error) {
	defer observe(a.obs, "announcements", "list", time.Now())
	return a.inner.List(ctx)
}

func (a *instrumentedAnnouncements) GetByID(ctx context.Context, id string) (*models.Announcement, error) {
	defer observe(a.obs, "announcements", "get", time.Now())
	return a.inner.GetByID(ctx, id)
}

func (a *instrumentedAnnouncements) Upsert(ctx context.Context, announcement *models.Announcement) error {
	defer observe(a.obs, "announcements", "upsert", time.Now())
	return a.inner.Upsert(ctx, announcement)
}

func (a *instrumentedAnnouncements) Delete(ctx context.Context, id string) error {
	defer observe(a.obs, "announcements", "delete", time.Now())
	return a.inner.Delete(ctx, id)
}

type instrumentedPolicies struct {
	inner PolicyStore
	obs   OperationObserver
}

func (p *instrumentedPolicies) List(ctx context.Context) ([]models.Policy, error) {
	defer observe(p.obs, "policies", "list", time.Now())
	return p.inner.List(ctx)
}

func (p *instrumentedPolicies) GetByID(ctx context.Context, id string) (*models.Policy, error) {
	defer observe(p.obs, "policies", "get", time.Now())
	return p.inner.GetByID(ctx, id)
}

func (p *instrumentedPolicies) Upsert(ctx context.Context, policy *models.Policy) error {
	defer observe(p.obs, "policies", "upsert", time.Now())
	return p.inner.Upsert(ctx, policy)
}

func (p *instrumentedPolicies) Delete(ctx context.Context, id string) error {
	defer observe(p.obs, "policies", "delete", time.Now())
	return p.inner.Delete(ctx, id)
}

type instrumentedTeam struct {
	inner TeamStore
	obs   OperationObserver
}

func (t *instrumentedTeam) List(ctx context.Context) ([]models.TeamMember, error) {
	defer observe(t.obs, "team", "list", time.Now())
	return t.inner.List(ctx)
}

func (t *instrumentedTeam) GetByID(ctx context.Context, id string) (*models.TeamMember, error) {
	defer observe(t.obs, "team", "get", time.Now())
	return t.inner.GetByID(ctx, id)
}

func (t *instrumentedTeam) Upsert(ctx context.Context, member *models.TeamMember) error {
	defer observe(t.obs, "team", "upsert", time.Now())
	return t.inner.Upsert(ctx, member)
}

func (t *instrumentedTeam) Delete(ctx context.Context, id string) error {
	defer observe(t.obs, "team", "delete", time.Now())
	return t.inner.Delete(ctx, id)
}

func (t *instrumentedTeam) Reorder(ctx context.Context, firstID, secondID string) error {
	defer observe(t.obs, "team", "reorder", time.Now())
	return t.inner.Reorder(ctx, firstID, secondID)
}

type instrumentedSubscribers struct {
	inner SubscriberStore
	obs   OperationObserver
}

func (s *instrumentedSubscribers) List(ctx context.Context) ([]models.Subscriber, error) {
	defer observe(s.obs, "subscribers", "list", time.Now())
	return s.inner.List(ctx)
}

func (s *instrumentedSubscribers) Upsert(ctx context.Context, subscriber *models.Subscriber) error {
	defer observe(s.obs, "subscribers", "upsert", time.Now())
	return s.inner.Upsert(ctx, subscriber)
}

func (s *instrumentedSubscribers) DeleteByEmail(ctx context.Context, email string) error {
	defer observe(s.obs, "subscribers", "delete", time.Now())
	return s.inner.DeleteByEmail(ctx, email)
}

type instrumentedSettings struct {
	inner SettingsStore
	obs   OperationObserver
}

func (s *instrumentedSettings) Get(ctx context.Context) (*models.Settings, error) {
	defer observe(s.obs, "settings", "get", time.Now())
	return s.inner.Get(ctx)
}

func (s *instrumentedSettings) Save(ctx context.Context, settings *models.Settings) error {
	defer observe(s.obs, "settings", "save", time.Now())
	return s.inner.Save(ctx, settings)
}
