package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kanaka-pac/pac-api/internal/models"
	"github.com/kanaka-pac/pac-api/internal/store"
)

func newTestStore(t *testing.T) *Store {
	s, err := New(t.TempDir(), nil)
	require.NoError(t, err)
	return s
}

func TestEventRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	event := &models.Event{Title: "Fun Fair", Date: "2026-06-12", Time: "17:00", Location: "Gym"}
	require.NoError(t, s.Events().Upsert(ctx, event))
	assert.NotEmpty(t, event.ID)
	assert.False(t, event.CreatedAt.IsZero())

	got, err := s.Events().GetByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fun Fair", got.Title)

	event.Location = "Field"
	require.NoError(t, s.Events().Upsert(ctx, event))

	events, err := s.Events().List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Field", events[0].Location)
}

func TestEventListSortsByDate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, date := range []string{"2026-09-20", "2026-03-01", "2026-06-15"} {
		require.NoError(t, s.Events().Upsert(ctx, &models.Event{Title: date, Date: date}))
	}

	events, err := s.Events().List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "2026-03-01", events[0].Date)
	assert.Equal(t, "2026-09-20", events[2].Date)
}

func TestGetByIDMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Events().GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	event := &models.Event{Title: "Movie Night", Date: "2026-04-10"}
	require.NoError(t, s.Events().Upsert(ctx, event))
	require.NoError(t, s.Events().Delete(ctx, event.ID))
	require.NoError(t, s.Events().Delete(ctx, event.ID))

	events, err := s.Events().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestCorruptFileReadsAsEmpty(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir, nil)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, eventsFile), []byte("{not json"), 0o644))

	events, err := s.Events().List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestSubscriberUpsertDedupesByEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := &models.Subscriber{Email: "parent@example.com"}
	require.NoError(t, s.Subscribers().Upsert(ctx, first))

	second := &models.Subscriber{Email: "Parent@Example.com"}
	require.NoError(t, s.Subscribers().Upsert(ctx, second))
	assert.Equal(t, first.ID, second.ID)

	subscribers, err := s.Subscribers().List(ctx)
	require.NoError(t, err)
	assert.Len(t, subscribers, 1)
}

func TestSubscriberDeleteByEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Subscribers().Upsert(ctx, &models.Subscriber{Email: "parent@example.com"}))
	require.NoError(t, s.Subscribers().DeleteByEmail(ctx, "PARENT@example.com"))

	subscribers, err := s.Subscribers().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, subscribers)
}

func TestSubscriberListNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	older := &models.Subscriber{Email: "older@example.com", SubscribedAt: time.Now().Add(-time.Hour)}
	newer := &models.Subscriber{Email: "newer@example.com", SubscribedAt: time.Now()}
	require.NoError(t, s.Subscribers().Upsert(ctx, older))
	require.NoError(t, s.Subscribers().Upsert(ctx, newer))

	subscribers, err := s.Subscribers().List(ctx)
	require.NoError(t, err)
	require.Len(t, subscribers, 2)
	assert.Equal(t, "newer@example.com", subscribers[0].Email)
}

func TestSettingsDefaultsWhenUnset(t *testing.T) {
	s := newTestStore(t)

	settings, err := s.Settings().Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Kanaka Elementary School", settings.SchoolName)
	assert.Equal(t, "Kanaka PAC", settings.PACName)
}

func TestSettingsSaveAndBackfill(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Settings().Save(ctx, &models.Settings{SchoolName: "Blue Mountain Elementary"}))

	settings, err := s.Settings().Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Blue Mountain Elementary", settings.SchoolName)
	// unset fields come back filled from the defaults
	assert.Equal(t, "Kanaka PAC", settings.PACName)
	assert.Equal(t, models.SettingsID, settings.ID)
}

func TestTeamListSortsByOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Team().Upsert(ctx, &models.TeamMember{Name: "Chair", SortOrder: 2}))
	require.NoError(t, s.Team().Upsert(ctx, &models.TeamMember{Name: "Treasurer", SortOrder: 1}))

	members, err := s.Team().List(ctx)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "Treasurer", members[0].Name)
}

func TestTeamReorderSwapsPositions(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := &models.TeamMember{Name: "Chair", SortOrder: 1}
	second := &models.TeamMember{Name: "Secretary", SortOrder: 2}
	require.NoError(t, s.Team().Upsert(ctx, first))
	require.NoError(t, s.Team().Upsert(ctx, second))

	require.NoError(t, s.Team().Reorder(ctx, first.ID, second.ID))

	members, err := s.Team().List(ctx)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "Secretary", members[0].Name)
	assert.Equal(t, 1, members[0].SortOrder)
}

func TestTeamReorderUnknownMember(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	member := &models.TeamMember{Name: "Chair", SortOrder: 1}
	require.NoError(t, s.Team().Upsert(ctx, member))

	err := s.Team().Reorder(ctx, member.ID, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestAnnouncementListNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	older := &models.Announcement{Title: "Old", PublishedAt: time.Now().Add(-48 * time.Hour)}
	newer := &models.Announcement{Title: "New", PublishedAt: time.Now()}
	require.NoError(t, s.Announcements().Upsert(ctx, older))
	require.NoError(t, s.Announcements().Upsert(ctx, newer))

	announcements, err := s.Announcements().List(ctx)
	require.NoError(t, err)
	require.Len(t, announcements, 2)
	assert.Equal(t, "New", announcements[0].Title)
}
