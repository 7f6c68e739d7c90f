package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kanaka-pac/pac-api/internal/models"
	"github.com/kanaka-pac/pac-api/internal/store"
)

func newMock(t *testing.T) (*Store, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	sqlxdb := sqlx.NewDb(db, "sqlmock")
	return New(sqlxdb, nil), mock, func() {
		db.Close()
	}
}

func TestEventList(t *testing.T) {
	s, mock, cleanup := newMock(t)
	defer cleanup()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "title", "date", "time", "location", "description", "created_at"}).
		AddRow("1", "Fun Fair", "2026-06-12", "17:00", "Gym", "", now)
	mock.ExpectQuery("SELECT id, title, date, time, location, description, created_at").
		WillReturnRows(rows)

	events, err := s.Events().List(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Fun Fair", events[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventListFailureReadsAsEmpty(t *testing.T) {
	s, mock, cleanup := newMock(t)
	defer cleanup()

	mock.ExpectQuery("SELECT id, title, date, time, location, description, created_at").
		WillReturnError(assert.AnError)

	events, err := s.Events().List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, events)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventGetByIDMissing(t *testing.T) {
	s, mock, cleanup := newMock(t)
	defer cleanup()

	mock.ExpectQuery("SELECT id, title, date, time, location, description, created_at").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := s.Events().GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventUpsertAssignsID(t *testing.T) {
	s, mock, cleanup := newMock(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO events").WillReturnResult(sqlmock.NewResult(0, 1))

	event := &models.Event{Title: "Movie Night", Date: "2026-04-10"}
	require.NoError(t, s.Events().Upsert(context.Background(), event))
	assert.NotEmpty(t, event.ID)
	assert.False(t, event.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventDelete(t *testing.T) {
	s, mock, cleanup := newMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM events WHERE id = $1")).
		WithArgs("1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Events().Delete(context.Background(), "1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscriberUpsertNormalizesEmail(t *testing.T) {
	s, mock, cleanup := newMock(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO subscribers").WillReturnResult(sqlmock.NewResult(0, 1))

	subscriber := &models.Subscriber{Email: "  Parent@Example.COM "}
	require.NoError(t, s.Subscribers().Upsert(context.Background(), subscriber))
	assert.Equal(t, "parent@example.com", subscriber.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsGetDefaultsWhenMissing(t *testing.T) {
	s, mock, cleanup := newMock(t)
	defer cleanup()

	mock.ExpectQuery("SELECT id, school_name, pac_name").
		WithArgs(models.SettingsID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	settings, err := s.Settings().Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Kanaka Elementary School", settings.SchoolName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsSave(t *testing.T) {
	s, mock, cleanup := newMock(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO settings").WillReturnResult(sqlmock.NewResult(0, 1))

	settings := &models.Settings{SchoolName: "Blue Mountain Elementary"}
	require.NoError(t, s.Settings().Save(context.Background(), settings))
	assert.Equal(t, models.SettingsID, settings.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamReorderSwapsInTransaction(t *testing.T) {
	s, mock, cleanup := newMock(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT sort_order FROM team_members").
		WithArgs("a").
		WillReturnRows(sqlmock.NewRows([]string{"sort_order"}).AddRow(1))
	mock.ExpectQuery("SELECT sort_order FROM team_members").
		WithArgs("b").
		WillReturnRows(sqlmock.NewRows([]string{"sort_order"}).AddRow(2))
	mock.ExpectExec("UPDATE team_members SET sort_order").
		WithArgs(2, "a").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE team_members SET sort_order").
		WithArgs(1, "b").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, s.Team().Reorder(context.Background(), "a", "b"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamReorderUnknownMemberRollsBack(t *testing.T) {
	s, mock, cleanup := newMock(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT sort_order FROM team_members").
		WithArgs("a").
		WillReturnRows(sqlmock.NewRows([]string{"sort_order"}))
	mock.ExpectRollback()

	err := s.Team().Reorder(context.Background(), "a", "b")
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchemaSkipsWhenPresent(t *testing.T) {
	s, mock, cleanup := newMock(t)
	defer cleanup()

	mock.ExpectQuery("SELECT tablename FROM pg_catalog.pg_tables").
		WillReturnRows(sqlmock.NewRows([]string{"tablename"}).AddRow("events"))

	require.NoError(t, s.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
