// Package postgres implements store.Store on PostgreSQL via sqlx, one table
// per entity kind plus a single-row settings table.
package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/kanaka-pac/pac-api/internal/store"
)

//go:embed schema.sql
var schemaSQL string

// Store is the relational backing store.
type Store struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// New wraps an existing connection pool.
func New(db *sqlx.DB, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{db: db, logger: logger}
}

// EnsureSchema applies schema.sql when the events table is absent. The
// events table stands in for the whole schema, mirroring how the site has
// always bootstrapped fresh databases.
func (s *Store) EnsureSchema(ctx context.Context) error {
	var name string
	err := s.db.GetContext(ctx, &name,
		`SELECT tablename FROM pg_catalog.pg_tables WHERE schemaname = 'public' AND tablename = 'events'`)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("check schema: %w", err)
	}

	s.logger.Info("initializing database schema")
	if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

func (s *Store) Events() store.EventStore               { return &eventStore{s} }
func (s *Store) Minutes() store.MinutesStore            { return &minutesStore{s} }
func (s *Store) Announcements() store.AnnouncementStore { return &announcementStore{s} }
func (s *Store) Policies() store.PolicyStore            { return &policyStore{s} }
func (s *Store) Team() store.TeamStore                  { return &teamStore{s} }
func (s *Store) Subscribers() store.SubscriberStore     { return &subscriberStore{s} }
func (s *Store) Settings() store.SettingsStore          { return &settingsStore{s} }

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// listWarn applies the site's read-failure contract: a failed read surfaces
// as an empty collection with a logged warning, never as an error.
func (s *Store) listWarn(what string, err error) {
	if err != nil {
		s.logger.Warn("list "+what, zap.Error(err))
	}
}
