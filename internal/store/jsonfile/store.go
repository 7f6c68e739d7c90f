// Package jsonfile implements store.Store with one JSON document per entity
// kind under a data directory. Every mutation rewrites the whole document.
// A single mutex serializes access so concurrent admin writes cannot lose
// updates.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/kanaka-pac/pac-api/internal/store"
)

// Store is the flat-file backing store.
type Store struct {
	dir    string
	logger *zap.Logger
	mu     sync.Mutex
}

// New ensures the data directory exists and returns the store.
func New(dir string, logger *zap.Logger) (*Store, error) {
	if dir == "" {
		dir = "./data"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &Store{dir: dir, logger: logger}, nil
}

func (s *Store) Events() store.EventStore               { return &eventStore{s} }
func (s *Store) Minutes() store.MinutesStore            { return &minutesStore{s} }
func (s *Store) Announcements() store.AnnouncementStore { return &announcementStore{s} }
func (s *Store) Policies() store.PolicyStore            { return &policyStore{s} }
func (s *Store) Team() store.TeamStore                  { return &teamStore{s} }
func (s *Store) Subscribers() store.SubscriberStore     { return &subscriberStore{s} }
func (s *Store) Settings() store.SettingsStore          { return &settingsStore{s} }

// Close is a no-op; files are not held open between operations.
func (s *Store) Close() error { return nil }

// readCollection loads a JSON array document. A missing file is an empty
// collection; unreadable or corrupt files degrade to empty with a logged
// warning, per the site's read-failure contract.
func readCollection[T any](s *Store, filename string) []T {
	path := filepath.Join(s.dir, filename)
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("read data file", zap.String("file", filename), zap.Error(err))
		}
		return nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		s.logger.Warn("parse data file", zap.String("file", filename), zap.Error(err))
		return nil
	}
	return items
}

// writeCollection rewrites a JSON array document wholesale. Write failures
// propagate to the caller.
func writeCollection[T any](s *Store, filename string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filename, err)
	}
	path := filepath.Join(s.dir, filename)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return nil
}
