package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/kanaka-pac/pac-api/internal/models"
	"github.com/kanaka-pac/pac-api/internal/store"
)

type teamStore struct {
	s *Store
}

func (t *teamStore) List(ctx context.Context) ([]models.TeamMember, error) {
	const query = `SELECT id, name, role, bio, email, sort_order
FROM team_members ORDER BY sort_order ASC`
	members := []models.TeamMember{}
	if err := t.s.db.SelectContext(ctx, &members, query); err != nil {
		t.s.listWarn("team members", err)
		return []models.TeamMember{}, nil
	}
	return members, nil
}

func (t *teamStore) GetByID(ctx context.Context, id string) (*models.TeamMember, error) {
	const query = `SELECT id, name, role, bio, email, sort_order
FROM team_members WHERE id = $1`
	var member models.TeamMember
	if err := t.s.db.GetContext(ctx, &member, query, id); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			t.s.listWarn("team members", err)
		}
		return nil, store.ErrNotFound
	}
	return &member, nil
}

func (t *teamStore) Upsert(ctx context.Context, member *models.TeamMember) error {
	if member.ID == "" {
		member.ID = uuid.NewString()
	}
	const query = `INSERT INTO team_members (id, name, role, bio, email, sort_order)
VALUES (:id, :name, :role, :bio, :email, :sort_order)
ON CONFLICT (id) DO UPDATE SET
	name = EXCLUDED.name, role = EXCLUDED.role, bio = EXCLUDED.bio,
	email = EXCLUDED.email, sort_order = EXCLUDED.sort_order`
	if _, err := t.s.db.NamedExecContext(ctx, query, member); err != nil {
		return fmt.Errorf("upsert team member: %w", err)
	}
	return nil
}

func (t *teamStore) Delete(ctx context.Context, id string) error {
	if _, err := t.s.db.ExecContext(ctx, "DELETE FROM team_members WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete team member: %w", err)
	}
	return nil
}

// Reorder swaps two members' sort positions inside one transaction so a
// crash cannot leave only half the swap applied.
func (t *teamStore) Reorder(ctx context.Context, firstID, secondID string) error {
	tx, err := t.s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin reorder: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var firstOrder, secondOrder int
	if err := tx.GetContext(ctx, &firstOrder, "SELECT sort_order FROM team_members WHERE id = $1", firstID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("reorder team members: %w", store.ErrNotFound)
		}
		return fmt.Errorf("load sort order: %w", err)
	}
	if err := tx.GetContext(ctx, &secondOrder, "SELECT sort_order FROM team_members WHERE id = $1", secondID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("reorder team members: %w", store.ErrNotFound)
		}
		return fmt.Errorf("load sort order: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "UPDATE team_members SET sort_order = $1 WHERE id = $2", secondOrder, firstID); err != nil {
		return fmt.Errorf("swap sort order: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "UPDATE team_members SET sort_order = $1 WHERE id = $2", firstOrder, secondID); err != nil {
		return fmt.Errorf("swap sort order: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reorder: %w", err)
	}
	return nil
}
