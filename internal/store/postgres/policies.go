package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kanaka-pac/pac-api/internal/models"
	"github.com/kanaka-pac/pac-api/internal/store"
)

type policyStore struct {
	s *Store
}

func (p *policyStore) List(ctx context.Context) ([]models.Policy, error) {
	const query = `SELECT id, title, description, file_url, updated_at
FROM policies ORDER BY updated_at DESC`
	policies := []models.Policy{}
	if err := p.s.db.SelectContext(ctx, &policies, query); err != nil {
		p.s.listWarn("policies", err)
		return []models.Policy{}, nil
	}
	return policies, nil
}

func (p *policyStore) GetByID(ctx context.Context, id string) (*models.Policy, error) {
	const query = `SELECT id, title, description, file_url, updated_at
FROM policies WHERE id = $1`
	var policy models.Policy
	if err := p.s.db.GetContext(ctx, &policy, query, id); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			p.s.listWarn("policies", err)
		}
		return nil, store.ErrNotFound
	}
	return &policy, nil
}

func (p *policyStore) Upsert(ctx context.Context, policy *models.Policy) error {
	if policy.ID == "" {
		policy.ID = uuid.NewString()
	}
	policy.UpdatedAt = time.Now().UTC()
	const query = `INSERT INTO policies (id, title, description, file_url, updated_at)
VALUES (:id, :title, :description, :file_url, :updated_at)
ON CONFLICT (id) DO UPDATE SET
	title = EXCLUDED.title, description = EXCLUDED.description,
	file_url = EXCLUDED.file_url, updated_at = EXCLUDED.updated_at`
	if _, err := p.s.db.NamedExecContext(ctx, query, policy); err != nil {
		return fmt.Errorf("upsert policy: %w", err)
	}
	return nil
}

func (p *policyStore) Delete(ctx context.Context, id string) error {
	if _, err := p.s.db.ExecContext(ctx, "DELETE FROM policies WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete policy: %w", err)
	}
	return nil
}
