package jsonfile

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/kanaka-pac/pac-api/internal/models"
	"github.com/kanaka-pac/pac-api/internal/store"
)

const policiesFile = "policies.json"

type policyStore struct {
	s *Store
}

func (p *policyStore) List(ctx context.Context) ([]models.Policy, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	policies := readCollection[models.Policy](p.s, policiesFile)
	sort.SliceStable(policies, func(i, j int) bool {
		return policies[i].UpdatedAt.After(policies[j].UpdatedAt)
	})
	return policies, nil
}

func (p *policyStore) GetByID(ctx context.Context, id string) (*models.Policy, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	for _, item := range readCollection[models.Policy](p.s, policiesFile) {
		if item.ID == id {
			found := item
			return &found, nil
		}
	}
	return nil, store.ErrNotFound
}

func (p *policyStore) Upsert(ctx context.Context, policy *models.Policy) error {
	if policy.ID == "" {
		policy.ID = uuid.NewString()
	}
	policy.UpdatedAt = time.Now().UTC()

	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	all := readCollection[models.Policy](p.s, policiesFile)
	replaced := false
	for i := range all {
		if all[i].ID == policy.ID {
			all[i] = *policy
			replaced = true
			break
		}
	}
	if !replaced {
		all = append(all, *policy)
	}
	return writeCollection(p.s, policiesFile, all)
}

func (p *policyStore) Delete(ctx context.Context, id string) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	all := readCollection[models.Policy](p.s, policiesFile)
	kept := all[:0]
	for _, item := range all {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	return writeCollection(p.s, policiesFile, kept)
}
