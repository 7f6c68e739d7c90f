package jsonfile

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/kanaka-pac/pac-api/internal/models"
	"github.com/kanaka-pac/pac-api/internal/store"
)

const teamFile = "team.json"

type teamStore struct {
	s *Store
}

func (t *teamStore) List(ctx context.Context) ([]models.TeamMember, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	members := readCollection[models.TeamMember](t.s, teamFile)
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].SortOrder < members[j].SortOrder
	})
	return members, nil
}

func (t *teamStore) GetByID(ctx context.Context, id string) (*models.TeamMember, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	for _, member := range readCollection[models.TeamMember](t.s, teamFile) {
		if member.ID == id {
			found := member
			return &found, nil
		}
	}
	return nil, store.ErrNotFound
}

func (t *teamStore) Upsert(ctx context.Context, member *models.TeamMember) error {
	if member.ID == "" {
		member.ID = uuid.NewString()
	}

	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	members := readCollection[models.TeamMember](t.s, teamFile)
	replaced := false
	for i := range members {
		if members[i].ID == member.ID {
			members[i] = *member
			replaced = true
			break
		}
	}
	if !replaced {
		members = append(members, *member)
	}
	return writeCollection(t.s, teamFile, members)
}

func (t *teamStore) Delete(ctx context.Context, id string) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	members := readCollection[models.TeamMember](t.s, teamFile)
	kept := members[:0]
	for _, member := range members {
		if member.ID != id {
			kept = append(kept, member)
		}
	}
	return writeCollection(t.s, teamFile, kept)
}

// Reorder swaps two members' sort positions. The whole collection is
// rewritten in one file write, so the swap is atomic here.
func (t *teamStore) Reorder(ctx context.Context, firstID, secondID string) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	members := readCollection[models.TeamMember](t.s, teamFile)
	first, second := -1, -1
	for i := range members {
		switch members[i].ID {
		case firstID:
			first = i
		case secondID:
			second = i
		}
	}
	if first < 0 || second < 0 {
		return fmt.Errorf("reorder team members: %w", store.ErrNotFound)
	}
	members[first].SortOrder, members[second].SortOrder = members[second].SortOrder, members[first].SortOrder
	return writeCollection(t.s, teamFile, members)
}
