package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/kanaka-pac/pac-api/internal/models"
	"github.com/kanaka-pac/pac-api/internal/store"
	appErrors "github.com/kanaka-pac/pac-api/pkg/errors"
)

// TeamService handles the executive roster.
type TeamService struct {
	store     store.TeamStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTeamService constructs the service.
func NewTeamService(st store.TeamStore, validate *validator.Validate, logger *zap.Logger) *TeamService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeamService{store: st, validator: validate, logger: logger}
}

// CreateTeamMemberRequest describes the create payload.
type CreateTeamMemberRequest struct {
	ID        string `json:"id"`
	Name      string `json:"name" validate:"required"`
	Role      string `json:"role" validate:"required"`
	Bio       string `json:"bio"`
	Email     string `json:"email"`
	SortOrder int    `json:"order"`
}

// UpdateTeamMemberRequest carries a partial update; nil fields keep the
// existing value.
type UpdateTeamMemberRequest struct {
	ID        string  `json:"id" validate:"required"`
	Name      *string `json:"name"`
	Role      *string `json:"role"`
	Bio       *string `json:"bio"`
	Email     *string `json:"email"`
	SortOrder *int    `json:"order"`
}

// List returns members ascending by display order.
func (s *TeamService) List(ctx context.Context) ([]models.TeamMember, error) {
	members, err := s.store.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list team members")
	}
	return members, nil
}

// Create registers a new member.
func (s *TeamService) Create(ctx context.Context, req CreateTeamMemberRequest) (*models.TeamMember, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Name and role are required")
	}
	member := &models.TeamMember{
		ID:        req.ID,
		Name:      req.Name,
		Role:      req.Role,
		Bio:       req.Bio,
		Email:     req.Email,
		SortOrder: req.SortOrder,
	}
	if err := s.store.Upsert(ctx, member); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create team member")
	}
	return member, nil
}

// Update merges the provided fields over the existing member. Unlike the
// other kinds, updating an unknown member is an error.
func (s *TeamService) Update(ctx context.Context, req UpdateTeamMemberRequest) (*models.TeamMember, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "ID required")
	}

	existing, err := s.store.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Member not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load team member")
	}

	if req.Name != nil && *req.Name != "" {
		existing.Name = *req.Name
	}
	if req.Role != nil && *req.Role != "" {
		existing.Role = *req.Role
	}
	if req.Bio != nil {
		existing.Bio = *req.Bio
	}
	if req.Email != nil {
		existing.Email = *req.Email
	}
	if req.SortOrder != nil {
		existing.SortOrder = *req.SortOrder
	}

	if err := s.store.Upsert(ctx, existing); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update team member")
	}
	return existing, nil
}

// Reorder swaps the display positions of two members.
func (s *TeamService) Reorder(ctx context.Context, firstID, secondID string) error {
	if firstID == "" || secondID == "" || firstID == secondID {
		return appErrors.Clone(appErrors.ErrValidation, "two distinct member IDs are required")
	}
	if err := s.store.Reorder(ctx, firstID, secondID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return appErrors.Clone(appErrors.ErrNotFound, "Member not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reorder team members")
	}
	return nil
}

// Delete removes a member by id.
func (s *TeamService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete team member")
	}
	return nil
}
