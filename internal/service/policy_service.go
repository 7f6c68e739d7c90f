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

// PolicyService handles policy documents and admin CRUD.
type PolicyService struct {
	store     store.PolicyStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewPolicyService constructs the service.
func NewPolicyService(st store.PolicyStore, validate *validator.Validate, logger *zap.Logger) *PolicyService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PolicyService{store: st, validator: validate, logger: logger}
}

// CreatePolicyRequest describes the create payload. Title, description, and
// the uploaded document URL are all required.
type CreatePolicyRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	FileURL     string `json:"fileUrl" validate:"required"`
}

// List returns policies, most recently updated first.
func (s *PolicyService) List(ctx context.Context) ([]models.Policy, error) {
	policies, err := s.store.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list policies")
	}
	return policies, nil
}

// Get returns one policy by id.
func (s *PolicyService) Get(ctx context.Context, id string) (*models.Policy, error) {
	policy, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Policy not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to get policy")
	}
	return policy, nil
}

// Create registers a new policy document.
func (s *PolicyService) Create(ctx context.Context, req CreatePolicyRequest) (*models.Policy, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Title, description, and file are required")
	}
	policy := &models.Policy{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		FileURL:     req.FileURL,
	}
	if err := s.store.Upsert(ctx, policy); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create policy")
	}
	return policy, nil
}

// Update overwrites an existing policy.
func (s *PolicyService) Update(ctx context.Context, policy *models.Policy) (*models.Policy, error) {
	if policy.ID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "ID required")
	}
	if err := s.store.Upsert(ctx, policy); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update policy")
	}
	return policy, nil
}

// Delete removes a policy by id.
func (s *PolicyService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete policy")
	}
	return nil
}
