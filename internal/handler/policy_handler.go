package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kanaka-pac/pac-api/internal/models"
	"github.com/kanaka-pac/pac-api/internal/service"
	appErrors "github.com/kanaka-pac/pac-api/pkg/errors"
	"github.com/kanaka-pac/pac-api/pkg/response"
)

type policyService interface {
	List(ctx context.Context) ([]models.Policy, error)
	Get(ctx context.Context, id string) (*models.Policy, error)
	Create(ctx context.Context, req service.CreatePolicyRequest) (*models.Policy, error)
	Update(ctx context.Context, policy *models.Policy) (*models.Policy, error)
	Delete(ctx context.Context, id string) error
}

// PolicyHandler exposes policy-document endpoints.
type PolicyHandler struct {
	service policyService
}

// NewPolicyHandler builds a new handler.
func NewPolicyHandler(service policyService) *PolicyHandler {
	return &PolicyHandler{service: service}
}

// Get godoc
// @Summary List policies or fetch one by id
// @Tags Policies
// @Produce json
// @Param id query string false "Policy ID"
// @Success 200 {array} models.Policy
// @Router /policies [get]
func (h *PolicyHandler) Get(c *gin.Context) {
	if id := c.Query("id"); id != "" {
		policy, err := h.service.Get(c.Request.Context(), id)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.JSON(c, http.StatusOK, policy)
		return
	}

	policies, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, policies)
}

// Create godoc
// @Summary Create a policy document
// @Tags Policies
// @Accept json
// @Produce json
// @Param payload body service.CreatePolicyRequest true "Policy payload"
// @Success 201 {object} models.Policy
// @Router /policies [post]
func (h *PolicyHandler) Create(c *gin.Context) {
	var req service.CreatePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid policy payload"))
		return
	}

	policy, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, policy)
}

// Update godoc
// @Summary Update a policy document
// @Tags Policies
// @Accept json
// @Produce json
// @Param payload body models.Policy true "Policy payload with id"
// @Success 200 {object} models.Policy
// @Router /policies [put]
func (h *PolicyHandler) Update(c *gin.Context) {
	var policy models.Policy
	if err := c.ShouldBindJSON(&policy); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid policy payload"))
		return
	}

	saved, err := h.service.Update(c.Request.Context(), &policy)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, saved)
}

// Delete godoc
// @Summary Delete a policy document
// @Tags Policies
// @Produce json
// @Param id query string true "Policy ID"
// @Success 200 {object} map[string]bool
// @Router /policies [delete]
func (h *PolicyHandler) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "ID required"))
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c)
}
