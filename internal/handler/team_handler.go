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

type teamService interface {
	List(ctx context.Context) ([]models.TeamMember, error)
	Create(ctx context.Context, req service.CreateTeamMemberRequest) (*models.TeamMember, error)
	Update(ctx context.Context, req service.UpdateTeamMemberRequest) (*models.TeamMember, error)
	Reorder(ctx context.Context, firstID, secondID string) error
	Delete(ctx context.Context, id string) error
}

// TeamHandler exposes executive-roster endpoints.
type TeamHandler struct {
	service teamService
}

// NewTeamHandler builds a new handler.
func NewTeamHandler(service teamService) *TeamHandler {
	return &TeamHandler{service: service}
}

// List godoc
// @Summary List team members in display order
// @Tags Team
// @Produce json
// @Success 200 {array} models.TeamMember
// @Router /team [get]
func (h *TeamHandler) List(c *gin.Context) {
	members, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, members)
}

// Create godoc
// @Summary Add a team member
// @Tags Team
// @Accept json
// @Produce json
// @Param payload body service.CreateTeamMemberRequest true "Member payload"
// @Success 201 {object} models.TeamMember
// @Router /team [post]
func (h *TeamHandler) Create(c *gin.Context) {
	var req service.CreateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid member payload"))
		return
	}

	member, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, member)
}

// Update godoc
// @Summary Update a team member; omitted fields are kept
// @Tags Team
// @Accept json
// @Produce json
// @Param payload body service.UpdateTeamMemberRequest true "Partial member payload with id"
// @Success 200 {object} models.TeamMember
// @Router /team [put]
func (h *TeamHandler) Update(c *gin.Context) {
	var req service.UpdateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid member payload"))
		return
	}

	member, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, member)
}

type reorderRequest struct {
	FirstID  string `json:"firstId"`
	SecondID string `json:"secondId"`
}

// Reorder godoc
// @Summary Swap the display positions of two members
// @Tags Team
// @Accept json
// @Produce json
// @Param payload body reorderRequest true "The two member IDs to swap"
// @Success 200 {object} map[string]bool
// @Router /team/reorder [put]
func (h *TeamHandler) Reorder(c *gin.Context) {
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid reorder payload"))
		return
	}
	if err := h.service.Reorder(c.Request.Context(), req.FirstID, req.SecondID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c)
}

// Delete godoc
// @Summary Remove a team member
// @Tags Team
// @Produce json
// @Param id query string true "Member ID"
// @Success 200 {object} map[string]bool
// @Router /team [delete]
func (h *TeamHandler) Delete(c *gin.Context) {
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
