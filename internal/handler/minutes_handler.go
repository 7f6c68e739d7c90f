package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kanaka-pac/pac-api/internal/models"
	appErrors "github.com/kanaka-pac/pac-api/pkg/errors"
	"github.com/kanaka-pac/pac-api/pkg/response"
)

type minutesService interface {
	List(ctx context.Context) ([]models.Minutes, error)
	Get(ctx context.Context, id string) (*models.Minutes, error)
	Save(ctx context.Context, minutes *models.Minutes) (*models.Minutes, error)
	Delete(ctx context.Context, id string) error
}

// MinutesHandler exposes meeting-minutes endpoints.
type MinutesHandler struct {
	service minutesService
}

// NewMinutesHandler builds a new handler.
func NewMinutesHandler(service minutesService) *MinutesHandler {
	return &MinutesHandler{service: service}
}

// Get godoc
// @Summary List minutes or fetch one by id
// @Tags Minutes
// @Produce json
// @Param id query string false "Minutes ID"
// @Success 200 {array} models.Minutes
// @Router /minutes [get]
func (h *MinutesHandler) Get(c *gin.Context) {
	if id := c.Query("id"); id != "" {
		minutes, err := h.service.Get(c.Request.Context(), id)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.JSON(c, http.StatusOK, minutes)
		return
	}

	all, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, all)
}

// Create godoc
// @Summary Create meeting minutes
// @Tags Minutes
// @Accept json
// @Produce json
// @Param payload body models.Minutes true "Minutes payload"
// @Success 201 {object} models.Minutes
// @Router /minutes [post]
func (h *MinutesHandler) Create(c *gin.Context) {
	var minutes models.Minutes
	if err := c.ShouldBindJSON(&minutes); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid minutes payload"))
		return
	}

	saved, err := h.service.Save(c.Request.Context(), &minutes)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, saved)
}

// Update godoc
// @Summary Update meeting minutes
// @Tags Minutes
// @Accept json
// @Produce json
// @Param payload body models.Minutes true "Minutes payload with id"
// @Success 200 {object} models.Minutes
// @Router /minutes [put]
func (h *MinutesHandler) Update(c *gin.Context) {
	var minutes models.Minutes
	if err := c.ShouldBindJSON(&minutes); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid minutes payload"))
		return
	}
	if minutes.ID == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "ID required"))
		return
	}

	saved, err := h.service.Save(c.Request.Context(), &minutes)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, saved)
}

// Delete godoc
// @Summary Delete meeting minutes
// @Tags Minutes
// @Produce json
// @Param id query string true "Minutes ID"
// @Success 200 {object} map[string]bool
// @Router /minutes [delete]
func (h *MinutesHandler) Delete(c *gin.Context) {
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
