package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kanaka-pac/pac-api/internal/models"
	appErrors "github.com/kanaka-pac/pac-api/pkg/errors"
	"github.com/kanaka-pac/pac-api/pkg/response"
)

type announcementService interface {
	List(ctx context.Context, activeOnly bool) ([]models.Announcement, error)
	Get(ctx context.Context, id string) (*models.Announcement, error)
	Save(ctx context.Context, announcement *models.Announcement) (*models.Announcement, error)
	Delete(ctx context.Context, id string) error
}

// AnnouncementHandler exposes announcement endpoints.
type AnnouncementHandler struct {
	service announcementService
}

// NewAnnouncementHandler builds a new handler.
func NewAnnouncementHandler(service announcementService) *AnnouncementHandler {
	return &AnnouncementHandler{service: service}
}

// Get godoc
// @Summary List announcements or fetch one by id
// @Tags Announcements
// @Produce json
// @Param id query string false "Announcement ID"
// @Param active query string false "true to hide expired announcements"
// @Success 200 {array} models.Announcement
// @Router /announcements [get]
func (h *AnnouncementHandler) Get(c *gin.Context) {
	if id := c.Query("id"); id != "" {
		announcement, err := h.service.Get(c.Request.Context(), id)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.JSON(c, http.StatusOK, announcement)
		return
	}

	announcements, err := h.service.List(c.Request.Context(), c.Query("active") == "true")
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, announcements)
}

// Create godoc
// @Summary Create an announcement
// @Tags Announcements
// @Accept json
// @Produce json
// @Param payload body models.Announcement true "Announcement payload"
// @Success 201 {object} models.Announcement
// @Router /announcements [post]
func (h *AnnouncementHandler) Create(c *gin.Context) {
	var announcement models.Announcement
	if err := c.ShouldBindJSON(&announcement); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid announcement payload"))
		return
	}

	saved, err := h.service.Save(c.Request.Context(), &announcement)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, saved)
}

// Update godoc
// @Summary Update an announcement
// @Tags Announcements
// @Accept json
// @Produce json
// @Param payload body models.Announcement true "Announcement payload with id"
// @Success 200 {object} models.Announcement
// @Router /announcements [put]
func (h *AnnouncementHandler) Update(c *gin.Context) {
	var announcement models.Announcement
	if err := c.ShouldBindJSON(&announcement); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid announcement payload"))
		return
	}
	if announcement.ID == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "ID required"))
		return
	}

	saved, err := h.service.Save(c.Request.Context(), &announcement)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, saved)
}

// Delete godoc
// @Summary Delete an announcement
// @Tags Announcements
// @Produce json
// @Param id query string true "Announcement ID"
// @Success 200 {object} map[string]bool
// @Router /announcements [delete]
func (h *AnnouncementHandler) Delete(c *gin.Context) {
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
