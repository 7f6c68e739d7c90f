package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kanaka-pac/pac-api/internal/models"
	appErrors "github.com/kanaka-pac/pac-api/pkg/errors"
	"github.com/kanaka-pac/pac-api/pkg/response"
)

type eventService interface {
	List(ctx context.Context, filter models.EventFilter) ([]models.Event, error)
	Get(ctx context.Context, id string) (*models.Event, error)
	Save(ctx context.Context, event *models.Event) (*models.Event, error)
	Delete(ctx context.Context, id string) error
}

// EventHandler exposes event endpoints.
type EventHandler struct {
	service eventService
}

// NewEventHandler builds a new handler.
func NewEventHandler(service eventService) *EventHandler {
	return &EventHandler{service: service}
}

// Get godoc
// @Summary List events or fetch one by id
// @Tags Events
// @Produce json
// @Param id query string false "Event ID"
// @Param filter query string false "upcoming or past"
// @Success 200 {array} models.Event
// @Router /events [get]
func (h *EventHandler) Get(c *gin.Context) {
	if id := c.Query("id"); id != "" {
		event, err := h.service.Get(c.Request.Context(), id)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.JSON(c, http.StatusOK, event)
		return
	}

	events, err := h.service.List(c.Request.Context(), models.EventFilter(c.Query("filter")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, events)
}

// Create godoc
// @Summary Create an event
// @Tags Events
// @Accept json
// @Produce json
// @Param payload body models.Event true "Event payload"
// @Success 201 {object} models.Event
// @Router /events [post]
func (h *EventHandler) Create(c *gin.Context) {
	var event models.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid event payload"))
		return
	}

	saved, err := h.service.Save(c.Request.Context(), &event)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, saved)
}

// Update godoc
// @Summary Update an event
// @Tags Events
// @Accept json
// @Produce json
// @Param payload body models.Event true "Event payload with id"
// @Success 200 {object} models.Event
// @Router /events [put]
func (h *EventHandler) Update(c *gin.Context) {
	var event models.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid event payload"))
		return
	}
	if event.ID == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "ID required"))
		return
	}

	saved, err := h.service.Save(c.Request.Context(), &event)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, saved)
}

// Delete godoc
// @Summary Delete an event
// @Tags Events
// @Produce json
// @Param id query string true "Event ID"
// @Success 200 {object} map[string]bool
// @Router /events [delete]
func (h *EventHandler) Delete(c *gin.Context) {
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
