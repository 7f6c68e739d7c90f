package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kanaka-pac/pac-api/internal/models"
	appErrors "github.com/kanaka-pac/pac-api/pkg/errors"
	"github.com/kanaka-pac/pac-api/pkg/response"
)

type subscriberService interface {
	List(ctx context.Context) ([]models.Subscriber, error)
	Subscribe(ctx context.Context, email string) error
	Unsubscribe(ctx context.Context, email string) error
	Export(ctx context.Context, format string) ([]byte, string, error)
}

// SubscriberHandler exposes newsletter subscription endpoints.
type SubscriberHandler struct {
	service subscriberService
}

// NewSubscriberHandler builds a new handler.
func NewSubscriberHandler(service subscriberService) *SubscriberHandler {
	return &SubscriberHandler{service: service}
}

// List godoc
// @Summary List newsletter subscribers
// @Tags Subscribers
// @Produce json
// @Success 200 {array} models.Subscriber
// @Router /subscribe [get]
func (h *SubscriberHandler) List(c *gin.Context) {
	subscribers, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, subscribers)
}

type subscribeBody struct {
	Email string `json:"email"`
}

// Subscribe godoc
// @Summary Subscribe an email address to the newsletter
// @Tags Subscribers
// @Accept json
// @Produce json
// @Param payload body subscribeBody true "Email address"
// @Success 200 {object} map[string]interface{}
// @Router /subscribe [post]
func (h *SubscriberHandler) Subscribe(c *gin.Context) {
	var req subscribeBody
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Valid email is required"))
		return
	}
	if err := h.service.Subscribe(c.Request.Context(), req.Email); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"success": true, "message": "Subscribed successfully"})
}

// Unsubscribe godoc
// @Summary Remove a subscriber by email
// @Tags Subscribers
// @Produce json
// @Param email query string true "Email address"
// @Success 200 {object} map[string]bool
// @Router /subscribe [delete]
func (h *SubscriberHandler) Unsubscribe(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Email required"))
		return
	}
	if err := h.service.Unsubscribe(c.Request.Context(), email); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c)
}

// Export godoc
// @Summary Download the subscriber list as CSV or PDF
// @Tags Subscribers
// @Produce octet-stream
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} binary
// @Router /subscribe/export [get]
func (h *SubscriberHandler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	raw, contentType, err := h.service.Export(c.Request.Context(), format)
	if err != nil {
		response.Error(c, err)
		return
	}

	ext := "csv"
	if contentType == "application/pdf" {
		ext = "pdf"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=subscribers.%s", ext))
	c.Data(http.StatusOK, contentType, raw)
}
