package handler

import (
	"context"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kanaka-pac/pac-api/internal/service"
	appErrors "github.com/kanaka-pac/pac-api/pkg/errors"
	"github.com/kanaka-pac/pac-api/pkg/response"
)

type uploadService interface {
	Save(ctx context.Context, header *multipart.FileHeader, kind string) (string, error)
}

// UploadHandler accepts meeting documents and the site logo.
type UploadHandler struct {
	service uploadService
}

// NewUploadHandler builds a new handler.
func NewUploadHandler(service uploadService) *UploadHandler {
	return &UploadHandler{service: service}
}

// Upload godoc
// @Summary Upload a document or logo image
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to store"
// @Param kind formData string false "document (default) or logo"
// @Success 200 {object} map[string]string
// @Router /upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "No file uploaded"))
		return
	}

	kind := c.PostForm("kind")
	if kind == "" {
		kind = service.UploadKindDocument
	}

	url, err := h.service.Save(c.Request.Context(), header, kind)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"fileUrl": url})
}
