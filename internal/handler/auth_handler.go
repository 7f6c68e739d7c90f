package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kanaka-pac/pac-api/internal/middleware"
	appErrors "github.com/kanaka-pac/pac-api/pkg/errors"
	"github.com/kanaka-pac/pac-api/pkg/response"
)

type authService interface {
	Login(password string) (string, error)
	ValidateToken(token string) error
	TTL() time.Duration
}

// AuthHandler manages the admin session cookie.
type AuthHandler struct {
	service authService
	secure  bool
}

// NewAuthHandler builds a new handler. secure controls the cookie's Secure
// flag and should be true whenever the site is served over HTTPS.
func NewAuthHandler(service authService, secure bool) *AuthHandler {
	return &AuthHandler{service: service, secure: secure}
}

type loginRequest struct {
	Password string `json:"password"`
}

// Login godoc
// @Summary Log in as the council admin
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body loginRequest true "Admin password"
// @Success 200 {object} map[string]bool
// @Failure 401 {object} map[string]string
// @Router /auth [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload"))
		return
	}

	token, err := h.service.Login(req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, token, int(h.service.TTL().Seconds()), "/", "", h.secure, true)
	response.Success(c)
}

// Logout godoc
// @Summary Log out and clear the session cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /auth [delete]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", h.secure, true)
	response.Success(c)
}

// Check godoc
// @Summary Report whether the caller has a valid admin session
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /auth [get]
func (h *AuthHandler) Check(c *gin.Context) {
	token, err := c.Cookie(middleware.SessionCookie)
	authenticated := err == nil && token != "" && h.service.ValidateToken(token) == nil
	response.JSON(c, http.StatusOK, gin.H{"authenticated": authenticated})
}
