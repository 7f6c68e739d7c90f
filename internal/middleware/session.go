package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/kanaka-pac/pac-api/internal/service"
	appErrors "github.com/kanaka-pac/pac-api/pkg/errors"
	"github.com/kanaka-pac/pac-api/pkg/response"
)

// SessionCookie is the cookie carrying the admin session token.
const SessionCookie = "pac_admin_session"

// Session protects admin routes by requiring a valid session cookie.
func Session(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		if err := authService.ValidateToken(token); err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Next()
	}
}
