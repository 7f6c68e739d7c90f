package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/kanaka-pac/pac-api/pkg/errors"
)

// The site's clients expect bare JSON values on success (an array for
// listings, an object for single records) and {"error": "..."} bodies on
// failure, so there is no envelope here.

// JSON sends a success response.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.JSON(status, data)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data)
}

// Success responds with the {"success": true} acknowledgment used by
// update and delete endpoints.
func Success(c *gin.Context) {
	JSON(c, http.StatusOK, gin.H{"success": true})
}

// Error sends an error response converting the error to the wire shape.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.JSON(appErr.Status, gin.H{"error": appErr.Message})
}
