package response

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vmelnychenko/campusdesk/pkg/apperror"
)

// GetUserID retrieves the authenticated user ID from the context.
func GetUserID(c *gin.Context) (uint, error) {
	userIDStr, exists := c.Get("user_id")
	if !exists {
		return 0, apperror.ErrUnauthorized
	}

	userID, err := strconv.ParseUint(userIDStr.(string), 10, 64)
	if err != nil {
		return 0, apperror.ErrUnauthorized
	}

	return uint(userID), nil
}

// Error writes a standardized error response. Validation errors carry a
// field-name → message map under "errors"; everything else a plain "error".
func Error(c *gin.Context, err error) {
	if appErr := apperror.AsError(err); appErr != nil {
		if len(appErr.Fields) > 0 {
			c.JSON(appErr.Status(), gin.H{"errors": appErr.Fields})
			return
		}
		c.JSON(appErr.Status(), gin.H{"error": appErr.Message})
		return
	}

	code := apperror.MapErrorToStatus(err)
	if code == http.StatusInternalServerError {
		slog.Error("internal error", "err", err)
	}

	c.JSON(code, gin.H{"error": err.Error()})
}
