package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Riloax/weekplanner/internal/domain"
)

const userIDKey = "authenticatedUserID"

// RequireUser extracts the calling user from the x-user-id header. Mutating
// entry points fail fast with 401 when no valid user is present.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("x-user-id")
		if raw == "" {
			slog.Warn("request without user identity",
				"path", c.Request.URL.Path,
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Error:   "unauthenticated",
				Message: "no signed-in user",
			})

			return
		}

		userID, err := domain.UserIDFromString(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Error:   "unauthenticated",
				Message: err.Error(),
			})

			return
		}

		c.Set(userIDKey, userID.String())
		c.Next()
	}
}

// CurrentUserID returns the authenticated user set by RequireUser.
func CurrentUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
