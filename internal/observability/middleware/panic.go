package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PanicRecoveryGin logs a recovered handler panic with the request context
// and answers 500 before re-raising, so the crash still reaches the
// process-level handling instead of vanishing into a silent response.
func PanicRecoveryGin() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if v := recover(); v != nil {
				slog.ErrorContext(c.Request.Context(), "handler panicked",
					slog.String("event", "http.panic"),
					slog.String("path", c.FullPath()),
					slog.Any("error", v),
				)

				c.AbortWithStatus(http.StatusInternalServerError)

				panic(v)
			}
		}()

		c.Next()
	}
}
