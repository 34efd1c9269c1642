package middleware

import (
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"openblog-backend/internal/shared/response"
)

// Recovery turns a panicking handler into a 500 response. The stack is
// kept in the log, never in the response body.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().
					Str("request_id", c.GetString("request_id")).
					Str("path", c.Request.URL.Path).
					Interface("panic", rec).
					Bytes("stack", debug.Stack()).
					Msg("request panicked")

				c.Abort()
				response.InternalServerError(c, "internal server error")
			}
		}()

		c.Next()
	}
}
