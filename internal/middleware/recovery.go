package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/load-planner/internal/domain/dto"
	"github.com/guttosm/load-planner/internal/i18n"
	"github.com/guttosm/load-planner/internal/logger"
)

// Recovery returns a middleware that turns panics into a translated 500 response.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				requestID := GetRequestID(c)
				log := logger.Logger()
				log.Error().
					Str("request_id", requestID).
					Str("client_id", GetClientID(c)).
					Str("method", c.Request.Method).
					Str("path", c.Request.URL.Path).
					Interface("panic", err).
					Bytes("stack", debug.Stack()).
					Msg("Panic recovered")

				errorResp := dto.NewError(dto.ErrCodeInternal, i18n.T(c, i18n.ErrKeyInternalError)).
					WithRequestID(requestID)
				c.AbortWithStatusJSON(http.StatusInternalServerError, errorResp)
			}
		}()
		c.Next()
	}
}
