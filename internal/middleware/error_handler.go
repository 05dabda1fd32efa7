package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/load-planner/internal/domain/dto"
	"github.com/guttosm/load-planner/internal/i18n"
	"github.com/guttosm/load-planner/internal/logger"
)

// ErrorHandler logs errors attached to the gin context and answers 500 when
// the handler has not written a response yet.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		requestID := GetRequestID(c)

		log := logger.Logger()
		log.Error().
			Str("request_id", requestID).
			Str("error", err.Error()).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Request error")

		if !c.Writer.Written() {
			errorResp := dto.NewError(dto.ErrCodeInternal, i18n.T(c, i18n.ErrKeyInternalError)).
				WithRequestID(requestID)
			c.JSON(http.StatusInternalServerError, errorResp)
		}
	}
}
