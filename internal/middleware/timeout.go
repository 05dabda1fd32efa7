package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/load-planner/internal/domain/dto"
	"github.com/guttosm/load-planner/internal/i18n"
)

// DefaultRequestTimeout applies when Timeout is given a non-positive duration.
const DefaultRequestTimeout = 30 * time.Second

// Timeout returns a middleware that gives each request a context deadline.
// Store calls made through c.Request.Context() stop at the deadline; if the
// handler then returns without writing, the client gets a 504.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if c.Writer.Written() || !errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return
		}
		errorResp := dto.NewError(dto.ErrCodeTimeout, i18n.T(c, i18n.ErrKeyTimeout)).
			WithRequestID(GetRequestID(c))
		c.AbortWithStatusJSON(http.StatusGatewayTimeout, errorResp)
	}
}
