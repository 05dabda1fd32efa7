package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/load-planner/internal/domain/dto"
	"github.com/guttosm/load-planner/internal/i18n"
)

const (
	// APIKeyHeader is the HTTP header name for API key authentication.
	APIKeyHeader = "X-API-Key"
	// APIKeyQuery is the query parameter name for API key authentication.
	APIKeyQuery = "api_key"
)

// APIKeyAuth returns a middleware that validates API keys and stores the owning
// client ID in the context. keys maps each accepted key to its client ID.
// The X-API-Key header wins over the api_key query parameter.
// An empty map disables authentication.
func APIKeyAuth(keys map[string]string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(keys) == 0 {
			c.Next()
			return
		}

		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			key = c.Query(APIKeyQuery)
		}

		if key == "" {
			abortUnauthorized(c, i18n.ErrKeyAPIKeyRequired)
			return
		}

		clientID, ok := keys[key]
		if !ok {
			abortUnauthorized(c, i18n.ErrKeyInvalidAPIKey)
			return
		}

		c.Set(string(ClientIDKey), clientID)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, messageKey string) {
	errorResp := dto.NewError(dto.ErrCodeUnauthorized, i18n.T(c, messageKey)).
		WithRequestID(GetRequestID(c))
	c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
}
