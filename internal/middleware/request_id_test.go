//go:build !integration

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	tests := []struct {
		name        string
		headerValue string
		validate    func(*testing.T, string)
	}{
		{
			name: "generates new request ID when not provided",
			validate: func(t *testing.T, id string) {
				_, err := uuid.Parse(id)
				assert.NoError(t, err)
			},
		},
		{
			name:        "uses provided request ID from header",
			headerValue: "custom-request-id-123",
			validate: func(t *testing.T, id string) {
				assert.Equal(t, "custom-request-id-123", id)
			},
		},
		{
			name:        "replaces oversized request ID",
			headerValue: strings.Repeat("x", maxRequestIDLength+1),
			validate: func(t *testing.T, id string) {
				_, err := uuid.Parse(id)
				assert.NoError(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID())
			router.GET("/test", func(c *gin.Context) {
				c.String(http.StatusOK, GetRequestID(c))
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.headerValue != "" {
				req.Header.Set(RequestIDHeader, tt.headerValue)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, w.Body.String(), w.Header().Get(RequestIDHeader))
			tt.validate(t, w.Body.String())
		})
	}
}

func TestContextHelpers_Missing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Empty(t, GetRequestID(c))
	assert.Empty(t, GetClientID(c))

	c.Set(string(ClientIDKey), 42)
	assert.Empty(t, GetClientID(c), "non-string values are ignored")
}
