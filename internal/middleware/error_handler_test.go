//go:build !integration

package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/guttosm/load-planner/internal/domain/dto"
)

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		handler    gin.HandlerFunc
		wantStatus int
		wantBody   bool
	}{
		{
			name:       "no errors",
			handler:    func(c *gin.Context) { c.Status(http.StatusOK) },
			wantStatus: http.StatusOK,
		},
		{
			name: "unwritten error becomes 500",
			handler: func(c *gin.Context) {
				_ = c.Error(errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   true,
		},
		{
			name: "written response is kept",
			handler: func(c *gin.Context) {
				_ = c.Error(errors.New("boom"))
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID(), ErrorHandler())
			router.GET("/test", tt.handler)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody {
				assert.Equal(t, dto.ErrCodeInternal, decodeError(t, w).Error)
			}
		})
	}
}
