//go:build !integration

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/load-planner/internal/domain/dto"
	"github.com/guttosm/load-planner/internal/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testRouter mounts fn-registered routes behind the request ID middleware.
func testRouter(register func(api *gin.RouterGroup)) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Recovery(), middleware.ErrorHandler())
	register(router.Group("/api"))
	return router
}

func doJSON(router http.Handler, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		_ = json.NewEncoder(&buf).Encode(b)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeData unmarshals the data field of a success envelope into out.
func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) dto.SuccessResponse {
	t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
		dto.SuccessResponse
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope), w.Body.String())
	require.NoError(t, json.Unmarshal(envelope.Data, out))
	return envelope.SuccessResponse
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}
