//go:build !integration

package middleware

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/load-planner/internal/domain/dto"
	"github.com/guttosm/load-planner/internal/domain/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// recordingLoggingService keeps every entry it is asked to store.
type recordingLoggingService struct {
	mu      sync.Mutex
	entries []*model.LogEntry
	batches int
	err     error
}

func (r *recordingLoggingService) CreateLog(_ context.Context, entry *model.LogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return r.err
}

func (r *recordingLoggingService) CreateLogs(_ context.Context, entries []*model.LogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches++
	if r.err != nil {
		return r.err
	}
	r.entries = append(r.entries, entries...)
	return nil
}

func (r *recordingLoggingService) QueryLogs(context.Context, model.LogQueryOptions) ([]model.LogEntry, error) {
	return nil, nil
}

func (r *recordingLoggingService) CountLogs(context.Context, model.LogQueryOptions) (int64, error) {
	return 0, nil
}

func (r *recordingLoggingService) snapshot() []*model.LogEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*model.LogEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

func (r *recordingLoggingService) batchCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.batches
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}
