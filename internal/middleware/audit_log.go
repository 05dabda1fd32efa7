package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/load-planner/internal/domain/model"
	"github.com/guttosm/load-planner/internal/service"
)

// AuditLog records a client action such as a plan, an export or a catalog update.
// Nothing is recorded when loggingService is nil.
func AuditLog(loggingService service.LoggingService, c *gin.Context, actionType, message string, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}
	enqueueLog(loggingService, newAuditEntry(c, "info", actionType, message, fields))
}

// AuditLogError records a failed client action.
func AuditLogError(loggingService service.LoggingService, c *gin.Context, actionType, message string, err error, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}
	entry := newAuditEntry(c, "error", actionType, message, fields)
	if err != nil {
		entry.Error = err.Error()
	}
	enqueueLog(loggingService, entry)
}

func newAuditEntry(c *gin.Context, level, actionType, message string, fields map[string]interface{}) *model.LogEntry {
	entry := &model.LogEntry{
		Timestamp:  time.Now().UTC(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		ClientID:   GetClientID(c),
		ActionType: actionType,
	}
	return entry.WithFields(fields)
}
