package dto

import (
	"net/http"
	"time"

	"github.com/guttosm/load-planner/internal/domain/model"
)

const (
	ErrCodeInvalidRequest     = "invalid_request"
	ErrCodeInternal           = "internal_error"
	ErrCodeUnauthorized       = "unauthorized"
	ErrCodeNotFound           = "not_found"
	ErrCodeRateLimit          = "rate_limit_exceeded"
	ErrCodeTimeout            = "timeout"
	ErrCodeServiceUnavailable = "service_unavailable"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data holds the endpoint's payload, e.g. a PlanResult
	Data      interface{} `json:"data" swaggertype:"object"`
	RequestID string      `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time   `json:"timestamp" example:"2026-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"items[0].name: must not be blank"`
	// Details carries the offending field of a validation error
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2026-01-28T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// WithField records the field a validation error refers to.
func (e ErrorResponse) WithField(field string) ErrorResponse {
	if field == "" {
		return e
	}
	e.Details = map[string]string{"field": field}
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	case http.StatusServiceUnavailable:
		return ErrCodeServiceUnavailable
	default:
		return ErrCodeInternal
	}
}

// AggregateResponse is the merged inventory.
type AggregateResponse struct {
	Items []model.InventoryItem `json:"items"`
} // @name AggregateResponse

// InferRoomResponse is the guessed room name. Room is empty when Matched is false.
type InferRoomResponse struct {
	Room    string `json:"room,omitempty" example:"Kitchen"`
	Matched bool   `json:"matched" example:"true"`
} // @name InferRoomResponse

// VehicleCatalogResponse is one stored catalog version.
type VehicleCatalogResponse struct {
	Version   int                  `json:"version" example:"3"`
	Active    bool                 `json:"active" example:"true"`
	Classes   []model.VehicleClass `json:"classes"`
	CreatedAt time.Time            `json:"created_at"`
	CreatedBy string               `json:"created_by,omitempty" example:"client-a"`
	Note      string               `json:"note,omitempty"`
} // @name VehicleCatalogResponse
