package http

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/load-planner/internal/domain/dto"
	"github.com/guttosm/load-planner/internal/i18n"
	"github.com/guttosm/load-planner/internal/middleware"
)

// Response DTO pools for reducing allocations.
var (
	successResponsePool = sync.Pool{
		New: func() interface{} {
			return &dto.SuccessResponse{}
		},
	}

	errorResponsePool = sync.Pool{
		New: func() interface{} {
			return &dto.ErrorResponse{}
		},
	}
)

func getSuccessResponse() *dto.SuccessResponse {
	if resp, ok := successResponsePool.Get().(*dto.SuccessResponse); ok {
		return resp
	}
	return &dto.SuccessResponse{}
}

func putSuccessResponse(resp *dto.SuccessResponse) {
	resp.Data = nil
	resp.RequestID = ""
	resp.Timestamp = time.Time{}
	successResponsePool.Put(resp)
}

func getErrorResponse() *dto.ErrorResponse {
	if resp, ok := errorResponsePool.Get().(*dto.ErrorResponse); ok {
		return resp
	}
	return &dto.ErrorResponse{}
}

func putErrorResponse(resp *dto.ErrorResponse) {
	resp.Error = ""
	resp.Message = ""
	resp.RequestID = ""
	resp.Timestamp = time.Time{}
	resp.Details = nil
	errorResponsePool.Put(resp)
}

// ResponseBuilder writes the JSON envelopes of the API.
// Envelopes come from a sync.Pool and go back once gin has serialized them.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a new response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success sends data wrapped in a SuccessResponse.
func (b *ResponseBuilder) Success(statusCode int, data interface{}) {
	resp := getSuccessResponse()
	resp.Data = data
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	b.c.JSON(statusCode, resp)
	putSuccessResponse(resp)
}

// SuccessOK sends a 200 OK response with the given data.
func (b *ResponseBuilder) SuccessOK(data interface{}) {
	b.Success(http.StatusOK, data)
}

// Error sends an error response whose message is messageKey translated to the
// request's locale. err, when set, is attached to the context for ErrorHandler.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	b.abort(statusCode, i18n.T(b.c, messageKey), "", err)
}

// ValidationFailed answers 400 for a request that failed validation.
// A *dto.ValidationError contributes its translated key and the offending field.
func (b *ResponseBuilder) ValidationFailed(err error) {
	var ve *dto.ValidationError
	if !errors.As(err, &ve) {
		b.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	message := i18n.T(b.c, ve.Key)
	if ve.Key == "" {
		message = ve.Message
	}
	b.abort(http.StatusBadRequest, message, ve.Field, nil)
}

func (b *ResponseBuilder) abort(statusCode int, message, field string, err error) {
	resp := getErrorResponse()
	resp.Error = dto.ErrCodeFromStatus(statusCode)
	resp.Message = message
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()
	if field != "" {
		resp.Details = map[string]string{"field": field}
	}

	if err != nil {
		_ = b.c.Error(err)
	}

	b.c.AbortWithStatusJSON(statusCode, resp)
	putErrorResponse(resp)
}

// BuildRequest binds the JSON body of the request into a new T.
func BuildRequest[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	return &req, nil
}
