package utils

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

func traceID(c *gin.Context) string {
	return c.GetString("trace_id")
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	respond(c, http.StatusOK, data, message)
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	respond(c, http.StatusCreated, data, message)
}

func respond(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError turns a service error into the JSON error envelope.
// The status comes from the error kind; the message from the error itself.
func HandleServiceError(c *gin.Context, err error) {
	var upstream *UpstreamError

	switch {
	case errors.As(err, &upstream):
		logFromContext(c).Error("upstream call failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, APIResponse{
			Status:  "error",
			Code:    http.StatusInternalServerError,
			Message: upstream.Error(),
			TraceID: traceID(c),
			Details: upstream.Details,
		})
	case errors.Is(err, ErrNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrConflict),
		errors.Is(err, ErrAuth),
		errors.Is(err, ErrIndexOutOfRange):
		RespondError(c, http.StatusBadRequest, unwrapMessage(err))
	case errors.Is(err, ErrMailDelivery):
		logFromContext(c).Error("mail delivery failed", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Error sending invitation email")
	default:
		logFromContext(c).Error("unhandled service error", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// unwrapMessage drops the kind prefix from a wrapped sentinel,
// e.g. "validation error: budget is required" -> "budget is required".
func unwrapMessage(err error) string {
	msg := err.Error()
	for _, kind := range []error{ErrValidation, ErrConflict, ErrAuth} {
		if rest, ok := strings.CutPrefix(msg, kind.Error()+": "); ok {
			return rest
		}
	}
	return msg
}

// logFromContext returns the request-scoped logger set by the logging
// middleware, or a no-op logger outside of it.
func logFromContext(c *gin.Context) *zap.Logger {
	if l, ok := c.Get("logger"); ok {
		if zl, ok := l.(*zap.Logger); ok {
			return zl
		}
	}
	return zap.NewNop()
}
