package dto

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/MAHAK0804/QuoteAppAdmin/internal/domain"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/platform/logging"
)

// GetTraceID returns the trace ID for the request: the "trace_id"
// context value when middleware stored one, then the X-Request-ID
// header, then the recording OpenTelemetry span.
func GetTraceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if id, ok := v.(string); ok {
			return id
		}

		return ""
	}

	if id := c.GetHeader("X-Request-ID"); id != "" {
		return id
	}

	if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
		return span.SpanContext().TraceID().String()
	}

	return ""
}

// MapError maps a domain error to an HTTP status code and error envelope.
// Unknown errors are mapped to 500 Internal Server Error with a generic message.
func MapError(err error) (int, *ErrorResponse) {
	if err == nil {
		return http.StatusOK, nil
	}

	switch {
	case domain.IsNotFound(err):
		return http.StatusNotFound, NewErrorResponse(ErrorCodeNotFound, err.Error())

	case domain.IsConflict(err):
		return http.StatusConflict, NewErrorResponse(ErrorCodeConflict, err.Error())

	case domain.IsValidation(err):
		resp := NewErrorResponse(ErrorCodeValidation, err.Error())

		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) && validationErr.Field != "" {
			resp.Error.Details = map[string]string{
				validationErr.Field: validationErr.Message,
			}
		}

		return http.StatusBadRequest, resp

	case domain.IsUnauthorized(err):
		return http.StatusUnauthorized, NewErrorResponse(ErrorCodeUnauthorized, err.Error())

	case domain.IsForbidden(err):
		return http.StatusForbidden, NewErrorResponse(ErrorCodeForbidden, err.Error())

	case domain.IsUnavailable(err):
		return http.StatusServiceUnavailable, NewErrorResponse(ErrorCodeUnavailable, err.Error())

	default:
		// Unknown errors get a generic message to avoid leaking internals
		return http.StatusInternalServerError, NewErrorResponse(
			ErrorCodeInternal,
			"an internal error occurred",
		)
	}
}

// HandleBindingError writes a 400 response for request binding or
// validation failures, with field-level details when the validator
// produced them.
func HandleBindingError(c *gin.Context, err error) {
	var errResp *ErrorResponse

	if fieldErrors := ValidationErrors(err); len(fieldErrors) > 0 {
		errResp = NewErrorResponseWithDetails(ErrorCodeValidation, "request validation failed", fieldErrors)
	} else if errors.Is(err, ErrValidation) {
		errResp = NewErrorResponse(ErrorCodeValidation, err.Error())
	} else {
		errResp = NewErrorResponse(ErrorCodeBadRequest, err.Error())
	}

	errResp.TraceID = GetTraceID(c)
	c.JSON(http.StatusBadRequest, errResp)
}

// HandleError writes a domain error as a JSON error response with the
// trace ID attached.
func HandleError(c *gin.Context, err error) {
	status, errResp := MapError(err)
	errResp.TraceID = GetTraceID(c)

	if status == http.StatusInternalServerError {
		logger := logging.FromContext(c.Request.Context())
		logger.Error("internal error",
			"error", err.Error(),
			"trace_id", errResp.TraceID,
		)
	}

	c.JSON(status, errResp)
}
