package acl

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MAHAK0804/QuoteAppAdmin/internal/adapters/clients"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/domain"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/platform/config"
)

// testConfig returns a minimal config for testing.
func testConfig(baseURL string) *clients.Config {
	return &clients.Config{
		ServiceName: "content-api",
		BaseURL:     baseURL,
		Timeout:     5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     100 * time.Millisecond,
			Multiplier:      2.0,
		},
		Circuit: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       time.Second,
			HalfOpenLimit: 2,
		},
	}
}

// --- Error Mapping Tests ---

func TestMapHTTPError_NotFound(t *testing.T) {
	resp := &http.Response{
		StatusCode: http.StatusNotFound,
		Body:       io.NopCloser(strings.NewReader(`{"error":"Quote not found"}`)),
	}

	err := MapHTTPError(resp, nil, "content-api", "get quote", "quote-123")

	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err), "expected NotFoundError")

	var notFoundErr *domain.NotFoundError
	require.True(t, errors.As(err, &notFoundErr))
	assert.Equal(t, "quote-123", notFoundErr.ID)
}

func TestMapHTTPError_Conflict(t *testing.T) {
	resp := &http.Response{
		StatusCode: http.StatusConflict,
		Body:       io.NopCloser(strings.NewReader(`{"error":"category already exists"}`)),
	}

	err := MapHTTPError(resp, nil, "content-api", "create category", "")

	require.Error(t, err)
	assert.True(t, domain.IsConflict(err), "expected ConflictError")
}

func TestMapHTTPError_ValidationWithDetails(t *testing.T) {
	body := `{
		"error": {
			"code": "VALIDATION_ERROR",
			"message": "validation failed",
			"details": {
				"title": "must not be empty"
			}
		}
	}`
	resp := &http.Response{
		StatusCode: http.StatusBadRequest,
		Body:       io.NopCloser(strings.NewReader(body)),
	}

	err := MapHTTPError(resp, nil, "content-api", "create category", "")

	require.Error(t, err)
	assert.True(t, domain.IsValidation(err), "expected ValidationError")

	var validationErr *domain.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "title", validationErr.Field)
}

func TestMapHTTPError_Forbidden(t *testing.T) {
	resp := &http.Response{
		StatusCode: http.StatusForbidden,
		Body:       io.NopCloser(strings.NewReader(`{"error":"insufficient permissions"}`)),
	}

	err := MapHTTPError(resp, nil, "content-api", "delete category", "cat-123")

	require.Error(t, err)
	assert.True(t, domain.IsForbidden(err), "expected ForbiddenError")
}

func TestMapHTTPError_Unauthorized(t *testing.T) {
	resp := &http.Response{
		StatusCode: http.StatusUnauthorized,
		Body:       io.NopCloser(strings.NewReader(`{"error":"invalid token"}`)),
	}

	err := MapHTTPError(resp, nil, "content-api", "get quotes", "")

	require.Error(t, err)
	assert.True(t, domain.IsUnauthorized(err), "expected UnauthorizedError for 401")
	assert.Contains(t, err.Error(), "invalid token")
}

func TestMapHTTPError_ServerError(t *testing.T) {
	resp := &http.Response{
		StatusCode: http.StatusInternalServerError,
		Body:       io.NopCloser(strings.NewReader(`{"error":"internal error"}`)),
	}

	err := MapHTTPError(resp, nil, "content-api", "get quotes", "")

	require.Error(t, err)
	assert.True(t, domain.IsUnavailable(err), "expected UnavailableError")
}

func TestMapHTTPError_RateLimited(t *testing.T) {
	resp := &http.Response{
		StatusCode: http.StatusTooManyRequests,
		Body:       io.NopCloser(strings.NewReader(`{}`)),
	}

	err := MapHTTPError(resp, nil, "content-api", "get quotes", "")

	require.Error(t, err)
	assert.True(t, domain.IsUnavailable(err), "expected UnavailableError for rate limit")
	assert.Contains(t, err.Error(), "rate limit")
}

func TestMapHTTPError_CircuitOpen(t *testing.T) {
	err := MapHTTPError(nil, clients.ErrCircuitOpen, "content-api", "get quotes", "")

	require.Error(t, err)
	assert.True(t, domain.IsUnavailable(err))
	assert.Contains(t, err.Error(), "circuit breaker open")
}

func TestMapHTTPError_MaxRetriesExceeded(t *testing.T) {
	err := MapHTTPError(nil, clients.ErrMaxRetriesExceeded, "content-api", "get quotes", "")

	require.Error(t, err)
	assert.True(t, domain.IsUnavailable(err))
	assert.Contains(t, err.Error(), "max retries exceeded")
}

func TestMapHTTPError_SuccessReturnsNil(t *testing.T) {
	resp := &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(`{}`)),
	}

	err := MapHTTPError(resp, nil, "content-api", "get quotes", "")

	assert.NoError(t, err)
}

func TestMapHTTPError_NilResponse(t *testing.T) {
	err := MapHTTPError(nil, nil, "content-api", "get quotes", "")

	require.Error(t, err)
	assert.True(t, domain.IsUnavailable(err))
	assert.Contains(t, err.Error(), "no response received")
}

// --- Error Body Parsing Tests ---

func TestParseErrorResponse_FlatString(t *testing.T) {
	errResp := ParseErrorResponse(strings.NewReader(`{"error":"Quote not found"}`))

	require.NotNil(t, errResp)
	assert.Equal(t, "Quote not found", errResp.GetMessage())
	assert.Empty(t, errResp.GetCode())
}

func TestParseErrorResponse_NestedObject(t *testing.T) {
	errResp := ParseErrorResponse(strings.NewReader(`{"error":{"code":"NOT_FOUND","message":"missing"}}`))

	require.NotNil(t, errResp)
	assert.Equal(t, "NOT_FOUND", errResp.GetCode())
	assert.Equal(t, "missing", errResp.GetMessage())
}

func TestParseErrorResponse_MalformedBody(t *testing.T) {
	assert.Nil(t, ParseErrorResponse(strings.NewReader(`<html>gateway error</html>`)))
	assert.Nil(t, ParseErrorResponse(nil))
}

// --- Translation Tests ---

func TestDecodeResponse_Success(t *testing.T) {
	body := io.NopCloser(strings.NewReader(`{"_id":"123","title":"Love"}`))

	type testStruct struct {
		ID    string `json:"_id"`
		Title string `json:"title"`
	}

	result, err := DecodeResponse[testStruct](body)

	require.NoError(t, err)
	assert.Equal(t, "123", result.ID)
	assert.Equal(t, "Love", result.Title)
}

func TestDecodeResponse_InvalidJSON(t *testing.T) {
	body := io.NopCloser(strings.NewReader(`invalid json`))

	type testStruct struct{}

	_, err := DecodeResponse[testStruct](body)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding response")
}

func TestDecodeResponse_NilBody(t *testing.T) {
	type testStruct struct{}

	_, err := DecodeResponse[testStruct](nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "nil")
}

func TestDecodeResponseForService_Success(t *testing.T) {
	body := io.NopCloser(strings.NewReader(`{"_id":"123"}`))

	type testStruct struct {
		ID string `json:"_id"`
	}

	result, err := DecodeResponseForService[testStruct](body, "content-api")

	require.NoError(t, err)
	assert.Equal(t, "123", result.ID)
}

func TestDecodeResponseForService_Error(t *testing.T) {
	body := io.NopCloser(strings.NewReader(`invalid json`))

	type testStruct struct{}

	_, err := DecodeResponseForService[testStruct](body, "content-api")

	require.Error(t, err)
	assert.True(t, domain.IsUnavailable(err), "expected UnavailableError for decode failure")
}

func TestValidateRequired(t *testing.T) {
	err := ValidateRequired("", "name")
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	err = ValidateRequired("value", "name")
	assert.NoError(t, err)
}
