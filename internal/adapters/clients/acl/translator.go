package acl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/MAHAK0804/QuoteAppAdmin/internal/adapters/clients"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/domain"
)

// BaseAdapter provides common functionality for ACL adapters.
// Embed this in your service-specific adapters.
type BaseAdapter struct {
	client      *clients.Client
	serviceName string
}

// NewBaseAdapter creates a new base adapter with the given client and service name.
func NewBaseAdapter(client *clients.Client, serviceName string) BaseAdapter {
	return BaseAdapter{
		client:      client,
		serviceName: serviceName,
	}
}

// Client returns the underlying HTTP client.
func (a *BaseAdapter) Client() *clients.Client {
	return a.client
}

// ServiceName returns the name of the external service.
func (a *BaseAdapter) ServiceName() string {
	return a.serviceName
}

// Get performs a GET request and returns the response body.
// The caller must close the body. entityID is used for not-found mapping
// and may be empty for collection requests.
func (a *BaseAdapter) Get(ctx context.Context, path, operation, entityID string) (io.ReadCloser, error) {
	resp, err := a.client.Get(ctx, path)
	return a.checkResponse(resp, err, operation, entityID)
}

// Post performs a JSON POST request and returns the response body.
func (a *BaseAdapter) Post(ctx context.Context, path string, body io.Reader, operation string) (io.ReadCloser, error) {
	resp, err := a.client.Post(ctx, path, body)
	return a.checkResponse(resp, err, operation, "")
}

// Put performs a JSON PUT request and returns the response body.
func (a *BaseAdapter) Put(ctx context.Context, path string, body io.Reader, operation, entityID string) (io.ReadCloser, error) {
	resp, err := a.client.Put(ctx, path, body)
	return a.checkResponse(resp, err, operation, entityID)
}

// Delete performs a DELETE request and discards the response body.
func (a *BaseAdapter) Delete(ctx context.Context, path, operation, entityID string) error {
	resp, respErr := a.client.Delete(ctx, path)

	body, err := a.checkResponse(resp, respErr, operation, entityID)
	if err != nil {
		return err
	}

	return drain(body)
}

// PostForm performs a multipart POST request and discards the response body.
func (a *BaseAdapter) PostForm(ctx context.Context, path string, form *clients.MultipartForm, operation string) error {
	resp, respErr := a.client.PostForm(ctx, path, form)

	body, err := a.checkResponse(resp, respErr, operation, "")
	if err != nil {
		return err
	}

	return drain(body)
}

// PutForm performs a multipart PUT request and discards the response body.
func (a *BaseAdapter) PutForm(ctx context.Context, path string, form *clients.MultipartForm, operation, entityID string) error {
	resp, respErr := a.client.PutForm(ctx, path, form)

	body, err := a.checkResponse(resp, respErr, operation, entityID)
	if err != nil {
		return err
	}

	return drain(body)
}

// checkResponse maps transport and status failures to domain errors and
// hands successful bodies to the caller.
func (a *BaseAdapter) checkResponse(resp *http.Response, err error, operation, entityID string) (io.ReadCloser, error) {
	if err != nil {
		return nil, MapHTTPError(nil, err, a.serviceName, operation, entityID)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		defer func() { _ = resp.Body.Close() }()

		return nil, MapHTTPError(resp, nil, a.serviceName, operation, entityID)
	}

	return resp.Body, nil
}

// drain discards and closes a response body so the connection can be reused.
func drain(body io.ReadCloser) error {
	if body == nil {
		return nil
	}

	_, _ = io.Copy(io.Discard, body)

	return body.Close()
}

// DecodeResponse reads and decodes a JSON response body into the target type.
// Closes the body after reading.
func DecodeResponse[T any](body io.ReadCloser) (*T, error) {
	if body == nil {
		return nil, fmt.Errorf("response body is nil")
	}
	defer func() { _ = body.Close() }()

	var result T
	if err := json.NewDecoder(body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &result, nil
}

// DecodeResponseForService decodes a JSON response body, mapping decode
// failures to an unavailable error attributed to the named service.
func DecodeResponseForService[T any](body io.ReadCloser, serviceName string) (*T, error) {
	result, err := DecodeResponse[T](body)
	if err != nil {
		return nil, domain.NewUnavailableError(serviceName, err.Error())
	}

	return result, nil
}

// ValidateRequired checks that a required field is not empty.
// Returns a domain.ValidationError if the field is empty.
func ValidateRequired(value, fieldName string) error {
	if value == "" {
		return domain.NewValidationError(fieldName, "is required")
	}

	return nil
}
