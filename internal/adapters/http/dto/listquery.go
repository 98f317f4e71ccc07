package dto

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/MAHAK0804/QuoteAppAdmin/internal/listing"
)

// ListQueryRequest carries the listing controls common to every
// collection endpoint: free-text search, category filter, sort
// direction and page number.
type ListQueryRequest struct {
	// Search is a case-insensitive substring filter.
	Search string `form:"search"`

	// Category narrows the listing to a single category ID.
	Category string `form:"category"`

	// Sort is the alphabetical direction, "asc" (default) or "desc".
	Sort string `form:"sort" validate:"omitempty,oneof=asc desc"`

	// SortBy names the field the collection is ordered by. Resources
	// that only order by their default field ignore it.
	SortBy string `form:"sortBy" validate:"omitempty,oneof=title emoji"`

	// Page is the 1-based page number. Out-of-range pages clamp.
	Page int `form:"page" validate:"omitempty,gte=1"`
}

// BindListQuery binds and validates listing query parameters.
func BindListQuery(c *gin.Context) (listing.Query, error) {
	var req ListQueryRequest
	if err := BindQueryAndValidate(c, &req); err != nil {
		return listing.Query{}, err
	}

	return req.ToQuery(), nil
}

// ToQuery converts the request to a listing query with defaults applied.
func (r *ListQueryRequest) ToQuery() listing.Query {
	direction := listing.Ascending
	if r.Sort == string(listing.Descending) {
		direction = listing.Descending
	}

	page := r.Page
	if page < 1 {
		page = 1
	}

	return listing.Query{
		Term:     r.Search,
		Category: r.Category,
		Sort:     direction,
		Key:      r.SortBy,
		Page:     page,
	}
}

// PageResponse is the envelope for paginated collection responses.
type PageResponse[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

// NewPageResponse converts a listing page, mapping each item through fn.
func NewPageResponse[T, R any](page listing.Page[T], fn func(T) R) *PageResponse[R] {
	items := make([]R, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, fn(item))
	}

	return &PageResponse[R]{
		Items:      items,
		Page:       page.Number,
		PageSize:   page.Size,
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages,
	}
}

// ListResponse is the envelope for unpaginated collections (explore
// images, sounds).
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// NewListResponse wraps a slice, mapping each item through fn.
func NewListResponse[T, R any](items []T, fn func(T) R) *ListResponse[R] {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}

	return &ListResponse[R]{Items: out, Total: len(out)}
}

// ConfirmDeletion checks the confirm=true query parameter that guards
// every destructive endpoint. Returns an error when absent or not
// "true"; the caller must not touch the upstream in that case.
func ConfirmDeletion(c *gin.Context) error {
	if c.Query("confirm") != "true" {
		return fmt.Errorf("%w: deletion requires confirm=true", ErrValidation)
	}

	return nil
}
