// Package listing implements the in-memory query pipeline the console
// applies to freshly fetched collections: free-text search, category
// filter, stable sort and page slicing, in that order.
//
// The pipeline is pure. It never mutates its input slice and holds no
// state between runs; every request re-runs it against the full
// collection returned by the upstream API.
package listing

import (
	"sort"
	"strings"
)

// Direction selects the sort order.
type Direction string

const (
	// Ascending sorts lexicographically low to high.
	Ascending Direction = "asc"

	// Descending sorts lexicographically high to low.
	Descending Direction = "desc"
)

// Query carries the per-request listing parameters. The zero value
// means "no search, no category filter, ascending, first page".
type Query struct {
	// Term is matched case-insensitively as a substring of the
	// record's search fields. Empty retains all records.
	Term string

	// Category restricts results to records whose category reference
	// equals this value. Empty retains all records. A value that no
	// record references yields an empty result, not an error.
	Category string

	// Sort is the direction applied to the pipeline's sort key.
	// Empty defaults to Ascending.
	Sort Direction

	// Key selects one of the pipeline's named sort keys. Empty or
	// unrecognized values fall back to the pipeline's default key.
	Key string

	// Page is the 1-based page number. Values outside [1, TotalPages]
	// are clamped.
	Page int
}

// Page is one window of the filtered, sorted collection.
type Page[T any] struct {
	Items      []T
	Number     int
	Size       int
	TotalItems int
	TotalPages int
}

// Pipeline binds the per-resource accessors and page size. Construct
// one per resource and reuse it; Run is safe for concurrent use.
type Pipeline[T any] struct {
	// SearchFields returns the text fields the search term is matched
	// against. Nil disables term filtering.
	SearchFields func(T) []string

	// CategoryKey returns the record's category reference. Nil
	// disables category filtering.
	CategoryKey func(T) string

	// SortKey returns the string the collection is ordered by when the
	// query names no key.
	SortKey func(T) string

	// SortKeys maps query-selectable key names to accessors. Nil means
	// the collection only orders by SortKey.
	SortKeys map[string]func(T) string

	// PageSize is the fixed number of records per page.
	PageSize int
}

// Run applies the pipeline stages to records and returns the requested
// page. The input slice is left untouched.
func (p Pipeline[T]) Run(records []T, q Query) Page[T] {
	filtered := p.filter(records, q)
	sorted := sortCopy(filtered, q.Sort, p.sortKeyFor(q.Key))

	return paginate(sorted, q.Page, p.PageSize)
}

// sortKeyFor resolves a named sort key, falling back to the default.
func (p Pipeline[T]) sortKeyFor(name string) func(T) string {
	if key, ok := p.SortKeys[name]; ok && name != "" {
		return key
	}

	return p.SortKey
}

func (p Pipeline[T]) filter(records []T, q Query) []T {
	term := strings.ToLower(strings.TrimSpace(q.Term))

	out := make([]T, 0, len(records))
	for _, rec := range records {
		if term != "" && p.SearchFields != nil && !matchesTerm(p.SearchFields(rec), term) {
			continue
		}

		if q.Category != "" && p.CategoryKey != nil && p.CategoryKey(rec) != q.Category {
			continue
		}

		out = append(out, rec)
	}

	return out
}

func matchesTerm(fields []string, term string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}

	return false
}

// sortCopy orders a copy of records by key. Ties keep their input
// order so repeated queries page consistently.
func sortCopy[T any](records []T, dir Direction, key func(T) string) []T {
	if key == nil {
		return records
	}

	out := make([]T, len(records))
	copy(out, records)

	sort.SliceStable(out, func(i, j int) bool {
		if dir == Descending {
			return key(out[i]) > key(out[j])
		}

		return key(out[i]) < key(out[j])
	})

	return out
}

func paginate[T any](records []T, page, size int) Page[T] {
	total := len(records)

	totalPages := 0
	if size > 0 {
		totalPages = (total + size - 1) / size
	}

	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	start := (page - 1) * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page[T]{
		Items:      records[start:end],
		Number:     page,
		Size:       size,
		TotalItems: total,
		TotalPages: totalPages,
	}
}
