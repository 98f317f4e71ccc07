package domain

import "strings"

// Quote is a single shayari text entry owned by a category.
type Quote struct {
	// ID is the unique identifier for this quote.
	ID string

	// Text is the quote body as stored upstream. It may contain literal
	// backslash-n sequences which must be unescaped for display.
	Text string

	// CategoryID references the owning Category. The reference is not
	// enforced - it may dangle after a category is deleted.
	CategoryID string
}

// DisplayText returns the quote body with literal \n sequences
// converted to real newlines.
func (q *Quote) DisplayText() string {
	return UnescapeNewlines(q.Text)
}

// Validate checks the quote invariants.
func (q *Quote) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return NewValidationError("text", "must not be empty")
	}

	if q.CategoryID == "" {
		return NewValidationError("categoryId", "must not be empty")
	}

	return nil
}

// LabeledQuote is a quote joined with its category's display attributes.
// CategoryTitle falls back to UnknownCategoryTitle when the reference dangles.
type LabeledQuote struct {
	Quote

	CategoryTitle string
	CategoryEmoji string
}

// Label joins a quote with the category collection it belongs to.
func Label(q Quote, categories map[string]Category) LabeledQuote {
	labeled := LabeledQuote{
		Quote:         q,
		CategoryTitle: UnknownCategoryTitle,
	}

	if cat, ok := categories[q.CategoryID]; ok {
		labeled.CategoryTitle = cat.Title
		labeled.CategoryEmoji = cat.Emoji
	}

	return labeled
}

// UnescapeNewlines converts literal two-character \n sequences into
// real newlines for display.
func UnescapeNewlines(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}
