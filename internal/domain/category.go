package domain

import "strings"

// Category groups quotes under a display title with an optional emoji
// glyph and icon image.
// This is a domain entity - it has no knowledge of external systems.
type Category struct {
	// ID is the unique identifier for this category. It is stable across edits.
	ID string

	// Title is the display name. Never empty for a valid category.
	Title string

	// Emoji is an optional single glyph shown next to the title.
	Emoji string

	// IconURL is an optional reference to an uploaded icon image.
	IconURL string
}

// Validate checks the category invariants.
func (c *Category) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return NewValidationError("title", "must not be empty")
	}

	return nil
}

// UnknownCategoryTitle is the label used for quotes whose category
// reference no longer resolves. Dangling references are a display-only
// degradation, not an error.
const UnknownCategoryTitle = "Unknown"
