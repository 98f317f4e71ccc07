package domain

import "strings"

// Sound is an uploadable audio clip with a cover image.
type Sound struct {
	// ID is the unique identifier for this sound.
	ID string

	// Title is the display name. Required on upload.
	Title string

	// URL references the uploaded audio file.
	URL string

	// ImageURL references the cover image.
	ImageURL string
}

// Validate checks the sound invariants for a full upload.
// Updates permit partial replacement and are validated separately.
func (s *Sound) Validate() error {
	if strings.TrimSpace(s.Title) == "" {
		return NewValidationError("title", "must not be empty")
	}

	return nil
}
