package domain

// ExploreImage is a single entry in the explore gallery.
// It has no invariants beyond existence.
type ExploreImage struct {
	// ID is the unique identifier for this image.
	ID string

	// URL references the uploaded image.
	URL string
}
