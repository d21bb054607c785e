package domain

// Category is a catalog grouping of services, displayed as a page.
// It is read-only from the client's perspective.
type Category struct {
	// ID identifies the category; it is the route parameter of the page.
	ID string `json:"id"`

	// Name is the display name (e.g. "Haircuts").
	Name string `json:"name"`

	// Image is an optional upload filename served from /uploads.
	Image string `json:"image,omitempty"`
}

// HasImage reports whether the category carries an image.
func (c *Category) HasImage() bool {
	return c != nil && c.Image != ""
}
