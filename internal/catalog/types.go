package catalog

import "errors"

// Draft carries raw form input for a product create or update. Numeric fields
// arrive as strings exactly as the presentation layer collects them and are
// parsed during validation.
type Draft struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    string `json:"price"`
	Stock    string `json:"stock"`
	Rating   string `json:"rating"`
	Reviews  string `json:"reviews"`
	Image    string `json:"image"`
}

// FieldErrors maps field names to validation messages. One entry per invalid
// field; an empty map means the draft is valid.
type FieldErrors map[string]string

var (
	ErrNotFound = errors.New("catalog: not found")
)
