package domain

import "github.com/google/uuid"

// IDFunc generates record identifiers.
type IDFunc func() string

// NewID returns an opaque identifier that sorts by creation time (UUIDv7).
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}
