package validator

import "errors"

var (
	// ErrInvalidCatalog is returned when a message catalog cannot be parsed.
	ErrInvalidCatalog = errors.New("validator: invalid message catalog")

	// ErrEmptyCatalog is returned when a catalog holds no messages.
	ErrEmptyCatalog = errors.New("validator: message catalog is empty")
)
