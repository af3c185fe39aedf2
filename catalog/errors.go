package catalog

import "errors"

// Error values for catalog construction and lookup.
var (
	ErrInvalidItem    = errors.New("invalid catalog item")
	ErrDuplicateItem  = errors.New("duplicate catalog item")
	ErrInvalidCatalog = errors.New("invalid catalog")
	ErrNotFound       = errors.New("item not found")
)
