package catalog

import "fmt"

// CatalogError is the base error type for catalog failures.
type CatalogError struct {
	Message string
}

func (e *CatalogError) Error() string {
	return e.Message
}

// LoadError indicates the catalog could not be constructed from the
// data directory. Loading is all-or-nothing, so a single LoadError
// aborts startup.
type LoadError struct {
	*CatalogError
	Path string
}

func NewLoadError(path, reason string) *LoadError {
	msg := reason
	if path != "" {
		msg = fmt.Sprintf("failed to load %q: %s", path, reason)
	}
	return &LoadError{
		CatalogError: &CatalogError{Message: msg},
		Path:         path,
	}
}

// NotFoundError indicates a lookup for an id the catalog does not hold.
type NotFoundError struct {
	*CatalogError
	Kind string
	ID   string
}

func NewNotFoundError(kind, id string) *NotFoundError {
	return &NotFoundError{
		CatalogError: &CatalogError{Message: fmt.Sprintf("unknown %s %q", kind, id)},
		Kind:         kind,
		ID:           id,
	}
}
