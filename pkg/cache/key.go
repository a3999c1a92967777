package cache

import (
	"strings"
)

// Key identifies one cached value.
type Key struct {
	// Namespace separates values of different types sharing one Redis
	// instance (e.g., "documents", "assets").
	Namespace string

	// ID is the identifier of the cached value.
	ID string
}

// String generates a deterministic cache key string.
// Format: hydrate:namespace:id
//
// Example:
//
//	hydrate:documents:doc-42
func (k Key) String() string {
	parts := []string{"hydrate"}

	if ns := strings.Trim(k.Namespace, ":"); ns != "" {
		parts = append(parts, ns)
	}
	parts = append(parts, k.ID)

	return strings.Join(parts, ":")
}
