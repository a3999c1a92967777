package hydrate

import (
	"context"
	"fmt"
)

// Loader resolves an identifier to a value of type T.
//
// Implementations must be safe for concurrent use: the orchestration
// operations in this package invoke Load from many goroutines at once,
// each with a different identifier. Implementations are expected to be
// stateless or internally synchronized.
type Loader[T any] interface {
	// Load resolves id to a value. Any failure of the underlying
	// retrieval is returned as an error; the orchestration layer wraps
	// it with the originating identifier.
	Load(ctx context.Context, id string) (T, error)
}

// LoaderFunc adapts a plain function to the Loader interface.
type LoaderFunc[T any] func(ctx context.Context, id string) (T, error)

// Load implements Loader.
func (f LoaderFunc[T]) Load(ctx context.Context, id string) (T, error) {
	return f(ctx, id)
}

// ChildExtractor derives child identifiers from a loaded item.
//
// Extraction must be pure and synchronous: no I/O, no failure path, and
// the same item always yields the same sequence. An item with no
// children yields an empty slice, not an error.
type ChildExtractor[T any] interface {
	// ChildIDs returns the item's child identifiers in extraction
	// order. The order is meaningful: loaded children are returned in
	// exactly this order regardless of load completion timing.
	ChildIDs(item T) []string
}

// ChildExtractorFunc adapts a plain function to the ChildExtractor interface.
type ChildExtractorFunc[T any] func(item T) []string

// ChildIDs implements ChildExtractor.
func (f ChildExtractorFunc[T]) ChildIDs(item T) []string {
	return f(item)
}

// LoadError wraps a loader failure with the identifier that caused it.
type LoadError struct {
	// ID is the identifier whose load failed. For a child load failure
	// this is the child's identifier, not the parent's.
	ID  string
	Err error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	return fmt.Sprintf("load %q: %v", e.ID, e.Err)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *LoadError) Unwrap() error {
	return e.Err
}
