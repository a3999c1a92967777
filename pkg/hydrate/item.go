package hydrate

import (
	"context"
)

// Hydrator loads one item and then all of its children, producing a
// single combined result or a single failure.
type Hydrator[T, C any] struct {
	loader Loader[T]
	fanOut *FanOut[T, C]
}

// NewHydrator creates a hydrator over the given item loader and child fan-out.
func NewHydrator[T, C any](loader Loader[T], fanOut *FanOut[T, C]) *Hydrator[T, C] {
	if loader == nil {
		panic("item loader cannot be nil")
	}
	if fanOut == nil {
		panic("fan-out cannot be nil")
	}
	return &Hydrator[T, C]{
		loader: loader,
		fanOut: fanOut,
	}
}

// LoadItem loads the item for id, then fans out to load its children.
//
// The two steps are sequential: children are derived from the loaded
// item, so the fan-out cannot start until the item load has settled.
// If either step fails the whole call fails with a LoadError - an item
// load failure carries id, a child load failure carries the child's
// identifier. Callers never observe an item without its children or
// children without their item.
func (h *Hydrator[T, C]) LoadItem(ctx context.Context, id string) (ItemWithChildren[T, C], error) {
	item, err := h.loader.Load(ctx, id)
	if err != nil {
		return ItemWithChildren[T, C]{}, &LoadError{ID: id, Err: err}
	}

	children, err := h.fanOut.LoadChildren(ctx, item)
	if err != nil {
		return ItemWithChildren[T, C]{}, err
	}

	return ItemWithChildren[T, C]{
		Item:     item,
		Children: children,
	}, nil
}
