// Package hydrate provides concurrent item-with-children loading.
//
// The package composes three caller-supplied capabilities - load an item
// by identifier, derive child identifiers from a loaded item, load a
// child by identifier - into higher-level loading operations:
//
//   - FanOut loads all children of one item concurrently, preserving
//     extraction order in the result.
//   - Hydrator loads one item and then its children, as a single
//     all-or-nothing operation.
//   - BatchLoader runs a Hydrator for many identifiers concurrently and
//     partitions the outcomes into successes and failures, each ordered
//     by input position.
//
// Example usage:
//
//	fanOut := hydrate.NewFanOut(assetLoader, assetExtractor)
//	hydrator := hydrate.NewHydrator(docLoader, fanOut)
//	batch := hydrate.NewBatchLoader(hydrator)
//
//	result := batch.LoadAll(ctx, []string{"doc-1", "doc-2", "doc-3"})
//	for _, f := range result.Failures {
//		log.Warn().Str("id", f.ID).Err(f.Err).Msg("Document load failed")
//	}
//
// The batch loader:
//   - Starts every identifier's load before awaiting any result
//   - Isolates failures per identifier (one bad id never aborts siblings)
//   - Orders successes and failures by input position, never by
//     completion order
//   - Completes only after every identifier has settled
//
// Loading itself (HTTP, disk, cache) is out of scope; callers supply it
// through the Loader and ChildExtractor contracts. Retry, rate limiting
// and caching belong to those implementations - see pkg/webfetch,
// pkg/cache and pkg/guard for decorators that add them.
package hydrate
