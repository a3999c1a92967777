// Package cache provides a Redis-backed caching decorator for loaders.
//
// CachedLoader wraps any hydrate.Loader and serves repeated loads of the
// same identifier from Redis instead of invoking the underlying loader.
// Entries are JSON-marshalled values stored under deterministic keys with
// a fixed TTL; expiry is delegated to Redis.
//
// Caching is deliberately kept out of the orchestration core - it is a
// property of the capability implementation, applied by wrapping the
// loader that is handed to the core.
//
// # Basic Usage
//
//	redisClient := redis.NewClient(&redis.Options{
//		Addr: "localhost:6379",
//	})
//
//	cached, err := cache.NewCachedLoader[webfetch.Document](docLoader, redisClient, cache.Config{
//		Namespace: "documents",
//		TTL:       5 * time.Minute,
//	})
//	if err != nil {
//		return err
//	}
//
//	// Hand the cached loader to the orchestration layer.
//	hydrator := hydrate.NewHydrator(cached, fanOut)
//
// # Failure Behavior
//
// Redis errors never fail a load: a broken cache degrades to a direct
// call of the wrapped loader, with the error logged and counted. Only the
// wrapped loader's own failures propagate to the caller.
//
// # Metrics
//
// The package exports Prometheus metrics:
//
//   - hydrate_cache_hits_total{namespace} - Cache hits
//   - hydrate_cache_misses_total{namespace} - Cache misses
//   - hydrate_cache_errors_total{operation} - Cache operation errors
package cache
