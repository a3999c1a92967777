// Command hydrate-fetch loads documents with their assets from a document
// API and prints a per-identifier summary. Identifiers are passed as
// arguments; configuration comes from the environment.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Sternrassler/hydrate/pkg/cache"
	"github.com/Sternrassler/hydrate/pkg/hydrate"
	"github.com/Sternrassler/hydrate/pkg/logging"
	"github.com/Sternrassler/hydrate/pkg/webfetch"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run prints the per-identifier summary to out; usage and setup errors
// go to errOut.
func run(ids []string, out, errOut io.Writer) int {
	logging.Setup(logging.Config{
		Level:  logging.LogLevel(getEnv("LOG_LEVEL", "info")),
		Pretty: getEnv("LOG_PRETTY", "") != "",
		Output: os.Stderr,
	})

	if len(ids) == 0 {
		fmt.Fprintln(errOut, "usage: hydrate-fetch <document-id> [<document-id> ...]")
		return 2
	}

	baseURL := getEnv("HYDRATE_BASE_URL", "http://localhost:8080")
	userAgent := getEnv("HYDRATE_USER_AGENT", "hydrate-fetch/0.1.0")

	client, err := webfetch.New(webfetch.DefaultConfig(baseURL, userAgent))
	if err != nil {
		fmt.Fprintf(errOut, "error: create client: %v\n", err)
		return 1
	}

	var docLoader hydrate.Loader[webfetch.Document] = webfetch.NewRetryLoader[webfetch.Document](
		client.Documents(), webfetch.DefaultRetryConfig())
	var assetLoader hydrate.Loader[webfetch.Asset] = webfetch.NewRetryLoader[webfetch.Asset](
		client.Assets(), webfetch.DefaultRetryConfig())

	// Optional Redis cache in front of both loaders
	if redisURL := getEnv("REDIS_URL", ""); redisURL != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: redisURL})
		defer redisClient.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisClient.Ping(ctx).Err()
		cancel()
		if err != nil {
			fmt.Fprintf(errOut, "error: connect to redis: %v\n", err)
			return 1
		}

		cachedDocs, err := cache.NewCachedLoader[webfetch.Document](docLoader, redisClient, cache.DefaultConfig("documents"))
		if err != nil {
			fmt.Fprintf(errOut, "error: cache setup: %v\n", err)
			return 1
		}
		cachedAssets, err := cache.NewCachedLoader[webfetch.Asset](assetLoader, redisClient, cache.DefaultConfig("assets"))
		if err != nil {
			fmt.Fprintf(errOut, "error: cache setup: %v\n", err)
			return 1
		}
		docLoader, assetLoader = cachedDocs, cachedAssets
	}

	fanOut := hydrate.NewFanOut[webfetch.Document, webfetch.Asset](assetLoader, webfetch.AssetExtractor{})
	hydrator := hydrate.NewHydrator[webfetch.Document, webfetch.Asset](docLoader, fanOut)
	batch := hydrate.NewBatchLoader[webfetch.Document, webfetch.Asset](hydrator)

	result := batch.LoadAll(context.Background(), ids)

	fmt.Fprint(out, summarize(result))

	if len(result.Failures) > 0 {
		return 1
	}
	return 0
}

// summarize renders one line per identifier, successes first, each group
// in input order.
func summarize(result hydrate.Partitioned[hydrate.ItemWithChildren[webfetch.Document, webfetch.Asset]]) string {
	var b strings.Builder

	for _, s := range result.Successes {
		fmt.Fprintf(&b, "ok   %s  %q  assets=%d\n", s.ID, s.Value.Item.Title, len(s.Value.Children))
	}
	for _, f := range result.Failures {
		fmt.Fprintf(&b, "fail %s  %v\n", f.ID, f.Err)
	}
	fmt.Fprintf(&b, "%d succeeded, %d failed\n", len(result.Successes), len(result.Failures))

	return b.String()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
