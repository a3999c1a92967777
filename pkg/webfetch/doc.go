// Package webfetch provides HTTP-backed capability implementations for
// the hydrate orchestration core.
//
// The package targets a JSON document API: documents are fetched from
// GET /documents/{id} and reference embedded assets by identifier, which
// are fetched from GET /assets/{id}. DocumentLoader and AssetLoader
// implement hydrate.Loader; AssetExtractor implements
// hydrate.ChildExtractor[Document].
//
// Example usage:
//
//	client, err := webfetch.New(webfetch.DefaultConfig("https://origin.example", "MyApp/1.0.0"))
//	if err != nil {
//		return err
//	}
//
//	fanOut := hydrate.NewFanOut[webfetch.Document, webfetch.Asset](
//		client.Assets(), webfetch.AssetExtractor{})
//	hydrator := hydrate.NewHydrator[webfetch.Document, webfetch.Asset](
//		client.Documents(), fanOut)
//
// Retry is available as a loader decorator (NewRetryLoader), keeping it
// out of the orchestration core per its contract. Errors are classified
// (client, server, network) to decide retry eligibility and for metrics.
package webfetch
