package webfetch

import (
	"context"
	"net/url"
)

// Document is the item type: a page with embedded asset references.
type Document struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	AssetIDs []string `json:"asset_ids"`
}

// Asset is the child type: an embedded resource referenced by a document.
type Asset struct {
	ID          string `json:"id"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"data"`
}

// DocumentLoader loads documents over HTTP. It implements hydrate.Loader[Document].
type DocumentLoader struct {
	client *Client
}

// Documents returns a loader for GET /documents/{id}.
func (c *Client) Documents() *DocumentLoader {
	return &DocumentLoader{client: c}
}

// Load fetches one document by identifier.
func (l *DocumentLoader) Load(ctx context.Context, id string) (Document, error) {
	var doc Document
	if err := l.client.getJSON(ctx, "/documents/"+url.PathEscape(id), "document", &doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// AssetLoader loads assets over HTTP. It implements hydrate.Loader[Asset].
type AssetLoader struct {
	client *Client
}

// Assets returns a loader for GET /assets/{id}.
func (c *Client) Assets() *AssetLoader {
	return &AssetLoader{client: c}
}

// Load fetches one asset by identifier.
func (l *AssetLoader) Load(ctx context.Context, id string) (Asset, error) {
	var asset Asset
	if err := l.client.getJSON(ctx, "/assets/"+url.PathEscape(id), "asset", &asset); err != nil {
		return Asset{}, err
	}
	return asset, nil
}

// AssetExtractor derives asset identifiers from a document.
// It implements hydrate.ChildExtractor[Document].
type AssetExtractor struct{}

// ChildIDs returns the document's asset identifiers in document order.
func (AssetExtractor) ChildIDs(doc Document) []string {
	return doc.AssetIDs
}
