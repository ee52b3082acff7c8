package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"

	"storefront/internal/domain"
)

// Client consumes the remote public catalogue API. It caches the fetched
// categories and mapped products in memory for the process lifetime; nothing
// here is refreshed after the initial load.
//
// The underlying http.Client deliberately has no timeout: a hung catalogue
// request leaves the grid empty indefinitely rather than surfacing an error.
type Client struct {
	baseURL string
	apiKey  string
	perPage int
	http    *http.Client

	rawCategories []domain.Category
	categoryNames map[int64]string
	products      []domain.Product
}

// NewClient creates a catalogue client for the given API base URL and key.
// An empty key is allowed; requests are then sent unauthenticated.
func NewClient(baseURL, apiKey string, perPage int) *Client {
	return &Client{
		baseURL:       baseURL,
		apiKey:        apiKey,
		perPage:       perPage,
		http:          &http.Client{},
		categoryNames: map[int64]string{},
	}
}

type categoriesResponse struct {
	Categories []domain.Category `json:"categories"`
}

type productsResponse struct {
	Products []RawProduct `json:"products"`
}

// FetchCategories populates the in-memory category cache and the id->name
// resolution table. Any network failure or non-success status is a soft
// failure: it is logged and the cache keeps its previous value. It never
// reports an error to the caller.
func (c *Client) FetchCategories(ctx context.Context) {
	var payload categoriesResponse
	if err := c.getJSON(ctx, "/public/categories", &payload); err != nil {
		log.WithError(err).Warn("failed to fetch categories")
		return
	}
	names := make(map[int64]string, len(payload.Categories))
	for _, cat := range payload.Categories {
		names[cat.ID] = cat.Name
	}
	c.rawCategories = payload.Categories
	c.categoryNames = names
}

// FetchProducts fetches the product list and maps each record into its
// view-model, resolving category names against the cache populated by
// FetchCategories. On any failure it logs an error and returns an empty list;
// there is no local fallback data source.
func (c *Client) FetchProducts(ctx context.Context) []domain.Product {
	if c.apiKey == "" {
		log.Error("no public API key available; attempting unauthenticated product fetch")
	}
	var payload productsResponse
	path := fmt.Sprintf("/public/products?per_page=%d", c.perPage)
	if err := c.getJSON(ctx, path, &payload); err != nil {
		log.WithError(err).Error("failed to fetch products (no local fallback)")
		c.products = []domain.Product{}
		return c.products
	}
	products := make([]domain.Product, 0, len(payload.Products))
	for _, raw := range payload.Products {
		products = append(products, MapAPIProduct(raw, c.CategoryName(raw.CategoryID)))
	}
	c.products = products
	return products
}

// Products returns the cached product view-models from the last successful
// FetchProducts call.
func (c *Client) Products() []domain.Product {
	return c.products
}

// Categories returns the cached category list.
func (c *Client) Categories() []domain.Category {
	return c.rawCategories
}

// CategoryName resolves a category id to its name, or "" when unknown.
func (c *Client) CategoryName(id int64) string {
	return c.categoryNames[id]
}

func (c *Client) getJSON(ctx context.Context, path string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("catalog: request for %s failed with status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(v)
}
