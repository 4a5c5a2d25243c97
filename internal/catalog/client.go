package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/fjod/go_storefront/internal/catalog/cache"
	"github.com/fjod/go_storefront/internal/domain"
)

const (
	keyProducts   = "products"
	keyCategories = "categories"
)

// Client fetches the product catalog from the remote read-only API.
// Successful payloads are cached per query key; concurrent requests for
// the same key are collapsed with singleflight so a burst of identical
// queries costs one network round-trip. Failures are never cached, so a
// retry is simply a re-invocation.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      cache.Cache
	sfg        singleflight.Group
	log        *logrus.Logger
}

func NewClient(baseURL string, c cache.Cache, log *logrus.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		cache: c,
		log:   log,
	}
}

// Products returns every product in the catalog.
func (c *Client) Products(ctx context.Context) ([]domain.Product, error) {
	data, err := c.fetch(ctx, keyProducts, "/products")
	if err != nil {
		return nil, err
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, &FetchError{Resource: keyProducts, Err: fmt.Errorf("decode products: %w", err)}
	}
	return products, nil
}

// Categories returns the deduplicated category labels present in the catalog.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	data, err := c.fetch(ctx, keyCategories, "/products/categories")
	if err != nil {
		return nil, err
	}

	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &FetchError{Resource: keyCategories, Err: fmt.Errorf("decode categories: %w", err)}
	}

	seen := make(map[string]bool, len(raw))
	categories := make([]string, 0, len(raw))
	for _, label := range raw {
		if seen[label] {
			continue
		}
		seen[label] = true
		categories = append(categories, label)
	}
	return categories, nil
}

// Product returns a single product by id.
func (c *Client) Product(ctx context.Context, id int64) (*domain.Product, error) {
	key := fmt.Sprintf("product:%d", id)
	data, err := c.fetch(ctx, key, fmt.Sprintf("/products/%d", id))
	if err != nil {
		return nil, err
	}

	var product domain.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, &FetchError{Resource: key, Err: fmt.Errorf("decode product: %w", err)}
	}
	return &product, nil
}

func (c *Client) fetch(ctx context.Context, key, path string) ([]byte, error) {
	v, err, _ := c.sfg.Do(key, func() (interface{}, error) {
		data, err := c.cache.Get(ctx, key)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			c.log.WithError(err).WithField("key", key).Warn("catalog cache get failed")
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
		if err != nil {
			return nil, &FetchError{Resource: key, Err: err}
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, &FetchError{Resource: key, Err: err}
		}
		defer resp.Body.Close()

		if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
			return nil, &FetchError{Resource: key, Status: resp.StatusCode}
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, &FetchError{Resource: key, Err: err}
		}

		if errSet := c.cache.Set(ctx, key, body); errSet != nil {
			c.log.WithError(errSet).WithField("key", key).Warn("catalog cache set failed")
		}

		return body, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}
