// internal/domain/catalog/client.go
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// ErrProductNotFound is returned for any lookup the catalog could not satisfy.
// Transport and decode failures collapse into it after being logged.
var ErrProductNotFound = errors.New("product not found")

// Client fetches product records from the remote catalog API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient creates a catalog client for the given base URL.
func NewClient(baseURL string, timeout time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Fetch retrieves a single product by ID. It makes one best-effort request:
// no retries, no caching. Any failure short of a decoded 200 response is
// reported as ErrProductNotFound.
func (c *Client) Fetch(ctx context.Context, id int) (*Product, error) {
	url := fmt.Sprintf("%s/products/%d", c.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithError(err).WithField("product_id", id).Warn("Catalog request failed")
		return nil, ErrProductNotFound
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.WithFields(logrus.Fields{
			"product_id":  id,
			"status_code": resp.StatusCode,
		}).Warn("Catalog returned non-OK status")
		return nil, ErrProductNotFound
	}

	var product Product
	if err := json.NewDecoder(resp.Body).Decode(&product); err != nil {
		c.logger.WithError(err).WithField("product_id", id).Warn("Failed to decode catalog response")
		return nil, ErrProductNotFound
	}

	// The catalog answers some unknown IDs with an empty body instead of 404.
	if product.ID == 0 {
		return nil, ErrProductNotFound
	}

	return &product, nil
}
