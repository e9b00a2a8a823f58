package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Client fetches products from the public demo catalog API.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = "https://fakestoreapi.com"
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, http: httpClient}
}

// Products returns the clothing products the storefront carries.
func (c *Client) Products(ctx context.Context) ([]Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/products", nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog api returned %s", resp.Status)
	}

	var all []Product
	if err := json.NewDecoder(resp.Body).Decode(&all); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	clothing := make([]Product, 0, len(all))
	for _, p := range all {
		if isClothing(p.Category) {
			clothing = append(clothing, p)
		}
	}
	return clothing, nil
}
