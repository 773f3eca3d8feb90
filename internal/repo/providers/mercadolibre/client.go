package mercadolibre

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/nguyentranbao-ct/price-scout/internal/config"
)

// SearchItem is the raw listing shape from the MercadoLibre site-search API.
type SearchItem struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Price      float64 `json:"price"`
	CurrencyID string  `json:"currency_id"`
	Permalink  string  `json:"permalink"`
	Thumbnail  string  `json:"thumbnail"`
}

type SearchResponse struct {
	Query   string       `json:"query"`
	Results []SearchItem `json:"results"`
}

type Client interface {
	SearchItems(ctx context.Context, term string, limit int) (*SearchResponse, error)
}

type client struct {
	httpClient *http.Client
	baseURL    string
	site       string
}

func NewClient(cfg config.MercadoLibreConfig) Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: cfg.BaseURL,
		site:    cfg.Site,
	}
}

func (c *client) SearchItems(ctx context.Context, term string, limit int) (*SearchResponse, error) {
	if limit <= 0 {
		limit = 10
	}

	endpoint := fmt.Sprintf("%s/sites/%s/search?q=%s&limit=%d",
		c.baseURL, c.site, url.QueryEscape(term), limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search API returned status %d", resp.StatusCode)
	}

	var searchResp SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	return &searchResp, nil
}
