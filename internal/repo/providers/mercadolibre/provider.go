package mercadolibre

import (
	"context"
	"time"

	"github.com/nguyentranbao-ct/price-scout/internal/models"
	"github.com/nguyentranbao-ct/price-scout/internal/repo/providers"
	"github.com/nguyentranbao-ct/price-scout/pkg/util"
)

const ProviderName = "mercadolibre"

// Provider adapts the MercadoLibre search API to the SearchProvider
// capability. Listing fields are mapped best-effort; a missing thumbnail or
// permalink stays empty rather than failing the listing.
type Provider struct {
	client Client
	limit  int
}

func NewProvider(client Client, limit int) *Provider {
	if limit <= 0 {
		limit = 10
	}
	return &Provider{
		client: client,
		limit:  limit,
	}
}

func (p *Provider) Name() string {
	return ProviderName
}

func (p *Provider) Search(ctx context.Context, term string) ([]models.Product, error) {
	resp, err := p.client.SearchItems(ctx, term, p.limit)
	if err != nil {
		return nil, providers.NewProviderError(ProviderName, "Search", "upstream search failed", err)
	}

	checked := time.Now()
	return util.ConvertList(resp.Results, func(item SearchItem) models.Product {
		return models.Product{
			ID:          item.ID,
			Name:        item.Title,
			Price:       item.Price,
			Currency:    item.CurrencyID,
			URL:         item.Permalink,
			Source:      ProviderName,
			Image:       item.Thumbnail,
			LastChecked: &checked,
		}
	}), nil
}
