package mercadolibre_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nguyentranbao-ct/price-scout/internal/config"
	"github.com/nguyentranbao-ct/price-scout/internal/repo/providers"
	"github.com/nguyentranbao-ct/price-scout/internal/repo/providers/mercadolibre"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProvider(t *testing.T, handler http.HandlerFunc) *mercadolibre.Provider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := mercadolibre.NewClient(config.MercadoLibreConfig{
		BaseURL: srv.URL,
		Site:    "MLM",
		Timeout: 2 * time.Second,
	})
	return mercadolibre.NewProvider(client, 10)
}

func TestSearchMapsListings(t *testing.T) {
	t.Parallel()

	provider := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sites/MLM/search", r.URL.Path)
		assert.Equal(t, "usb cable", r.URL.Query().Get("q"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"query": "usb cable",
			"results": [
				{"id": "MLM123", "title": "Cable USB-C", "price": 149.5, "currency_id": "MXN", "permalink": "https://articulo.mercadolibre.com.mx/MLM123", "thumbnail": "https://http2.mlstatic.com/MLM123.jpg"},
				{"id": "MLM456", "title": "Cable USB 2m", "price": 89, "currency_id": "MXN", "permalink": "", "thumbnail": ""}
			]
		}`))
	})

	products, err := provider.Search(context.Background(), "usb cable")
	require.NoError(t, err)
	require.Len(t, products, 2)

	first := products[0]
	assert.Equal(t, "MLM123", first.ID)
	assert.Equal(t, "Cable USB-C", first.Name)
	assert.Equal(t, 149.5, first.Price)
	assert.Equal(t, "MXN", first.Currency)
	assert.Equal(t, "mercadolibre", first.Source)
	assert.NotNil(t, first.LastChecked)

	// missing fields stay empty instead of failing the listing
	assert.Empty(t, products[1].URL)
	assert.Empty(t, products[1].Image)
}

func TestSearchEmptyResults(t *testing.T) {
	t.Parallel()

	provider := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"query": "xyz", "results": []}`))
	})

	products, err := provider.Search(context.Background(), "xyz")
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestSearchUpstreamErrors(t *testing.T) {
	t.Parallel()

	t.Run("non-200 status", func(t *testing.T) {
		provider := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := provider.Search(context.Background(), "usb")
		require.Error(t, err)

		var provErr *providers.ProviderError
		require.ErrorAs(t, err, &provErr)
		assert.Equal(t, "mercadolibre", provErr.Provider)
	})

	t.Run("unparseable payload", func(t *testing.T) {
		provider := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>
not json</html>`))
		})

		_, err := provider.Search(context.Background(), "usb")
		var provErr *providers.ProviderError
		assert.ErrorAs(t, err, &provErr)
	})
}
