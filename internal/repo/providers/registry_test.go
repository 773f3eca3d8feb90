package providers_test

import (
	"context"
	"testing"

	"github.com/nguyentranbao-ct/price-scout/internal/models"
	"github.com/nguyentranbao-ct/price-scout/internal/repo/providers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	name string
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Search(ctx context.Context, term string) ([]models.Product, error) {
	return nil, nil
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	t.Run("register and get by name", func(t *testing.T) {
		reg := providers.NewRegistry()
		require.NoError(t, reg.Register(&stubProvider{name: "mercadolibre"}))

		p, ok := reg.Get("mercadolibre")
		assert.True(t, ok)
		assert.Equal(t, "mercadolibre", p.Name())
	})

	t.Run("lookup is case insensitive", func(t *testing.T) {
		reg := providers.NewRegistry()
		require.NoError(t, reg.Register(&stubProvider{name: "MercadoLibre"}))

		_, ok := reg.Get(" mercadolibre ")
		assert.True(t, ok)
	})

	t.Run("duplicate registration rejected", func(t *testing.T) {
		reg := providers.NewRegistry()
		require.NoError(t, reg.Register(&stubProvider{name: "a"}))
		assert.Error(t, reg.Register(&stubProvider{name: "a"}))
	})

	t.Run("nil and unnamed providers rejected", func(t *testing.T) {
		reg := providers.NewRegistry()
		assert.Error(t, reg.Register(nil))
		assert.Error(t, reg.Register(&stubProvider{name: "  "}))
	})

	t.Run("providers keeps registration order", func(t *testing.T) {
		reg := providers.NewRegistry()
		for _, name := range []string{"c", "a", "b"} {
			require.NoError(t, reg.Register(&stubProvider{name: name}))
		}

		var names []string
		for _, p := range reg.Providers() {
			names = append(names, p.Name())
		}
		assert.Equal(t, []string{"c", "a", "b"}, names)
	})

	t.Run("unknown provider not found", func(t *testing.T) {
		reg := providers.NewRegistry()
		_, ok := reg.Get("missing")
		assert.False(t, ok)
	})
}
