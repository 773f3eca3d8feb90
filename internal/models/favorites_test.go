package models_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/nguyentranbao-ct/price-scout/internal/models"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func product(id string) models.Product {
	return models.Product{
		ID:       id,
		Name:     "product " + id,
		Price:    99.9,
		Currency: "MXN",
		URL:      "https://example.com/" + id,
		Source:   "mercadolibre",
	}
}

func TestFavoritesAdd(t *testing.T) {
	t.Parallel()

	t.Run("duplicate add is idempotent", func(t *testing.T) {
		favs := models.NewFavorites()
		favs.Add(product("A1"))
		favs.Add(product("A1"))

		assert.Equal(t, 1, favs.Len())
		assert.Equal(t, "A1", favs.Products()[0].ID)
	})

	t.Run("dedup is by id, not content", func(t *testing.T) {
		favs := models.NewFavorites()
		p := product("A1")
		favs.Add(p)

		changed := p
		changed.Price = 1.0
		favs.Add(changed)

		assert.Equal(t, 1, favs.Len())
		assert.Equal(t, 99.9, favs.Products()[0].Price, "first insertion wins")
	})

	t.Run("insertion order preserved", func(t *testing.T) {
		favs := models.NewFavorites()
		favs.Add(product("C"))
		favs.Add(product("A"))
		favs.Add(product("B"))

		ids := make([]string, 0, favs.Len())
		for _, p := range favs.Products() {
			ids = append(ids, p.ID)
		}
		assert.Equal(t, []string{"C", "A", "B"}, ids)
	})
}

func TestFavoritesRemove(t *testing.T) {
	t.Parallel()

	t.Run("removes matching entry", func(t *testing.T) {
		favs := models.NewFavorites(product("A"), product("B"))
		favs.Remove("A")

		assert.Equal(t, 1, favs.Len())
		assert.Equal(t, "B", favs.Products()[0].ID)
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		favs := models.NewFavorites(product("A"))
		favs.Remove("missing")

		assert.Equal(t, 1, favs.Len())
	})

	t.Run("remove from empty collection", func(t *testing.T) {
		favs := models.NewFavorites()
		favs.Remove("anything")

		assert.Equal(t, 0, favs.Len())
	})
}

func TestFavoritesInvariantRandomOps(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	favs := models.NewFavorites()

	for i := 0; i < 5000; i++ {
		id := fmt.Sprintf("P%d", rng.Intn(20))
		if rng.Intn(3) == 0 {
			favs.Remove(id)
		} else {
			favs.Add(product(id))
		}

		seen := map[string]bool{}
		for _, p := range favs.Products() {
			assert.False(t, seen[p.ID], "duplicate id %s after %d ops", p.ID, i+1)
			seen[p.ID] = true
		}
	}
}

func TestNewFavoritesDropsDuplicates(t *testing.T) {
	t.Parallel()

	favs := models.NewFavorites(product("A"), product("B"), product("A"))
	assert.Equal(t, 2, favs.Len())
}

func TestFavoriteListRoundTrip(t *testing.T) {
	t.Parallel()

	userID := primitive.NewObjectID()
	favs := models.NewFavorites(product("A"), product("B"))

	list := models.NewFavoriteList(userID, favs)
	assert.Equal(t, userID, list.UserID)

	restored := list.Favorites()
	assert.Equal(t, favs.Products(), restored.Products())
}

func TestFavoritesProductsIsACopy(t *testing.T) {
	t.Parallel()

	favs := models.NewFavorites(product("A"))
	view := favs.Products()
	view[0].ID = "mutated"

	assert.Equal(t, "A", favs.Products()[0].ID)
}
