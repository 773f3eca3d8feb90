package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nguyentranbao-ct/price-scout/internal/models"
)

func (h *controller) Search(c echo.Context) error {
	term := c.QueryParam("q")

	ctx := c.Request().Context()
	products, err := h.accounts.Search(ctx, term)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "search failed")
	}

	return c.JSON(http.StatusOK, models.SearchResponse{
		Term:     term,
		Products: products,
	})
}
