package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nguyentranbao-ct/price-scout/internal/models"
	pkgmdw "github.com/nguyentranbao-ct/price-scout/internal/server/middleware"
)

func (h *controller) ListFavorites(c echo.Context) error {
	userID, ok := pkgmdw.CurrentUserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}

	ctx := c.Request().Context()
	products, err := h.accounts.ListFavorites(ctx, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not load favorites")
	}

	return c.JSON(http.StatusOK, models.FavoritesResponse{Products: products})
}

func (h *controller) AddFavorite(c echo.Context) error {
	userID, ok := pkgmdw.CurrentUserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}

	var req models.AddFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	if err := h.accounts.AddFavorite(ctx, userID, req.Product); err != nil {
		var vErr *models.ValidationError
		if errors.As(err, &vErr) {
			return echo.NewHTTPError(http.StatusBadRequest, vErr.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "could not add favorite")
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "added"})
}

func (h *controller) RemoveFavorite(c echo.Context) error {
	userID, ok := pkgmdw.CurrentUserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}

	productID := c.Param("productId")

	ctx := c.Request().Context()
	if err := h.accounts.RemoveFavorite(ctx, userID, productID); err != nil {
		var vErr *models.ValidationError
		if errors.As(err, &vErr) {
			return echo.NewHTTPError(http.StatusBadRequest, vErr.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "could not remove favorite")
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "removed"})
}
