package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nguyentranbao-ct/price-scout/internal/usecase"
)

type Controller interface {
	Register(c echo.Context) error
	Login(c echo.Context) error
	Search(c echo.Context) error
	ListFavorites(c echo.Context) error
	AddFavorite(c echo.Context) error
	RemoveFavorite(c echo.Context) error
	Health(c echo.Context) error
}

type controller struct {
	accounts usecase.AccountUsecase
}

func NewHandler(accounts usecase.AccountUsecase) Controller {
	return &controller{
		accounts: accounts,
	}
}

func (h *controller) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "price-scout",
	})
}
