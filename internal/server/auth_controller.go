package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nguyentranbao-ct/price-scout/internal/models"
)

func (h *controller) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	token, err := h.accounts.CreateAccount(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		var vErr *models.ValidationError
		switch {
		case errors.As(err, &vErr):
			return echo.NewHTTPError(http.StatusBadRequest, vErr.Error())
		case errors.Is(err, models.ErrEmailTaken):
			return echo.NewHTTPError(http.StatusConflict, models.ErrEmailTaken.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "could not create account")
		}
	}

	return c.JSON(http.StatusCreated, models.SessionResponse{Token: token})
}

func (h *controller) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	token, err := h.accounts.Login(ctx, req.Email, req.Password)
	if err != nil {
		// generic message for every auth failure; no account enumeration
		if errors.Is(err, models.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "could not log in")
	}

	return c.JSON(http.StatusOK, models.SessionResponse{Token: token})
}
