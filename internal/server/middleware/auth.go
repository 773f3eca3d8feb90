package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/nguyentranbao-ct/price-scout/pkg/token"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ctxUserID    = "user_id"
	ctxUserEmail = "user_email"
)

// BearerAuth rejects requests without a valid session token and stashes the
// verified claims on the echo context. Verification fails closed: every bad
// token maps to 401 with no detail about why.
func BearerAuth(issuer token.Issuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
			}

			claims, err := issuer.Verify(tokenString)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			userID, err := primitive.ObjectIDFromHex(claims.UserID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(ctxUserID, userID)
			c.Set(ctxUserEmail, claims.Email)
			return next(c)
		}
	}
}

// CurrentUserID returns the authenticated user's id set by BearerAuth.
func CurrentUserID(c echo.Context) (primitive.ObjectID, bool) {
	id, ok := c.Get(ctxUserID).(primitive.ObjectID)
	return id, ok
}

// CurrentUserEmail returns the authenticated user's email set by BearerAuth.
func CurrentUserEmail(c echo.Context) string {
	email, _ := c.Get(ctxUserEmail).(string)
	return email
}
