package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/nguyentranbao-ct/price-scout/internal/server/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	newContext := func(header http.Header) (echo.Context, *httptest.ResponseRecorder) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		for k, vs := range header {
			for _, v := range vs {
				req.Header.Add(k, v)
			}
		}
		rec := httptest.NewRecorder()
		return e.NewContext(req, rec), rec
	}

	t.Run("generates id when header absent", func(t *testing.T) {
		c, rec := newContext(nil)

		var seen string
		handler := middleware.RequestID()(func(c echo.Context) error {
			seen = middleware.GetRequestID(c)
			return nil
		})
		require.NoError(t, handler(c))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(middleware.XRequestID))
	})

	t.Run("reuses inbound header", func(t *testing.T) {
		h := http.Header{}
		h.Set(middleware.XRequestID, "inbound-id")
		c, rec := newContext(h)

		var seen string
		handler := middleware.RequestID()(func(c echo.Context) error {
			seen = middleware.GetRequestID(c)
			return nil
		})
		require.NoError(t, handler(c))

		assert.Equal(t, "inbound-id", seen)
		assert.Equal(t, "inbound-id", rec.Header().Get(middleware.XRequestID))
	})

	t.Run("id reachable from request context", func(t *testing.T) {
		c, _ := newContext(nil)

		var fromCtx string
		handler := middleware.RequestID()(func(c echo.Context) error {
			fromCtx = middleware.GetRequestIDFromContext(c.Request().Context())
			return nil
		})
		require.NoError(t, handler(c))

		assert.NotEmpty(t, fromCtx)
	})
}
