package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/carousell/ct-go/pkg/logger"
	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nguyentranbao-ct/price-scout/internal/config"
	pkgmdw "github.com/nguyentranbao-ct/price-scout/internal/server/middleware"
	"github.com/nguyentranbao-ct/price-scout/pkg/token"
	"github.com/nguyentranbao-ct/price-scout/pkg/util"
	"go.uber.org/fx"
)

func StartServer(
	lc fx.Lifecycle,
	sd fx.Shutdowner,
	conf *config.Config,
	issuer token.Issuer,
	handler Controller,
) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = pkgmdw.NewValidator()

	httpLog := logger.MustNamed("http")
	e.HTTPErrorHandler = pkgmdw.ErrorHandler(httpLog)

	logConfig := pkgmdw.LogRequestConfig{
		Logger: httpLog,
		Enabled: func(c echo.Context) bool {
			quiet := []string{"/health", "/metrics"}
			return !util.SliceIncludes(quiet, c.Request().RequestURI)
		},
		KeyAndValues: func(c echo.Context) []any {
			args := make([]any, 0, 2)
			if email := pkgmdw.CurrentUserEmail(c); email != "" {
				args = append(args, "user_email", email)
			}
			return args
		},
	}

	e.Use(pkgmdw.Metrics())
	e.Use(pkgmdw.RequestID())
	e.Use(pkgmdw.LogRequest(logConfig))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			log.Errorw(c.Request().Context(), "PANIC RECOVER", "error", err, "stack", string(stack))
			return nil
		},
	}))

	e.GET("/health", handler.Health)

	api := e.Group("/api/v1")
	api.POST("/auth/register", handler.Register)
	api.POST("/auth/login", handler.Login)
	api.GET("/search", handler.Search)

	favorites := api.Group("/favorites", pkgmdw.BearerAuth(issuer))
	favorites.GET("", handler.ListFavorites)
	favorites.POST("", handler.AddFavorite)
	favorites.DELETE("/:productId", handler.RemoveFavorite)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Infow(ctx, "starting HTTP server", "addr", conf.Server.Addr)
				if err := e.Start(conf.Server.Addr); !errors.Is(err, http.ErrServerClosed) {
					sd.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
}
