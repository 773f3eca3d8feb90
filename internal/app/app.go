package app

import (
	"context"

	"github.com/carousell/ct-go/pkg/logger"
	"github.com/nguyentranbao-ct/price-scout/internal/config"
	"github.com/nguyentranbao-ct/price-scout/internal/repo/mongodb"
	"github.com/nguyentranbao-ct/price-scout/internal/repo/providers"
	"github.com/nguyentranbao-ct/price-scout/internal/repo/providers/mercadolibre"
	"github.com/nguyentranbao-ct/price-scout/internal/server"
	"github.com/nguyentranbao-ct/price-scout/internal/usecase"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap/zapcore"
)

func Invoke(funcs ...any) *fx.App {
	log := logger.MustNamed("app")
	conf := config.MustLoad()
	log.Debugw("config loaded",
		"server_addr", conf.Server.Addr,
		"database", conf.Database.Database,
		"kafka_enabled", conf.Kafka.Enabled,
	)
	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			l := &fxevent.ZapLogger{
				Logger: log.Unwrap().Desugar(),
			}
			l.UseLogLevel(zapcore.DebugLevel)
			return l
		}),
		fx.Provide(
			newMongoDB,
			newHasher,
			newTokenIssuer,
			newEventPublisher,

			server.NewHandler,

			usecase.NewAccountUsecase,

			mongodb.NewUserRepository,
			mongodb.NewFavoritesRepository,

			providers.NewRegistry,
		),
		fx.Supply(conf),
		fx.Invoke(EnsureIndexes),
		fx.Invoke(RegisterSearchProviders),
		fx.Invoke(funcs...),
	)
}

// RegisterSearchProviders wires every configured search provider into the
// registry on startup; the orchestrator never changes when one is added.
func RegisterSearchProviders(
	lc fx.Lifecycle,
	conf *config.Config,
	registry providers.Registry,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			client := mercadolibre.NewClient(conf.MercadoLibre)
			return registry.Register(mercadolibre.NewProvider(client, conf.MercadoLibre.Limit))
		},
	})
}

// EnsureIndexes creates the unique indexes the domain relies on before the
// server starts accepting requests.
func EnsureIndexes(
	lc fx.Lifecycle,
	userRepo mongodb.UserRepository,
	favoritesRepo mongodb.FavoritesRepository,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := userRepo.EnsureIndexes(ctx); err != nil {
				return err
			}
			return favoritesRepo.EnsureIndexes(ctx)
		},
	})
}
