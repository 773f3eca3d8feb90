package app

import (
	"context"
	"time"

	"github.com/nguyentranbao-ct/price-scout/internal/config"
	"github.com/nguyentranbao-ct/price-scout/internal/kafka"
	"github.com/nguyentranbao-ct/price-scout/internal/repo/mongodb"
	"github.com/nguyentranbao-ct/price-scout/pkg/crypto"
	"github.com/nguyentranbao-ct/price-scout/pkg/token"
	"go.uber.org/fx"
)

func newMongoDB(lc fx.Lifecycle, cfg *config.Config) (*mongodb.DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := mongodb.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return db.Client.Ping(ctx, nil)
		},
		OnStop: func(ctx context.Context) error {
			return db.Close(ctx)
		},
	})

	return db, nil
}

func newHasher(cfg *config.Config) (crypto.Hasher, error) {
	return crypto.NewHasher(cfg.Auth.BcryptCost)
}

func newTokenIssuer(cfg *config.Config) (token.Issuer, error) {
	return token.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
}

func newEventPublisher(lc fx.Lifecycle, cfg *config.Config) (kafka.Publisher, error) {
	publisher, err := kafka.NewPublisher(cfg.Kafka)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}
