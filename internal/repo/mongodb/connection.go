package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/nguyentranbao-ct/price-scout/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DB wraps the process-wide client; the driver is safe for concurrent use by
// every in-flight request.
type DB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func NewConnection(ctx context.Context, cfg config.DatabaseConfig) (*DB, error) {
	opts := options.Client().
		SetAppName("price-scout").
		SetHosts(cfg.Hosts).
		SetDirect(cfg.Direct).
		SetMaxPoolSize(10).
		SetMaxConnIdleTime(30 * time.Second).
		SetTimeout(10 * time.Second)

	if cfg.Username != "" {
		opts.SetAuth(options.Credential{
			AuthSource: cfg.AuthDB,
			Username:   cfg.Username,
			Password:   cfg.Password,
		})
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect to MongoDB: %w", err)
	}

	return &DB{
		Client:   client,
		Database: client.Database(cfg.Database),
	}, nil
}

func (db *DB) Close(ctx context.Context) error {
	return db.Client.Disconnect(ctx)
}
