package mongodb

import (
	"context"
	"time"

	"github.com/storelane/storelane/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides the mongo database handle with managed lifecycle.
var Module = fx.Module("mongodb",
	fx.Provide(NewDatabase),
)

// NewDatabase connects a mongo client and exposes the configured database.
// The connection is verified on start and closed on shutdown.
func NewDatabase(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) (*mongo.Database, error) {
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
				return err
			}
			log.Info("connected to mongodb", zap.String("database", cfg.MongoDatabase))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Disconnect(ctx)
		},
	})

	return client.Database(cfg.MongoDatabase), nil
}
