package mongodb

import (
	"context"
	"time"

	"github.com/soundshelf/soundshelf/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("mongodb",
	fx.Provide(New),
	fx.Invoke(registerLifecycle),
)

// New builds the shared document-store client. Connect dials lazily;
// the lifecycle hook pings before traffic starts.
func New(cfg config.Config) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetConnectTimeout(time.Duration(cfg.MongoTimeoutSec) * time.Second)
	return mongo.Connect(context.Background(), opts)
}

func registerLifecycle(lc fx.Lifecycle, client *mongo.Client, cfg config.Config, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.MongoTimeoutSec)*time.Second)
			defer cancel()
			if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
				return err
			}
			log.Info("document store connected", zap.String("database", cfg.MongoDatabase))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("disconnecting document store")
			return client.Disconnect(ctx)
		},
	})
}
