package events

import (
	"context"
	"time"

	"github.com/soundshelf/soundshelf/internal/checkout/domain"
	"github.com/soundshelf/soundshelf/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Publisher writes checkout events to the checkouts collection. The
// relational store is the source of truth; this mirror is an
// asynchronously-consistent read replica keyed by the checkout id.
type Publisher struct {
	collection *mongo.Collection
	timeout    time.Duration
	log        *zap.Logger
}

func New(client *mongo.Client, cfg config.Config, log *zap.Logger) domain.Publisher {
	return &Publisher{
		collection: client.Database(cfg.MongoDatabase).Collection(cfg.MongoCheckouts),
		timeout:    time.Duration(cfg.MongoTimeoutSec) * time.Second,
		log:        log.Named("checkout.events"),
	}
}

func (p *Publisher) Publish(ctx context.Context, event domain.Event) error {
	insertCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	_, err := p.collection.InsertOne(insertCtx, event)
	if mongo.IsDuplicateKeyError(err) {
		// Same checkout id already mirrored; nothing to do.
		return nil
	}
	if err != nil {
		return err
	}

	p.log.Debug("checkout mirrored",
		zap.Int64("event_id", event.EventID),
		zap.String("song_title", event.SongTitle),
	)
	return nil
}
