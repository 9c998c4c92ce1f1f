package repository

import (
	"context"
	"time"

	"github.com/soundshelf/soundshelf/internal/config"
	"github.com/soundshelf/soundshelf/internal/listing/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type repo struct {
	collection *mongo.Collection
	timeout    time.Duration
}

func Provide(client *mongo.Client, cfg config.Config) domain.Repository {
	return &repo{
		collection: client.Database(cfg.MongoDatabase).Collection(cfg.MongoListings),
		timeout:    time.Duration(cfg.MongoTimeoutSec) * time.Second,
	}
}

func (r *repo) Distinct(ctx context.Context, attribute string) ([]string, error) {
	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	raw, err := r.collection.Distinct(callCtx, attribute, bson.D{})
	if err != nil {
		return nil, err
	}

	values := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			values = append(values, s)
		}
	}
	return values, nil
}

func (r *repo) ListByCountry(ctx context.Context, country string, limit int64) ([]domain.Summary, error) {
	if limit <= 0 {
		limit = domain.DefaultSearchLimit
	}

	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cursor, err := r.collection.Find(callCtx,
		bson.D{{Key: "address.country", Value: country}},
		options.Find().
			SetProjection(bson.D{
				{Key: "_id", Value: 1},
				{Key: "name", Value: 1},
				{Key: "summary", Value: 1},
				{Key: "images.picture_url", Value: 1},
				{Key: "host.host_location", Value: 1},
				{Key: "host.host_name", Value: 1},
			}).
			SetLimit(limit),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(callCtx)

	var results []domain.Summary
	if err := cursor.All(callCtx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *repo) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "_id", Value: id}}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "listing_url", Value: 1},
			{Key: "name", Value: 1},
			{Key: "space", Value: 1},
			{Key: "description", Value: 1},
			{Key: "neighborhood_review", Value: 1},
			{Key: "access", Value: 1},
			{Key: "property_type", Value: 1},
			{Key: "room_type", Value: 1},
			{Key: "bed_type", Value: 1},
			{Key: "minimum_nights", Value: 1},
			{Key: "maximum_nights", Value: 1},
			{Key: "cancellation_policy", Value: 1},
			{Key: "accomodates", Value: 1},
			{Key: "bedrooms", Value: 1},
			{Key: "beds", Value: 1},
			{Key: "number_of_reviews", Value: 1},
			{Key: "bathrooms", Value: 1},
			{Key: "amenities", Value: 1},
			{Key: "price", Value: 1},
			{Key: "image", Value: "$images.picture_url"},
			{Key: "host", Value: 1},
			{Key: "address", Value: 1},
			{Key: "coordinates", Value: bson.D{
				{Key: "type", Value: "Point"},
				{Key: "coordinates", Value: bson.A{
					bson.D{{Key: "$arrayElemAt", Value: bson.A{"$address.location.coordinates", 0}}},
					bson.D{{Key: "$arrayElemAt", Value: bson.A{"$address.location.coordinates", 1}}},
				}},
			}},
			{Key: "review_scores", Value: 1},
			{Key: "reviews", Value: 1},
		}}},
	}

	cursor, err := r.collection.Aggregate(callCtx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(callCtx)

	var results []domain.Listing
	if err := cursor.All(callCtx, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}
