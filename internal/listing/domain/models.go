package domain

import (
	"context"
	"errors"
)

// Summary is the projected row returned by a country search.
type Summary struct {
	ID      string `bson:"_id" json:"id"`
	Name    string `bson:"name" json:"name"`
	Summary string `bson:"summary" json:"summary"`
	Images  struct {
		PictureURL string `bson:"picture_url" json:"picture_url"`
	} `bson:"images" json:"images"`
	Host struct {
		HostLocation string `bson:"host_location" json:"host_location"`
		HostName     string `bson:"host_name" json:"host_name"`
	} `bson:"host" json:"host"`
}

// Point is a flattened GeoJSON coordinate pair.
type Point struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// Listing is the normalized single-document shape.
type Listing struct {
	ID                 string                 `bson:"_id" json:"id"`
	ListingURL         string                 `bson:"listing_url" json:"listing_url"`
	Name               string                 `bson:"name" json:"name"`
	Space              string                 `bson:"space" json:"space"`
	Description        string                 `bson:"description" json:"description"`
	NeighborhoodReview string                 `bson:"neighborhood_review" json:"neighborhood_review"`
	Access             string                 `bson:"access" json:"access"`
	PropertyType       string                 `bson:"property_type" json:"property_type"`
	RoomType           string                 `bson:"room_type" json:"room_type"`
	BedType            string                 `bson:"bed_type" json:"bed_type"`
	MinimumNights      string                 `bson:"minimum_nights" json:"minimum_nights"`
	MaximumNights      string                 `bson:"maximum_nights" json:"maximum_nights"`
	CancellationPolicy string                 `bson:"cancellation_policy" json:"cancellation_policy"`
	Accomodates        int32                  `bson:"accomodates" json:"accomodates"`
	Bedrooms           int32                  `bson:"bedrooms" json:"bedrooms"`
	Beds               int32                  `bson:"beds" json:"beds"`
	NumberOfReviews    int32                  `bson:"number_of_reviews" json:"number_of_reviews"`
	Bathrooms          interface{}            `bson:"bathrooms" json:"bathrooms"`
	Amenities          []string               `bson:"amenities" json:"amenities"`
	Price              interface{}            `bson:"price" json:"price"`
	Image              string                 `bson:"image" json:"image"`
	Host               map[string]interface{} `bson:"host" json:"host"`
	Address            map[string]interface{} `bson:"address" json:"address"`
	Coordinates        Point                  `bson:"coordinates" json:"coordinates"`
	ReviewScores       map[string]interface{} `bson:"review_scores" json:"review_scores"`
	Reviews            []interface{}          `bson:"reviews" json:"reviews"`
}

// DefaultSearchLimit caps country searches unless the caller narrows it.
const DefaultSearchLimit = 200

type Repository interface {
	Distinct(ctx context.Context, attribute string) ([]string, error)
	ListByCountry(ctx context.Context, country string, limit int64) ([]Summary, error)
	GetByID(ctx context.Context, id string) (*Listing, error)
}

type Service interface {
	Countries(ctx context.Context) ([]string, error)
	Search(ctx context.Context, country string, limit int64) ([]Summary, error)
	Get(ctx context.Context, id string) (*Listing, error)
}

var ErrNotFound = errors.New("listing_not_found")
