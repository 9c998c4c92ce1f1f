package mongodb

import (
	"context"
	"testing"

	"github.com/soundshelf/soundshelf/internal/config"
)

func TestNewBuildsClientWithoutDialing(t *testing.T) {
	client, err := New(config.Config{
		MongoURI:        "mongodb://localhost:27017",
		MongoTimeoutSec: 1,
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if client == nil {
		t.Fatal("expected a client")
	}
	if err := client.Disconnect(context.Background()); err != nil {
		t.Fatalf("disconnect: %v", err)
	}
}
