package domain

import (
	"context"

	"github.com/soundshelf/soundshelf/internal/objectstore"
)

// BlobStore is the slice of the object store the upload workflow needs.
type BlobStore interface {
	Put(ctx context.Context, in objectstore.PutInput) error
}
