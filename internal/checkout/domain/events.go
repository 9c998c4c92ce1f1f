package domain

import "context"

// Publisher mirrors checkout events into the document store.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}
